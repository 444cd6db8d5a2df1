package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/egannguyen/seller-dashboard/internal/app"
	"github.com/egannguyen/seller-dashboard/internal/config"
	"github.com/egannguyen/seller-dashboard/internal/entity"
	identityredis "github.com/egannguyen/seller-dashboard/internal/identity/redis"
	"github.com/egannguyen/seller-dashboard/internal/repository/postgres"
)

const (
	configFlag       = "config"
	sellerFlag       = "seller"
	sessionTokenFlag = "session-token"
)

var seedFlags = map[string]cobraflags.Flag{
	configFlag: &cobraflags.StringFlag{
		Name:  configFlag,
		Value: "",
		Usage: "Path to a config file (yaml, json or toml)",
	},
	sellerFlag: &cobraflags.StringFlag{
		Name:  sellerFlag,
		Value: "seller-001",
		Usage: "Seller id the demo products are posted by",
	},
	sessionTokenFlag: &cobraflags.StringFlag{
		Name:  sessionTokenFlag,
		Value: "",
		Usage: "If set, store a seller session under this token so the dashboard can be opened locally",
	},
}

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo products and cart lines into an empty database",
		RunE:  seedCommand,
	}
	cobraflags.RegisterMap(cmd, seedFlags)
	return cmd
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := app.Setup(seedFlags[configFlag].GetString())
	if err != nil {
		return err
	}
	sellerID := seedFlags[sellerFlag].GetString()
	if sellerID == "" {
		return fmt.Errorf("--%s must not be empty", sellerFlag)
	}

	db, err := postgres.InitDB(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	products, items := demoData(sellerID)
	if err := postgres.NewProductRepository(db).Seed(cmd.Context(), products, items); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	slog.Info("Seeded products", "count", len(products), "cart_items", len(items), "seller_id", sellerID)

	token := seedFlags[sessionTokenFlag].GetString()
	if token == "" {
		return nil
	}
	return saveSession(cmd.Context(), cfg, token, demoSeller(sellerID))
}

func saveSession(ctx context.Context, cfg config.Config, token string, u entity.User) error {
	client, err := identityredis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := identityredis.NewSessionStore(client).Save(ctx, token, u, cfg.SessionTTL); err != nil {
		return err
	}
	slog.Info("Seller session stored", "cookie", cfg.SessionCookie, "user_id", u.ID, "ttl", cfg.SessionTTL)
	return nil
}
