package migrate

import (
	"log/slog"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/egannguyen/seller-dashboard/internal/app"
	"github.com/egannguyen/seller-dashboard/internal/repository/postgres"
)

const configFlag = "config"

var migrateFlags = map[string]cobraflags.Flag{
	configFlag: &cobraflags.StringFlag{
		Name:  configFlag,
		Value: "",
		Usage: "Path to a config file (yaml, json or toml)",
	},
}

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the products and cart_items tables",
		RunE:  migrateCommand,
	}
	cobraflags.RegisterMap(cmd, migrateFlags)
	return cmd
}

func migrateCommand(_ *cobra.Command, _ []string) error {
	cfg, err := app.Setup(migrateFlags[configFlag].GetString())
	if err != nil {
		return err
	}

	// InitDB migrates on open.
	db, err := postgres.InitDB(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	slog.Info("Migration complete")
	return nil
}
