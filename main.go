package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/egannguyen/seller-dashboard/cmd/migrate"
	"github.com/egannguyen/seller-dashboard/cmd/seed"
	"github.com/egannguyen/seller-dashboard/cmd/serve"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "seller-dashboard",
		Short:        "Seller dashboard and site navigation for the shop",
		SilenceUsage: true,
	}
	root.AddCommand(serve.NewServeCommand())
	root.AddCommand(migrate.NewMigrateCommand())
	root.AddCommand(seed.NewSeedCommand())
	return root
}
