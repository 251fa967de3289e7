// Package cli is the milkman command line: the HTTP server plus offline
// summary and export commands over the same database.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"milkman/config"
	"milkman/pkg/app"
	"milkman/pkg/logger"
)

type CLIApp struct {
	rootCmd *cobra.Command
	version string
}

func NewCLIApp(version string) *CLIApp {
	a := &CLIApp{version: version}

	root := &cobra.Command{
		Use:           "milkman",
		Short:         "Customer, delivery and monthly billing records for a milk round",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(`{{printf "milkman version: %s\n" .Version}}`)
	root.PersistentFlags().StringP("config", "C", "", "Path to a TOML, YAML, or JSON configuration file")

	root.AddCommand(a.serveCmd(), a.summaryCmd(), a.exportCmd())
	a.rootCmd = root
	return a
}

func (a *CLIApp) Execute() error {
	return a.rootCmd.Execute()
}

// Root exposes the command tree, mainly for tests.
func (a *CLIApp) Root() *cobra.Command { return a.rootCmd }

// open loads configuration and the application, logging to logOut.
func (a *CLIApp) open(cmd *cobra.Command, logOut io.Writer) (*app.App, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logOut})
	slog.SetDefault(log)
	return app.New(cfg, log)
}
