package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"sheetsApi/contracts"
	"syscall"
)

type cliFlags struct {
	configPath     string
	listenAddr     string
	databasePath   string
	substitution   string
	logLevel       string
	exportFilePath string
}

func main() {
	os.Exit(HandleExitError(os.Stderr, NewRootCommand().Execute()))
}

func NewRootCommand() *cobra.Command {
	flags := &cliFlags{}

	serve := func(cmd *cobra.Command, args []string) error {
		config, err := loadCommandConfig(cmd, flags)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return RunApp(ctx, config, cmd.ErrOrStderr())
	}

	rootCmd := &cobra.Command{
		Use:           "sheets",
		Short:         "Sheets of named cells with arithmetic formulas over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serve,
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flags.databasePath, "db", "", "Database file path (env DATABASE_FILEPATH)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP api (default command)",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&flags.listenAddr, "listen", "", "Listen address (env LISTEN_ADDR, default "+DefaultListenAddr+")")
		cmd.Flags().StringVar(&flags.substitution, "substitution", "", "Reference substitution: token or legacy (env FORMULA_SUBSTITUTION)")
		cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	}

	exportCmd := &cobra.Command{
		Use:   "export <sheet_id>",
		Short: "Export a sheet into xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCommandConfig(cmd, flags)
			if err != nil {
				return err
			}

			output := flags.exportFilePath
			if output == "" {
				output = args[0] + ".xlsx"
			}

			return ExportSheet(cmd.Context(), config, args[0], output)
		},
	}
	exportCmd.Flags().StringVarP(&flags.exportFilePath, "output", "o", "", "Output file path (default: <sheet_id>.xlsx)")

	rootCmd.AddCommand(serveCmd, exportCmd)
	return rootCmd
}

// loadCommandConfig flags override environment, environment overrides config file
func loadCommandConfig(cmd *cobra.Command, flags *cliFlags) (Config, error) {
	config, err := LoadConfig(flags.configPath, os.Getenv)
	if err != nil {
		return config, err
	}

	overrides := map[string]*string{
		"listen":       &config.ListenAddr,
		"db":           &config.DatabasePath,
		"substitution": &config.Substitution,
		"log-level":    &config.LogLevel,
	}
	values := map[string]string{
		"listen":       flags.listenAddr,
		"db":           flags.databasePath,
		"substitution": flags.substitution,
		"log-level":    flags.logLevel,
	}
	for name, target := range overrides {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			*target = values[name]
		}
	}

	return config, nil
}

func ExportSheet(ctx context.Context, config Config, sheetId string, outputPath string) (err error) {
	if err = config.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(os.Stderr, config)
	if err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config, logger)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	var cells *contracts.CellList
	cells, err = serviceContainer.SheetRepository.GetCellList(ctx, sheetId)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = serviceContainer.SheetExporter.Export(sheetId, cells, f); err != nil {
		return fmt.Errorf("export %s: %w", sheetId, err)
	}

	return nil
}
