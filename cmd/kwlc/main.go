package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/config"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "kwlc",
		Short: "🎯 Keyword lifecycle decision engine",
		Long: `kwlc manages advertising keywords from discovery to retirement.

It cleans and deduplicates keyword lists, validates campaign names against the
naming convention, scores keyword opportunity, advises bids within the
profitability ceiling and suggests which campaign each keyword belongs in.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/kwlc/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(dedupeCmd())
	rootCmd.AddCommand(namesCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(bidCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	handler := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := handler.HandleInterrupts(context.Background())

	cmd, err := rootCmd.ExecuteContextC(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, cli.ErrInputCancelled) {
			fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
			command := rootCmd.Name()
			if cmd != nil {
				command = cmd.CommandPath()
			}
			common.LogError(err, "Command failed", common.Fields{"command": command})
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		if dir := config.DefaultDir(); dir != "" {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("KWLC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case cfgFile != "" && errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("%w: %s", common.ErrMissingConfig, cfgFile)
		case !errors.As(err, &notFound):
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	common.LogDebug("Configuration loaded", common.Fields{"file": viper.ConfigFileUsed()})
	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		return err
	}

	format := viper.GetString(config.KeyLogFormat)
	switch format {
	case "text", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}

	common.SetupLogger(os.Stderr, level, format)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kwlc %s\n", version)
		},
	}
}
