package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/vito/dbg/pkg/dbg"
)

// Config holds the application configuration
type Config struct {
	Debug      bool
	Stdout     bool
	Append     bool
	LogFile    string
	ConfigFile string
}

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("212"))

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "dbg-demo [flags]",
		Short: "Demonstrates the dbg debug printer",
		Long: `dbg-demo runs a scripted debugging session through the dbg library,
exercising every value shape: scalars, strings, sequences, maps, sets,
stacks, queues, owning references, and self-describing aggregates.`,
		Example: `  # Write the session to dbg.log (truncated)
  dbg-demo

  # Append to dbg.log across runs
  dbg-demo --append

  # Print to the terminal instead
  dbg-demo --stdout

  # Use a dbg.toml configuration file
  dbg-demo --config ./dbg.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&cfg.Stdout, "stdout", false, "Write debug output to stdout")
	rootCmd.Flags().BoolVar(&cfg.Append, "append", false, "Append to the log file instead of truncating")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "Log file path (default dbg.log)")
	rootCmd.Flags().StringVar(&cfg.ConfigFile, "config", "", "Path to a dbg.toml configuration file")

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	config, err := resolveConfig(cfg)
	if err != nil {
		return err
	}
	slog.Debug("resolved debug configuration", "config", pretty.Sprint(config))

	printer, err := dbg.FromConfig(config)
	if err != nil {
		return err
	}
	defer printer.Close()

	if config.Output == "stdout" {
		// Banner goes to stderr so the debug output itself stays clean.
		fmt.Fprintln(os.Stderr, bannerStyle.Render("dbg demo session"))
	} else {
		slog.Info("writing debug session", "path", config.Path, "mode", config.Output)
	}

	demo(dbg.ToContext(ctx, printer))
	return nil
}

// resolveConfig layers flags over the configuration file (explicit path,
// or dbg.toml found by walking up from the working directory).
func resolveConfig(cfg Config) (dbg.Config, error) {
	var config dbg.Config
	var err error
	if cfg.ConfigFile != "" {
		config, err = dbg.LoadConfig(cfg.ConfigFile)
	} else {
		_, config, err = dbg.FindConfig(".")
	}
	if err != nil {
		return config, err
	}

	if cfg.Stdout {
		config.Output = "stdout"
	} else if cfg.Append {
		config.Output = "append"
	}
	if cfg.LogFile != "" {
		config.Path = cfg.LogFile
	}
	return config, nil
}
