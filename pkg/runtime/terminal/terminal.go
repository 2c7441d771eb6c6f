package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/roi-atlas/pkg/runtime/app"
	"github.com/de-tools/roi-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/roi-atlas/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Loader opens the app for the config file at path.
type Loader func(ctx context.Context, path string) (*app.App, error)

// CLI represents the command-line interface
type CLI struct {
	loader    Loader
	logOutput io.Writer
	output    io.Writer
	app       *app.App

	configPath string
	logLevel   string

	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Loader    Loader
	Output    io.Writer
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Loader == nil {
		opts.Loader = app.Load
	}

	cli := &CLI{
		loader:    opts.Loader,
		output:    opts.Output,
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	err := cli.rootCmd.Execute()
	return errors.Join(err, cli.close())
}

// ExecuteContext runs the CLI with explicit arguments instead of os.Args.
func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	cli.rootCmd.SetArgs(args)
	err := cli.rootCmd.ExecuteContext(ctx)
	return errors.Join(err, cli.close())
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "roi",
		Short:             "ROI and financial projection tool for process automation",
		SilenceUsage:      true,
		PersistentPreRunE: cli.open,
	}
	cmd.SetOut(cli.output)

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (overrides the configuration)")

	deps := commands.Deps{
		App:      func() *app.App { return cli.app },
		Exporter: export.NewReporter(cli.output),
		Lister:   NewReporter(cli.output),
	}
	cmd.AddCommand(commands.NewReportCmd(deps))
	cmd.AddCommand(commands.NewOperationCmd(deps))
	cmd.AddCommand(commands.NewSettingsCmd(deps))

	return cmd
}

func (cli *CLI) open(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := zerolog.New(cli.logOutput).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	ctx = logger.WithContext(ctx)

	a, err := cli.loader(ctx, cli.configPath)
	if err != nil {
		return fmt.Errorf("failed to open report store: %w", err)
	}
	cli.app = a

	level := cli.logLevel
	if level == "" {
		level = a.Config.LogLevel
	}
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		logger = logger.Level(parsed)
	} else {
		logger.Warn().Str("level", level).Msg("unknown log level, keeping warn")
	}

	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

func (cli *CLI) close() error {
	if cli.app == nil {
		return nil
	}
	err := cli.app.Close()
	cli.app = nil
	return err
}
