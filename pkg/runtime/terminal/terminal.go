package terminal

import (
	"io"
	"os"

	"github.com/de-tools/ecodent-simulator/pkg/runtime/terminal/commands"
	"github.com/de-tools/ecodent-simulator/pkg/runtime/terminal/export"
	"github.com/de-tools/ecodent-simulator/pkg/services/config"
	"github.com/de-tools/ecodent-simulator/pkg/services/preset"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/workflow"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	runtime      *commands.Runtime
	errOutput    io.Writer
	settingsPath string
	verbose      bool
	rootCmd      *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
	Input     io.Reader
	Args      []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	cli := &CLI{
		runtime: &commands.Runtime{
			Reporters: map[string]commands.ReportHandler{
				commands.FormatTable: export.NewReporter(opts.Output),
				commands.FormatText:  NewReporter(opts.Output),
			},
		},
		errOutput: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	cli.rootCmd.SetIn(opts.Input)
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "ecodent",
		Short:             "Ecodent360 income simulator for dentists and investors",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVar(&cli.settingsPath, "settings", "", "Path to a YAML settings file overriding market assumptions")
	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(commands.NewComputeCmd(cli.runtime))
	cmd.AddCommand(commands.NewPresetsCmd(cli.runtime))
	cmd.AddCommand(commands.NewWorkflowCmd(cli.runtime))
	cmd.AddCommand(commands.NewProfilesCmd())
	cmd.AddCommand(commands.NewSessionCmd(cli.runtime))

	return cmd
}

// setup builds the shared runtime once flags are parsed.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	level := zerolog.WarnLevel
	if cli.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.errOutput, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	settings, err := config.LoadSettings(cli.settingsPath)
	if err != nil {
		return err
	}
	store, err := settings.PricingStore()
	if err != nil {
		return err
	}
	formatter, err := settings.Formatter()
	if err != nil {
		return err
	}

	cli.runtime.Calculator = scenario.NewCalculator(store)
	cli.runtime.Presets = preset.NewService(store)
	cli.runtime.Catalog = workflow.NewCatalog()
	cli.runtime.Formatter = formatter
	cli.runtime.Logger = logger

	logger.Debug().Str("settings", cli.settingsPath).Msg("runtime ready")
	return nil
}
