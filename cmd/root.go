// Package cmd provides the root command and CLI setup for dataobj.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/dataobj/internal/adapter"
	"github.com/mouse-blink/dataobj/internal/config"
	"github.com/mouse-blink/dataobj/internal/controller"
	"github.com/mouse-blink/dataobj/internal/domain"
	"github.com/mouse-blink/dataobj/internal/logger"
	m "github.com/mouse-blink/dataobj/internal/model"
)

var manifestStore adapter.ManifestStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	manifestStore = adapter.NewLocalManifestStore()
	workflow = domain.NewWorkflow(manifestStore, ui, os.Stdout)
}

var configFileFlag string
var verboseFlag int
var jsonLogsFlag bool
var skipFlag string
var parallelFlag int
var layoutFlag string

// settings is resolved by the root command before any command runs.
var settings *config.Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `dataobj runs operations over a sequence of typed data objects.

Every object is a string, an integer or a float. Each operation handles the
three kinds separately and the objects pick the handler themselves, so adding
an operation never touches the objects.

Without a manifest the built-in sample sequence is used:
  String  "Hello"  utf-8
  Integer 16       32 bits
  Float   3.14     ieee-754

Settings can also come from a config file (--config) or DATAOBJ_* environment
variables, e.g. DATAOBJ_WORKERS=4.`

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:          "dataobj [manifest]",
		Short:        "Run operations over typed data objects",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return setup(c, v)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c, args)
		},
	}

	cmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "config file (yaml, json or toml)")
	cmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	cmd.PersistentFlags().BoolVar(&jsonLogsFlag, "json-logs", false, "write logs as JSON")
	cmd.PersistentFlags().StringVar(&skipFlag, "skip", "", "comma-separated kinds to skip (string, integer, float) or \"all\"")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.PersistentFlags().StringVar(&layoutFlag, "layout", "compact", "render layout: compact or aligned")

	bindFlag(v, config.KeyVerbose, cmd.PersistentFlags().Lookup("verbose"))
	bindFlag(v, config.KeyJSONLogs, cmd.PersistentFlags().Lookup("json-logs"))
	bindFlag(v, config.KeySkip, cmd.PersistentFlags().Lookup("skip"))
	bindFlag(v, config.KeyWorkers, cmd.PersistentFlags().Lookup("parallel"))
	bindFlag(v, config.KeyLayout, cmd.PersistentFlags().Lookup("layout"))

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()
	logger.Cleanup()

	if err != nil {
		os.Exit(1)
	}
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// setup resolves settings and installs the logger.
func setup(c *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v, configFileFlag)
	if err != nil {
		return err
	}

	if err := logger.InitializeWithWriter(c.ErrOrStderr(), cfg.Verbose, cfg.JSONLogs); err != nil {
		return err
	}

	settings = cfg

	logger.Logger.Debugw("resolved settings",
		"command", c.Name(),
		"layout", cfg.Layout,
		"workers", cfg.Workers,
		"skip", cfg.Skip,
	)

	return nil
}

// sourceArgs builds the source selection shared by every command.
func sourceArgs(args []string) (domain.SourceArgs, error) {
	skip, err := domain.ParseSkipRule(settings.Skip)
	if err != nil {
		return domain.SourceArgs{}, err
	}

	src := domain.SourceArgs{
		Skip:    skip,
		Workers: settings.Workers,
	}

	if len(args) > 0 {
		src.Manifest = m.Path(args[0])
	}

	return src, nil
}
