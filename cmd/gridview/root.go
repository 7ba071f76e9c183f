package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grindlemire/go-gridview/internal/config"
	"github.com/grindlemire/go-gridview/internal/debug"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// newRootCmd builds the command tree with its own viper instance.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "gridview",
		Short:         "Measure and place grid layouts from markup and scene files.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./gridview.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Float64("density", 0, "pixels per dp, overrides metrics.density")
	_ = a.v.BindPFlag("logger.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("metrics.density", flags.Lookup("density"))

	root.AddCommand(
		newMeasureCmd(a),
		newRenderCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// init reads the config file and environment, then builds the logger.
func (a *app) init(stderr io.Writer) error {
	if err := a.readConfig(); err != nil {
		return err
	}

	cfg, err := config.NewConfigFromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := debug.Init(cfg.Logger, stderr)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.Float64("density", cfg.Metrics.Density))
	return nil
}

func (a *app) readConfig() error {
	config.SetDefaults(a.v)
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("gridview")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("GRIDVIEW")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}
