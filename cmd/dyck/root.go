package main

import (
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type cmdContext struct {
	conf *viper.Viper
}

func newRootCommand() *cobra.Command {
	ctx := &cmdContext{conf: viper.New()}

	// flags may also be given as DYCK_ environment variables, eg DYCK_LOG_LEVEL
	ctx.conf.SetEnvPrefix("dyck")
	ctx.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	ctx.conf.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "dyck",
		Short: "Dyck path tree shapes",
		Long: `Tree shapes encoded as Dyck paths, read in postorder from the most
significant bit: 1 is a leaf and 0 joins the two subtrees before it.`,
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(ctx.conf.GetString("log-level"))
		},
	}

	f := cmd.PersistentFlags()
	f.String("log-level", "warn", "Logging level: debug, info, warn or error")
	_ = ctx.conf.BindPFlag("log-level", f.Lookup("log-level"))

	cmd.AddCommand(
		newSplitCommand(ctx),
		newEnumerateCommand(ctx),
		newValidateCommand(ctx),
	)
	return cmd
}

// initLogger configures the process wide logger. The level is checked here
// so that a typo is reported rather than silently logging at some default.
func initLogger(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	logger.New(strings.ToUpper(lvl.String()))
	return nil
}

// named returns the logger for one command. initLogger must have run.
func (ctx *cmdContext) named(command string) logger.Logger {
	return logger.Sugar.WithServiceName("dyck-" + command)
}
