// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlprob/internal/config"
	"github.com/katalvlaran/lvlprob/internal/logger"
)

// app carries the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *zap.Logger
}

// seed returns the --seed flag when set, else the configured seed.
func (a *app) seed(cmd *cobra.Command) int64 {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		s, _ := cmd.Flags().GetInt64("seed")
		return s
	}

	return a.cfg.Seed
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "lvlprob",
		Short:         "Discrete probability tables over named axes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			if err = logger.Init(cfg.Logger()); err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.Get().With(zap.String("command", cmd.Name()))
			a.log.Debug("configuration loaded",
				zap.String("config", a.cfgFile),
				zap.Int64("seed", cfg.Seed),
				zap.Int("workers", cfg.Workers))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Path to a YAML/JSON/TOML config file")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.Int("workers", 0, "Concurrent workers for inspect and demo (default: number of CPUs)")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("workers", pf.Lookup("workers"))

	root.AddCommand(
		newVersionCmd(),
		newNewCmd(a),
		newInspectCmd(a),
		newDemoCmd(a),
	)

	return root
}
