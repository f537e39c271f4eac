// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlprob/initialize"
	"github.com/katalvlaran/lvlprob/internal/layout"
	"github.com/katalvlaran/lvlprob/table"
)

// Initial cell contents for `lvlprob new`.
const (
	initZero    = "zero"
	initUniform = "uniform"
	initRandom  = "random"
)

var errUnknownInit = errors.New("unknown --init mode")

func newNewCmd(a *app) *cobra.Command {
	var layoutFile, initMode, outFile string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a table from a YAML layout and dump it",
		Long: `Create a table whose axes are declared in a YAML layout file,
fill it and write it in the text dump format.

Example:
  lvlprob new --layout xy_given_z.yaml --init random --seed 7 -o p.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := layout.Load(layoutFile)
			if err != nil {
				return err
			}
			t, err := l.Table()
			if err != nil {
				return err
			}
			seed := a.seed(cmd)
			if err = fill(t, initMode, seed); err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outFile, err)
				}
				defer f.Close()
				w = f
			}
			if err = t.Dump(w, table.WithEpsilon(a.cfg.Dump.Epsilon)); err != nil {
				return err
			}
			a.log.Info("table created",
				zap.String("layout", layoutFile),
				zap.Stringer("axes", t.List()),
				zap.Int("rows", t.Rows()),
				zap.Int("cols", t.Cols()),
				zap.String("init", initMode),
				zap.Int64("seed", seed),
				zap.String("file", outFile))

			return nil
		},
	}

	cmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "Path to the YAML layout file (required)")
	cmd.Flags().StringVar(&initMode, "init", initUniform, "Initial contents: zero, uniform or random")
	cmd.Flags().Int64("seed", 0, "Seed for --init random (default: configured seed)")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("layout")

	return cmd
}

// fill initializes t according to mode.
func fill(t *table.Table, mode string, seed int64) error {
	switch mode {
	case initZero:
		return nil
	case initUniform:
		return initialize.Uniform(t)
	case initRandom:
		return initialize.Random(t, initialize.NewRand(seed))
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", errUnknownInit, mode, initZero, initUniform, initRandom)
	}
}
