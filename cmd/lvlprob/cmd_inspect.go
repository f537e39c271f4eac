// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlprob/info"
	"github.com/katalvlaran/lvlprob/table"
)

// report describes one loaded dump.
type report struct {
	File        string    `json:"file"`
	Axes        string    `json:"axes"`
	Extents     []int     `json:"extents"`
	Conditional bool      `json:"conditional"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	Sum         float64   `json:"sum"`
	RowSums     []float64 `json:"row_sums"`
	Mode        []int     `json:"mode"`
	ModeValue   float64   `json:"mode_value"`
	Entropy     *float64  `json:"entropy_bits,omitempty"`
	Histogram   string    `json:"-"`
}

func newInspectCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Load table dumps and report their sums, mode, entropy and histogram",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := a.inspectAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			writeText(cmd.OutOrStdout(), reports)

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the reports as JSON")

	return cmd
}

// inspectAll loads files concurrently, keeping the argument order.
func (a *app) inspectAll(ctx context.Context, files []string) ([]report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]report, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := a.inspect(file)
			if err != nil {
				return err
			}
			reports[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (a *app) inspect(file string) (report, error) {
	f, err := os.Open(file)
	if err != nil {
		return report{}, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	t, err := table.LoadAny(f)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", file, err)
	}
	r := report{
		File:        file,
		Axes:        t.List().String(),
		Extents:     t.Extents(),
		Conditional: t.IsConditional(),
		Rows:        t.Rows(),
		Cols:        t.Cols(),
		Sum:         t.Sum(),
		RowSums:     t.RowSums(),
		Histogram:   t.Histogram(a.cfg.Summary.Width, min(t.Cols(), a.cfg.Summary.Height)),
	}
	r.Mode, r.ModeValue = t.Mode()
	if !t.IsConditional() {
		h, err := info.Entropy(t)
		if err != nil {
			return report{}, fmt.Errorf("%s: %w", file, err)
		}
		r.Entropy = &h
	}
	a.log.Info("table inspected",
		zap.String("file", file),
		zap.String("axes", r.Axes),
		zap.Int("rows", r.Rows),
		zap.Int("cols", r.Cols))

	return r, nil
}

func writeJSON(w io.Writer, reports []report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

func writeText(w io.Writer, reports []report) {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s ==\n", r.File)
		fmt.Fprintf(w, "axes:     %s\n", r.Axes)
		fmt.Fprintf(w, "extents:  %s\n", joinInts(r.Extents))
		fmt.Fprintf(w, "sum:      %s\n", formatFloat(r.Sum))
		if r.Conditional {
			sums := make([]string, len(r.RowSums))
			for j, s := range r.RowSums {
				sums[j] = formatFloat(s)
			}
			fmt.Fprintf(w, "row sums: %s\n", strings.Join(sums, " "))
		}
		fmt.Fprintf(w, "mode:     %s : %s\n", joinInts(r.Mode), formatFloat(r.ModeValue))
		if r.Entropy != nil {
			fmt.Fprintf(w, "entropy:  %s bits\n", formatFloat(*r.Entropy))
		}
		fmt.Fprint(w, r.Histogram)
	}
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.Itoa(x)
	}

	return strings.Join(s, " ")
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
