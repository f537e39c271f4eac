// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlprob/algebra"
	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/info"
	"github.com/katalvlaran/lvlprob/initialize"
	"github.com/katalvlaran/lvlprob/table"
)

var (
	demoW = axis.Static("W", 5)
	demoA = axis.Static("A", 3)
	demoS = axis.Static("S", 2)
	demoX = axis.Dynamic("X")
	demoY = axis.Dynamic("Y")
	demoZ = axis.Dynamic("Z")
)

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through every operator and measure on random tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			seed := a.seed(cmd)
			a.log.Info("demo started", zap.Int64("seed", seed))
			p := &printer{w: cmd.OutOrStdout(), eps: a.cfg.Dump.Epsilon}
			if err := a.demoStatic(ctx, p, seed); err != nil {
				return err
			}
			if err := demoDynamic(p); err != nil {
				return err
			}

			return a.demoConditionalMI(ctx, p, seed)
		},
	}
	cmd.Flags().Int64("seed", 0, "Seed for the random tables (default: configured seed)")

	return cmd
}

// tableSpec names a table to allocate and randomize.
type tableSpec struct {
	name    string
	list    axis.List
	extents []int
}

// randomTables allocates and randomizes specs concurrently. Table i draws
// from stream first+i of seed, so the result does not depend on scheduling.
func (a *app) randomTables(ctx context.Context, seed int64, first uint64, specs []tableSpec) ([]*table.Table, error) {
	out := make([]*table.Table, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, s := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := table.New(s.list, s.extents...)
			if err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
			if err = initialize.Random(t, initialize.Derive(seed, first+uint64(i))); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
			out[i] = t
			a.log.Debug("random table", zap.String("name", s.name), zap.Stringer("axes", t.List()))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// printer writes demo output and keeps the first failure.
type printer struct {
	w   io.Writer
	eps float64
	err error
}

func (p *printer) section(title string) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, "\n== %s ==\n", title)
	}
}

// check records err and passes t through.
func (p *printer) check(t *table.Table, err error) *table.Table {
	if p.err == nil && err != nil {
		p.err = err
	}

	return t
}

// dump writes t under name unless an earlier step failed; it returns t so
// results can be chained into later operators.
func (p *printer) dump(name string, t *table.Table) *table.Table {
	if p.err != nil {
		return nil
	}
	if _, p.err = fmt.Fprintf(p.w, "-- %s\n", name); p.err == nil {
		p.err = t.Dump(p.w, table.WithEpsilon(p.eps))
	}

	return t
}

func (p *printer) scalar(name string, v float64, err error) {
	if p.err != nil {
		return
	}
	if err != nil {
		p.err = fmt.Errorf("%s: %w", name, err)
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s = %.6g\n", name, v)
}

// demoStatic exercises the operators on tables over static axes.
func (a *app) demoStatic(ctx context.Context, p *printer, seed int64) error {
	ts, err := a.randomTables(ctx, seed, 0, []tableSpec{
		{name: "p(W|S)", list: axis.Of(demoW).Given(demoS)},
		{name: "p(A|S)", list: axis.Of(demoA).Given(demoS)},
		{name: "p(W|A,S)", list: axis.Of(demoW).Given(demoA, demoS)},
		{name: "p(S)", list: axis.Of(demoS)},
		{name: "p(W)", list: axis.Of(demoW)},
		{name: "q(A)", list: axis.Of(demoA)},
	})
	if err != nil {
		return err
	}
	wGs, aGs, wGas, s, w, qA := ts[0], ts[1], ts[2], ts[3], ts[4], ts[5]

	p.section("Information")
	h, err := info.Entropy(w)
	p.scalar("H(W)", h, err)
	h, err = info.ConditionalEntropy(aGs, s)
	p.scalar("H(A|S)", h, err)
	mi, err := info.MutualInformation(aGs, s)
	p.scalar("I(A;S)", mi, err)

	pA := p.check(algebra.Marginalize(p.check(algebra.Uncondition(aGs, s)), 0))
	mi, err = info.MutualInformationWith(aGs, pA, s)
	p.scalar("I(A;S) from p(A)", mi, err)
	d, err := info.KLDivergence(pA, qA)
	p.scalar("D_KL(p(A)||q(A))", d, err)
	d, err = info.JSDivergence(pA, qA, 0.5)
	p.scalar("D_JS(p(A)||q(A))", d, err)

	p.section("Join")
	p.dump("p(W|S)", wGs)
	p.dump("p(A|S)", aGs)
	waGs := p.dump("p(W,A|S)", p.check(algebra.JoinConditionals(wGs, aGs)))

	p.section("Uncondition")
	ws := p.dump("p(W,S)", p.check(algebra.Uncondition(wGs, s)))

	p.section("Partial uncondition")
	p.dump("p(W|A,S)", wGas)
	p.dump("p(W,A|S)", p.check(algebra.PartialUncondition(wGas, aGs)))

	p.section("Condition")
	back := p.dump("p(W|S) from p(W,S)", p.check(algebra.Conditioned(ws, s)))
	d, err = table.Distance(back, wGs)
	p.scalar("L1 to p(W|S)", d, err)

	p.section("Condition conditionals")
	p.dump("p(W|A,S) from p(W,A|S)", p.check(algebra.ConditionedConditionals(waGs, aGs)))

	p.section("Bayes")
	p.dump("p(S|W)", p.check(algebra.Bayes(wGs, w, s)))

	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, "\n%s", w.Summary())
	}

	return p.err
}

// demoDynamic builds a runtime-sized conditional table and reshapes it.
func demoDynamic(p *printer) error {
	p.section("Runtime-sized table")
	q, err := table.New(axis.Of(demoZ, demoX).Given(demoY), 3, 5, 4)
	if err != nil {
		return err
	}
	for _, c := range []struct {
		v       float64
		z, x, y int
	}{
		{0.75, 1, 1, 2},
		{0.75, 1, 0, 2},
		{3, 2, 0, 1},
		{2, 1, 1, 1},
		{4, 1, 0, 1},
	} {
		if err = q.Set(c.v, demoZ.Is(c.z), demoX.Is(c.x), demoY.Is(c.y)); err != nil {
			return err
		}
	}
	q.Normalize()
	p.dump("q(Z,X|Y)", q)

	if err = q.Reshape(6, 2, 3); err != nil {
		return err
	}
	p.dump("q(Z,X|Y) reshaped to 6 2 | 3", q)
	p.dump("q(Z|Y)", p.check(q.GroupedSum(0, 2)))
	p.dump("q(Z,X|Y=2)", p.check(q.PosteriorSlice(demoY.Is(2))))
	p.dump("q(Y) row sums", p.check(q.SumByConditional()))

	sq, err := q.MapCopy(math.Sqrt)
	if err != nil {
		return err
	}
	err = sq.MapByConditional(func(post *table.Table) (*table.Table, error) {
		out := post.Clone()
		out.Normalize()
		return out, nil
	})
	if err != nil {
		return err
	}
	p.dump("normalized sqrt q(Z,X|Y)", sq)

	return p.err
}

// demoConditionalMI derives every table needed for I(X;Y|Z) from a random
// p(Z|X,Y) and p(X,Y).
func (a *app) demoConditionalMI(ctx context.Context, p *printer, seed int64) error {
	ts, err := a.randomTables(ctx, seed, 6, []tableSpec{
		{name: "p(Z|X,Y)", list: axis.Of(demoZ).Given(demoX, demoY), extents: []int{3, 2, 4}},
		{name: "p(X,Y)", list: axis.Of(demoX, demoY), extents: []int{2, 4}},
	})
	if err != nil {
		return err
	}
	zGxy, xy := ts[0], ts[1]

	p.section("Conditional mutual information")
	zxy, err := algebra.Uncondition(zGxy, xy)
	if err != nil {
		return err
	}
	pX, err := algebra.Marginalize(zxy, 1)
	if err != nil {
		return err
	}
	pY, err := algebra.Marginalize(zxy, 2)
	if err != nil {
		return err
	}
	pZ, err := algebra.Marginalize(zxy, 0)
	if err != nil {
		return err
	}
	xyz, err := algebra.Marginalize(zxy, 1, 2, 0)
	if err != nil {
		return err
	}
	xyGz, err := algebra.Conditioned(xyz, pZ)
	if err != nil {
		return err
	}
	zx, err := algebra.Marginalize(zxy, 0, 1)
	if err != nil {
		return err
	}
	zGx, err := algebra.Conditioned(zx, pX)
	if err != nil {
		return err
	}
	zy, err := algebra.Marginalize(zxy, 0, 2)
	if err != nil {
		return err
	}
	zGy, err := algebra.Conditioned(zy, pY)
	if err != nil {
		return err
	}
	xGz := p.dump("p(X|Z)", p.check(algebra.Bayes(zGx, pZ, pX)))
	yGz := p.dump("p(Y|Z)", p.check(algebra.Bayes(zGy, pZ, pY)))

	mi, err := info.MutualInformation(zGx, pX)
	p.scalar("I(Z;X)", mi, err)
	mi, err = info.MutualInformation(zGy, pY)
	p.scalar("I(Z;Y)", mi, err)
	cmi, err := info.ConditionalMutualInformation(xyGz, xGz, yGz, pZ)
	p.scalar("I(X;Y|Z)", cmi, err)

	return p.err
}
