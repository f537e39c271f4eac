// SPDX-License-Identifier: MIT
package table_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlprob/axis"
	"github.com/katalvlaran/lvlprob/table"
)

func ExampleTable_Dump() {
	X := axis.Dynamic("X")
	Z := axis.Dynamic("Z")
	p, _ := table.New(axis.Of(X).Given(Z), 2, 2)
	_ = p.Set(0.25, X.Is(0), Z.Is(0))
	_ = p.Set(0.75, X.Is(1), Z.Is(0))
	_ = p.Set(1, X.Is(1), Z.Is(1))

	_ = p.Dump(os.Stdout)
	sums, _ := p.SumByConditional()
	fmt.Println(sums.List(), p.RowSums())
	// Output:
	// Conditional Distribution
	// X | Z
	// 2 | 2
	// 0 | 0 : 0.25
	// 1 | 0 : 0.75
	// 1 | 1 : 1
	// Z [1 1]
}

func ExampleTable_Marginalize() {
	X := axis.Dynamic("X")
	Y := axis.Dynamic("Y")
	p, _ := table.New(axis.Of(X, Y), 2, 2)
	_ = p.Set(0.5, X.Is(0), Y.Is(0))
	_ = p.Set(0.25, X.Is(0), Y.Is(1))
	_ = p.Set(0.25, X.Is(1), Y.Is(1))

	pY, _ := p.Marginalize(1)
	fmt.Println(pY.List(), pY.AtOrZero(Y.Is(0)), pY.AtOrZero(Y.Is(1)))
	// Output:
	// Y 0.5 0.5
}
