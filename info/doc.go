// SPDX-License-Identifier: MIT

// Package info reduces probability tables to information-theoretic scalars.
//
// All measures are in bits. Terms whose weight is at most Epsilon contribute
// 0, so 0·log 0 and 0·log(0/q) vanish.
//
//	Entropy                      H(X)     = -Σ p(x) log p(x)
//	ConditionalEntropy           H(A|B)   = -Σ p(a|b) p(b) log p(a|b)
//	MutualInformation            I(A;B)   =  Σ p(a|b) p(b) log(p(a|b)/p(a))
//	ConditionalMutualInformation I(X;Y|Z) =  Σ p(x,y|z) p(z) log(p(x,y|z)/(p(x|z) p(y|z)))
//	KLDivergence                 D(p||q)  =  Σ p(x) log(p(x)/q(x))
//	JSDivergence                 JSπ(p,q) =  H(πp+(1-π)q) - πH(p) - (1-π)H(q)
//
// Operands are validated like the algebra operators: axis identities first
// (table.ErrAxisMismatch), then extents (table.ErrShapeMismatch).
package info
