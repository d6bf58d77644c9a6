// Package assign reduces the quota-constrained rounding assignment problem to
// a minimum-cost flow.
//
// Given element values A[0..n-1] and category divisors B[0..m-1], every
// element must go to exactly one category. Assigning value a to divisor b
// costs the amount needed to round a up to a multiple of b:
//
//	RoundUpCost(a, b) = (b - a mod b) mod b
//
// Each category takes q = n / m elements, plus one extra slot that only
// r = n mod m categories may use. The network has N = n + m + 3 nodes:
//
//	S (0) → element j (1..n)          cap 1, cost 0
//	element j → category i (n+1..n+m) cap 1, cost RoundUpCost(A[j], B[i])
//	category i → T (n+m+2)            cap q, cost 0
//	category i → U (n+m+1)            cap 1, cost 0
//	U → T                             cap r, cost 0
//
// Exactly n units must reach T. Since m·q + r = n, every category→T arc and
// the U→T arc end up saturated, so each category receives q or q+1 elements
// and exactly r receive q+1.
package assign
