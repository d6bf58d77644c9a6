// Package batch decodes test cases from a whitespace-separated text stream and
// encodes one answer per case.
//
// Input:
//
//	T
//	n m        (repeated T times)
//	A[0] … A[n-1]
//	B[0] … B[m-1]
//
// Only token order matters; line breaks are treated like any other whitespace.
//
// Output formats:
//
//	FormatText: one integer per line (the minimum cost, or the infeasibility sentinel).
//	FormatJSON: one object per line, {"case":k,"cost":c,"feasible":b}.
package batch
