// Package quotaflow solves batches of balanced assignment problems with
// min-cost max-flow.
//
// Given n values A and m divisors B, every value is sent to exactly one
// divisor so that each divisor receives ⌊n/m⌋ or ⌈n/m⌉ values, and the sum of
// round-up gaps (B[i] − A[j] mod B[i]) mod B[i] is minimal.
//
// Under the hood the work is split across small packages, leaf first:
//
//	pq/         generic binary heap with a caller-supplied ordering
//	network/    edge-arena flow network with paired reverse arcs
//	dijkstra/   shortest paths on reduced costs (Johnson potentials)
//	flow/       successive-shortest-path min-cost flow, optional Bellman-Ford seeding
//	assign/     the reduction: S → elements → categories → (T | overflow U → T)
//	batch/      whitespace-tokenised batch reader, text/JSON answer writers
//	config/     flag and environment resolution for the CLI
//
// Network shape for n elements and m categories:
//
//	        cap 1          cap 1, cost c(j,i)        cap q
//	  S ──────────▶ e_j ─────────────────────▶ b_i ─────────▶ T
//	                                            │               ▲
//	                                      cap 1 └──▶  U  ───────┘ cap r
//
// The command-line front end lives in cmd/quotaflow:
//
//	quotaflow [--format text|json] [--potentials zero|bellman-ford] [input-file]
package quotaflow
