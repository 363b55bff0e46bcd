// Package ingredients provides active-ingredient extraction from free-text
// product metadata, the pairwise conflict matrix, ingredient redundancy
// classes, and the optimal time-of-day heuristic.
//
// All tables in this package are static, read-only registries built once at
// process start. Lookups are safe for concurrent use; nothing mutates after
// construction.
package ingredients
