// Package steps holds the canonical step-category registry: per-category
// eligibility rules, the raw-string product classifier, and the safe
// substitute table used when a category cannot be sourced directly.
//
// Everything here is static, read-only data plus pure functions over it.
package steps
