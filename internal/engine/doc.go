// Package engine assembles 28-day skincare plans. It wires the step
// classifier, protocol table, allowance gate, compatibility filter, titration
// scheduler, and fallback resolver into one synchronous generation pipeline:
// one normalized profile in, one Plan28 out.
//
// The engine holds no persistent state between invocations. All registries it
// reads are immutable after construction, so concurrent generations for
// different users need no coordination. Generation is deterministic for a
// fixed profile and catalog snapshot: re-invocation after a transient catalog
// failure is always safe.
package engine
