// Package domain defines the core business types for the plan engine.
//
// Types in this package are pure value objects with no behavior beyond
// validation and pure lookups. They are the shared language between the
// classifier, protocol selector, assembler, and the catalog/profile boundaries.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - JSON tags are allowed (they're metadata, not behavior)
//   - Pure functions on the types are allowed (StepTypeOf, validation)
//   - Constants and enums belong here
package domain
