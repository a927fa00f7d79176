// Package diag defines the diagnostic model shared by the lexer, the
// parser, and the driver layer.
//
// Diagnostic is the central record: severity, a stable numeric code, a
// message, a primary source span, optional notes, and optional structured
// fix suggestions. Producers emit through a Reporter so they stay decoupled
// from storage; Bag is the standard append-only collector behind it.
//
// Invariants:
//   - Diagnostics are value data. Nothing in this package reads files or
//     formats output; rendering lives in internal/diagfmt and applying
//     fixes lives in internal/fix.
//   - A parse never aborts on a diagnostic. Every phase returns a
//     best-effort result alongside whatever landed in the bag.
//   - Appends are ordered by discovery position; Bag.Sort is an explicit,
//     caller-driven step, never implicit.
package diag
