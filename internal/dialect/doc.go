// Package dialect provides lightweight detection for foreign-language
// signals (Rust/Go/TypeScript/Python-ish spellings) so the driver can
// emit friendly hint diagnostics for code pasted from another language.
//
// Evidence collection is non-invasive: it never changes lexing or
// parsing behavior, and hint diagnostics are always optional.
package dialect
