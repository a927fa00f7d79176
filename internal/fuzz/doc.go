// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser). They guard against panics, hangs, and
// malformed spans on arbitrary inputs; they never assert on specific
// diagnostics.
package fuzztests
