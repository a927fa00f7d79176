// Package token defines the lexical vocabulary of the language.
// Invariants:
//   - Token.Text is the raw source slice of the token; Token.Span matches
//     it exactly.
//   - Newline is a real token (the statement terminator); runs of blank
//     lines fold into one Newline, with the extra newlines kept as trivia.
//   - Comments ('#' and '/* */') and line continuations never appear in
//     the token stream; they ride as leading Trivia on the next token.
//   - Compound assignment spellings ('+=', '**=', '\=', ...) are single
//     tokens, never an operator token followed by '='.
//   - Dotted names are NOT fused: 'math.sqrt' lexes as Ident Dot Ident
//     and the parser assembles the path.
//   - Type names (int, float, string, ...) are ordinary identifiers;
//     nothing downstream of the lexer treats them specially here.
package token
