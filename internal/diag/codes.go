package diag

import (
	"fmt"
)

// Code is a compact, stable diagnostic identifier. Ranges:
//
//	1000-1999  lexical
//	2000-2999  syntax
//	4000-4999  I/O
//	5000-5999  project / manifest
//	6000-6999  observability
//	8000-8999  foreign-dialect hints
type Code uint16

const (
	// UnknownCode is the fallback for unclassified findings.
	UnknownCode Code = 0

	// Lexical.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexBadCharLiteral           Code = 1004
	LexBadNumber                Code = 1005
	LexUnterminatedBlockComment Code = 1006
	LexUnknownEscape            Code = 1007
	LexTokenLimit               Code = 1008

	// Syntax.
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectNewline      Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectType         Code = 2005
	SynExpectColon        Code = 2006
	SynExpectAssign       Code = 2007
	SynUnclosedParen      Code = 2008
	SynUnclosedBracket    Code = 2009
	SynUnclosedBrace      Code = 2010
	SynBadImport          Code = 2011
	SynDuplicateUsing     Code = 2012
	SynUsingAfterItems    Code = 2013
	SynFnAfterStmts       Code = 2014
	SynBadAssignTarget    Code = 2015
	SynExpectFrom         Code = 2016
	SynForMissingIn       Code = 2017
	SynExpectLBrace       Code = 2018
	SynBadAlias           Code = 2019
	SynUnexpectedTopLevel Code = 2020
	SynExpectSliceBound   Code = 2021

	// I/O.
	IOLoadFileError Code = 4001

	// Project.
	PrjBadManifest     Code = 5001
	PrjMissingManifest Code = 5002

	// Observability.
	ObsTimings Code = 6001

	// Foreign-dialect hints.
	AlnDialectHint Code = 8001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexBadCharLiteral:           "Malformed character literal",
	LexBadNumber:                "Malformed numeric literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnknownEscape:            "Unknown escape sequence",
	LexTokenLimit:               "Token limit exceeded",

	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectNewline:      "Expected end of statement",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectExpression:   "Expected expression",
	SynExpectType:         "Expected type name",
	SynExpectColon:        "Expected ':'",
	SynExpectAssign:       "Expected '='",
	SynUnclosedParen:      "Unclosed '('",
	SynUnclosedBracket:    "Unclosed '['",
	SynUnclosedBrace:      "Unclosed '{'",
	SynBadImport:          "Malformed import",
	SynDuplicateUsing:     "Duplicate using block",
	SynUsingAfterItems:    "Using block must come first",
	SynFnAfterStmts:       "Function after top-level statements",
	SynBadAssignTarget:    "Invalid assignment target",
	SynExpectFrom:         "Expected 'from'",
	SynForMissingIn:       "Expected 'in' in for loop",
	SynExpectLBrace:       "Expected '{'",
	SynBadAlias:           "Import alias must be a single name",
	SynUnexpectedTopLevel: "Unexpected top-level construct",
	SynExpectSliceBound:   "Expected slice bound or ']'",

	IOLoadFileError: "Failed to load file",

	PrjBadManifest:     "Malformed project manifest",
	PrjMissingManifest: "Missing project manifest",

	ObsTimings: "Phase timings",

	AlnDialectHint: "Source resembles another language",
}

// ID renders the stable textual identifier, e.g. "LEX1002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 8000 && ic < 9000:
		return fmt.Sprintf("ALN%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description registered for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether the code belongs to the lexical range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether the code belongs to the syntax range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }
