package lexer

import "sheeppig/internal/diag"

// BagReporter returns a reporter collecting lexical diagnostics into bag,
// suitable for Options.Reporter.
func BagReporter(bag *diag.Bag) diag.Reporter {
	return diag.BagReporter{Bag: bag}
}
