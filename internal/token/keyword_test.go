package token_test

import (
	"testing"

	"sheeppig/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Kind
		ok    bool
	}{
		{"using", token.KwUsing, true},
		{"as", token.KwAs, true},
		{"from", token.KwFrom, true},
		{"fun", token.KwFun, true},
		{"return", token.KwReturn, true},
		{"var", token.KwVar, true},
		{"if", token.KwIf, true},
		{"else", token.KwElse, true},
		{"for", token.KwFor, true},
		{"in", token.KwIn, true},
		{"while", token.KwWhile, true},
		{"true", token.BoolLit, true},
		{"false", token.BoolLit, true},
		{"None", token.NoneLit, true},

		// Case sensitivity: only the exact spelling is reserved.
		{"If", 0, false},
		{"none", 0, false},
		{"Fun", 0, false},
		{"function", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := token.LookupKeyword(tt.ident)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v",
				tt.ident, got, ok, tt.want, tt.ok)
		}
	}
}
