package dialect

import (
	"fmt"
	"strings"
)

// AlienHintKind groups foreign-syntax hints by meaning (not by diagnostic
// code). It is presentation-only and must never affect detection logic.
type AlienHintKind uint8

const (
	// AlienHintUnknown represents an unidentified hint kind.
	AlienHintUnknown AlienHintKind = iota

	// AlienHintFnKeyword covers foreign function-definition keywords.
	AlienHintFnKeyword
	// AlienHintShortDecl covers go's `:=` declaration form.
	AlienHintShortDecl
	// AlienHintArrow covers `->` and `=>` arrow spellings.
	AlienHintArrow
	// AlienHintMacroCall covers rust `ident!` macro calls.
	AlienHintMacroCall
	// AlienHintDecorator covers python `@decorator` syntax.
	AlienHintDecorator
)

// Persona defines the tone of a dialect hint message.
type Persona struct {
	Name      string
	Greetings []string
	LeadIns   []string
	CoreHints map[AlienHintKind][]string
	Closings  []string
}

// RenderInput provides data for rendering an alien hint message.
type RenderInput struct {
	Kind     AlienHintKind
	Detected string
	Example  string
}

// RenderAlienHint builds a friendly, persona-based message for a foreign
// syntax hint. The output is deterministic for a given input.
func RenderAlienHint(d Kind, in RenderInput) string {
	p := personaFor(d)
	return p.Render(in)
}

func personaFor(d Kind) Persona {
	switch d {
	case Rust:
		return Persona{
			Name:      "rust",
			Greetings: []string{"Ah, a fellow Rustacean!"},
			LeadIns:   []string{"That looks like Rust %s."},
			CoreHints: map[AlienHintKind][]string{
				AlienHintFnKeyword: {"Functions are declared with `fun`, and types are annotated with `name: type`."},
				AlienHintArrow:     {"The return type goes after the parameter list: `fun f(x: int): int { ... }`."},
				AlienHintMacroCall: {"There are no `!` macros here; use a plain call instead."},
			},
			Closings: []string{"Try:"},
		}
	case Go:
		return Persona{
			Name:      "go",
			Greetings: []string{"Oh hey, Gopher."},
			LeadIns:   []string{"I see %s."},
			CoreHints: map[AlienHintKind][]string{
				AlienHintFnKeyword: {"Functions are declared with `fun`, not `func`."},
				AlienHintShortDecl: {"Declare variables with `var x: type = value` instead of `:=`."},
			},
			Closings: []string{"Try:"},
		}
	case TypeScript:
		return Persona{
			Name:    "typescript",
			LeadIns: []string{"TypeScript %s detected."},
			CoreHints: map[AlienHintKind][]string{
				AlienHintFnKeyword: {"Use `fun` rather than `function`; annotations keep the `name: type` order."},
				AlienHintArrow:     {"Arrow functions are out; named `fun` definitions are the only function form."},
			},
			Closings: []string{"Try:"},
		}
	case Python:
		return Persona{
			Name:      "python",
			Greetings: []string{"Pythonista spotted."},
			LeadIns:   []string{"Python %s detected."},
			CoreHints: map[AlienHintKind][]string{
				AlienHintFnKeyword: {"Functions are declared with `fun` and use braces rather than indentation."},
				AlienHintDecorator: {"There are no decorators; wrap the call explicitly."},
			},
			Closings: []string{"Try:"},
		}
	default:
		return Persona{
			Name:    "unknown",
			LeadIns: []string{"Foreign-language syntax detected."},
		}
	}
}

// Render produces the final hint message string.
func (p *Persona) Render(in RenderInput) string {
	lines := make([]string, 0, 6)

	if greeting := pick(p.Greetings, int(in.Kind)); greeting != "" {
		lines = append(lines, greeting)
	}

	leadIn := formatTemplate(pick(p.LeadIns, int(in.Kind)), in.Detected)
	if leadIn != "" {
		lines = append(lines, leadIn)
	}

	core := strings.TrimSpace(pick(p.CoreHints[in.Kind], int(in.Kind)))
	if core != "" {
		lines = append(lines, core)
	}

	example := strings.TrimSpace(in.Example)
	if example != "" {
		if closing := pick(p.Closings, int(in.Kind)); closing != "" {
			lines = append(lines, closing)
		}
		lines = append(lines, "```sp", example, "```")
	}

	return strings.Join(lines, "\n")
}

func pick(options []string, seed int) string {
	if len(options) == 0 {
		return ""
	}
	if seed < 0 {
		seed = -seed
	}
	return strings.TrimSpace(options[seed%len(options)])
}

func formatTemplate(tmpl, detected string) string {
	tmpl = strings.TrimSpace(tmpl)
	if tmpl == "" {
		return ""
	}
	if strings.Contains(tmpl, "%s") {
		if detected == "" {
			detected = "this"
		}
		return fmt.Sprintf(tmpl, detected)
	}
	return tmpl
}
