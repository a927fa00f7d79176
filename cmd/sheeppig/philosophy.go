package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Principle represents a guiding principle of sheeppig.
type Principle struct {
	Title       string
	Subtitle    string
	Explanation string
}

var principles = []Principle{
	{
		Title:    "Annotate once, wonder never.",
		Subtitle: "A declared type is a promise you can read back later.",
		Explanation: `Every sheeppig declaration carries its type. Not because inference is
hard, but because scripts get edited by people who were not there when
the value was born.

Example:
    var retries: int = 3
    var ratio: float = 0.75

A bare "var retries = 3" looks harmless until someone assigns "3" to
it six months later. The annotation is the contract, and the checker
holds both sides to it.`,
	},
	{
		Title:    "Errors are directions, not verdicts.",
		Subtitle: "Tell the writer where to go next.",
		Explanation: `A diagnostic names the problem, points at the exact span, and when it
can, offers the fix. The checker keeps going after the first error so
you see the whole picture in one run, not one complaint at a time.

Example:
    error[SPX2003]: expected expression after '='
      --> scripts/deploy.sp:12:9
    fix: remove the trailing '='

If the tool knows what you probably meant, it should say so.`,
	},
	{
		Title:    "One way to bring names in.",
		Subtitle: "The using block is the whole import story.",
		Explanation: `All imports live in a single using block at the top of the file. What
comes in, what it is called, and where it came from sit in one place.

Example:
    using {
        sqrt from math
        pow as power from math
    }

No mid-file imports, no wildcard dumps, no renaming at the call site.
When you want to know where a name came from, you look at one block.`,
	},
	{
		Title:    "Scripts are programs too.",
		Subtitle: "Top-level statements deserve real tooling.",
		Explanation: `A three-line script and a thousand-line module pass through the same
lexer, the same parser, and the same diagnostics. Statements at the
top level are not a special mode. They are the language.

Example:
    greet("world")

That file is complete, valid, and fully checked. Growing it into
functions later does not change how the tools treat it.`,
	},
	{
		Title:    "Punctuation should mean one thing.",
		Subtitle: "When a symbol is overloaded, the reader pays.",
		Explanation: `Integer division is '\' because '/' already means real division and
silent truncation is a bug factory. Power is '**' because x^2 reads
like XOR to half the world.

Example:
    var half: float = 7 / 2     # 3.5
    var whole: int = 7 \ 2      # 3
    var square: int = n ** 2

A symbol that means two things depending on operand types is a symbol
the reader has to stop and decode.`,
	},
	{
		Title:    "Recover, don't surrender.",
		Subtitle: "One bad line should not hide the next ten.",
		Explanation: `The parser resynchronizes at statement boundaries after an error.
Other files in a directory run are isolated completely, so a broken
scratch file never blocks diagnostics for the rest of the tree.

Breakage is local. Reporting is global.`,
	},
	{
		Title:    "Meet writers where they came from.",
		Subtitle: "A Go file in a .sp suit gets a map, not a lecture.",
		Explanation: `People paste code from other languages. When a file fails to parse and
the token stream smells like Go, Rust, or TypeScript, the checker says
so and shows the local spelling.

Example:
    note: this file looks like go (confidence 90%)
          replace 'x := 1' with 'var x: int = 1'

The hint appears only when parsing actually failed. Valid sheeppig is
never second-guessed for its accent.`,
	},
	{
		Title:    "Fast tools get used.",
		Subtitle: "A checker you hesitate to run is a checker you stop running.",
		Explanation: `Directory runs fan out across cores. Unchanged files replay their
cached diagnostics instead of being re-parsed. Timings are a flag
away when you want to know where the milliseconds went.

Example:
    sheeppig check src/ --disk-cache --timings

Speed is not a luxury feature. It is what keeps the check in the loop
between keystroke and commit.`,
	},
}

var philosophyCmd = &cobra.Command{
	Use:   "philosophy",
	Short: "Display the guiding principles of sheeppig",
	Long: `Display the principles that guide sheeppig's design.

Similar to Python's "Zen of Python", these principles explain
the core values and design decisions behind the language.

Examples:
  sheeppig philosophy               # show all principles
  sheeppig philosophy --explain 3   # explain principle 3 in detail
  sheeppig philosophy -e 3          # same, short form
  sheeppig philosophy --explain-all # show all with explanations`,
	Args: cobra.NoArgs,
	RunE: runPhilosophy,
}

func init() {
	philosophyCmd.Flags().IntP("explain", "e", 0, "explain principle N in detail")
	philosophyCmd.Flags().Bool("explain-all", false, "show all principles with explanations")
}

func runPhilosophy(cmd *cobra.Command, _ []string) error {
	explain, err := cmd.Flags().GetInt("explain")
	if err != nil {
		return fmt.Errorf("failed to get explain flag: %w", err)
	}

	explainAll, err := cmd.Flags().GetBool("explain-all")
	if err != nil {
		return fmt.Errorf("failed to get explain-all flag: %w", err)
	}

	if explain > 0 {
		return printExplanation(explain)
	}

	if explainAll {
		return printAllExplanations()
	}

	return printPhilosophy()
}

func printPhilosophy() error {
	fmt.Println()
	fmt.Println("The Philosophy of sheeppig")
	fmt.Println(strings.Repeat("=", 26))
	fmt.Println()

	for i, p := range principles {
		fmt.Printf("%2d. %s\n", i+1, p.Title)
		fmt.Printf("    (%s)\n", p.Subtitle)
		fmt.Println()
	}

	fmt.Println("Use --explain N to learn more about a specific principle.")
	return nil
}

func printExplanation(n int) error {
	if n < 1 || n > len(principles) {
		return fmt.Errorf("principle number must be between 1 and %d, got %d", len(principles), n)
	}

	p := principles[n-1]

	fmt.Println()
	fmt.Printf("Principle %d: %s\n", n, p.Title)
	fmt.Printf("(%s)\n", p.Subtitle)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println()
	fmt.Println(p.Explanation)
	fmt.Println()

	return nil
}

func printAllExplanations() error {
	fmt.Println()
	fmt.Println("The Philosophy of sheeppig, the complete guide")
	fmt.Println(strings.Repeat("=", 46))

	for i, p := range principles {
		fmt.Println()
		fmt.Printf("Principle %d: %s\n", i+1, p.Title)
		fmt.Printf("(%s)\n", p.Subtitle)
		fmt.Println(strings.Repeat("-", 60))
		fmt.Println()
		fmt.Println(p.Explanation)
	}

	fmt.Println()
	return nil
}
