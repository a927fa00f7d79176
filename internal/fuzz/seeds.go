package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var inlineSeeds = []string{
	"",
	"\n",
	"x = 1\n",
	"fun main(): int {\n    return 0\n}\n",
	"using {\n    sqrt from math\n}\n",
	"a, b from math.trig\n",
	"var total: int = 1 + 2 * 3 ** -4\n",
	"m[1:3] = y\n",
	"cond ? left : right\n",
	"7 \\ 2\n",
	"x = \\\n    1 + 2\n",
	"# just a comment\n/* and a block */\n",
	"\"unterminated",
	"'x",
	"fun f(\n",
	"}\n",
	"}}}\n",
	"fun f() {}\n}\n",
	"if x { } else if y { } else { }\n",
	"for v in values { v }\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range inlineSeeds {
		f.Add([]byte(seed))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds feeds every *.sp file under testdata into the corpus.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sp" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
