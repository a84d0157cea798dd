package compiler

import (
	"strings"
	"testing"
)

// simpleSource is the smallest complete program the grammar accepts.
const simpleSource = `int main(void) {
	return 2;
}
`

// noisySource buries the same program under comments and layout, and uses
// a constant far wider than any machine integer.
var noisySource = strings.Repeat("/* license header line */\n// another line\n", 200) +
	"int\n/* name */ main ( void )\n{\n\treturn " + strings.Repeat("9", 512) + " ;\n}\n"

// --- Lex benchmarks ---

func BenchmarkLex_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Lex(simpleSource)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLex_Noisy(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Lex(noisySource)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Parse benchmarks ---
// Tokens are pre-computed outside the timed region.

func BenchmarkParse_Simple(b *testing.B) {
	tokens, err := Lex(simpleSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(tokens)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Full pipeline benchmarks (Lex + Parse + ASTString) ---

func BenchmarkPipeline_Noisy(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tokens, err := Lex(noisySource)
		if err != nil {
			b.Fatal(err)
		}
		prog, err := Parse(tokens)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := ASTString(prog); err != nil {
			b.Fatal(err)
		}
	}
}
