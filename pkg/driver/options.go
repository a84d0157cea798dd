// Package driver runs the compiler front end over a source file: it reads
// the file, runs the stages selected by Options, prints debug sections and
// labels failures for the command line.
package driver

import "github.com/pkg/errors"

// ErrNoSourcePath is returned when no positional argument names a file.
var ErrNoSourcePath = errors.New("expected positional argument with path to file")

// Stage is the last compilation stage a run performs.
type Stage int

const (
	StageAll      Stage = iota // everything available
	StageLex                   // --lex
	StageParse                 // --parse
	StageCodegen               // --codegen
	StageAssembly              // -S
)

var stageNames = [...]string{
	StageAll:      "all",
	StageLex:      "lex",
	StageParse:    "parse",
	StageCodegen:  "codegen",
	StageAssembly: "assembly",
}

func (s Stage) String() string {
	if int(s) >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Options is the structured record the command line produces.
type Options struct {
	Lex          bool // stop after lexing
	Parse        bool // stop after parsing
	Codegen      bool // stop after code generation
	AssemblyOnly bool // emit assembly, do not assemble
	Debug        bool // print source, tokens and AST sections
	Verbose      bool // log stage progress to stderr
	Path         string
}

// Normalize applies flag precedence: Lex overrides Parse, which overrides
// Codegen, which overrides AssemblyOnly.
func (o Options) Normalize() Options {
	if o.Lex {
		o.Parse = false
	}
	if o.Lex || o.Parse {
		o.Codegen = false
	}
	if o.Lex || o.Parse || o.Codegen {
		o.AssemblyOnly = false
	}
	return o
}

// Stage reports the last stage to run after precedence is applied.
func (o Options) Stage() Stage {
	o = o.Normalize()
	switch {
	case o.Lex:
		return StageLex
	case o.Parse:
		return StageParse
	case o.Codegen:
		return StageCodegen
	case o.AssemblyOnly:
		return StageAssembly
	default:
		return StageAll
	}
}

// Validate checks that a source path was given.
func (o Options) Validate() error {
	if o.Path == "" {
		return ErrNoSourcePath
	}
	return nil
}
