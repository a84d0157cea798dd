package driver

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"

	"minicc/pkg/compiler"
)

// Stage labels prefixed to errors from the compiler package.
const (
	labelLex    = "Lex Error"
	labelParse  = "Parse Error"
	labelRender = "Render Error"
)

// Driver runs one compilation per call to Run. It holds no state between
// runs besides its writers.
type Driver struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// New returns a Driver writing to stdout and stderr. With verbose set, stage
// progress is logged to stderr; otherwise it is discarded.
func New(stdout, stderr io.Writer, verbose bool) *Driver {
	logOut := io.Discard
	if verbose {
		logOut = stderr
	}
	return &Driver{
		Stdout: stdout,
		Stderr: stderr,
		Logger: log.New(logOut, "ccompiler: ", 0),
	}
}

func (d *Driver) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// section prints a debug banner followed by body.
func (d *Driver) section(title, body string) {
	fmt.Fprintf(d.Stdout, "====== %s ======\n", title)
	fmt.Fprintln(d.Stdout, body)
}

// Run reads opts.Path and runs the front end up to the stage opts selects.
// Errors from the lexer, parser and printer are wrapped with a stage label;
// errors.Cause recovers the original *compiler.LexError or
// *compiler.SyntaxError.
func (d *Driver) Run(opts Options) error {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return err
	}
	stage := opts.Stage()
	d.logf("compiling %s (stage %s)", opts.Path, stage)

	src, err := ReadSource(opts.Path)
	if err != nil {
		return err
	}
	if opts.Debug {
		d.section("INPUT PROGRAM TEXT", src)
	}

	tokens, err := compiler.Lex(src)
	if err != nil {
		return errors.Wrap(err, labelLex)
	}
	d.logf("lexed %d tokens", len(tokens))
	if opts.Debug {
		dump, err := compiler.TokensString(tokens)
		if err != nil {
			return errors.Wrap(err, labelRender)
		}
		d.section("TOKENS", dump)
	}
	if stage == StageLex {
		return nil
	}

	prog, err := compiler.Parse(tokens)
	if err != nil {
		return errors.Wrap(err, labelParse)
	}
	if prog.Function != nil {
		d.logf("parsed function %s", prog.Function.Name.Name())
	} else {
		d.logf("parsed empty program")
	}
	if opts.Debug {
		dump, err := compiler.ASTString(prog)
		if err != nil {
			return errors.Wrap(err, labelRender)
		}
		d.section("AST", dump)
	}
	if stage == StageParse {
		return nil
	}

	d.logf("code generation is not available, stopping after parse")
	return nil
}

// Fail prints err to Stderr the way the command line reports it and returns
// the process exit status. withStack adds the stack trace recorded when the
// error was created or wrapped.
func (d *Driver) Fail(err error, withStack bool) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(d.Stderr, "Fatal Error: %s\n", err)
	if withStack {
		fmt.Fprintf(d.Stderr, "\nStack Trace: ======\n%+v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error from Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
