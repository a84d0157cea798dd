package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

const testdata = "../../pkg/driver/testdata/"

func run(args ...string) (code int, stdout, stderr string) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	code = execute(cmd, args)
	return code, out.String(), errOut.String()
}

func TestNoArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Nothing", []string{}},
		{"Flags Only", []string{"--dummy", "--lex", "--debug"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := run(tt.args...)
			if code == 0 {
				t.Errorf("exit code = 0, want non-zero")
			}
			if !strings.Contains(stderr, "Fatal Error: expected positional argument with path to file") {
				t.Errorf("stderr = %q", stderr)
			}
		})
	}
}

func TestSimpleMain(t *testing.T) {
	for _, flag := range []string{"--lex", "--parse", "--codegen", "-S"} {
		t.Run(flag, func(t *testing.T) {
			code, stdout, stderr := run(flag, testdata+"valid_programs/simple_main.c")
			if code != 0 {
				t.Errorf("exit code = %d, stderr = %q", code, stderr)
			}
			if stdout != "" || stderr != "" {
				t.Errorf("unexpected output: stdout=%q stderr=%q", stdout, stderr)
			}
		})
	}
}

func TestParseDebugPrintsSections(t *testing.T) {
	code, stdout, stderr := run("--parse", "--debug", testdata+"valid_programs/simple_main.c")
	if code != 0 || stderr != "" {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	for _, want := range []string{
		"====== INPUT PROGRAM TEXT ======",
		"====== TOKENS ======\n<type: int> <type: identifier name: main>",
		"====== AST ======\nProgram(\n  FunctionDeclaration(\n",
		"      Constant(2)\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestLexOverridesParse(t *testing.T) {
	code, stdout, _ := run("--parse", "--lex", "--debug", testdata+"valid_programs/simple_main.c")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if strings.Contains(stdout, "====== AST ======") {
		t.Errorf("--lex should win over --parse:\n%s", stdout)
	}
}

func TestInvalidParse(t *testing.T) {
	code, _, stderr := run("--parse", testdata+"invalid_programs/missing_semicolon.c")
	if code == 0 {
		t.Errorf("exit code = 0, want non-zero")
	}
	want := "Fatal Error: Parse Error: line 3, column 1: cannot parse return statement, expected semicolon"
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr, want)
	}
	if strings.Contains(stderr, "Stack Trace") {
		t.Errorf("stack trace printed without --debug")
	}
}

func TestInvalidParseDebugPrintsStack(t *testing.T) {
	_, _, stderr := run("--parse", "--debug", testdata+"invalid_programs/missing_semicolon.c")
	if !strings.Contains(stderr, "Stack Trace") {
		t.Errorf("stderr missing stack trace:\n%s", stderr)
	}
}

func TestLexError(t *testing.T) {
	code, _, stderr := run("--lex", testdata+"invalid_programs/preprocessor.c")
	if code == 0 {
		t.Errorf("exit code = 0, want non-zero")
	}
	if !strings.Contains(stderr, "Fatal Error: Lex Error: line 1, column 1: unrecognizable token") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestMissingFile(t *testing.T) {
	code, _, stderr := run(testdata + "does_not_exist.c")
	if code == 0 {
		t.Errorf("exit code = 0, want non-zero")
	}
	if !strings.Contains(stderr, "file does not exist") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestVerbose(t *testing.T) {
	code, _, stderr := run("-v", testdata+"valid_programs/simple_main.c")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr, "ccompiler: lexed 10 tokens") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestUnknownFlagBeforePath(t *testing.T) {
	code, stdout, stderr := run("--dummy", testdata+"valid_programs/simple_main.c")
	if code != 0 || stdout != "" || stderr != "" {
		t.Fatalf("exit code = %d, stdout = %q, stderr = %q", code, stdout, stderr)
	}

	code, stdout, stderr = run("--dummy", "-x", "--lex", "--debug", testdata+"valid_programs/simple_main.c")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "====== TOKENS ======") || strings.Contains(stdout, "====== AST ======") {
		t.Errorf("known flags lost around unknown ones:\n%s", stdout)
	}
}

func TestFlagsAfterPath(t *testing.T) {
	code, stdout, _ := run(testdata+"valid_programs/simple_main.c", "--lex", "--debug")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "====== TOKENS ======") || strings.Contains(stdout, "====== AST ======") {
		t.Errorf("flags after the path were not applied:\n%s", stdout)
	}
}

func TestStripUnknownFlags(t *testing.T) {
	flags := newRootCmd().Flags()
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"No Flags", []string{"a.c"}, []string{"a.c"}},
		{"Unknown Long", []string{"--dummy", "a.c"}, []string{"a.c"}},
		{"Unknown With Value", []string{"--out=x", "a.c"}, []string{"a.c"}},
		{"Unknown Short", []string{"-x", "-S", "a.c"}, []string{"-S", "a.c"}},
		{"Known Group", []string{"-Sv", "a.c"}, []string{"-Sv", "a.c"}},
		{"Group With Unknown Letter", []string{"-Sx", "a.c"}, []string{"a.c"}},
		{"Non-ASCII Shorthand", []string{"-é", "a.c"}, []string{"a.c"}},
		{"Known Long", []string{"--lex", "--debug=true", "a.c"}, []string{"--lex", "--debug=true", "a.c"}},
		{"After Path Untouched", []string{"a.c", "--dummy", "b"}, []string{"a.c", "--dummy", "b"}},
		{"Terminator", []string{"--dummy", "--", "-a.c"}, []string{"--", "-a.c"}},
		{"Only Unknown", []string{"--dummy", "-q"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripUnknownFlags(flags, tt.args)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("stripUnknownFlags(%q) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}
