package main

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"minicc/pkg/driver"
)

// newRootCmd builds the command line. It is rebuilt per invocation so tests
// never share flag state.
func newRootCmd() *cobra.Command {
	var opts driver.Options

	cmd := &cobra.Command{
		Use:   "ccompiler [flags] <file.c>",
		Short: "Compile a C source file",
		Long: `ccompiler lexes and parses a single C source file.

Stage flags (the first one wins, in this order):
  --lex      stop after lexing
  --parse    stop after parsing
  --codegen  stop after code generation
  -S         emit assembly only

Code generation is not implemented yet, so every run stops after parsing.
`,
		// unknown options before the path are removed by stripUnknownFlags;
		// any after it are skipped here
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return driver.ErrNoSourcePath
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			d := driver.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.Verbose)
			return d.Run(opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Lex, "lex", false, "stop after lexing")
	flags.BoolVar(&opts.Parse, "parse", false, "stop after parsing")
	flags.BoolVar(&opts.Codegen, "codegen", false, "stop after code generation")
	flags.BoolVarP(&opts.AssemblyOnly, "assembly-only", "S", false, "emit assembly without assembling")
	flags.BoolVar(&opts.Debug, "debug", false, "print source, tokens and AST")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log stage progress to stderr")

	return cmd
}

// execute runs the command with args and returns the exit status, printing
// any failure to the command's error writer.
func execute(cmd *cobra.Command, args []string) int {
	cmd.InitDefaultHelpFlag()
	cmd.SetArgs(stripUnknownFlags(cmd.Flags(), args))
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	debug, _ := cmd.Flags().GetBool("debug")
	d := driver.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
	return d.Fail(err, debug)
}

// stripUnknownFlags drops the unknown options that lead args. Every leading
// "-" token is an option; the first other token is the source path, and it
// and everything after it are passed through untouched. Dropping the tokens
// here keeps pflag from taking the path as the value of an unknown flag.
func stripUnknownFlags(flags *pflag.FlagSet, args []string) []string {
	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return append(kept, args[i:]...)
		}
		flag, ok := lookupFlag(flags, arg)
		if !ok {
			continue
		}
		kept = append(kept, arg)
		if takesValue(flag) && !strings.Contains(arg, "=") && i+1 < len(args) {
			i++
			kept = append(kept, args[i])
		}
	}
	return kept
}

// lookupFlag resolves "--name", "--name=value" and grouped shorthands such as
// "-Sv". A group is known only if every letter in it is.
func lookupFlag(flags *pflag.FlagSet, arg string) (*pflag.Flag, bool) {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ = strings.Cut(name, "=")
		flag := flags.Lookup(name)
		return flag, flag != nil
	}
	group, _, _ := strings.Cut(arg[1:], "=")
	var last *pflag.Flag
	for _, c := range group {
		if c >= utf8.RuneSelf {
			return nil, false
		}
		last = flags.ShorthandLookup(string(c))
		if last == nil {
			return nil, false
		}
	}
	return last, last != nil
}

func takesValue(flag *pflag.Flag) bool {
	return flag.NoOptDefVal == ""
}
