// Command ccompiler is the command-line front end of the C compiler.
//
//	ccompiler [--lex | --parse | --codegen | -S] [--debug] [--verbose] <file.c>
package main

import "os"

func main() {
	os.Exit(execute(newRootCmd(), os.Args[1:]))
}
