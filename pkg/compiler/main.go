// Package compiler provides the front end of a C-subset compiler: a lexer
// that turns source text into tokens and a recursive-descent parser that
// builds an AST from them.
//
// Pipeline: C source → Lex → Parse → *Program
//
// There is no code generator yet; the grammar recognises a single
// `int name(void) { return <constant>; }` function.
package compiler
