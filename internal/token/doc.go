// Package token defines the closed set of lexical token kinds, the keyword
// table, and the Token value the lexer produces and the parser consumes.
package token
