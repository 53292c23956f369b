// Package token defines the lexical vocabulary of the supported C subset:
// token kinds, the token structure with source positions, and keyword lookup.
package token
