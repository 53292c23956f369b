// Package diag carries structural diagnostics (lexical and syntactic errors,
// rule-engine faults) produced while analyzing a C source file. Diagnostics
// are collected, never thrown: every phase keeps going on bad input and the
// caller decides how to render what was gathered.
//
// Diagnostics are deliberately distinct from vulnerability findings; the
// report layer surfaces both but never mixes them.
package diag
