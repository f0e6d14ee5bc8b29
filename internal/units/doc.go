// Package units implements the symbolic unit-expression engine.
//
// A unit string such as "m2*s" or "kg*m/s^2" is parsed into an Expression: an
// ordered collection of Terms, each pairing a named Atom with an integer
// exponent. Expressions combine under multiplication and division by adding
// or subtracting exponents of matching atoms, and compare equal regardless of
// term order.
//
// # Grammar
//
//	expr = term { ("*" | "/") term }
//	term = [digits] name [digits] | name "^" ["-"] digits
//
// A term carries at most one exponent: a single digit run before, inside or
// after the name, or a "^" suffix. A second digit run in the same term
// ("m2s3") is ErrDuplicateExponent. Every other character except "*", "/"
// and "^" is part of the atom name. The operator before a term decides its
// sign.
//
// # Notes
//
// Atoms with different names are unrelated: "km" and "m" never convert into
// each other. Parse keeps terms exactly as written, so "m/m" parses to
// {m:1, m:-1}; combining merges repeated atoms, and terms whose exponent
// reaches zero are kept, so "m/m" combined is {m:0} and not the empty
// expression.
//
// All values are immutable and safe for concurrent reads.
package units
