// Package quantity pairs a scalar value with a unit expression and enforces
// unit consistency in arithmetic.
//
// Addition and subtraction require both operands to carry equal unit
// expressions and fail with *UnitMismatchError otherwise. Multiplication and
// division always succeed and combine the expressions. The *Scalar variants
// operate on the value alone and leave units untouched.
//
// Quantity is generic over any scalar type with Add, Sub, Mul and Quo
// methods. Float wraps float64; cosmossdk.io/math.LegacyDec works as is.
// Scalar arithmetic, including division by zero, is the scalar's business.
package quantity
