// Package calc evaluates quantity arithmetic on textual operands and keeps
// named registers in a domain.RegisterStore.
//
// The service is generic over the scalar type; callers that only deal in
// strings see it through domain.Calculator.
package calc
