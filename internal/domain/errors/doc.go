// Package errors defines the typed errors raised by the domain model.
//
// Every refusal carries a Kind; the predefined values are compared with
// errors.Is, which matches on Kind and ignores field and details.
package errors
