// Package validator checks `validate` struct tags with go-playground/validator
// and reports failures keyed by snake_case field name.
package validator
