// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

import (
	"fmt"
	"strings"
)

var _ error = (*ErrPropertyMustNotBeEmpty)(nil)
var _ error = (*ErrPropertyLength)(nil)
var _ error = (*ErrPropertyNotInAllowedValues)(nil)

// ErrPropertyMustNotBeEmpty is an error type that indicates a required property is empty.
type ErrPropertyMustNotBeEmpty struct {
	PropertyName string
}

// Error implements the error interface for type ErrPropertyMustNotBeEmpty.
func (e *ErrPropertyMustNotBeEmpty) Error() string {
	return fmt.Sprintf("property '%s' must not be empty", e.PropertyName)
}

// NewErrPropertyMustNotBeEmpty creates a new ErrPropertyMustNotBeEmpty error.
func NewErrPropertyMustNotBeEmpty(propertyName string) error {
	return &ErrPropertyMustNotBeEmpty{PropertyName: propertyName}
}

// ErrPropertyLength is an error type that indicates a property has an invalid length.
type ErrPropertyLength struct {
	PropertyName string
	MinLength    int
	MaxLength    int
	ActualLength int
}

// Error implements the error interface for type ErrPropertyLength.
func (e *ErrPropertyLength) Error() string {
	return fmt.Sprintf("property '%s' length must be between %d and %d, but is %d",
		e.PropertyName, e.MinLength, e.MaxLength, e.ActualLength)
}

// NewErrPropertyLength creates a new ErrPropertyLength error.
func NewErrPropertyLength(propertyName string, minLength, maxLength, actualLength int) error {
	return &ErrPropertyLength{
		PropertyName: propertyName,
		MinLength:    minLength,
		MaxLength:    maxLength,
		ActualLength: actualLength,
	}
}

// ErrPropertyNotInAllowedValues is an error type that indicates a property value
// is not a member of the allowed set.
type ErrPropertyNotInAllowedValues struct {
	PropertyName  string
	Value         string
	AllowedValues []string
}

// Error implements the error interface for type ErrPropertyNotInAllowedValues.
func (e *ErrPropertyNotInAllowedValues) Error() string {
	return fmt.Sprintf("property '%s' value '%s' must be one of: %s",
		e.PropertyName, e.Value, strings.Join(e.AllowedValues, ", "))
}

// NewErrPropertyNotInAllowedValues creates a new ErrPropertyNotInAllowedValues error.
func NewErrPropertyNotInAllowedValues(propertyName, value string, allowedValues ...string) error {
	return &ErrPropertyNotInAllowedValues{
		PropertyName:  propertyName,
		Value:         value,
		AllowedValues: allowedValues,
	}
}
