// Package model defines the typed record shapes returned by the Union
// Pacific customer API and the JSON mapping rules that build them.
//
// Every shape is a pure data aggregate. Required fields are validated
// during decoding; optional fields are pointers (or nil slices) whose
// absence is not an error. JSON fields beyond a shape's declared set are
// ignored so new API attributes do not break older clients.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MappingError reports a JSON payload that does not satisfy a record
// shape: a required field is absent, or a value has the wrong JSON kind.
// Mapping is all-or-nothing per record; a MappingError means no partially
// built record was produced.
type MappingError struct {
	Shape string
	Field string
	Err   error // nil for a missing required field
}

func (e *MappingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("mapping %s: required field %q missing", e.Shape, e.Field)
	}
	if e.Field != "" {
		return fmt.Sprintf("mapping %s: field %q: %v", e.Shape, e.Field, e.Err)
	}
	return fmt.Sprintf("mapping %s: %v", e.Shape, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// Decode maps a single JSON object onto the record shape T.
func Decode[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, wrapMapping(shapeName[T](), err)
	}
	return &v, nil
}

// DecodeList maps a JSON array onto an ordered slice of T, preserving
// input order.
func DecodeList[T any](data []byte) ([]T, error) {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, wrapMapping(shapeName[T](), err)
	}
	return vs, nil
}

func shapeName[T any]() string {
	var v T
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "model.")
}

// unmarshalShape decodes data into the pointer-typed aux struct for the
// named shape, translating json kind errors into MappingErrors. Errors
// from nested shapes pass through unchanged so the innermost shape is the
// one reported.
func unmarshalShape(shape string, data []byte, aux any) error {
	err := json.Unmarshal(data, aux)
	if err == nil {
		return nil
	}
	var mapErr *MappingError
	if errors.As(err, &mapErr) {
		return mapErr
	}
	return wrapMapping(shape, err)
}

func wrapMapping(shape string, err error) error {
	var mapErr *MappingError
	if errors.As(err, &mapErr) {
		return mapErr
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &MappingError{Shape: shape, Field: typeErr.Field, Err: err}
	}
	return &MappingError{Shape: shape, Err: err}
}

func missingField(shape, field string) error {
	return &MappingError{Shape: shape, Field: field}
}
