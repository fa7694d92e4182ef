// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package uierr defines the error kinds reported while loading and building
// interface documents. Every failure carries a sentinel that callers match with
// errors.Is, and an *Error with the context needed to fix the source document.
package uierr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind sentinels. One per failure class.
var (
	// ErrSyntax is a tokenizer-level XML violation.
	ErrSyntax = errors.New("markup syntax error")
	// ErrMalformed is a structurally invalid document: illegal nesting,
	// unknown tags or attributes, missing required attributes.
	ErrMalformed = errors.New("malformed markup")
	// ErrUnknownClass means a class name did not resolve to a registered class.
	ErrUnknownClass = errors.New("unknown class")
	// ErrInvalidClassForContext means a class cannot play the role its nesting requires.
	ErrInvalidClassForContext = errors.New("invalid class for context")
	// ErrDuplicateID means a symbolic id was declared more than once in one interface.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnresolvableReference means a ref names an id no object declares.
	ErrUnresolvableReference = errors.New("unresolvable reference")
	// ErrNotFound means no interface with the requested id is registered.
	ErrNotFound = errors.New("interface not found")
	// ErrConstruction means a live object could not be constructed or attached.
	ErrConstruction = errors.New("construction failure")
	// ErrDuplicateInterface means the interface id is already registered.
	ErrDuplicateInterface = errors.New("duplicate interface")
)

// Detail sentinels. Each one also matches ErrMalformed.
var (
	ErrDuplicateLayout    = errors.New("duplicate layout")
	ErrMalformedProperty  = errors.New("malformed property")
	ErrMissingInterfaceID = errors.New("missing interface id")
)

// Error is the concrete error returned by the loader and the builder.
type Error struct {
	Kind     error
	Detail   error
	Message  string
	Document string
	Line     int
	Column   int
	ID       string
	Class    string
	Count    int
	Cause    error
}

// Error formats the kind, the message and whatever location is known.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Document != "" {
		sb.WriteString(e.Document)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d:%d", e.Line, e.Column)
		}
		sb.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d, column %d: ", e.Line, e.Column)
	}

	label := e.Kind
	if e.Detail != nil {
		label = e.Detail
	}
	if label != nil {
		sb.WriteString(label.Error())
	}
	if e.Message != "" {
		if label != nil {
			sb.WriteString(": ")
		}
		sb.WriteString(e.Message)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Is matches both the kind and the detail sentinel.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return target == e.Kind || (e.Detail != nil && target == e.Detail)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error of the given kind.
func New(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Malformed creates an ErrMalformed error at a source position.
func Malformed(line, column int, format string, args ...any) *Error {
	return &Error{Kind: ErrMalformed, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// MalformedDetail creates an ErrMalformed error refined by a detail sentinel.
func MalformedDetail(detail error, line, column int, format string, args ...any) *Error {
	e := Malformed(line, column, format, args...)
	e.Detail = detail
	return e
}

// Construction creates an ErrConstruction error naming the originating class.
func Construction(class, id string, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    ErrConstruction,
		Class:   class,
		ID:      id,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// WithDocument sets the document name on err when it is an *Error without one.
func WithDocument(err error, document string) error {
	var e *Error
	if errors.As(err, &e) && e.Document == "" {
		e.Document = document
	}
	return err
}
