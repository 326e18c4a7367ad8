// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports the decoder's error contract.
//
// Every decode failure is reported as an *Error carrying the failure kind
// and the absolute byte offset at the point of detection, measured against
// the original buffer regardless of how deeply nested the failing window is.
package errors

import (
	"fmt"
)

// Kind classifies a decode failure.
type Kind uint8

const (
	OutOfBounds Kind = iota + 1
	UnexpectedEnd
	InvalidPreamble
	SectionOverrun
	IntegerTooLong
	IntegerOverflow
	InvalidOpcode
	InvalidEncoding
)

var kindStrings = [...]string{
	OutOfBounds:     "out of bounds",
	UnexpectedEnd:   "unexpected end of input",
	InvalidPreamble: "invalid module preamble",
	SectionOverrun:  "section size exceeds remaining input",
	IntegerTooLong:  "integer encoding is too long",
	IntegerOverflow: "integer value overflows target width",
	InvalidOpcode:   "invalid opcode",
	InvalidEncoding: "invalid encoding",
}

func (k Kind) String() string {
	if int(k) < len(kindStrings) && kindStrings[k] != "" {
		return kindStrings[k]
	}
	return fmt.Sprintf("<error kind %d>", uint8(k))
}

// Error describes a failure to decode a module.
type Error struct {
	Kind   Kind
	Offset int64

	text  string
	cause error
}

// New creates an Error detected at the given absolute offset.
func New(kind Kind, offset int64, text string) *Error {
	return &Error{Kind: kind, Offset: offset, text: text}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(kind Kind, offset int64, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, text: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error caused by another error.
func Wrap(cause error, kind Kind, offset int64, text string) *Error {
	return &Error{Kind: kind, Offset: offset, text: text, cause: cause}
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.text != "" {
		s += ": " + e.text
	}
	return fmt.Sprintf("offset 0x%x: %s", e.Offset, s)
}

// ModuleError indicates that the error is caused by unsupported or malformed
// input, as opposed to an environmental failure.
func (e *Error) ModuleError() string { return e.Error() }

func (e *Error) Unwrap() error { return e.cause }

// IsKind tells if err or an error it wraps is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e := AsError(err)
	return e != nil && e.Kind == kind
}

// AsError returns the *Error in err's chain, or nil.
func AsError(err error) *Error {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}
