// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"errors"
	"fmt"
)

var (
	ErrBracket   = errors.New("interval must start with ( or [ and end with ) or ]")
	ErrNumber    = errors.New("edge or point is not a number")
	ErrEdgeOrder = errors.New("left edge exceeds right edge")
	ErrSyntax    = errors.New("malformed value string")

	ErrUnsupportedOperand = errors.New("operand is not a scalar, interval, point set or sequence of these")
	ErrNestingTooDeep     = errors.New("operand nesting exceeds maximum depth")

	ErrOverlap       = errors.New("intervals overlap")
	ErrEmptyInterval = errors.New("empty interval has no order")
	ErrEmptyGroup    = errors.New("nothing to concatenate")
	ErrCutOrder      = errors.New("cut points must be strictly ascending")
)

// FormatError reports malformed string input to one of the Parse
// functions. No partial result accompanies it.
type FormatError struct {
	Cause   error
	Input   string
	Message string
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("parse %q: %s", e.Input, e.Cause.Error())
	if e.Message != "" {
		s = s + ": " + e.Message
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Cause }

// UnsupportedOperandError reports an operand that cannot be classified
// as a scalar, an interval, a point set or a sequence of those.
type UnsupportedOperandError struct {
	Cause error
	Type  string
}

func (e *UnsupportedOperandError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: %s", e.Cause.Error(), e.Type)
	}
	return e.Cause.Error()
}

func (e *UnsupportedOperandError) Unwrap() error { return e.Cause }

// PreconditionError reports a call whose documented precondition does
// not hold, such as ordering two overlapping intervals.
type PreconditionError struct {
	Cause   error
	Message string
}

func (e *PreconditionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Cause.Error(), e.Message)
	}
	return e.Cause.Error()
}

func (e *PreconditionError) Unwrap() error { return e.Cause }

func IsBracketErr(err error) bool   { return isFormatErr(err, ErrBracket) }
func IsNumberErr(err error) bool    { return isFormatErr(err, ErrNumber) }
func IsEdgeOrderErr(err error) bool { return isFormatErr(err, ErrEdgeOrder) }
func IsSyntaxErr(err error) bool    { return isFormatErr(err, ErrSyntax) }

// IsFormatErr reports whether err is, or wraps, a *FormatError.
func IsFormatErr(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}

func isFormatErr(err, target error) bool {
	var e *FormatError
	if errors.As(err, &e) {
		return errors.Is(e.Cause, target)
	}
	return false
}

func IsUnsupportedOperandErr(err error) bool {
	var e *UnsupportedOperandError
	return errors.As(err, &e)
}

func IsNestingTooDeepErr(err error) bool {
	var e *UnsupportedOperandError
	if errors.As(err, &e) {
		return errors.Is(e.Cause, ErrNestingTooDeep)
	}
	return false
}

func IsPreconditionErr(err error) bool {
	var e *PreconditionError
	return errors.As(err, &e)
}

func IsOverlapErr(err error) bool       { return isPreconditionErr(err, ErrOverlap) }
func IsEmptyIntervalErr(err error) bool { return isPreconditionErr(err, ErrEmptyInterval) }
func IsEmptyGroupErr(err error) bool    { return isPreconditionErr(err, ErrEmptyGroup) }
func IsCutOrderErr(err error) bool      { return isPreconditionErr(err, ErrCutOrder) }

func isPreconditionErr(err, target error) bool {
	var e *PreconditionError
	if errors.As(err, &e) {
		return errors.Is(e.Cause, target)
	}
	return false
}

func formatErr(input string, cause error, format string, args ...any) error {
	return &FormatError{
		Cause:   cause,
		Input:   input,
		Message: fmt.Sprintf(format, args...),
	}
}

func unsupported(v any) error {
	return &UnsupportedOperandError{
		Cause: ErrUnsupportedOperand,
		Type:  fmt.Sprintf("%T", v),
	}
}
