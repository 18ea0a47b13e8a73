// SPDX-License-Identifier: Apache-2.0

package binmerge

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWeight   = errors.New("bin weight must be a non-negative number")
	ErrUnknownStrategy = errors.New("unknown merge strategy")
)

// MergeError reports which feature failed during [Merger.MergeAll].
type MergeError struct {
	Feature string
	Cause   error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge feature %q: %s", e.Feature, e.Cause.Error())
}

func (e *MergeError) Unwrap() error { return e.Cause }

func IsInvalidWeightErr(err error) bool { return errors.Is(err, ErrInvalidWeight) }

func IsMergeErr(err error) bool {
	var e *MergeError
	return errors.As(err, &e)
}
