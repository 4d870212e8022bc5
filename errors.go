/*
 * Copyright © 2026 The qrencode Authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the error taxonomy a caller must be able to tell apart.
type Kind int

const (
	// UnencodableInput means no mode could encode the text (Byte mode
	// failed, or the input was classified as Kanji, which this encoder
	// detects but does not pack).
	UnencodableInput Kind = iota
	// InputTooLarge means the payload does not fit in version 40 at the
	// requested error correction level.
	InputTooLarge
	// InvalidEcl means the caller supplied an ECL outside {L, M, Q, H}.
	InvalidEcl
	// InternalInvariantViolated means an invariant the pipeline itself is
	// responsible for maintaining did not hold at runtime. This is a
	// programmer error in this package, not a user error.
	InternalInvariantViolated
)

func (k Kind) String() string {
	switch k {
	case UnencodableInput:
		return "UnencodableInput"
	case InputTooLarge:
		return "InputTooLarge"
	case InvalidEcl:
		return "InvalidEcl"
	case InternalInvariantViolated:
		return "InternalInvariantViolated"
	default:
		return "Unknown"
	}
}

// Error is the error type every exported function in this package returns.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("qrcode: %s: %s", e.Kind, e.msg)
}

// Unwrap lets callers use errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.err
}

func newErrorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// invariant reports an InternalInvariantViolated error with a stack trace
// attached, since spec classifies these as programmer errors that need
// diagnosis, not user errors that need a friendly message.
func invariant(format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind: InternalInvariantViolated,
		msg:  msg,
		err:  errors.WithStack(errors.New(msg)),
	}
}

func requireInvariant(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return invariant(format, args...)
}
