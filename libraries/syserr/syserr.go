// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package syserr holds the single fault kind reported by the vocabulary engine. Every rejected precondition,
// violated invariant, and impossible internal state is an ErrSystem; callers treat the operation that returned
// it as not having happened.
package syserr

import (
	"fmt"

	"gopkg.in/src-d/go-errors.v1"
)

// ErrSystem is the system/integrity fault.
var ErrSystem = errors.NewKind("system error: %s")

// New returns an ErrSystem carrying the formatted diagnostic.
func New(format string, args ...interface{}) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	return ErrSystem.New(msg)
}

// Is reports whether err is an ErrSystem, directly or as the cause of a wrapping Error of another kind.
func Is(err error) bool {
	return ErrSystem.Is(err)
}
