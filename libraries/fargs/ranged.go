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

package fargs

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dolthub/vocabdb/libraries/syserr"
)

// Int is an integer argument, optionally restricted to [min, max].
type Int struct {
	argBase
	subRange bool
	min      int64
	max      int64
}

var _ FormalArgument = (*Int)(nil)

func NewInt(name string) (*Int, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &Int{argBase: b, min: math.MinInt64, max: math.MaxInt64}, nil
}

func (a *Int) Kind() Kind {
	return IntKind
}

// SetRange restricts the argument to [min, max].
func (a *Int) SetRange(min, max int64) error {
	if min >= max {
		return syserr.New("integer range for %s is empty: [%d, %d]", a.name, min, max)
	}

	a.subRange, a.min, a.max = true, min, max
	return nil
}

// ClearRange removes any range restriction.
func (a *Int) ClearRange() {
	a.subRange, a.min, a.max = false, math.MinInt64, math.MaxInt64
}

func (a *Int) SubRange() bool {
	return a.subRange
}

func (a *Int) Range() (min, max int64) {
	return a.min, a.max
}

// InRange reports whether v is an acceptable value.
func (a *Int) InRange(v int64) bool {
	return v >= a.min && v <= a.max
}

func (a *Int) Equivalent(other FormalArgument) bool {
	o, ok := other.(*Int)
	return ok && o != nil && o.name == a.name && o.subRange == a.subRange && o.min == a.min && o.max == a.max
}

func (a *Int) Copy(preserveID, preserveOwner bool) FormalArgument {
	cp := *a
	cp.argBase = a.copyBase(preserveID, preserveOwner)
	return &cp
}

func (a *Int) DBString() string {
	return a.dbString("IntFormalArg",
		fmt.Sprintf("(subRange %t)", a.subRange),
		fmt.Sprintf("(minVal %d)", a.min),
		fmt.Sprintf("(maxVal %d)", a.max))
}

// Float is a floating point argument, optionally restricted to [min, max].
type Float struct {
	argBase
	subRange bool
	min      float64
	max      float64
}

var _ FormalArgument = (*Float)(nil)

func NewFloat(name string) (*Float, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &Float{argBase: b, min: -math.MaxFloat64, max: math.MaxFloat64}, nil
}

func (a *Float) Kind() Kind {
	return FloatKind
}

// SetRange restricts the argument to [min, max].
func (a *Float) SetRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || min >= max {
		return syserr.New("float range for %s is empty: [%g, %g]", a.name, min, max)
	}

	a.subRange, a.min, a.max = true, min, max
	return nil
}

func (a *Float) ClearRange() {
	a.subRange, a.min, a.max = false, -math.MaxFloat64, math.MaxFloat64
}

func (a *Float) SubRange() bool {
	return a.subRange
}

func (a *Float) Range() (min, max float64) {
	return a.min, a.max
}

func (a *Float) InRange(v float64) bool {
	return v >= a.min && v <= a.max
}

func (a *Float) Equivalent(other FormalArgument) bool {
	o, ok := other.(*Float)
	return ok && o != nil && o.name == a.name && o.subRange == a.subRange && o.min == a.min && o.max == a.max
}

func (a *Float) Copy(preserveID, preserveOwner bool) FormalArgument {
	cp := *a
	cp.argBase = a.copyBase(preserveID, preserveOwner)
	return &cp
}

func (a *Float) DBString() string {
	return a.dbString("FloatFormalArg",
		fmt.Sprintf("(subRange %t)", a.subRange),
		fmt.Sprintf("(minVal %s)", strconv.FormatFloat(a.min, 'g', -1, 64)),
		fmt.Sprintf("(maxVal %s)", strconv.FormatFloat(a.max, 'g', -1, 64)))
}

// TimeStamp is a time argument measured in ticks, optionally restricted to [min, max].
type TimeStamp struct {
	argBase
	subRange bool
	min      int64
	max      int64
}

var _ FormalArgument = (*TimeStamp)(nil)

func NewTimeStamp(name string) (*TimeStamp, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &TimeStamp{argBase: b, min: 0, max: math.MaxInt64}, nil
}

func (a *TimeStamp) Kind() Kind {
	return TimeStampKind
}

// SetRange restricts the argument to [min, max] ticks. Time stamps are never negative.
func (a *TimeStamp) SetRange(min, max int64) error {
	if min < 0 || min >= max {
		return syserr.New("time stamp range for %s is invalid: [%d, %d]", a.name, min, max)
	}

	a.subRange, a.min, a.max = true, min, max
	return nil
}

func (a *TimeStamp) ClearRange() {
	a.subRange, a.min, a.max = false, 0, math.MaxInt64
}

func (a *TimeStamp) SubRange() bool {
	return a.subRange
}

func (a *TimeStamp) Range() (min, max int64) {
	return a.min, a.max
}

func (a *TimeStamp) InRange(ticks int64) bool {
	return ticks >= a.min && ticks <= a.max
}

func (a *TimeStamp) Equivalent(other FormalArgument) bool {
	o, ok := other.(*TimeStamp)
	return ok && o != nil && o.name == a.name && o.subRange == a.subRange && o.min == a.min && o.max == a.max
}

func (a *TimeStamp) Copy(preserveID, preserveOwner bool) FormalArgument {
	cp := *a
	cp.argBase = a.copyBase(preserveID, preserveOwner)
	return &cp
}

func (a *TimeStamp) DBString() string {
	return a.dbString("TimeStampFormalArg",
		fmt.Sprintf("(subRange %t)", a.subRange),
		fmt.Sprintf("(minVal %d)", a.min),
		fmt.Sprintf("(maxVal %d)", a.max))
}
