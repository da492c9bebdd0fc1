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
	"regexp"
	"sort"
	"strings"

	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

var nominalRegex = regexp.MustCompile(`^[^\s()<>|,;:"'\\]+( [^\s()<>|,;:"'\\]+)*$`)

// IsValidNominal returns true if s can be used as a nominal value.
func IsValidNominal(s string) bool {
	return nominalRegex.MatchString(s)
}

// Nominal is a nominal (categorical) argument. When subRange is set only approved values are accepted.
type Nominal struct {
	argBase
	subRange bool
	approved map[string]struct{}
}

var _ FormalArgument = (*Nominal)(nil)

func NewNominal(name string) (*Nominal, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &Nominal{argBase: b, approved: make(map[string]struct{})}, nil
}

func (a *Nominal) Kind() Kind {
	return NominalKind
}

func (a *Nominal) SubRange() bool {
	return a.subRange
}

// SetSubRange turns the approved-value restriction on or off. Turning it off discards the approved set.
func (a *Nominal) SetSubRange(subRange bool) {
	a.subRange = subRange
	if !subRange {
		a.approved = make(map[string]struct{})
	}
}

// AddApproved adds a value to the approved set. The restriction must be on.
func (a *Nominal) AddApproved(val string) error {
	if !a.subRange {
		return syserr.New("%s is not sub-ranged", a.name)
	}

	if !IsValidNominal(val) {
		return syserr.New("'%s' is not a valid nominal", val)
	}

	if _, ok := a.approved[val]; ok {
		return syserr.New("'%s' is already approved for %s", val, a.name)
	}

	a.approved[val] = struct{}{}
	return nil
}

func (a *Nominal) RemoveApproved(val string) error {
	if _, ok := a.approved[val]; !ok {
		return syserr.New("'%s' is not approved for %s", val, a.name)
	}

	delete(a.approved, val)
	return nil
}

// Approved returns the approved values in sorted order.
func (a *Nominal) Approved() []string {
	vals := make([]string, 0, len(a.approved))
	for v := range a.approved {
		vals = append(vals, v)
	}

	sort.Strings(vals)
	return vals
}

// Approves reports whether val is acceptable.
func (a *Nominal) Approves(val string) bool {
	if !IsValidNominal(val) {
		return false
	}

	if !a.subRange {
		return true
	}

	_, ok := a.approved[val]
	return ok
}

func (a *Nominal) Equivalent(other FormalArgument) bool {
	o, ok := other.(*Nominal)
	if !ok || o == nil || o.name != a.name || o.subRange != a.subRange || len(o.approved) != len(a.approved) {
		return false
	}

	for v := range a.approved {
		if _, ok := o.approved[v]; !ok {
			return false
		}
	}

	return true
}

func (a *Nominal) Copy(preserveID, preserveOwner bool) FormalArgument {
	approved := make(map[string]struct{}, len(a.approved))
	for v := range a.approved {
		approved[v] = struct{}{}
	}

	return &Nominal{argBase: a.copyBase(preserveID, preserveOwner), subRange: a.subRange, approved: approved}
}

func (a *Nominal) DBString() string {
	return a.dbString("NominalFormalArg",
		fmt.Sprintf("(subRange %t)", a.subRange),
		fmt.Sprintf("(approvedSet (%s))", strings.Join(a.Approved(), ", ")))
}

// Pred is a predicate argument. When subRange is set only predicates whose vocabulary ids are approved are
// accepted.
type Pred struct {
	argBase
	subRange bool
	approved map[index.ID]struct{}
}

var _ FormalArgument = (*Pred)(nil)

func NewPred(name string) (*Pred, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &Pred{argBase: b, approved: make(map[index.ID]struct{})}, nil
}

func (a *Pred) Kind() Kind {
	return PredKind
}

func (a *Pred) SubRange() bool {
	return a.subRange
}

func (a *Pred) SetSubRange(subRange bool) {
	a.subRange = subRange
	if !subRange {
		a.approved = make(map[index.ID]struct{})
	}
}

// AddApproved adds a predicate vocabulary id to the approved set. The restriction must be on.
func (a *Pred) AddApproved(predID index.ID) error {
	if !a.subRange {
		return syserr.New("%s is not sub-ranged", a.name)
	}

	if predID == index.InvalidID {
		return syserr.New("cannot approve InvalidID for %s", a.name)
	}

	if _, ok := a.approved[predID]; ok {
		return syserr.New("predicate %d is already approved for %s", predID, a.name)
	}

	a.approved[predID] = struct{}{}
	return nil
}

func (a *Pred) RemoveApproved(predID index.ID) error {
	if _, ok := a.approved[predID]; !ok {
		return syserr.New("predicate %d is not approved for %s", predID, a.name)
	}

	delete(a.approved, predID)
	return nil
}

// Approved returns the approved predicate ids in ascending order.
func (a *Pred) Approved() []index.ID {
	ids := make([]index.ID, 0, len(a.approved))
	for id := range a.approved {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (a *Pred) Approves(predID index.ID) bool {
	if predID == index.InvalidID {
		return false
	}

	if !a.subRange {
		return true
	}

	_, ok := a.approved[predID]
	return ok
}

func (a *Pred) Equivalent(other FormalArgument) bool {
	o, ok := other.(*Pred)
	if !ok || o == nil || o.name != a.name || o.subRange != a.subRange || len(o.approved) != len(a.approved) {
		return false
	}

	for id := range a.approved {
		if _, ok := o.approved[id]; !ok {
			return false
		}
	}

	return true
}

func (a *Pred) Copy(preserveID, preserveOwner bool) FormalArgument {
	approved := make(map[index.ID]struct{}, len(a.approved))
	for id := range a.approved {
		approved[id] = struct{}{}
	}

	return &Pred{argBase: a.copyBase(preserveID, preserveOwner), subRange: a.subRange, approved: approved}
}

func (a *Pred) DBString() string {
	ids := a.Approved()
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = fmt.Sprintf("%d", id)
	}

	return a.dbString("PredFormalArg",
		fmt.Sprintf("(subRange %t)", a.subRange),
		fmt.Sprintf("(approvedSet (%s))", strings.Join(strs, ", ")))
}
