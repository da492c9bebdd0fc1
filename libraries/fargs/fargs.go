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

// Package fargs defines the formal arguments that make up a vocabulary element's argument lists. The family is
// closed: the only implementations of FormalArgument are the types in this package.
package fargs

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

// Kind is the type tag of a formal argument.
type Kind int

const (
	UnTypedKind Kind = iota + 1
	IntKind
	FloatKind
	NominalKind
	TextStringKind
	QuoteStringKind
	TimeStampKind
	PredKind
	ColPredKind
)

var kindNames = map[Kind]string{
	UnTypedKind:     "UNTYPED",
	IntKind:         "INTEGER",
	FloatKind:       "FLOAT",
	NominalKind:     "NOMINAL",
	TextStringKind:  "TEXT",
	QuoteStringKind: "QUOTE_STRING",
	TimeStampKind:   "TIME_STAMP",
	PredKind:        "PREDICATE",
	ColPredKind:     "COLUMN_PREDICATE",
}

var kindsByName = map[string]Kind{
	"untyped":      UnTypedKind,
	"int":          IntKind,
	"integer":      IntKind,
	"float":        FloatKind,
	"nominal":      NominalKind,
	"text":         TextStringKind,
	"quote_string": QuoteStringKind,
	"quote":        QuoteStringKind,
	"time_stamp":   TimeStampKind,
	"timestamp":    TimeStampKind,
	"predicate":    PredKind,
	"pred":         PredKind,
	"colpred":      ColPredKind,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a case-insensitive kind name such as "int" or "nominal" to its Kind.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}

	return 0, syserr.New("unknown formal argument kind '%s'", s)
}

const argNameRegexStr = `^<[^\s<>()|,;:"'\\]+>$`

var argNameRegex = regexp.MustCompile(argNameRegexStr)

// IsValidArgName returns true if name is a bracketed formal argument name such as "<a>" or "<onset>".
func IsValidArgName(name string) bool {
	return argNameRegex.MatchString(name)
}

// FormalArgument is one typed slot in a vocabulary element's argument list.
type FormalArgument interface {
	index.Element

	Kind() Kind
	Name() string
	SetName(name string) error

	// VocabElementID is the id of the owning vocabulary element, or index.InvalidID before the owner is indexed.
	VocabElementID() index.ID
	SetVocabElementID(id index.ID)

	// Equivalent compares shape: kind, name and kind parameters. Ids and owners are ignored.
	Equivalent(other FormalArgument) bool

	// Copy returns a deep copy. The id and the owning element id are carried over only when asked for.
	Copy(preserveID, preserveOwner bool) FormalArgument

	String() string
	DBString() string

	base() *argBase
}

type argBase struct {
	index.Base
	name string
	veID index.ID
}

func newArgBase(name string) (argBase, error) {
	if !IsValidArgName(name) {
		return argBase{}, syserr.New("'%s' is not a valid formal argument name", name)
	}

	return argBase{name: name}, nil
}

func (a *argBase) base() *argBase {
	return a
}

func (a *argBase) Name() string {
	return a.name
}

func (a *argBase) SetName(name string) error {
	if !IsValidArgName(name) {
		return syserr.New("'%s' is not a valid formal argument name", name)
	}

	a.name = name
	return nil
}

func (a *argBase) VocabElementID() index.ID {
	return a.veID
}

func (a *argBase) SetVocabElementID(id index.ID) {
	a.veID = id
}

func (a *argBase) String() string {
	return a.name
}

func (a *argBase) copyBase(preserveID, preserveOwner bool) argBase {
	cp := *a
	if !preserveID {
		cp.Base = index.Base{}
	}

	if !preserveOwner {
		cp.veID = index.InvalidID
	}

	return cp
}

func (a *argBase) dbString(typeName string, extra ...string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("(%s (id %d) (name %s) (veID %d)", typeName, a.ID(), a.name, a.veID))

	for _, e := range extra {
		sb.WriteString(" ")
		sb.WriteString(e)
	}

	sb.WriteString(")")
	return sb.String()
}

// New constructs an unconstrained formal argument of the given kind.
func New(kind Kind, name string) (FormalArgument, error) {
	switch kind {
	case UnTypedKind:
		return NewUnTyped(name)
	case IntKind:
		return NewInt(name)
	case FloatKind:
		return NewFloat(name)
	case NominalKind:
		return NewNominal(name)
	case TextStringKind:
		return NewTextString(name)
	case QuoteStringKind:
		return NewQuoteString(name)
	case TimeStampKind:
		return NewTimeStamp(name)
	case PredKind:
		return NewPred(name)
	case ColPredKind:
		return NewColPred(name)
	}

	return nil, syserr.New("unknown formal argument kind %v", kind)
}

// NamesUnique reports whether no two arguments in the list share a name.
func NamesUnique(args []FormalArgument) bool {
	seen := make(map[string]struct{}, len(args))
	for _, arg := range args {
		if _, ok := seen[arg.Name()]; ok {
			return false
		}

		seen[arg.Name()] = struct{}{}
	}

	return true
}

// IsNil reports whether arg is nil or a typed nil pointer.
func IsNil(arg FormalArgument) bool {
	if arg == nil {
		return true
	}

	v := reflect.ValueOf(arg)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
