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

// UnTyped accepts any value.
type UnTyped struct {
	argBase
}

var _ FormalArgument = (*UnTyped)(nil)

func NewUnTyped(name string) (*UnTyped, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &UnTyped{b}, nil
}

func (a *UnTyped) Kind() Kind {
	return UnTypedKind
}

func (a *UnTyped) Equivalent(other FormalArgument) bool {
	o, ok := other.(*UnTyped)
	return ok && o != nil && o.name == a.name
}

func (a *UnTyped) Copy(preserveID, preserveOwner bool) FormalArgument {
	return &UnTyped{a.copyBase(preserveID, preserveOwner)}
}

func (a *UnTyped) DBString() string {
	return a.dbString("UnTypedFormalArg")
}

// TextString holds free text. It is only legal as the single argument of a TEXT column.
type TextString struct {
	argBase
}

var _ FormalArgument = (*TextString)(nil)

func NewTextString(name string) (*TextString, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &TextString{b}, nil
}

func (a *TextString) Kind() Kind {
	return TextStringKind
}

func (a *TextString) Equivalent(other FormalArgument) bool {
	o, ok := other.(*TextString)
	return ok && o != nil && o.name == a.name
}

func (a *TextString) Copy(preserveID, preserveOwner bool) FormalArgument {
	return &TextString{a.copyBase(preserveID, preserveOwner)}
}

func (a *TextString) DBString() string {
	return a.dbString("TextStringFormalArg")
}

// QuoteString holds a quoted string value.
type QuoteString struct {
	argBase
}

var _ FormalArgument = (*QuoteString)(nil)

func NewQuoteString(name string) (*QuoteString, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &QuoteString{b}, nil
}

func (a *QuoteString) Kind() Kind {
	return QuoteStringKind
}

func (a *QuoteString) Equivalent(other FormalArgument) bool {
	o, ok := other.(*QuoteString)
	return ok && o != nil && o.name == a.name
}

func (a *QuoteString) Copy(preserveID, preserveOwner bool) FormalArgument {
	return &QuoteString{a.copyBase(preserveID, preserveOwner)}
}

func (a *QuoteString) DBString() string {
	return a.dbString("QuoteStringFormalArg")
}

// ColPred holds a reference to a column predicate.
type ColPred struct {
	argBase
}

var _ FormalArgument = (*ColPred)(nil)

func NewColPred(name string) (*ColPred, error) {
	b, err := newArgBase(name)
	if err != nil {
		return nil, err
	}

	return &ColPred{b}, nil
}

func (a *ColPred) Kind() Kind {
	return ColPredKind
}

func (a *ColPred) Equivalent(other FormalArgument) bool {
	o, ok := other.(*ColPred)
	return ok && o != nil && o.name == a.name
}

func (a *ColPred) Copy(preserveID, preserveOwner bool) FormalArgument {
	return &ColPred{a.copyBase(preserveID, preserveOwner)}
}

func (a *ColPred) DBString() string {
	return a.dbString("ColPredFormalArg")
}
