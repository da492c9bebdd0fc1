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

package vocab

import (
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

// VocabElement is a vocabulary entry: a named, typed schema definition with an ordered list of formal arguments.
// The only implementations are *MatrixVocabElement and *PredicateVocabElement.
type VocabElement interface {
	index.Element

	// DBID is the id of the database the element was created for.
	DBID() uuid.UUID

	Name() string
	SetName(name string) error

	// System elements are built in. Once set the flag cannot be cleared and the argument lists are frozen.
	System() bool
	SetSystem()

	VarLen() bool
	SetVarLen(varLen bool) error

	NumFormalArgs() int
	// FormalArg returns a copy of the nth argument that keeps its id and owner.
	FormalArg(n int) (fargs.FormalArgument, error)

	AppendFormalArg(arg fargs.FormalArgument) error
	InsertFormalArg(arg fargs.FormalArgument, n int) error
	DeleteFormalArg(n int) error
	ReplaceFormalArg(arg fargs.FormalArgument, n int) error

	// IsWellFormed checks whether the element could be added to, or could replace its entry in, vl. Malformed
	// states that can only come from a bug are returned as errors.
	IsWellFormed(vl *VocabList) (bool, error)

	String() string
	DBString() string

	base() *vocabElement
	argLists() [][]fargs.FormalArgument
	propagateID()
	copyVE() VocabElement
}

type vocabElement struct {
	index.Base
	dbID      uuid.UUID
	name      string
	system    bool
	varLen    bool
	fArgs     []fargs.FormalArgument
	listeners *ElementListeners
}

func newVocabElement(dbID uuid.UUID, name string, validName func(string) bool) (vocabElement, error) {
	if dbID == uuid.Nil {
		return vocabElement{}, syserr.New("vocab element '%s' created without a database", name)
	}

	if !validName(name) {
		return vocabElement{}, syserr.New("'%s' is not a valid vocab element name", name)
	}

	return vocabElement{dbID: dbID, name: name}, nil
}

func (ve *vocabElement) base() *vocabElement {
	return ve
}

func (ve *vocabElement) DBID() uuid.UUID {
	return ve.dbID
}

func (ve *vocabElement) Name() string {
	return ve.name
}

func (ve *vocabElement) System() bool {
	return ve.system
}

func (ve *vocabElement) SetSystem() {
	ve.system = true
}

func (ve *vocabElement) VarLen() bool {
	return ve.varLen
}

func (ve *vocabElement) SetVarLen(varLen bool) error {
	if ve.system {
		return syserr.New("attempt to modify system vocab element '%s'", ve.name)
	}

	ve.varLen = varLen
	return nil
}

func (ve *vocabElement) NumFormalArgs() int {
	return len(ve.fArgs)
}

func (ve *vocabElement) FormalArg(n int) (fargs.FormalArgument, error) {
	if n < 0 || n >= len(ve.fArgs) {
		return nil, syserr.New("formal argument index %d out of range for '%s' (%d args)", n, ve.name, len(ve.fArgs))
	}

	return ve.fArgs[n].Copy(true, true), nil
}

func (ve *vocabElement) setName(name string, validName func(string) bool) error {
	if ve.system {
		return syserr.New("attempt to rename system vocab element '%s'", ve.name)
	}

	if !validName(name) {
		return syserr.New("'%s' is not a valid vocab element name", name)
	}

	ve.name = name
	return nil
}

func (ve *vocabElement) fArgNameIsUnique(name string) bool {
	for _, arg := range ve.fArgs {
		if arg.Name() == name {
			return false
		}
	}

	return true
}

func (ve *vocabElement) checkArgMutation(arg fargs.FormalArgument) error {
	if ve.system {
		return syserr.New("attempt to modify the argument list of system vocab element '%s'", ve.name)
	}

	if fargs.IsNil(arg) {
		return syserr.New("nil formal argument supplied to '%s'", ve.name)
	}

	return nil
}

func (ve *vocabElement) appendFormalArg(arg fargs.FormalArgument) error {
	return ve.insertFormalArg(arg, len(ve.fArgs))
}

func (ve *vocabElement) insertFormalArg(arg fargs.FormalArgument, n int) error {
	if err := ve.checkArgMutation(arg); err != nil {
		return err
	}

	if n < 0 || n > len(ve.fArgs) {
		return syserr.New("insertion index %d out of range for '%s' (%d args)", n, ve.name, len(ve.fArgs))
	}

	if !ve.fArgNameIsUnique(arg.Name()) {
		return syserr.New("formal argument name '%s' is already in use in '%s'", arg.Name(), ve.name)
	}

	// the element owns its arguments; the caller's value stays detached
	arg = arg.Copy(true, false)
	arg.SetVocabElementID(ve.ID())
	ve.fArgs = append(ve.fArgs, nil)
	copy(ve.fArgs[n+1:], ve.fArgs[n:])
	ve.fArgs[n] = arg

	return nil
}

func (ve *vocabElement) deleteFormalArg(n int) error {
	if ve.system {
		return syserr.New("attempt to modify the argument list of system vocab element '%s'", ve.name)
	}

	if n < 0 || n >= len(ve.fArgs) {
		return syserr.New("deletion index %d out of range for '%s' (%d args)", n, ve.name, len(ve.fArgs))
	}

	ve.fArgs = append(ve.fArgs[:n], ve.fArgs[n+1:]...)
	return nil
}

func (ve *vocabElement) replaceFormalArg(arg fargs.FormalArgument, n int) error {
	if err := ve.checkArgMutation(arg); err != nil {
		return err
	}

	if n < 0 || n >= len(ve.fArgs) {
		return syserr.New("replacement index %d out of range for '%s' (%d args)", n, ve.name, len(ve.fArgs))
	}

	for i, other := range ve.fArgs {
		if i != n && other.Name() == arg.Name() {
			return syserr.New("formal argument name '%s' is already in use in '%s'", arg.Name(), ve.name)
		}
	}

	arg = arg.Copy(true, false)
	arg.SetVocabElementID(ve.ID())
	ve.fArgs[n] = arg
	return nil
}

// propagateID stamps the element's id on the visible arguments.
func (ve *vocabElement) propagateID() {
	for _, arg := range ve.fArgs {
		arg.SetVocabElementID(ve.ID())
	}
}

// copyBase deep copies the element, keeping ids. Listeners are not copied.
func (ve *vocabElement) copyBase() vocabElement {
	cp := vocabElement{
		Base:   ve.Base,
		dbID:   ve.dbID,
		name:   ve.name,
		system: ve.system,
		varLen: ve.varLen,
		fArgs:  copyArgs(ve.fArgs),
	}

	return cp
}

func copyArgs(args []fargs.FormalArgument) []fargs.FormalArgument {
	if args == nil {
		return nil
	}

	cp := make([]fargs.FormalArgument, len(args))
	for i, arg := range args {
		cp[i] = arg.Copy(true, true)
	}

	return cp
}

func argNames(args []fargs.FormalArgument) string {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = arg.Name()
	}

	return strings.Join(names, ", ")
}

func argDBStrings(args []fargs.FormalArgument) string {
	strs := make([]string, len(args))
	for i, arg := range args {
		strs[i] = arg.DBString()
	}

	return strings.Join(strs, ", ")
}

func isNilVE(ve VocabElement) bool {
	if ve == nil {
		return true
	}

	v := reflect.ValueOf(ve)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// CopyElement returns a deep copy of ve that keeps every id.
func CopyElement(ve VocabElement) VocabElement {
	if isNilVE(ve) {
		return nil
	}

	return ve.copyVE()
}
