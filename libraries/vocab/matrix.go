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
	"fmt"

	"github.com/google/uuid"

	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

const (
	OrdArgName    = "<ord>"
	OnsetArgName  = "<onset>"
	OffsetArgName = "<offset>"

	// numCPPrefixArgs is the number of arguments that precede the mirrored visible arguments in the column
	// predicate argument list.
	numCPPrefixArgs = 3
)

// MatrixVocabElement is the vocabulary entry behind a column. Besides the visible argument list it keeps a column
// predicate argument list, which is always <ord>, <onset>, <offset> followed by a copy of each visible argument in
// the same position.
type MatrixVocabElement struct {
	vocabElement
	mType  MatrixType
	cpArgs []fargs.FormalArgument
}

var _ VocabElement = (*MatrixVocabElement)(nil)

// NewMatrixVocabElement creates an untyped matrix element. It has no arguments in either list until its type is
// set.
func NewMatrixVocabElement(dbID uuid.UUID, name string) (*MatrixVocabElement, error) {
	base, err := newVocabElement(dbID, name, IsValidVariableName)
	if err != nil {
		return nil, err
	}

	return &MatrixVocabElement{vocabElement: base, mType: TypeUndefined}, nil
}

func newCPPrefixArgs() ([]fargs.FormalArgument, error) {
	ord, err := fargs.NewInt(OrdArgName)
	if err != nil {
		return nil, err
	}

	onset, err := fargs.NewTimeStamp(OnsetArgName)
	if err != nil {
		return nil, err
	}

	offset, err := fargs.NewTimeStamp(OffsetArgName)
	if err != nil {
		return nil, err
	}

	return []fargs.FormalArgument{ord, onset, offset}, nil
}

func (mve *MatrixVocabElement) Type() MatrixType {
	return mve.mType
}

// SetType sets the element's type and creates the <ord>, <onset>, <offset> column predicate arguments. It can be
// called exactly once.
func (mve *MatrixVocabElement) SetType(t MatrixType) error {
	if mve.mType != TypeUndefined {
		return syserr.New("type of '%s' is already set to %s", mve.name, mve.mType)
	}

	if t <= TypeUndefined || t > TypeMatrix {
		return syserr.New("invalid type %s for '%s'", t, mve.name)
	}

	prefix, err := newCPPrefixArgs()
	if err != nil {
		return err
	}

	for _, arg := range prefix {
		arg.SetVocabElementID(mve.ID())
	}

	mve.mType = t
	mve.cpArgs = prefix
	return nil
}

func (mve *MatrixVocabElement) SetName(name string) error {
	return mve.setName(name, IsValidVariableName)
}

func (mve *MatrixVocabElement) NumCPFormalArgs() int {
	return len(mve.cpArgs)
}

// CPFormalArg returns a copy of the nth column predicate argument that keeps its id and owner.
func (mve *MatrixVocabElement) CPFormalArg(n int) (fargs.FormalArgument, error) {
	if n < 0 || n >= len(mve.cpArgs) {
		return nil, syserr.New("column predicate argument index %d out of range for '%s' (%d args)", n, mve.name, len(mve.cpArgs))
	}

	return mve.cpArgs[n].Copy(true, true), nil
}

func (mve *MatrixVocabElement) cpArgNameIsUnique(name string) bool {
	for _, arg := range mve.cpArgs {
		if arg.Name() == name {
			return false
		}
	}

	return true
}

// checkSlot validates an argument about to be appended or inserted at n.
func (mve *MatrixVocabElement) checkSlot(arg fargs.FormalArgument, n int) error {
	if err := mve.checkArgMutation(arg); err != nil {
		return err
	}

	if mve.mType == TypeUndefined {
		return syserr.New("'%s' has no type; set it before adding arguments", mve.name)
	}

	if mve.mType != TypeMatrix {
		if len(mve.fArgs) > 0 {
			return syserr.New("'%s' is of type %s and already has its single argument", mve.name, mve.mType)
		}

		if n != 0 {
			return syserr.New("'%s' is of type %s; its argument can only be at index 0", mve.name, mve.mType)
		}
	}

	if n < 0 || n > len(mve.fArgs) {
		return syserr.New("insertion index %d out of range for '%s' (%d args)", n, mve.name, len(mve.fArgs))
	}

	if !IsCompatible(mve.mType, arg.Kind()) {
		return syserr.New("%s argument %s is not allowed in '%s' of type %s", arg.Kind(), arg.Name(), mve.name, mve.mType)
	}

	if !mve.cpArgNameIsUnique(arg.Name()) {
		return syserr.New("formal argument name '%s' is already in use in '%s'", arg.Name(), mve.name)
	}

	if len(mve.cpArgs) != len(mve.fArgs)+numCPPrefixArgs {
		return syserr.New("'%s' has %d args but %d column predicate args", mve.name, len(mve.fArgs), len(mve.cpArgs))
	}

	return nil
}

func (mve *MatrixVocabElement) AppendFormalArg(arg fargs.FormalArgument) error {
	return mve.InsertFormalArg(arg, len(mve.fArgs))
}

func (mve *MatrixVocabElement) InsertFormalArg(arg fargs.FormalArgument, n int) error {
	if err := mve.checkSlot(arg, n); err != nil {
		return err
	}

	cp := mve.constructCPArg(arg)
	if err := mve.insertFormalArg(arg, n); err != nil {
		return err
	}

	mve.cpArgs = append(mve.cpArgs, nil)
	copy(mve.cpArgs[n+numCPPrefixArgs+1:], mve.cpArgs[n+numCPPrefixArgs:])
	mve.cpArgs[n+numCPPrefixArgs] = cp

	return nil
}

// DeleteFormalArg removes the nth argument and its column predicate copy. Only matrix typed elements have
// independently deletable arguments.
func (mve *MatrixVocabElement) DeleteFormalArg(n int) error {
	if mve.system {
		return syserr.New("attempt to modify the argument list of system vocab element '%s'", mve.name)
	}

	if mve.mType != TypeMatrix {
		return syserr.New("the argument of '%s' (type %s) cannot be deleted", mve.name, mve.mType)
	}

	if n < 0 || n >= len(mve.fArgs) {
		return syserr.New("deletion index %d out of range for '%s' (%d args)", n, mve.name, len(mve.fArgs))
	}

	if len(mve.cpArgs) != len(mve.fArgs)+numCPPrefixArgs {
		return syserr.New("'%s' has %d args but %d column predicate args", mve.name, len(mve.fArgs), len(mve.cpArgs))
	}

	if mve.cpArgs[n+numCPPrefixArgs].Name() != mve.fArgs[n].Name() {
		return syserr.New("arg %d of '%s' (%s) does not match its column predicate arg (%s)",
			n, mve.name, mve.fArgs[n].Name(), mve.cpArgs[n+numCPPrefixArgs].Name())
	}

	if err := mve.deleteFormalArg(n); err != nil {
		return err
	}

	cpn := n + numCPPrefixArgs
	mve.cpArgs = append(mve.cpArgs[:cpn], mve.cpArgs[cpn+1:]...)

	return nil
}

// ReplaceFormalArg swaps the nth argument, and its column predicate copy, for newArg.
func (mve *MatrixVocabElement) ReplaceFormalArg(newArg fargs.FormalArgument, n int) error {
	if err := mve.checkArgMutation(newArg); err != nil {
		return err
	}

	if mve.mType == TypeUndefined {
		return syserr.New("'%s' has no type", mve.name)
	}

	if n < 0 || n >= len(mve.fArgs) {
		return syserr.New("replacement index %d out of range for '%s' (%d args)", n, mve.name, len(mve.fArgs))
	}

	if len(mve.cpArgs) != len(mve.fArgs)+numCPPrefixArgs {
		return syserr.New("'%s' has %d args but %d column predicate args", mve.name, len(mve.fArgs), len(mve.cpArgs))
	}

	cpn := n + numCPPrefixArgs
	for i, arg := range mve.fArgs {
		if i != n && arg.Name() == newArg.Name() {
			return syserr.New("formal argument name '%s' is already in use in '%s'", newArg.Name(), mve.name)
		}
	}

	for i, arg := range mve.cpArgs {
		if i != cpn && arg.Name() == newArg.Name() {
			return syserr.New("formal argument name '%s' is already in use in '%s'", newArg.Name(), mve.name)
		}
	}

	oldArg := mve.fArgs[n]
	oldCP := mve.cpArgs[cpn]

	if mve.mType == TypeMatrix {
		if !IsCompatible(TypeMatrix, newArg.Kind()) {
			return syserr.New("%s argument %s is not allowed in '%s' of type %s", newArg.Kind(), newArg.Name(), mve.name, mve.mType)
		}
	} else if newArg.Kind() != oldArg.Kind() {
		return syserr.New("'%s' of type %s requires a %s argument, got %s", mve.name, mve.mType, oldArg.Kind(), newArg.Kind())
	}

	sameSlot := oldArg.ID() != index.InvalidID && oldArg.ID() == newArg.ID()
	if sameSlot && oldArg.Kind() != newArg.Kind() {
		return syserr.New("argument %d of '%s' keeps id %d but changes type from %s to %s",
			n, mve.name, oldArg.ID(), oldArg.Kind(), newArg.Kind())
	}

	cp := mve.constructCPArg(newArg)
	if sameSlot && oldCP.ID() != index.InvalidID {
		if err := cp.SetID(oldCP.ID()); err != nil {
			return err
		}
	}

	// all checks are done; swap both lists together
	if err := mve.replaceFormalArg(newArg, n); err != nil {
		return err
	}

	mve.cpArgs[cpn] = cp
	return nil
}

// constructCPArg builds the column predicate copy of a visible argument.
func (mve *MatrixVocabElement) constructCPArg(arg fargs.FormalArgument) fargs.FormalArgument {
	cp := arg.Copy(false, false)
	cp.SetVocabElementID(mve.ID())
	return cp
}

func (mve *MatrixVocabElement) IsWellFormed(vl *VocabList) (bool, error) {
	if vl == nil {
		return false, syserr.New("nil vocab list supplied to IsWellFormed for '%s'", mve.name)
	}

	if mve.name == "" || !IsValidVariableName(mve.name) {
		return false, nil
	}

	if ok, err := vl.registeredConsistently(mve); err != nil || !ok {
		return false, err
	}

	if mve.ID() != index.InvalidID {
		old := vl.entries[mve.ID()].(*MatrixVocabElement)
		if old.mType != mve.mType {
			return false, nil
		}
	}

	if mve.mType == TypeUndefined || len(mve.fArgs) == 0 {
		return false, nil
	}

	if len(mve.cpArgs) != len(mve.fArgs)+numCPPrefixArgs {
		return false, syserr.New("'%s' has %d args but %d column predicate args", mve.name, len(mve.fArgs), len(mve.cpArgs))
	}

	switch mve.mType {
	case TypeMatrix:
		if !fargs.NamesUnique(mve.fArgs) {
			return false, syserr.New("'%s' has duplicate formal argument names", mve.name)
		}

		for _, arg := range mve.fArgs {
			if arg.Kind() == fargs.TextStringKind {
				return false, syserr.New("matrix '%s' contains text argument %s", mve.name, arg.Name())
			}
		}
	default:
		if len(mve.fArgs) != 1 || !IsCompatible(mve.mType, mve.fArgs[0].Kind()) {
			return false, nil
		}
	}

	return true, nil
}

func (mve *MatrixVocabElement) propagateID() {
	mve.vocabElement.propagateID()
	for _, arg := range mve.cpArgs {
		arg.SetVocabElementID(mve.ID())
	}
}

func (mve *MatrixVocabElement) argLists() [][]fargs.FormalArgument {
	return [][]fargs.FormalArgument{mve.fArgs, mve.cpArgs}
}

// Copy returns a deep copy that keeps every id.
func (mve *MatrixVocabElement) Copy() *MatrixVocabElement {
	return &MatrixVocabElement{
		vocabElement: mve.copyBase(),
		mType:        mve.mType,
		cpArgs:       copyArgs(mve.cpArgs),
	}
}

func (mve *MatrixVocabElement) copyVE() VocabElement {
	return mve.Copy()
}

// String returns the display form, e.g. "m(<a>, <b>)".
func (mve *MatrixVocabElement) String() string {
	return fmt.Sprintf("%s(%s)", mve.name, argNames(mve.fArgs))
}

func (mve *MatrixVocabElement) DBString() string {
	return fmt.Sprintf("(MatrixVocabElement (id %d) (name %s) (system %t) (type %s) (varLen %t) (fArgList (%s)) (cpfArgList (%s)))",
		mve.ID(), mve.name, mve.system, mve.mType, mve.varLen, argDBStrings(mve.fArgs), argDBStrings(mve.cpArgs))
}
