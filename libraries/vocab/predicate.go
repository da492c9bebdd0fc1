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

// PredicateVocabElement is a vocabulary entry describing a predicate. Its arguments may be of any kind other than
// text or column predicate.
type PredicateVocabElement struct {
	vocabElement
}

var _ VocabElement = (*PredicateVocabElement)(nil)

func NewPredicateVocabElement(dbID uuid.UUID, name string) (*PredicateVocabElement, error) {
	base, err := newVocabElement(dbID, name, IsValidPredicateName)
	if err != nil {
		return nil, err
	}

	return &PredicateVocabElement{base}, nil
}

func (pve *PredicateVocabElement) SetName(name string) error {
	return pve.setName(name, IsValidPredicateName)
}

func (pve *PredicateVocabElement) checkKind(arg fargs.FormalArgument) error {
	if !predArgAllowed(arg.Kind()) {
		return syserr.New("%s argument %s is not allowed in predicate '%s'", arg.Kind(), arg.Name(), pve.name)
	}

	return nil
}

func (pve *PredicateVocabElement) AppendFormalArg(arg fargs.FormalArgument) error {
	return pve.InsertFormalArg(arg, len(pve.fArgs))
}

func (pve *PredicateVocabElement) InsertFormalArg(arg fargs.FormalArgument, n int) error {
	if err := pve.checkArgMutation(arg); err != nil {
		return err
	}

	if err := pve.checkKind(arg); err != nil {
		return err
	}

	return pve.insertFormalArg(arg, n)
}

func (pve *PredicateVocabElement) DeleteFormalArg(n int) error {
	return pve.deleteFormalArg(n)
}

func (pve *PredicateVocabElement) ReplaceFormalArg(arg fargs.FormalArgument, n int) error {
	if err := pve.checkArgMutation(arg); err != nil {
		return err
	}

	if err := pve.checkKind(arg); err != nil {
		return err
	}

	if n >= 0 && n < len(pve.fArgs) {
		old := pve.fArgs[n]
		if old.ID() != index.InvalidID && old.ID() == arg.ID() && old.Kind() != arg.Kind() {
			return syserr.New("argument %d of '%s' keeps id %d but changes type from %s to %s",
				n, pve.name, old.ID(), old.Kind(), arg.Kind())
		}
	}

	return pve.replaceFormalArg(arg, n)
}

func (pve *PredicateVocabElement) IsWellFormed(vl *VocabList) (bool, error) {
	if vl == nil {
		return false, syserr.New("nil vocab list supplied to IsWellFormed for '%s'", pve.name)
	}

	if pve.name == "" || !IsValidPredicateName(pve.name) {
		return false, nil
	}

	if ok, err := vl.registeredConsistently(pve); err != nil || !ok {
		return false, err
	}

	if len(pve.fArgs) == 0 {
		return false, nil
	}

	if !fargs.NamesUnique(pve.fArgs) {
		return false, syserr.New("predicate '%s' has duplicate formal argument names", pve.name)
	}

	for _, arg := range pve.fArgs {
		if err := pve.checkKind(arg); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (pve *PredicateVocabElement) argLists() [][]fargs.FormalArgument {
	return [][]fargs.FormalArgument{pve.fArgs}
}

// Copy returns a deep copy that keeps every id.
func (pve *PredicateVocabElement) Copy() *PredicateVocabElement {
	return &PredicateVocabElement{pve.copyBase()}
}

func (pve *PredicateVocabElement) copyVE() VocabElement {
	return pve.Copy()
}

func (pve *PredicateVocabElement) String() string {
	return fmt.Sprintf("%s(%s)", pve.name, argNames(pve.fArgs))
}

func (pve *PredicateVocabElement) DBString() string {
	return fmt.Sprintf("(PredicateVocabElement (id %d) (name %s) (system %t) (varLen %t) (fArgList (%s)))",
		pve.ID(), pve.name, pve.system, pve.varLen, argDBStrings(pve.fArgs))
}
