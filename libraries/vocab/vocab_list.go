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
	"reflect"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/vocabdb/libraries/events"
	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

// VocabList is the vocabulary of a database. It owns the name map and the id map of its entries and keeps both,
// together with the database's Index, consistent across every mutation.
//
// The list stores its own copy of every entry it is given, and the getters hand out copies. To change an entry,
// get a copy, modify it and pass it to ReplaceVocabElement.
type VocabList struct {
	db        DB
	entries   map[index.ID]VocabElement
	nameMap   map[string]index.ID
	listeners *ListListeners
	log       *logrus.Entry
}

// NewVocabList creates an empty VocabList for db.
func NewVocabList(db DB, log *logrus.Entry) (*VocabList, error) {
	if db == nil || db.Index() == nil {
		return nil, syserr.New("vocab list created without a database")
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	vl := &VocabList{
		db:      db,
		entries: make(map[index.ID]VocabElement),
		nameMap: make(map[string]index.ID),
		log:     log.WithField("component", "vocab"),
	}
	vl.listeners = newListListeners(vl)

	return vl, nil
}

func (vl *VocabList) fault(format string, args ...interface{}) error {
	err := syserr.New(format, args...)
	vl.log.Debug(err.Error())
	return err
}

func (vl *VocabList) idx() *index.Index {
	return vl.db.Index()
}

// AddElement inserts a new entry. ve must belong to this list's database and must not have been indexed yet.
// On success ve and all of its formal arguments carry the ids of the stored copy; later changes to ve do not reach
// the list.
func (vl *VocabList) AddElement(ve VocabElement) (err error) {
	if isNilVE(ve) {
		return vl.fault("attempt to add a nil vocab element")
	}

	if ve.DBID() != vl.db.ID() {
		return vl.fault("vocab element '%s' belongs to database %s, not %s", ve.Name(), ve.DBID(), vl.db.ID())
	}

	if ve.ID() != index.InvalidID {
		return vl.fault("vocab element '%s' already has id %d", ve.Name(), ve.ID())
	}

	if _, ok := vl.nameMap[ve.Name()]; ok {
		return vl.fault("vocab element name '%s' is already in use", ve.Name())
	}

	for _, args := range ve.argLists() {
		for _, arg := range args {
			if fargs.IsNil(arg) {
				return vl.fault("vocab element '%s' has a nil formal argument", ve.Name())
			}

			if arg.ID() != index.InvalidID {
				return vl.fault("formal argument %s of '%s' already has id %d", arg.Name(), ve.Name(), arg.ID())
			}
		}
	}

	cascade, err := vl.db.CascadeStart()
	if err != nil {
		return err
	}
	defer endCascade(cascade, &err)

	stored := ve.copyVE()
	id, err := vl.idx().Add(stored)
	if err != nil {
		return err
	}

	for _, args := range stored.argLists() {
		for _, arg := range args {
			if _, err = vl.idx().Add(arg); err != nil {
				return err
			}
		}
	}

	vl.entries[id] = stored
	vl.nameMap[stored.Name()] = id
	stored.propagateID()
	stored.base().listeners = newElementListeners(vl)
	adoptIDs(ve, stored)

	vl.log.WithField("id", id).Debugf("added %s", ve.Name())
	cascade.Emit(vl.listeners, events.Event{Kind: events.Insertion, ID: id})

	return nil
}

// RemoveVocabElement removes the entry with the given id and all of its formal arguments. Every consistency check
// runs before anything is changed.
func (vl *VocabList) RemoveVocabElement(id index.ID) (err error) {
	if id == index.InvalidID {
		return vl.fault("attempt to remove InvalidID from the vocab list")
	}

	ve, ok := vl.entries[id]
	if !ok {
		return vl.fault("id %d is not in the vocab list", id)
	}

	if e, ok := vl.idx().Get(id); !ok || e != index.Element(ve) {
		return vl.fault("vocab element %d is not correctly indexed", id)
	}

	for _, args := range ve.argLists() {
		for _, arg := range args {
			if e, ok := vl.idx().Get(arg.ID()); !ok || e != index.Element(arg) {
				return vl.fault("formal argument %s (%d) of '%s' is not correctly indexed", arg.Name(), arg.ID(), ve.Name())
			}
		}
	}

	if mapped, ok := vl.nameMap[ve.Name()]; !ok || mapped != id {
		return vl.fault("name '%s' of vocab element %d is not correctly mapped", ve.Name(), id)
	}

	cascade, err := vl.db.CascadeStart()
	if err != nil {
		return err
	}
	defer endCascade(cascade, &err)

	// deletion listeners see the entry before it goes away
	if el := ve.base().listeners; el != nil {
		cascade.Emit(el, events.Event{Kind: events.Deletion, ID: id})
	}
	cascade.Emit(vl.listeners, events.Event{Kind: events.Deletion, ID: id})
	cascade.Flush()

	ve.base().listeners = nil

	if err = vl.idx().Remove(id); err != nil {
		return err
	}

	for _, args := range ve.argLists() {
		for _, arg := range args {
			if err = vl.idx().Remove(arg.ID()); err != nil {
				return err
			}
		}
	}

	delete(vl.entries, id)
	delete(vl.nameMap, ve.Name())

	vl.log.WithField("id", id).Debugf("removed %s", ve.Name())
	return nil
}

// ReplaceVocabElement swaps the entry with ve's id for ve, which must be a modified copy of that entry. Arguments
// of ve that keep an id replace the argument with that id, arguments with InvalidID are added, and old arguments
// whose ids no longer appear are removed. A kept argument id may not change kind; construct a new argument to
// change the kind of a slot. A matrix keeps its type unless the stored entry is still UNDEFINED.
func (vl *VocabList) ReplaceVocabElement(ve VocabElement) (err error) {
	if isNilVE(ve) {
		return vl.fault("attempt to replace with a nil vocab element")
	}

	if ve.DBID() != vl.db.ID() {
		return vl.fault("vocab element '%s' belongs to database %s, not %s", ve.Name(), ve.DBID(), vl.db.ID())
	}

	id := ve.ID()
	if id == index.InvalidID {
		return vl.fault("replacement vocab element '%s' has no id", ve.Name())
	}

	old, ok := vl.entries[id]
	if !ok {
		return vl.fault("id %d is not in the vocab list", id)
	}

	if reflect.TypeOf(old) != reflect.TypeOf(ve) {
		return vl.fault("type mismatch replacing vocab element %d: %T with %T", id, old, ve)
	}

	// a matrix type is set once and never reverts to UNDEFINED
	if oldM, ok := old.(*MatrixVocabElement); ok {
		newM := ve.(*MatrixVocabElement)
		if oldM.mType != newM.mType && (oldM.mType != TypeUndefined || newM.mType == TypeUndefined) {
			return vl.fault("matrix '%s' cannot change type from %s to %s", old.Name(), oldM.mType, newM.mType)
		}
	}

	oldLists, newLists := old.argLists(), ve.argLists()
	if len(oldLists) != len(newLists) {
		return vl.fault("argument list count mismatch replacing vocab element %d", id)
	}

	kept := make(map[index.ID]bool)
	for i, args := range newLists {
		for _, arg := range args {
			if fargs.IsNil(arg) {
				return vl.fault("replacement for '%s' has a nil formal argument", ve.Name())
			}

			if arg.ID() == index.InvalidID {
				continue
			}

			if kept[arg.ID()] {
				return vl.fault("formal argument id %d appears more than once in '%s'", arg.ID(), ve.Name())
			}
			kept[arg.ID()] = true

			var match fargs.FormalArgument
			matches := 0
			for _, oldArg := range oldLists[i] {
				if oldArg.ID() == arg.ID() {
					match = oldArg
					matches++
				}
			}

			switch {
			case matches == 0:
				return vl.fault("formal argument %s of '%s' has id %d, which is not one of its arguments", arg.Name(), ve.Name(), arg.ID())
			case matches > 1:
				return vl.fault("formal argument id %d appears more than once in the entry being replaced", arg.ID())
			case match.Kind() != arg.Kind():
				return vl.fault("formal argument %d of '%s' changes type from %s to %s; use a new argument instead",
					arg.ID(), ve.Name(), match.Kind(), arg.Kind())
			}
		}
	}

	nameChanged := old.Name() != ve.Name()
	if nameChanged {
		if err := vl.checkNewName(ve); err != nil {
			return err
		}
	}

	cascade, err := vl.db.CascadeStart()
	if err != nil {
		return err
	}
	defer endCascade(cascade, &err)

	stored := ve.copyVE()
	for _, args := range stored.argLists() {
		for _, arg := range args {
			if arg.ID() == index.InvalidID {
				_, err = vl.idx().Add(arg)
			} else {
				err = vl.idx().Replace(arg)
			}

			if err != nil {
				return err
			}
		}
	}

	for _, args := range oldLists {
		for _, arg := range args {
			if !kept[arg.ID()] {
				if err = vl.idx().Remove(arg.ID()); err != nil {
					return err
				}
			}
		}
	}

	stored.propagateID()
	stored.base().listeners = old.base().listeners
	old.base().listeners = nil

	if err = vl.idx().Replace(stored); err != nil {
		return err
	}

	vl.entries[id] = stored
	if nameChanged {
		delete(vl.nameMap, old.Name())
		vl.nameMap[stored.Name()] = id
	}
	adoptIDs(ve, stored)

	change := newVEChange(old, stored)
	vl.log.WithField("id", id).Debugf("replaced %s: %s", stored.Name(), change)

	if el := stored.base().listeners; el != nil {
		cascade.Emit(el, events.Event{Kind: events.Change, ID: id, Payload: change})
	}

	return nil
}

// adoptIDs copies the ids assigned to the stored entry back onto the caller's handle, which has the same shape.
func adoptIDs(handle, stored VocabElement) {
	if handle.ID() == index.InvalidID {
		_ = handle.SetID(stored.ID())
	}

	handleLists := handle.argLists()
	for i, args := range stored.argLists() {
		for j, arg := range args {
			if h := handleLists[i][j]; h.ID() == index.InvalidID {
				_ = h.SetID(arg.ID())
			}
		}
	}

	handle.propagateID()
}

func (vl *VocabList) checkNewName(ve VocabElement) error {
	name := ve.Name()
	if name == "" {
		return vl.fault("empty vocab element name")
	}

	if _, ok := vl.nameMap[name]; ok {
		return vl.fault("vocab element name '%s' is already in use", name)
	}

	switch ve.(type) {
	case *PredicateVocabElement:
		if !IsValidPredicateName(name) {
			return vl.fault("'%s' is not a valid predicate name", name)
		}
	default:
		if !IsValidVariableName(name) {
			return vl.fault("'%s' is not a valid column name", name)
		}
	}

	return nil
}

// registeredConsistently checks ve against the list the way IsWellFormed needs: a new entry's name must be free,
// an indexed entry must be present with the same concrete type and, if renamed, a free name.
func (vl *VocabList) registeredConsistently(ve VocabElement) (bool, error) {
	if ve.DBID() != vl.db.ID() {
		return false, nil
	}

	if ve.ID() == index.InvalidID {
		_, taken := vl.nameMap[ve.Name()]
		return !taken, nil
	}

	old, ok := vl.entries[ve.ID()]
	if !ok {
		return false, nil
	}

	if reflect.TypeOf(old) != reflect.TypeOf(ve) {
		return false, nil
	}

	if mapped, ok := vl.nameMap[ve.Name()]; ok && mapped != ve.ID() {
		return false, nil
	}

	return true, nil
}

func (vl *VocabList) lookupID(id index.ID) (VocabElement, error) {
	if id == index.InvalidID {
		return nil, vl.fault("InvalidID supplied to vocab list lookup")
	}

	ve, ok := vl.entries[id]
	if !ok {
		return nil, vl.fault("id %d is not in the vocab list", id)
	}

	return ve, nil
}

func (vl *VocabList) lookupName(name string) (VocabElement, error) {
	if err := vl.checkLookupName(name); err != nil {
		return nil, err
	}

	id, ok := vl.nameMap[name]
	if !ok {
		return nil, vl.fault("'%s' is not in the vocab list", name)
	}

	ve, ok := vl.entries[id]
	if !ok {
		return nil, vl.fault("'%s' is mapped to id %d, which is not in the vocab list", name, id)
	}

	return ve, nil
}

func (vl *VocabList) checkLookupName(name string) error {
	if name == "" {
		return vl.fault("empty name supplied to vocab list lookup")
	}

	if !isValidLookupName(name) {
		return vl.fault("'%s' is not a valid vocab element name", name)
	}

	return nil
}

// GetVocabElement returns a copy of the entry with the given id.
func (vl *VocabList) GetVocabElement(id index.ID) (VocabElement, error) {
	ve, err := vl.lookupID(id)
	if err != nil {
		return nil, err
	}

	return ve.copyVE(), nil
}

// GetVocabElementByName returns a copy of the entry with the given name.
func (vl *VocabList) GetVocabElementByName(name string) (VocabElement, error) {
	ve, err := vl.lookupName(name)
	if err != nil {
		return nil, err
	}

	return ve.copyVE(), nil
}

func (vl *VocabList) asMatrix(ve VocabElement) (*MatrixVocabElement, error) {
	mve, ok := ve.(*MatrixVocabElement)
	if !ok {
		return nil, vl.fault("'%s' is not a matrix vocab element", ve.Name())
	}

	return mve.Copy(), nil
}

func (vl *VocabList) asPredicate(ve VocabElement) (*PredicateVocabElement, error) {
	pve, ok := ve.(*PredicateVocabElement)
	if !ok {
		return nil, vl.fault("'%s' is not a predicate vocab element", ve.Name())
	}

	return pve.Copy(), nil
}

func (vl *VocabList) GetMatrixVocabElement(id index.ID) (*MatrixVocabElement, error) {
	ve, err := vl.lookupID(id)
	if err != nil {
		return nil, err
	}

	return vl.asMatrix(ve)
}

func (vl *VocabList) GetMatrixVocabElementByName(name string) (*MatrixVocabElement, error) {
	ve, err := vl.lookupName(name)
	if err != nil {
		return nil, err
	}

	return vl.asMatrix(ve)
}

func (vl *VocabList) GetPredicateVocabElement(id index.ID) (*PredicateVocabElement, error) {
	ve, err := vl.lookupID(id)
	if err != nil {
		return nil, err
	}

	return vl.asPredicate(ve)
}

func (vl *VocabList) GetPredicateVocabElementByName(name string) (*PredicateVocabElement, error) {
	ve, err := vl.lookupName(name)
	if err != nil {
		return nil, err
	}

	return vl.asPredicate(ve)
}

func (vl *VocabList) find(id index.ID) (VocabElement, error) {
	if id == index.InvalidID {
		return nil, vl.fault("InvalidID supplied to vocab list lookup")
	}

	return vl.entries[id], nil
}

func (vl *VocabList) findByName(name string) (VocabElement, error) {
	if err := vl.checkLookupName(name); err != nil {
		return nil, err
	}

	id, ok := vl.nameMap[name]
	if !ok {
		return nil, nil
	}

	return vl.entries[id], nil
}

// InVocabList reports whether an entry with the given id exists. Only InvalidID is an error.
func (vl *VocabList) InVocabList(id index.ID) (bool, error) {
	ve, err := vl.find(id)
	return ve != nil, err
}

// InVocabListByName reports whether an entry with the given name exists. Only a malformed name is an error.
func (vl *VocabList) InVocabListByName(name string) (bool, error) {
	ve, err := vl.findByName(name)
	return ve != nil, err
}

func (vl *VocabList) MatrixInVocabList(id index.ID) (bool, error) {
	ve, err := vl.find(id)
	_, ok := ve.(*MatrixVocabElement)
	return ok, err
}

func (vl *VocabList) MatrixInVocabListByName(name string) (bool, error) {
	ve, err := vl.findByName(name)
	_, ok := ve.(*MatrixVocabElement)
	return ok, err
}

func (vl *VocabList) PredInVocabList(id index.ID) (bool, error) {
	ve, err := vl.find(id)
	_, ok := ve.(*PredicateVocabElement)
	return ok, err
}

func (vl *VocabList) PredInVocabListByName(name string) (bool, error) {
	ve, err := vl.findByName(name)
	_, ok := ve.(*PredicateVocabElement)
	return ok, err
}

// GetMatrices returns copies of every non-system entry of type MATRIX, ordered by id, or nil if there are none.
func (vl *VocabList) GetMatrices() []*MatrixVocabElement {
	var matrices []*MatrixVocabElement
	for _, id := range vl.IDs() {
		if mve, ok := vl.entries[id].(*MatrixVocabElement); ok && !mve.system && mve.mType == TypeMatrix {
			matrices = append(matrices, mve.Copy())
		}
	}

	return matrices
}

// GetPreds returns copies of every non-system predicate, ordered by id, or nil if there are none.
func (vl *VocabList) GetPreds() []*PredicateVocabElement {
	var preds []*PredicateVocabElement
	for _, id := range vl.IDs() {
		if pve, ok := vl.entries[id].(*PredicateVocabElement); ok && !pve.system {
			preds = append(preds, pve.Copy())
		}
	}

	return preds
}

func (vl *VocabList) RegisterExternalListener(l VocabListListener) error {
	return vl.listeners.external.register(l)
}

func (vl *VocabList) DeregisterExternalListener(l VocabListListener) error {
	return vl.listeners.external.deregister(l)
}

func (vl *VocabList) RegisterInternalListener(l VocabListListener) error {
	return vl.listeners.internal.register(l)
}

func (vl *VocabList) DeregisterInternalListener(l VocabListListener) error {
	return vl.listeners.internal.deregister(l)
}

func (vl *VocabList) elementListeners(id index.ID) (*ElementListeners, error) {
	ve, err := vl.lookupID(id)
	if err != nil {
		return nil, err
	}

	el := ve.base().listeners
	if el == nil {
		return nil, vl.fault("vocab element %d has no listener registry", id)
	}

	return el, nil
}

func (vl *VocabList) RegisterExternalVEListener(id index.ID, l ElementListener) error {
	el, err := vl.elementListeners(id)
	if err != nil {
		return err
	}

	return el.external.register(l)
}

func (vl *VocabList) DeregisterExternalVEListener(id index.ID, l ElementListener) error {
	el, err := vl.elementListeners(id)
	if err != nil {
		return err
	}

	return el.external.deregister(l)
}

func (vl *VocabList) RegisterInternalVEListener(id index.ID, l ElementListener) error {
	el, err := vl.elementListeners(id)
	if err != nil {
		return err
	}

	return el.internal.register(l)
}

func (vl *VocabList) DeregisterInternalVEListener(id index.ID, l ElementListener) error {
	el, err := vl.elementListeners(id)
	if err != nil {
		return err
	}

	return el.internal.deregister(l)
}

// Size returns the number of entries.
func (vl *VocabList) Size() int {
	return len(vl.entries)
}

// IDs returns the ids of all entries in ascending order.
func (vl *VocabList) IDs() []index.ID {
	ids := make([]index.ID, 0, len(vl.entries))
	for id := range vl.entries {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (vl *VocabList) render(f func(VocabElement) string) string {
	ids := vl.IDs()
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = f(vl.entries[id])
	}

	return strings.Join(strs, ", ")
}

// String lists the entries in id order, e.g. "((VocabList) (vl_contents: (m(<a>), p(<x>))))".
func (vl *VocabList) String() string {
	return fmt.Sprintf("((VocabList) (vl_contents: (%s)))", vl.render(VocabElement.String))
}

func (vl *VocabList) DBString() string {
	return fmt.Sprintf("((VocabList) (vl_size %d) (vl_contents: (%s)))", vl.Size(), vl.render(VocabElement.DBString))
}
