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

package index

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/btree"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/vocabdb/libraries/syserr"
)

// ID is the stable identity of an indexed element. Ids are assigned once by an Index and are never reused while
// the element is live.
type ID int64

// InvalidID marks an element that is not yet part of a database.
const InvalidID ID = 0

// Element is anything that can live in an Index.
type Element interface {
	ID() ID
	SetID(id ID) error
}

// Base is the embeddable implementation of Element.
type Base struct {
	id ID
}

// ID returns the element's id, or InvalidID if it has not been indexed.
func (b *Base) ID() ID {
	return b.id
}

// SetID assigns the id. An id can be set only once, and only to a valid value.
func (b *Base) SetID(id ID) error {
	if id == InvalidID {
		return syserr.New("attempt to set an element id to InvalidID")
	}

	if b.id != InvalidID {
		return syserr.New("element id already set to %d", b.id)
	}

	b.id = id
	return nil
}

// Index maps ids to elements. It is the only place ids are handed out.
type Index struct {
	elements map[ID]Element
	ids      *btree.BTreeG[ID]
	nextID   ID
	log      *logrus.Entry
}

// New creates an empty Index. A nil logger falls back to the logrus standard logger.
func New(log *logrus.Entry) *Index {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Index{
		elements: make(map[ID]Element),
		ids:      btree.NewOrderedG[ID](16),
		nextID:   1,
		log:      log.WithField("component", "index"),
	}
}

// Add assigns the next free id to e and stores it.
func (idx *Index) Add(e Element) (ID, error) {
	if isNil(e) {
		return InvalidID, syserr.New("attempt to add a nil element to the index")
	}

	if e.ID() != InvalidID {
		return InvalidID, syserr.New("attempt to add an element whose id is already assigned (%d)", e.ID())
	}

	id := idx.nextID
	if _, ok := idx.elements[id]; ok {
		return InvalidID, syserr.New("next id %d is already in use", id)
	}

	if err := e.SetID(id); err != nil {
		return InvalidID, err
	}

	idx.nextID++
	idx.elements[id] = e
	idx.ids.ReplaceOrInsert(id)

	idx.log.WithField("id", id).Tracef("added %T", e)
	return id, nil
}

// Replace swaps the element stored under e's id for e. The replacement must be of the same concrete type as the
// element it replaces.
func (idx *Index) Replace(e Element) error {
	if isNil(e) {
		return syserr.New("attempt to replace with a nil element")
	}

	id := e.ID()
	if id == InvalidID {
		return syserr.New("attempt to replace with an element whose id is InvalidID")
	}

	old, ok := idx.elements[id]
	if !ok {
		return syserr.New("id %d is not in the index", id)
	}

	if reflect.TypeOf(old) != reflect.TypeOf(e) {
		return syserr.New("type mismatch replacing id %d: %T with %T", id, old, e)
	}

	idx.elements[id] = e

	idx.log.WithField("id", id).Tracef("replaced %T", e)
	return nil
}

// Remove drops the element with the given id.
func (idx *Index) Remove(id ID) error {
	if id == InvalidID {
		return syserr.New("attempt to remove InvalidID from the index")
	}

	if _, ok := idx.elements[id]; !ok {
		return syserr.New("id %d is not in the index", id)
	}

	delete(idx.elements, id)
	idx.ids.Delete(id)

	idx.log.WithField("id", id).Trace("removed")
	return nil
}

// Get returns the element with the given id.
func (idx *Index) Get(id ID) (Element, bool) {
	e, ok := idx.elements[id]
	return e, ok
}

// Contains reports whether id is live in the index.
func (idx *Index) Contains(id ID) bool {
	_, ok := idx.elements[id]
	return ok
}

// Size returns the number of live elements.
func (idx *Index) Size() int {
	return len(idx.elements)
}

// IDs returns every live id in ascending order.
func (idx *Index) IDs() []ID {
	ids := make([]ID, 0, idx.ids.Len())
	idx.ids.Ascend(func(id ID) bool {
		ids = append(ids, id)
		return true
	})

	return ids
}

func (idx *Index) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("((idx_size %d) (index_contents: (", idx.Size()))

	for i, id := range idx.IDs() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(fmt.Sprintf("(%d %T)", id, idx.elements[id]))
	}

	sb.WriteString(")))")
	return sb.String()
}

func isNil(e Element) bool {
	if e == nil {
		return true
	}

	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
