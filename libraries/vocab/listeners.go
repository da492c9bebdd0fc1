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

	"github.com/dolthub/vocabdb/libraries/events"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

// VocabListListener is notified when entries are added to or removed from a VocabList. Deletion notifications are
// delivered while the entry is still present.
type VocabListListener interface {
	VLEntryInserted(vl *VocabList, id index.ID)
	VLEntryDeleted(vl *VocabList, id index.ID)
}

// ElementListener is notified when a single vocabulary entry is replaced or removed.
type ElementListener interface {
	VEChanged(vl *VocabList, id index.ID, change *VEChange)
	VEDeleted(vl *VocabList, id index.ID)
}

// listenerSet holds listeners in registration order.
type listenerSet[T any] struct {
	kind      string
	listeners []T
}

func (ls *listenerSet[T]) find(l T) int {
	for i, existing := range ls.listeners {
		if any(existing) == any(l) {
			return i
		}
	}

	return -1
}

func (ls *listenerSet[T]) check(l T) error {
	if isNilListener(l) {
		return syserr.New("nil %s listener", ls.kind)
	}

	// listeners are matched with ==
	if !reflect.TypeOf(l).Comparable() {
		return syserr.New("%s listener of type %T is not comparable; register a pointer", ls.kind, l)
	}

	return nil
}

func (ls *listenerSet[T]) register(l T) error {
	if err := ls.check(l); err != nil {
		return err
	}

	if ls.find(l) >= 0 {
		return syserr.New("%s listener already registered", ls.kind)
	}

	ls.listeners = append(ls.listeners, l)
	return nil
}

func (ls *listenerSet[T]) deregister(l T) error {
	if err := ls.check(l); err != nil {
		return err
	}

	i := ls.find(l)
	if i < 0 {
		return syserr.New("%s listener not registered", ls.kind)
	}

	ls.listeners = append(ls.listeners[:i], ls.listeners[i+1:]...)
	return nil
}

func (ls *listenerSet[T]) each(cb func(T)) {
	// a listener may deregister itself while being notified
	snapshot := append([]T(nil), ls.listeners...)
	for _, l := range snapshot {
		cb(l)
	}
}

func isNilListener(l interface{}) bool {
	if l == nil {
		return true
	}

	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}

	return false
}

// ListListeners is the VocabList's listener registry.
type ListListeners struct {
	vl       *VocabList
	internal listenerSet[VocabListListener]
	external listenerSet[VocabListListener]
}

var _ events.Dispatcher = (*ListListeners)(nil)

func newListListeners(vl *VocabList) *ListListeners {
	return &ListListeners{
		vl:       vl,
		internal: listenerSet[VocabListListener]{kind: "internal vocab list"},
		external: listenerSet[VocabListListener]{kind: "external vocab list"},
	}
}

// Dispatch delivers an insertion or deletion event, internal listeners first.
func (ll *ListListeners) Dispatch(evt events.Event) {
	notify := func(l VocabListListener) {
		switch evt.Kind {
		case events.Insertion:
			l.VLEntryInserted(ll.vl, evt.ID)
		case events.Deletion:
			l.VLEntryDeleted(ll.vl, evt.ID)
		}
	}

	ll.internal.each(notify)
	ll.external.each(notify)
}

// ElementListeners is the listener registry attached to one vocabulary entry while it is in a VocabList.
type ElementListeners struct {
	vl       *VocabList
	internal listenerSet[ElementListener]
	external listenerSet[ElementListener]
}

var _ events.Dispatcher = (*ElementListeners)(nil)

func newElementListeners(vl *VocabList) *ElementListeners {
	return &ElementListeners{
		vl:       vl,
		internal: listenerSet[ElementListener]{kind: "internal vocab element"},
		external: listenerSet[ElementListener]{kind: "external vocab element"},
	}
}

// Dispatch delivers a change or deletion event, internal listeners first. Change events carry a *VEChange.
func (el *ElementListeners) Dispatch(evt events.Event) {
	notify := func(l ElementListener) {
		switch evt.Kind {
		case events.Change:
			change, _ := evt.Payload.(*VEChange)
			l.VEChanged(el.vl, evt.ID, change)
		case events.Deletion:
			l.VEDeleted(el.vl, evt.ID)
		}
	}

	el.internal.each(notify)
	el.external.each(notify)
}

func (el *ElementListeners) NumListeners() int {
	return len(el.internal.listeners) + len(el.external.listeners)
}
