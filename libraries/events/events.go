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

// Package events buffers the notifications produced while a cascade is open so that they can be delivered at
// well defined points instead of from the middle of a mutation.
package events

import (
	"fmt"

	"github.com/dolthub/vocabdb/libraries/index"
)

// Kind identifies what happened to the element named by an Event.
type Kind int

const (
	Insertion Kind = iota + 1
	Deletion
	Change
)

func (k Kind) String() string {
	switch k {
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	case Change:
		return "change"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a single notification. Payload carries kind specific detail such as a change record.
type Event struct {
	Kind    Kind
	ID      index.ID
	Payload interface{}
}

func (evt Event) String() string {
	if evt.Payload == nil {
		return fmt.Sprintf("(%s %d)", evt.Kind, evt.ID)
	}

	return fmt.Sprintf("(%s %d %v)", evt.Kind, evt.ID, evt.Payload)
}

// Dispatcher delivers an event to whatever is listening for it.
type Dispatcher interface {
	Dispatch(evt Event)
}
