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
	"github.com/google/uuid"

	"github.com/dolthub/vocabdb/libraries/events"
	"github.com/dolthub/vocabdb/libraries/index"
)

// DB is the part of the owning database a VocabList depends on.
type DB interface {
	ID() uuid.UUID
	Index() *index.Index

	// CascadeStart opens a cascade bracket. It fails if one is already open.
	CascadeStart() (Cascade, error)
}

// Cascade is an open cascade bracket. Events emitted into it are held until Flush or End.
type Cascade interface {
	// Emit queues evt for delivery to d.
	Emit(d events.Dispatcher, evt events.Event)

	// Flush delivers every queued event now, in the order emitted.
	Flush()

	// End delivers any queued events, ends the cascade on every column and closes the bracket. Calling End on a
	// closed bracket is an error.
	End() error
}

// endCascade closes c and folds its error into *err unless an earlier error is already set.
func endCascade(c Cascade, err *error) {
	endErr := c.End()
	if *err == nil {
		*err = endErr
	}
}
