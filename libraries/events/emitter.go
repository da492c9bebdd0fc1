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

package events

import (
	"fmt"
	"io"
)

type Emitter interface {
	// LogEvents takes a batch of delivered events and records them
	LogEvents(evts []Event) error
}

// NullEmitter is an emitter that drops events
type NullEmitter struct{}

// LogEvents drops the events
func (ne NullEmitter) LogEvents(evts []Event) error {
	return nil
}

// WriterEmitter is an emitter that writes one line per event to its writer
type WriterEmitter struct {
	// Wr the writer to log events to
	Wr io.Writer
}

// LogEvents writes the text form of each event to the writer
func (we WriterEmitter) LogEvents(evts []Event) error {
	for i, evt := range evts {
		if _, err := fmt.Fprintf(we.Wr, "event%03d: %s\n", i, evt); err != nil {
			return err
		}
	}

	return nil
}
