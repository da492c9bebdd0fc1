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

type queued struct {
	d   Dispatcher
	evt Event
}

// Buffer collects events until Flush delivers them in the order they were added.
type Buffer struct {
	pending []queued
	emitter Emitter
}

// NewBuffer creates an empty buffer. Delivered events are also handed to emitter, which may be nil.
func NewBuffer(emitter Emitter) *Buffer {
	if emitter == nil {
		emitter = NullEmitter{}
	}

	return &Buffer{emitter: emitter}
}

// Add queues evt for delivery to d. A nil dispatcher is allowed; the event is still recorded by the emitter.
func (b *Buffer) Add(d Dispatcher, evt Event) {
	b.pending = append(b.pending, queued{d, evt})
}

// Len returns the number of undelivered events.
func (b *Buffer) Len() int {
	return len(b.pending)
}

// Flush delivers every pending event, including any added by a dispatcher while the flush is running, and
// returns the number delivered.
func (b *Buffer) Flush() (int, error) {
	var delivered []Event
	for len(b.pending) > 0 {
		q := b.pending[0]
		b.pending = b.pending[1:]

		if q.d != nil {
			q.d.Dispatch(q.evt)
		}

		delivered = append(delivered, q.evt)
	}

	b.pending = nil

	if len(delivered) == 0 {
		return 0, nil
	}

	return len(delivered), b.emitter.LogEvents(delivered)
}
