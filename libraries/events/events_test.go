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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got []Event
	buf *Buffer
}

func (r *recorder) Dispatch(evt Event) {
	r.got = append(r.got, evt)

	// an insertion fans out into a follow up change, as listeners reacting to a notification may do
	if evt.Kind == Insertion && r.buf != nil {
		r.buf.Add(r, Event{Kind: Change, ID: evt.ID})
	}
}

func TestBufferFlushOrder(t *testing.T) {
	buf := NewBuffer(nil)
	r := &recorder{}

	buf.Add(r, Event{Kind: Insertion, ID: 1})
	buf.Add(r, Event{Kind: Deletion, ID: 2})
	assert.Equal(t, 2, buf.Len())
	assert.Empty(t, r.got, "nothing is delivered before a flush")

	n, err := buf.Flush()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []Event{{Kind: Insertion, ID: 1}, {Kind: Deletion, ID: 2}}, r.got)
	assert.Equal(t, 0, buf.Len())

	n, err = buf.Flush()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBufferFlushDeliversFollowUps(t *testing.T) {
	buf := NewBuffer(nil)
	r := &recorder{buf: buf}

	buf.Add(r, Event{Kind: Insertion, ID: 5})
	n, err := buf.Flush()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, Change, r.got[1].Kind)
}

func TestWriterEmitter(t *testing.T) {
	var out bytes.Buffer
	buf := NewBuffer(WriterEmitter{&out})

	buf.Add(nil, Event{Kind: Insertion, ID: 3})
	buf.Add(nil, Event{Kind: Change, ID: 3, Payload: "renamed"})
	_, err := buf.Flush()
	require.NoError(t, err)

	assert.Equal(t, "event000: (insertion 3)\nevent001: (change 3 renamed)\n", out.String())
}
