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

package database

import (
	"github.com/dolthub/vocabdb/libraries/events"
	"github.com/dolthub/vocabdb/libraries/syserr"
	"github.com/dolthub/vocabdb/libraries/vocab"
)

// cascade is the guard returned by CascadeStart. Events emitted into it are buffered until Flush or End.
type cascade struct {
	db     *Database
	buf    *events.Buffer
	closed bool
}

var _ vocab.Cascade = (*cascade)(nil)

func (c *cascade) Emit(d events.Dispatcher, evt events.Event) {
	c.buf.Add(d, evt)
}

func (c *cascade) Flush() {
	n, err := c.buf.Flush()
	if err != nil {
		c.db.log.WithError(err).Warn("failed to record delivered events")
	}

	if n > 0 {
		c.db.log.Tracef("delivered %d events", n)
	}
}

// End delivers the buffered events while the columns are still cascading, then ends the cascade on every column.
// Every column is ended even if one fails; the first failure is returned.
func (c *cascade) End() error {
	if c.closed {
		return syserr.New("cascade on database '%s' already ended", c.db.name)
	}

	c.Flush()

	var firstErr error
	for _, col := range c.db.columns {
		if err := col.EndCascade(c.db.id); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	c.closed = true
	c.db.cascade = nil
	c.db.dropDeletedColumns()
	c.db.log.Debug("cascade end")

	return firstErr
}
