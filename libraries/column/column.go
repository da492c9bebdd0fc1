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

package column

import (
	"github.com/google/btree"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

// Cascader is implemented by anything that takes part in a database's cascade brackets.
type Cascader interface {
	ID() index.ID
	BeginCascade(dbID uuid.UUID) error
	EndCascade(dbID uuid.UUID) error
}

// Column holds the state every column shares, including the cascade state machine. A column is idle until
// BeginCascade and cascading until EndCascade. Cells affected by changes made while cascading are collected in the
// pending set, which may only change while cascading.
//
// Column is meant to be embedded. Embedding types that process pending cells should do so in their own
// EndCascade before calling Column.EndCascade.
type Column struct {
	id       index.ID
	dbID     uuid.UUID
	name     string
	hidden   bool
	readOnly bool
	selected bool
	numCells int

	cascading bool
	pending   *btree.BTreeG[*Cell]

	log *logrus.Entry
}

var _ Cascader = (*Column)(nil)

// NewColumn creates a column for the matrix vocab element with the given id.
func NewColumn(dbID uuid.UUID, id index.ID, name string, log *logrus.Entry) (*Column, error) {
	if dbID == uuid.Nil {
		return nil, syserr.New("column '%s' created without a database", name)
	}

	if id == index.InvalidID {
		return nil, syserr.New("column '%s' created for an unindexed vocab element", name)
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Column{
		id:   id,
		dbID: dbID,
		name: name,
		log:  log.WithFields(logrus.Fields{"component": "column", "column": name}),
	}, nil
}

// ID is the id of the matrix vocab element the column displays.
func (c *Column) ID() index.ID {
	return c.id
}

func (c *Column) DBID() uuid.UUID {
	return c.dbID
}

func (c *Column) Name() string {
	return c.name
}

func (c *Column) Hidden() bool {
	return c.hidden
}

func (c *Column) SetHidden(hidden bool) {
	c.hidden = hidden
}

func (c *Column) ReadOnly() bool {
	return c.readOnly
}

func (c *Column) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
}

func (c *Column) Selected() bool {
	return c.selected
}

func (c *Column) SetSelected(selected bool) {
	c.selected = selected
}

func (c *Column) NumCells() int {
	return c.numCells
}

func (c *Column) CascadeInProgress() bool {
	return c.cascading
}

func (c *Column) fault(format string, args ...interface{}) error {
	err := syserr.New(format, args...)
	c.log.Debug(err.Error())
	return err
}

// BeginCascade moves the column from idle to cascading.
func (c *Column) BeginCascade(dbID uuid.UUID) error {
	if c.cascading {
		return c.fault("column '%s' is already cascading", c.name)
	}

	if dbID != c.dbID {
		return c.fault("cascade for database %s started on column '%s' of database %s", dbID, c.name, c.dbID)
	}

	if c.pending == nil {
		c.pending = btree.NewG[*Cell](16, cellLess)
	} else if c.pending.Len() != 0 {
		return c.fault("column '%s' has %d pending cells outside of a cascade", c.name, c.pending.Len())
	}

	c.cascading = true
	c.log.Trace("begin cascade")
	return nil
}

// AddPending marks cell as affected by the current cascade. Adding a cell twice has no further effect.
func (c *Column) AddPending(cell *Cell) error {
	if !c.cascading {
		return c.fault("column '%s' is not cascading", c.name)
	}

	if c.pending == nil {
		return c.fault("column '%s' has no pending set", c.name)
	}

	if cell == nil {
		return c.fault("nil cell added to pending set of '%s'", c.name)
	}

	if cell.ColumnID() != c.id {
		return c.fault("cell %d belongs to column %d, not '%s' (%d)", cell.ID(), cell.ColumnID(), c.name, c.id)
	}

	c.pending.ReplaceOrInsert(cell)
	return nil
}

func (c *Column) ClearPending() error {
	if !c.cascading {
		return c.fault("column '%s' is not cascading", c.name)
	}

	if c.pending == nil {
		return c.fault("column '%s' has no pending set", c.name)
	}

	c.pending.Clear(false)
	return nil
}

// Pending returns the pending cells in id order.
func (c *Column) Pending() []*Cell {
	if c.pending == nil {
		return nil
	}

	cells := make([]*Cell, 0, c.pending.Len())
	c.pending.Ascend(func(cell *Cell) bool {
		cells = append(cells, cell)
		return true
	})

	return cells
}

func (c *Column) NumPending() int {
	if c.pending == nil {
		return 0
	}

	return c.pending.Len()
}

// EndCascade clears the pending set and moves the column back to idle.
func (c *Column) EndCascade(dbID uuid.UUID) error {
	if !c.cascading {
		return c.fault("column '%s' is not cascading", c.name)
	}

	if c.pending == nil {
		return c.fault("column '%s' has no pending set", c.name)
	}

	if dbID != c.dbID {
		return c.fault("cascade for database %s ended on column '%s' of database %s", dbID, c.name, c.dbID)
	}

	c.pending.Clear(false)
	c.cascading = false
	c.log.Trace("end cascade")
	return nil
}
