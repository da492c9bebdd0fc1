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
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/vocab"
)

// DataColumn is a column of cells bound to one matrix vocab element. It listens to that element and, when the
// element changes during a cascade, marks all of its cells pending. Pending cells are drained on EndCascade.
type DataColumn struct {
	*Column
	cells   *index.Index
	ordered []*Cell
	deleted bool

	// ids of the cells drained by the most recent EndCascade
	flushed []index.ID
}

var (
	_ Cascader              = (*DataColumn)(nil)
	_ vocab.ElementListener = (*DataColumn)(nil)
)

func NewDataColumn(dbID uuid.UUID, mveID index.ID, name string, log *logrus.Entry) (*DataColumn, error) {
	col, err := NewColumn(dbID, mveID, name, log)
	if err != nil {
		return nil, err
	}

	return &DataColumn{
		Column: col,
		cells:  index.New(col.log),
	}, nil
}

// AppendCell adds a new cell at the end of the column.
func (dc *DataColumn) AppendCell() (*Cell, error) {
	if dc.deleted {
		return nil, dc.fault("column '%s' has been deleted", dc.name)
	}

	if dc.readOnly {
		return nil, dc.fault("column '%s' is read only", dc.name)
	}

	cell := NewCell(dc.id, len(dc.ordered)+1)
	if _, err := dc.cells.Add(cell); err != nil {
		return nil, err
	}

	dc.ordered = append(dc.ordered, cell)
	dc.numCells = len(dc.ordered)

	return cell, nil
}

// Cell returns the cell at the 1 based position ord.
func (dc *DataColumn) Cell(ord int) (*Cell, error) {
	if ord < 1 || ord > len(dc.ordered) {
		return nil, dc.fault("ord %d out of range for column '%s' (%d cells)", ord, dc.name, len(dc.ordered))
	}

	return dc.ordered[ord-1], nil
}

func (dc *DataColumn) Cells() []*Cell {
	return append([]*Cell(nil), dc.ordered...)
}

func (dc *DataColumn) Deleted() bool {
	return dc.deleted
}

// LastFlushed returns the ids of the cells drained by the most recent EndCascade.
func (dc *DataColumn) LastFlushed() []index.ID {
	return append([]index.ID(nil), dc.flushed...)
}

func (dc *DataColumn) VEChanged(vl *vocab.VocabList, id index.ID, change *vocab.VEChange) {
	if id != dc.id || change == nil {
		return
	}

	if change.NameChanged {
		dc.log = dc.log.WithField("column", change.NewName)
		dc.name = change.NewName
	}

	if !dc.cascading {
		dc.log.Warnf("change to vocab element %d delivered outside of a cascade", id)
		return
	}

	if change.FArgListChanged || change.CPFArgListChanged {
		for _, cell := range dc.ordered {
			if err := dc.AddPending(cell); err != nil {
				dc.log.WithError(err).Error("failed to mark cell pending")
			}
		}
	}
}

func (dc *DataColumn) VEDeleted(vl *vocab.VocabList, id index.ID) {
	if id == dc.id {
		dc.deleted = true
	}
}

// EndCascade drains the pending cells and ends the cascade.
func (dc *DataColumn) EndCascade(dbID uuid.UUID) error {
	if dc.cascading && dc.pending != nil && dbID == dc.dbID {
		dc.flushed = dc.flushed[:0]
		for _, cell := range dc.Pending() {
			dc.flushed = append(dc.flushed, cell.ID())
		}

		if len(dc.flushed) > 0 {
			dc.log.Debugf("flushed %d pending cells", len(dc.flushed))
		}
	}

	return dc.Column.EndCascade(dbID)
}
