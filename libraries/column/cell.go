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
	"fmt"

	"github.com/dolthub/vocabdb/libraries/index"
)

// Cell is one row of a column. Cell ids are assigned by the column's own Index.
type Cell struct {
	index.Base
	colID index.ID
	ord   int
}

// NewCell creates an unindexed cell belonging to the column with id colID.
func NewCell(colID index.ID, ord int) *Cell {
	return &Cell{colID: colID, ord: ord}
}

func (c *Cell) ColumnID() index.ID {
	return c.colID
}

// Ord is the 1 based position of the cell in its column.
func (c *Cell) Ord() int {
	return c.ord
}

func (c *Cell) String() string {
	return fmt.Sprintf("(Cell (id %d) (colID %d) (ord %d))", c.ID(), c.colID, c.ord)
}

func cellLess(a, b *Cell) bool {
	return a.ID() < b.ID()
}
