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
	"fmt"
	"sort"
	"strings"

	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
)

// VEChange describes how a vocabulary entry differs from the entry it replaced.
type VEChange struct {
	OldName string
	NewName string

	NameChanged       bool
	VarLenChanged     bool
	FArgListChanged   bool
	CPFArgListChanged bool

	OldArgIDs   []index.ID
	NewArgIDs   []index.ID
	OldCPArgIDs []index.ID
	NewCPArgIDs []index.ID

	// NewToOld maps positions in the new visible argument list to positions of the same argument in the old one.
	// Arguments without an entry are new. OldToNew is the inverse; old arguments without an entry were deleted.
	NewToOld map[int]int
	OldToNew map[int]int
}

func newVEChange(old, ve VocabElement) *VEChange {
	oldLists, newLists := old.argLists(), ve.argLists()

	c := &VEChange{
		OldName:       old.Name(),
		NewName:       ve.Name(),
		NameChanged:   old.Name() != ve.Name(),
		VarLenChanged: old.VarLen() != ve.VarLen(),
		OldArgIDs:     argIDs(oldLists[0]),
		NewArgIDs:     argIDs(newLists[0]),
		NewToOld:      make(map[int]int),
		OldToNew:      make(map[int]int),
	}

	c.FArgListChanged = argListChanged(oldLists[0], newLists[0])

	if len(oldLists) > 1 {
		c.OldCPArgIDs = argIDs(oldLists[1])
		c.NewCPArgIDs = argIDs(newLists[1])
		c.CPFArgListChanged = argListChanged(oldLists[1], newLists[1])
	}

	oldPos := make(map[index.ID]int, len(c.OldArgIDs))
	for i, id := range c.OldArgIDs {
		oldPos[id] = i
	}

	for i, id := range c.NewArgIDs {
		if j, ok := oldPos[id]; ok && id != index.InvalidID {
			c.NewToOld[i] = j
			c.OldToNew[j] = i
		}
	}

	return c
}

func argIDs(args []fargs.FormalArgument) []index.ID {
	ids := make([]index.ID, len(args))
	for i, arg := range args {
		ids[i] = arg.ID()
	}

	return ids
}

func argListChanged(old, args []fargs.FormalArgument) bool {
	if len(old) != len(args) {
		return true
	}

	for i := range old {
		if old[i].ID() != args[i].ID() || !old[i].Equivalent(args[i]) {
			return true
		}
	}

	return false
}

// Changed returns true if anything other than the entry's object identity differs.
func (c *VEChange) Changed() bool {
	return c.NameChanged || c.VarLenChanged || c.FArgListChanged || c.CPFArgListChanged
}

// DeletedArgIDs returns the ids of old visible arguments that are absent from the new entry.
func (c *VEChange) DeletedArgIDs() []index.ID {
	var ids []index.ID
	for i, id := range c.OldArgIDs {
		if _, ok := c.OldToNew[i]; !ok {
			ids = append(ids, id)
		}
	}

	return ids
}

// InsertedArgPositions returns the positions in the new visible list of arguments that did not exist before.
func (c *VEChange) InsertedArgPositions() []int {
	var pos []int
	for i := range c.NewArgIDs {
		if _, ok := c.NewToOld[i]; !ok {
			pos = append(pos, i)
		}
	}

	sort.Ints(pos)
	return pos
}

func (c *VEChange) String() string {
	return fmt.Sprintf("(VEChange (name %s -> %s) (nameChanged %t) (varLenChanged %t) (fArgListChanged %t) (cpfArgListChanged %t) (oldArgIDs (%s)) (newArgIDs (%s)))",
		c.OldName, c.NewName, c.NameChanged, c.VarLenChanged, c.FArgListChanged, c.CPFArgListChanged,
		joinIDs(c.OldArgIDs), joinIDs(c.NewArgIDs))
}

func joinIDs(ids []index.ID) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = fmt.Sprint(int64(id))
	}

	return strings.Join(strs, ", ")
}
