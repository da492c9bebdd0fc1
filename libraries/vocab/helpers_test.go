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

package vocab_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/vocabdb/libraries/database"
	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
	"github.com/dolthub/vocabdb/libraries/vocab"
)

func newTestDB(t *testing.T) *database.Database {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := database.New(database.Options{Name: "test", Logger: logger})
	require.NoError(t, err)

	return db
}

func newArg(t *testing.T, kind fargs.Kind, name string) fargs.FormalArgument {
	arg, err := fargs.New(kind, name)
	require.NoError(t, err)
	return arg
}

func newMatrix(t *testing.T, db *database.Database, name string, mType vocab.MatrixType, args ...fargs.FormalArgument) *vocab.MatrixVocabElement {
	mve, err := vocab.NewMatrixVocabElement(db.ID(), name)
	require.NoError(t, err)
	require.NoError(t, mve.SetType(mType))

	for _, arg := range args {
		require.NoError(t, mve.AppendFormalArg(arg))
	}

	return mve
}

func newPred(t *testing.T, db *database.Database, name string, args ...fargs.FormalArgument) *vocab.PredicateVocabElement {
	pve, err := vocab.NewPredicateVocabElement(db.ID(), name)
	require.NoError(t, err)

	for _, arg := range args {
		require.NoError(t, pve.AppendFormalArg(arg))
	}

	return pve
}

func requireSysErr(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, syserr.Is(err), "expected a system error, got %v", err)
}

func argNames(t *testing.T, n int, get func(int) (fargs.FormalArgument, error)) []string {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		arg, err := get(i)
		require.NoError(t, err)
		names[i] = arg.Name()
	}

	return names
}

func cpNames(t *testing.T, mve *vocab.MatrixVocabElement) []string {
	return argNames(t, mve.NumCPFormalArgs(), mve.CPFormalArg)
}

func visibleNames(t *testing.T, ve vocab.VocabElement) []string {
	return argNames(t, ve.NumFormalArgs(), ve.FormalArg)
}

// assertCPCorrespondence checks that the column predicate list is <ord>, <onset>, <offset> followed by copies of
// the visible arguments.
func assertCPCorrespondence(t *testing.T, mve *vocab.MatrixVocabElement) {
	t.Helper()
	require.Equal(t, mve.NumFormalArgs()+3, mve.NumCPFormalArgs())

	prefix := []struct {
		name string
		kind fargs.Kind
	}{{vocab.OrdArgName, fargs.IntKind}, {vocab.OnsetArgName, fargs.TimeStampKind}, {vocab.OffsetArgName, fargs.TimeStampKind}}

	for i, p := range prefix {
		cp, err := mve.CPFormalArg(i)
		require.NoError(t, err)
		assert.Equal(t, p.name, cp.Name())
		assert.Equal(t, p.kind, cp.Kind())
	}

	for i := 0; i < mve.NumFormalArgs(); i++ {
		arg, err := mve.FormalArg(i)
		require.NoError(t, err)
		cp, err := mve.CPFormalArg(i + 3)
		require.NoError(t, err)
		assert.True(t, arg.Equivalent(cp), "cp arg %d (%s) does not mirror %s", i+3, cp.DBString(), arg.DBString())
	}
}

// assertIndexConsistent checks that the index holds exactly the vocab entries and their arguments.
func assertIndexConsistent(t *testing.T, db *database.Database) {
	t.Helper()
	vl := db.VocabList()
	idx := db.Index()

	expected := 0
	for _, id := range vl.IDs() {
		require.True(t, idx.Contains(id), "vocab element %d missing from index", id)
		ve, err := vl.GetVocabElement(id)
		require.NoError(t, err)

		expected += 1 + ve.NumFormalArgs()
		for i := 0; i < ve.NumFormalArgs(); i++ {
			arg, _ := ve.FormalArg(i)
			assert.True(t, idx.Contains(arg.ID()), "arg %s of %s missing from index", arg.Name(), ve.Name())
			assert.Equal(t, id, arg.VocabElementID())
		}

		if mve, ok := ve.(*vocab.MatrixVocabElement); ok {
			expected += mve.NumCPFormalArgs()
			for i := 0; i < mve.NumCPFormalArgs(); i++ {
				arg, _ := mve.CPFormalArg(i)
				assert.True(t, idx.Contains(arg.ID()), "cp arg %s of %s missing from index", arg.Name(), ve.Name())
				assert.Equal(t, id, arg.VocabElementID())
			}
		}
	}

	assert.Equal(t, expected, idx.Size(), idx.String())
}

type recorder struct {
	name   string
	log    *[]string
	change *vocab.VEChange

	// onInsert runs inside VLEntryInserted
	onInsert func(vl *vocab.VocabList, id index.ID)
}

func newRecorder(name string, log *[]string) *recorder {
	return &recorder{name: name, log: log}
}

func (r *recorder) add(format string, args ...interface{}) {
	*r.log = append(*r.log, r.name+": "+fmt.Sprintf(format, args...))
}

func (r *recorder) VLEntryInserted(vl *vocab.VocabList, id index.ID) {
	in, _ := vl.InVocabList(id)
	r.add("inserted %d present=%t", id, in)

	if r.onInsert != nil {
		r.onInsert(vl, id)
	}
}

func (r *recorder) VLEntryDeleted(vl *vocab.VocabList, id index.ID) {
	in, _ := vl.InVocabList(id)
	r.add("deleted %d present=%t", id, in)
}

func (r *recorder) VEChanged(vl *vocab.VocabList, id index.ID, change *vocab.VEChange) {
	r.change = change
	r.add("changed %d", id)
}

func (r *recorder) VEDeleted(vl *vocab.VocabList, id index.ID) {
	in, _ := vl.InVocabList(id)
	r.add("ve deleted %d present=%t", id, in)
}
