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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/vocab"
)

func TestMatrixExampleScenario(t *testing.T) {
	db := newTestDB(t)
	vl := db.VocabList()

	m := newMatrix(t, db, "m", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"))
	assert.Equal(t, 4, m.NumCPFormalArgs())
	assert.Equal(t, []string{"<ord>", "<onset>", "<offset>", "<a>"}, cpNames(t, m))

	require.NoError(t, vl.AddElement(m))

	ve, err := vl.GetVocabElementByName("m")
	require.NoError(t, err)
	assert.Equal(t, m.ID(), ve.ID())

	requireSysErr(t, m.AppendFormalArg(newArg(t, fargs.UnTypedKind, "<a>")))
	assert.Equal(t, 1, m.NumFormalArgs())
	assertCPCorrespondence(t, m)
}

func TestNewMatrixVocabElement(t *testing.T) {
	_, err := vocab.NewMatrixVocabElement(uuid.Nil, "m")
	requireSysErr(t, err)

	_, err = vocab.NewMatrixVocabElement(uuid.New(), "1m")
	requireSysErr(t, err)

	m, err := vocab.NewMatrixVocabElement(uuid.New(), "my-col.v2")
	require.NoError(t, err)
	assert.Equal(t, vocab.TypeUndefined, m.Type())
	assert.Equal(t, 0, m.NumFormalArgs())
	assert.Equal(t, 0, m.NumCPFormalArgs())
	assert.Equal(t, index.InvalidID, m.ID())
}

func TestSetType(t *testing.T) {
	m, err := vocab.NewMatrixVocabElement(uuid.New(), "m")
	require.NoError(t, err)

	requireSysErr(t, m.AppendFormalArg(newArg(t, fargs.UnTypedKind, "<a>")))
	requireSysErr(t, m.SetType(vocab.TypeUndefined))
	assert.Equal(t, vocab.TypeUndefined, m.Type())

	require.NoError(t, m.SetType(vocab.TypeFloat))
	assert.Equal(t, vocab.TypeFloat, m.Type())
	assert.Equal(t, []string{"<ord>", "<onset>", "<offset>"}, cpNames(t, m))

	requireSysErr(t, m.SetType(vocab.TypeMatrix))
	assert.Equal(t, vocab.TypeFloat, m.Type())
}

func TestTypeCongruence(t *testing.T) {
	allKinds := []fargs.Kind{
		fargs.UnTypedKind, fargs.IntKind, fargs.FloatKind, fargs.NominalKind, fargs.TextStringKind,
		fargs.QuoteStringKind, fargs.TimeStampKind, fargs.PredKind, fargs.ColPredKind,
	}

	tests := []struct {
		mType vocab.MatrixType
		kind  fargs.Kind
	}{
		{vocab.TypeText, fargs.TextStringKind},
		{vocab.TypeNominal, fargs.NominalKind},
		{vocab.TypeInteger, fargs.IntKind},
		{vocab.TypeFloat, fargs.FloatKind},
		{vocab.TypePredicate, fargs.PredKind},
	}

	for _, test := range tests {
		t.Run(test.mType.String(), func(t *testing.T) {
			m := newMatrix(t, newTestDB(t), "m", test.mType)

			for _, k := range allKinds {
				if k == test.kind {
					continue
				}

				requireSysErr(t, m.AppendFormalArg(newArg(t, k, "<x>")))
				assert.Equal(t, 0, m.NumFormalArgs())
				assert.Equal(t, 3, m.NumCPFormalArgs())
			}

			requireSysErr(t, m.InsertFormalArg(newArg(t, test.kind, "<x>"), 1))
			require.NoError(t, m.AppendFormalArg(newArg(t, test.kind, "<val>")))
			assertCPCorrespondence(t, m)

			requireSysErr(t, m.AppendFormalArg(newArg(t, test.kind, "<second>")))
			requireSysErr(t, m.InsertFormalArg(newArg(t, test.kind, "<second>"), 0))
			assert.Equal(t, 1, m.NumFormalArgs())
			assert.Equal(t, 4, m.NumCPFormalArgs())
		})
	}
}

func TestMatrixArgKinds(t *testing.T) {
	m := newMatrix(t, newTestDB(t), "m", vocab.TypeMatrix)

	requireSysErr(t, m.AppendFormalArg(newArg(t, fargs.TextStringKind, "<text>")))

	kinds := []fargs.Kind{
		fargs.UnTypedKind, fargs.IntKind, fargs.FloatKind, fargs.NominalKind, fargs.QuoteStringKind,
		fargs.TimeStampKind, fargs.PredKind, fargs.ColPredKind,
	}

	for i, k := range kinds {
		require.NoError(t, m.AppendFormalArg(newArg(t, k, "<"+k.String()+">")), "kind %s", k)
		assert.Equal(t, i+1, m.NumFormalArgs())
	}

	assertCPCorrespondence(t, m)
}

func TestCPArgNameCollision(t *testing.T) {
	m := newMatrix(t, newTestDB(t), "m", vocab.TypeMatrix)

	for _, name := range []string{"<ord>", "<onset>", "<offset>"} {
		requireSysErr(t, m.AppendFormalArg(newArg(t, fargs.UnTypedKind, name)))
	}

	assert.Equal(t, 0, m.NumFormalArgs())
	assert.Equal(t, 3, m.NumCPFormalArgs())
}

func TestInsertFormalArg(t *testing.T) {
	m := newMatrix(t, newTestDB(t), "m", vocab.TypeMatrix,
		newArg(t, fargs.UnTypedKind, "<a>"),
		newArg(t, fargs.IntKind, "<b>"))

	require.NoError(t, m.InsertFormalArg(newArg(t, fargs.FloatKind, "<c>"), 0))
	require.NoError(t, m.InsertFormalArg(newArg(t, fargs.NominalKind, "<d>"), 2))
	requireSysErr(t, m.InsertFormalArg(newArg(t, fargs.UnTypedKind, "<e>"), 5))
	requireSysErr(t, m.InsertFormalArg(newArg(t, fargs.UnTypedKind, "<e>"), -1))
	requireSysErr(t, m.InsertFormalArg(nil, 0))

	assert.Equal(t, []string{"<c>", "<a>", "<d>", "<b>"}, visibleNames(t, m))
	assert.Equal(t, []string{"<ord>", "<onset>", "<offset>", "<c>", "<a>", "<d>", "<b>"}, cpNames(t, m))
	assertCPCorrespondence(t, m)
}

func TestDeleteFormalArg(t *testing.T) {
	db := newTestDB(t)

	single := newMatrix(t, db, "f", vocab.TypeFloat, newArg(t, fargs.FloatKind, "<val>"))
	requireSysErr(t, single.DeleteFormalArg(0))
	assert.Equal(t, 1, single.NumFormalArgs())

	m := newMatrix(t, db, "m", vocab.TypeMatrix,
		newArg(t, fargs.UnTypedKind, "<a>"),
		newArg(t, fargs.IntKind, "<b>"),
		newArg(t, fargs.FloatKind, "<c>"))

	requireSysErr(t, m.DeleteFormalArg(3))
	requireSysErr(t, m.DeleteFormalArg(-1))

	require.NoError(t, m.DeleteFormalArg(1))
	assert.Equal(t, []string{"<a>", "<c>"}, visibleNames(t, m))
	assert.Equal(t, []string{"<ord>", "<onset>", "<offset>", "<a>", "<c>"}, cpNames(t, m))
	assertCPCorrespondence(t, m)

	require.NoError(t, m.DeleteFormalArg(0))
	require.NoError(t, m.DeleteFormalArg(0))
	assert.Equal(t, 0, m.NumFormalArgs())
	assert.Equal(t, 3, m.NumCPFormalArgs())
}

func TestReplaceFormalArg(t *testing.T) {
	db := newTestDB(t)

	t.Run("matrix", func(t *testing.T) {
		m := newMatrix(t, db, "m", vocab.TypeMatrix,
			newArg(t, fargs.UnTypedKind, "<a>"),
			newArg(t, fargs.IntKind, "<b>"))

		requireSysErr(t, m.ReplaceFormalArg(newArg(t, fargs.UnTypedKind, "<b>"), 0))
		requireSysErr(t, m.ReplaceFormalArg(newArg(t, fargs.UnTypedKind, "<ord>"), 0))
		requireSysErr(t, m.ReplaceFormalArg(newArg(t, fargs.TextStringKind, "<t>"), 0))
		requireSysErr(t, m.ReplaceFormalArg(newArg(t, fargs.UnTypedKind, "<z>"), 2))
		assert.Equal(t, []string{"<a>", "<b>"}, visibleNames(t, m))

		// the slot's own name may be reused
		require.NoError(t, m.ReplaceFormalArg(newArg(t, fargs.FloatKind, "<a>"), 0))
		require.NoError(t, m.ReplaceFormalArg(newArg(t, fargs.NominalKind, "<n>"), 1))

		arg, err := m.FormalArg(0)
		require.NoError(t, err)
		assert.Equal(t, fargs.FloatKind, arg.Kind())
		assert.Equal(t, []string{"<a>", "<n>"}, visibleNames(t, m))
		assertCPCorrespondence(t, m)
	})

	t.Run("single argument types need the exact kind", func(t *testing.T) {
		m := newMatrix(t, db, "i", vocab.TypeInteger, newArg(t, fargs.IntKind, "<val>"))

		requireSysErr(t, m.ReplaceFormalArg(newArg(t, fargs.FloatKind, "<val>"), 0))

		ranged, err := fargs.NewInt("<count>")
		require.NoError(t, err)
		require.NoError(t, ranged.SetRange(0, 10))
		require.NoError(t, m.ReplaceFormalArg(ranged, 0))
		assert.Equal(t, []string{"<count>"}, visibleNames(t, m))
		assertCPCorrespondence(t, m)
	})
}

func TestReplaceFormalArgKeepsIDs(t *testing.T) {
	db := newTestDB(t)
	vl := db.VocabList()

	m := newMatrix(t, db, "m", vocab.TypeMatrix, newArg(t, fargs.IntKind, "<a>"))
	require.NoError(t, vl.AddElement(m))

	mcp, err := vl.GetMatrixVocabElement(m.ID())
	require.NoError(t, err)

	oldArg, err := mcp.FormalArg(0)
	require.NoError(t, err)
	oldCP, err := mcp.CPFormalArg(3)
	require.NoError(t, err)
	require.NotEqual(t, index.InvalidID, oldCP.ID())

	t.Run("kind change on a kept id", func(t *testing.T) {
		f, err := fargs.NewFloat("<a>")
		require.NoError(t, err)
		require.NoError(t, f.SetID(oldArg.ID()))

		requireSysErr(t, mcp.ReplaceFormalArg(f, 0))
	})

	t.Run("same kind keeps the cp id", func(t *testing.T) {
		ranged := oldArg.(*fargs.Int)
		require.NoError(t, ranged.SetRange(1, 5))
		require.NoError(t, mcp.ReplaceFormalArg(ranged, 0))

		cp, err := mcp.CPFormalArg(3)
		require.NoError(t, err)
		assert.Equal(t, oldCP.ID(), cp.ID())
		assert.Equal(t, m.ID(), cp.VocabElementID())
		assertCPCorrespondence(t, mcp)
	})

	t.Run("fresh argument gets a fresh cp", func(t *testing.T) {
		require.NoError(t, mcp.ReplaceFormalArg(newArg(t, fargs.FloatKind, "<f>"), 0))

		cp, err := mcp.CPFormalArg(3)
		require.NoError(t, err)
		assert.Equal(t, index.InvalidID, cp.ID())
		assert.Equal(t, fargs.FloatKind, cp.Kind())
	})
}

func TestSystemElementFrozen(t *testing.T) {
	m := newMatrix(t, newTestDB(t), "m", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"))
	m.SetSystem()
	assert.True(t, m.System())

	requireSysErr(t, m.AppendFormalArg(newArg(t, fargs.UnTypedKind, "<b>")))
	requireSysErr(t, m.InsertFormalArg(newArg(t, fargs.UnTypedKind, "<b>"), 0))
	requireSysErr(t, m.ReplaceFormalArg(newArg(t, fargs.UnTypedKind, "<b>"), 0))
	requireSysErr(t, m.DeleteFormalArg(0))
	requireSysErr(t, m.SetName("renamed"))
	requireSysErr(t, m.SetVarLen(true))

	assert.Equal(t, []string{"<a>"}, visibleNames(t, m))
	assertCPCorrespondence(t, m)
}

func TestMatrixIsWellFormed(t *testing.T) {
	db := newTestDB(t)
	vl := db.VocabList()

	_, err := newMatrix(t, db, "m", vocab.TypeMatrix).IsWellFormed(nil)
	requireSysErr(t, err)

	untyped, err := vocab.NewMatrixVocabElement(db.ID(), "u")
	require.NoError(t, err)
	ok, err := untyped.IsWellFormed(vl)
	require.NoError(t, err)
	assert.False(t, ok)

	empty := newMatrix(t, db, "e", vocab.TypeMatrix)
	ok, err = empty.IsWellFormed(vl)
	require.NoError(t, err)
	assert.False(t, ok)

	m := newMatrix(t, db, "m", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"))
	ok, err = m.IsWellFormed(vl)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, vl.AddElement(m))

	// an indexed entry checked against its own copy
	mcp, err := vl.GetMatrixVocabElement(m.ID())
	require.NoError(t, err)
	ok, err = mcp.IsWellFormed(vl)
	require.NoError(t, err)
	assert.True(t, ok)

	// a new element may not take a used name
	dup := newMatrix(t, db, "m", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"))
	ok, err = dup.IsWellFormed(vl)
	require.NoError(t, err)
	assert.False(t, ok)

	// an indexed element whose entry is gone
	require.NoError(t, vl.RemoveVocabElement(m.ID()))
	ok, err = mcp.IsWellFormed(vl)
	require.NoError(t, err)
	assert.False(t, ok)

	other := newTestDB(t)
	foreign := newMatrix(t, other, "x", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"))
	ok, err = foreign.IsWellFormed(vl)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatrixStrings(t *testing.T) {
	db := newTestDB(t)

	m := newMatrix(t, db, "m", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"), newArg(t, fargs.QuoteStringKind, "<b>"))
	assert.Equal(t, "m(<a>, <b>)", m.String())

	f := newMatrix(t, db, "f", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"))
	require.NoError(t, db.VocabList().AddElement(f))

	expected := "(MatrixVocabElement (id 1) (name f) (system false) (type MATRIX) (varLen false) " +
		"(fArgList ((UnTypedFormalArg (id 2) (name <a>) (veID 1)))) " +
		"(cpfArgList ((IntFormalArg (id 3) (name <ord>) (veID 1) (subRange false) (minVal -9223372036854775808) (maxVal 9223372036854775807)), " +
		"(TimeStampFormalArg (id 4) (name <onset>) (veID 1) (subRange false) (minVal 0) (maxVal 9223372036854775807)), " +
		"(TimeStampFormalArg (id 5) (name <offset>) (veID 1) (subRange false) (minVal 0) (maxVal 9223372036854775807)), " +
		"(UnTypedFormalArg (id 6) (name <a>) (veID 1))))"
	assert.Equal(t, expected, f.DBString())
}

func TestMatrixCopy(t *testing.T) {
	db := newTestDB(t)
	m := newMatrix(t, db, "m", vocab.TypeMatrix, newArg(t, fargs.UnTypedKind, "<a>"))
	require.NoError(t, db.VocabList().AddElement(m))

	cp := m.Copy()
	assert.Equal(t, m.DBString(), cp.DBString())

	require.NoError(t, cp.AppendFormalArg(newArg(t, fargs.IntKind, "<b>")))
	assert.Equal(t, 1, m.NumFormalArgs())
	assert.Equal(t, 4, m.NumCPFormalArgs())
	assert.Equal(t, 2, cp.NumFormalArgs())

	// mutating a returned argument does not reach the element
	arg, err := m.FormalArg(0)
	require.NoError(t, err)
	require.NoError(t, arg.SetName("<z>"))
	assert.Equal(t, []string{"<a>"}, visibleNames(t, m))
}
