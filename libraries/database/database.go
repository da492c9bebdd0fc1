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
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/vocabdb/libraries/column"
	"github.com/dolthub/vocabdb/libraries/events"
	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/syserr"
	"github.com/dolthub/vocabdb/libraries/vocab"
)

const (
	// DefaultArgName names the argument of a new single argument column.
	DefaultArgName = "<val>"

	// DefaultMatrixArgName names the first argument of a new MATRIX column.
	DefaultMatrixArgName = "<arg0>"
)

// Database is the in memory owner of a vocabulary, its Index and the columns bound to it.
type Database struct {
	id      uuid.UUID
	name    string
	idx     *index.Index
	vl      *vocab.VocabList
	columns []*column.DataColumn
	cascade *cascade
	emitter events.Emitter
	log     *logrus.Entry
}

var _ vocab.DB = (*Database)(nil)

// New creates an empty database.
func New(opts Options) (*Database, error) {
	if opts.Name == "" {
		opts.Name = DefaultOptions().Name
	}

	if opts.LogLevel == "" {
		opts.LogLevel = DefaultOptions().LogLevel
	}

	logger, err := opts.logger()
	if err != nil {
		return nil, err
	}

	db := &Database{
		id:      uuid.New(),
		name:    opts.Name,
		emitter: events.NullEmitter{},
	}

	db.log = logger.WithFields(logrus.Fields{"db": db.name, "db_id": db.id.String()})

	if opts.TraceEvents {
		wr := opts.TraceWriter
		if wr == nil {
			wr = os.Stderr
		}

		db.emitter = events.WriterEmitter{Wr: wr}
	}

	db.idx = index.New(db.log)
	db.vl, err = vocab.NewVocabList(db, db.log)
	if err != nil {
		return nil, err
	}

	db.log.Debug("created database")
	return db, nil
}

func (db *Database) ID() uuid.UUID {
	return db.id
}

func (db *Database) Name() string {
	return db.name
}

func (db *Database) Index() *index.Index {
	return db.idx
}

func (db *Database) VocabList() *vocab.VocabList {
	return db.vl
}

func (db *Database) IsValidVariableName(name string) bool {
	return vocab.IsValidVariableName(name)
}

func (db *Database) IsValidPredicateName(name string) bool {
	return vocab.IsValidPredicateName(name)
}

func (db *Database) IsValidArgumentName(name string) bool {
	return fargs.IsValidArgName(name)
}

// CascadeInProgress reports whether a cascade bracket is open.
func (db *Database) CascadeInProgress() bool {
	return db.cascade != nil
}

// CascadeStart opens a cascade bracket and begins a cascade on every column. The returned guard's End must be
// called to close it. Brackets do not nest.
func (db *Database) CascadeStart() (vocab.Cascade, error) {
	if db.cascade != nil {
		return nil, syserr.New("cascade already in progress on database '%s'", db.name)
	}

	for i, col := range db.columns {
		if err := col.BeginCascade(db.id); err != nil {
			// undo the columns already begun so none is left cascading
			for _, begun := range db.columns[:i] {
				if endErr := begun.EndCascade(db.id); endErr != nil {
					db.log.WithError(endErr).Error("failed to end cascade while unwinding")
				}
			}

			return nil, err
		}
	}

	db.cascade = &cascade{db: db, buf: events.NewBuffer(db.emitter)}
	db.log.Debug("cascade start")

	return db.cascade, nil
}

func defaultArgKind(t vocab.MatrixType) (fargs.Kind, string, error) {
	switch t {
	case vocab.TypeText:
		return fargs.TextStringKind, DefaultArgName, nil
	case vocab.TypeNominal:
		return fargs.NominalKind, DefaultArgName, nil
	case vocab.TypeInteger:
		return fargs.IntKind, DefaultArgName, nil
	case vocab.TypeFloat:
		return fargs.FloatKind, DefaultArgName, nil
	case vocab.TypePredicate:
		return fargs.PredKind, DefaultArgName, nil
	case vocab.TypeMatrix:
		return fargs.UnTypedKind, DefaultMatrixArgName, nil
	}

	return 0, "", syserr.New("cannot create a column of type %s", t)
}

// NewMatrixVocabElement builds a matrix element of type t holding the default argument for that type.
func (db *Database) NewMatrixVocabElement(name string, t vocab.MatrixType) (*vocab.MatrixVocabElement, error) {
	kind, argName, err := defaultArgKind(t)
	if err != nil {
		return nil, err
	}

	mve, err := vocab.NewMatrixVocabElement(db.id, name)
	if err != nil {
		return nil, err
	}

	if err = mve.SetType(t); err != nil {
		return nil, err
	}

	arg, err := fargs.New(kind, argName)
	if err != nil {
		return nil, err
	}

	if err = mve.AppendFormalArg(arg); err != nil {
		return nil, err
	}

	return mve, nil
}

// CreateColumn adds a matrix vocab element named name of type t and binds a new column to it.
func (db *Database) CreateColumn(name string, t vocab.MatrixType) (*column.DataColumn, error) {
	mve, err := db.NewMatrixVocabElement(name, t)
	if err != nil {
		return nil, err
	}

	return db.AddColumn(mve)
}

// AddColumn adds mve, which must be well formed, to the vocabulary and binds a new column to it.
func (db *Database) AddColumn(mve *vocab.MatrixVocabElement) (*column.DataColumn, error) {
	if mve == nil {
		return nil, syserr.New("nil matrix vocab element supplied to AddColumn")
	}

	ok, err := mve.IsWellFormed(db.vl)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, syserr.New("matrix vocab element '%s' is not well formed", mve.Name())
	}

	if err = db.vl.AddElement(mve); err != nil {
		return nil, err
	}

	dc, err := column.NewDataColumn(db.id, mve.ID(), mve.Name(), db.log)
	if err != nil {
		return nil, err
	}

	if err = db.vl.RegisterInternalVEListener(mve.ID(), dc); err != nil {
		return nil, err
	}

	db.columns = append(db.columns, dc)
	db.log.WithField("id", mve.ID()).Infof("created column %s", mve.Name())

	return dc, nil
}

// AddPredicate adds pve, which must be well formed, to the vocabulary.
func (db *Database) AddPredicate(pve *vocab.PredicateVocabElement) error {
	if pve == nil {
		return syserr.New("nil predicate vocab element supplied to AddPredicate")
	}

	ok, err := pve.IsWellFormed(db.vl)
	if err != nil {
		return err
	} else if !ok {
		return syserr.New("predicate vocab element '%s' is not well formed", pve.Name())
	}

	if err = db.vl.AddElement(pve); err != nil {
		return err
	}

	db.log.WithField("id", pve.ID()).Infof("created predicate %s", pve.Name())
	return nil
}

// Column returns the column bound to the matrix vocab element with the given id.
func (db *Database) Column(id index.ID) (*column.DataColumn, error) {
	for _, col := range db.columns {
		if col.ID() == id {
			return col, nil
		}
	}

	return nil, syserr.New("no column with id %d in database '%s'", id, db.name)
}

func (db *Database) ColumnByName(name string) (*column.DataColumn, error) {
	for _, col := range db.columns {
		if col.Name() == name {
			return col, nil
		}
	}

	return nil, syserr.New("no column named '%s' in database '%s'", name, db.name)
}

// Columns returns the columns in creation order.
func (db *Database) Columns() []*column.DataColumn {
	return append([]*column.DataColumn(nil), db.columns...)
}

func (db *Database) AppendCell(colID index.ID) (*column.Cell, error) {
	col, err := db.Column(colID)
	if err != nil {
		return nil, err
	}

	return col.AppendCell()
}

// RemoveColumn removes the column and its matrix vocab element.
func (db *Database) RemoveColumn(colID index.ID) error {
	if _, err := db.Column(colID); err != nil {
		return err
	}

	// the column learns of the deletion inside the cascade and is dropped when it ends
	return db.vl.RemoveVocabElement(colID)
}

// dropDeletedColumns unregisters columns whose vocabulary entry has been removed, however it was removed.
func (db *Database) dropDeletedColumns() {
	live := db.columns[:0]
	for _, col := range db.columns {
		if col.Deleted() {
			db.log.WithField("id", col.ID()).Infof("removed column %s", col.Name())
			continue
		}

		live = append(live, col)
	}

	// clear the tail so dropped columns can be collected
	for i := len(live); i < len(db.columns); i++ {
		db.columns[i] = nil
	}

	db.columns = live
}
