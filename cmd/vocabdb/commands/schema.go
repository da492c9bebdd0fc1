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

package commands

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/vocabdb/libraries/database"
	"github.com/dolthub/vocabdb/libraries/errhand"
	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/index"
	"github.com/dolthub/vocabdb/libraries/vocab"
)

// ArgDef describes one formal argument in a schema file. Min and Max apply to integer, float and time stamp
// arguments. Approved lists nominal values, or predicate names for predicate arguments.
type ArgDef struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Min      *float64 `yaml:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty"`
	Approved []string `yaml:"approved,omitempty"`
}

type ColumnDef struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Hidden   bool     `yaml:"hidden,omitempty"`
	ReadOnly bool     `yaml:"read_only,omitempty"`
	Args     []ArgDef `yaml:"args,omitempty"`
}

type PredicateDef struct {
	Name   string   `yaml:"name"`
	VarLen bool     `yaml:"var_len,omitempty"`
	Args   []ArgDef `yaml:"args"`
}

// Schema is a vocabulary definition. Predicates are created first, in order, so predicate arguments can approve
// any predicate defined before them.
type Schema struct {
	Predicates []PredicateDef `yaml:"predicates"`
	Columns    []ColumnDef    `yaml:"columns"`
}

func ParseSchema(data []byte) (*Schema, error) {
	var sch Schema
	if err := yaml.UnmarshalStrict(data, &sch); err != nil {
		return nil, errors.Wrap(err, "invalid schema")
	}

	return &sch, nil
}

func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema file '%s'", path)
	}

	return ParseSchema(data)
}

// Apply creates every predicate and column of the schema in db.
func (sch *Schema) Apply(db *database.Database) errhand.VerboseError {
	for _, pd := range sch.Predicates {
		if err := applyPredicate(db, pd); err != nil {
			return errhand.BuildDError("error: failed to create predicate '%s'", pd.Name).AddCause(err).Build()
		}
	}

	for _, cd := range sch.Columns {
		if err := applyColumn(db, cd); err != nil {
			return errhand.BuildDError("error: failed to create column '%s'", cd.Name).AddCause(err).Build()
		}
	}

	return nil
}

func applyPredicate(db *database.Database, pd PredicateDef) error {
	pve, err := vocab.NewPredicateVocabElement(db.ID(), pd.Name)
	if err != nil {
		return err
	}

	if err = pve.SetVarLen(pd.VarLen); err != nil {
		return err
	}

	for _, ad := range pd.Args {
		arg, err := buildArg(db.VocabList(), ad)
		if err != nil {
			return err
		}

		if err = pve.AppendFormalArg(arg); err != nil {
			return err
		}
	}

	return db.AddPredicate(pve)
}

func applyColumn(db *database.Database, cd ColumnDef) error {
	mType, err := vocab.ParseMatrixType(cd.Type)
	if err != nil {
		return err
	}

	var mve *vocab.MatrixVocabElement
	if len(cd.Args) == 0 {
		mve, err = db.NewMatrixVocabElement(cd.Name, mType)
		if err != nil {
			return err
		}
	} else {
		mve, err = vocab.NewMatrixVocabElement(db.ID(), cd.Name)
		if err != nil {
			return err
		}

		if err = mve.SetType(mType); err != nil {
			return err
		}

		for _, ad := range cd.Args {
			arg, err := buildArg(db.VocabList(), ad)
			if err != nil {
				return err
			}

			if err = mve.AppendFormalArg(arg); err != nil {
				return err
			}
		}
	}

	dc, err := db.AddColumn(mve)
	if err != nil {
		return err
	}

	dc.SetHidden(cd.Hidden)
	dc.SetReadOnly(cd.ReadOnly)

	return nil
}

func buildArg(vl *vocab.VocabList, ad ArgDef) (fargs.FormalArgument, error) {
	kind, err := fargs.ParseKind(ad.Kind)
	if err != nil {
		return nil, err
	}

	arg, err := fargs.New(kind, ad.Name)
	if err != nil {
		return nil, err
	}

	hasRange := ad.Min != nil || ad.Max != nil
	switch a := arg.(type) {
	case *fargs.Int:
		if hasRange {
			lo, hi := a.Range()
			err = a.SetRange(intBound(ad.Min, lo), intBound(ad.Max, hi))
		}
	case *fargs.TimeStamp:
		if hasRange {
			lo, hi := a.Range()
			err = a.SetRange(intBound(ad.Min, lo), intBound(ad.Max, hi))
		}
	case *fargs.Float:
		if hasRange {
			lo, hi := a.Range()
			err = a.SetRange(floatBound(ad.Min, lo), floatBound(ad.Max, hi))
		}
	case *fargs.Nominal:
		if len(ad.Approved) > 0 {
			a.SetSubRange(true)
			for _, val := range ad.Approved {
				if err = a.AddApproved(val); err != nil {
					break
				}
			}
		}
	case *fargs.Pred:
		if len(ad.Approved) > 0 {
			a.SetSubRange(true)
			for _, name := range ad.Approved {
				var id index.ID
				if id, err = approvedPredID(vl, name); err != nil {
					break
				}

				if err = a.AddApproved(id); err != nil {
					break
				}
			}
		}
	default:
		if hasRange || len(ad.Approved) > 0 {
			err = errors.Errorf("%s argument %s takes no range or approved values", kind, ad.Name)
		}
	}

	if err != nil {
		return nil, err
	}

	return arg, nil
}

func approvedPredID(vl *vocab.VocabList, name string) (index.ID, error) {
	pve, err := vl.GetPredicateVocabElementByName(name)
	if err != nil {
		return index.InvalidID, err
	}

	return pve.ID(), nil
}

func intBound(v *float64, def int64) int64 {
	if v == nil {
		return def
	}

	return int64(*v)
}

func floatBound(v *float64, def float64) float64 {
	if v == nil {
		return def
	}

	return *v
}
