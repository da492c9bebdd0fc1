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
	"regexp"
	"strings"

	"github.com/dolthub/vocabdb/libraries/fargs"
	"github.com/dolthub/vocabdb/libraries/syserr"
)

// MatrixType is the declared type of a matrix vocabulary element. It is set once and never reverts to
// TypeUndefined.
type MatrixType int

const (
	TypeUndefined MatrixType = iota
	TypeText
	TypeNominal
	TypeInteger
	TypeFloat
	TypePredicate
	TypeMatrix
)

var matrixTypeNames = []string{"UNDEFINED", "TEXT", "NOMINAL", "INTEGER", "FLOAT", "PREDICATE", "MATRIX"}

func (t MatrixType) String() string {
	if t >= TypeUndefined && int(t) < len(matrixTypeNames) {
		return matrixTypeNames[t]
	}

	return fmt.Sprintf("MatrixType(%d)", int(t))
}

// ParseMatrixType maps a case-insensitive type name such as "matrix" or "integer" to its MatrixType.
func ParseMatrixType(s string) (MatrixType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range matrixTypeNames {
		if name == s && MatrixType(i) != TypeUndefined {
			return MatrixType(i), nil
		}
	}

	return TypeUndefined, syserr.New("unknown matrix type '%s'", s)
}

// IsCompatible reports whether an argument of kind k may occupy a slot of an element of type t. Single argument
// types take exactly their matching kind; a matrix takes any kind but text.
func IsCompatible(t MatrixType, k fargs.Kind) bool {
	switch t {
	case TypeText:
		return k == fargs.TextStringKind
	case TypeNominal:
		return k == fargs.NominalKind
	case TypeInteger:
		return k == fargs.IntKind
	case TypeFloat:
		return k == fargs.FloatKind
	case TypePredicate:
		return k == fargs.PredKind
	case TypeMatrix:
		return k >= fargs.UnTypedKind && k <= fargs.ColPredKind && k != fargs.TextStringKind
	}

	return false
}

// predicate arguments may be anything but text or a column predicate reference
func predArgAllowed(k fargs.Kind) bool {
	return k >= fargs.UnTypedKind && k <= fargs.PredKind && k != fargs.TextStringKind
}

const (
	// VariableNameRegexStr is the regular expression that matrix (column) names must match.
	VariableNameRegexStr = `^[a-zA-Z_][-.0-9a-zA-Z_]*$`

	// PredicateNameRegexStr is the regular expression that predicate names must match.
	PredicateNameRegexStr = `^[a-zA-Z][0-9a-zA-Z_]*$`
)

var (
	variableNameRegex  = regexp.MustCompile(VariableNameRegexStr)
	predicateNameRegex = regexp.MustCompile(PredicateNameRegexStr)
)

// IsValidVariableName returns true if name may name a matrix vocabulary element.
func IsValidVariableName(name string) bool {
	return variableNameRegex.MatchString(name)
}

// IsValidPredicateName returns true if name may name a predicate vocabulary element.
func IsValidPredicateName(name string) bool {
	return predicateNameRegex.MatchString(name)
}

// matrix and predicate names share one namespace, so a lookup accepts either form
func isValidLookupName(name string) bool {
	return IsValidVariableName(name) || IsValidPredicateName(name)
}
