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

package errhand

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/vocabdb/libraries/syserr"
)

func init() {
	color.NoColor = true
}

func TestDErrorBuilder(t *testing.T) {
	verr := BuildDError("error: failed to load '%s'", "schema.yaml").
		AddDetails("line %d", 3).
		AddDetails("column 7").
		AddCause(errors.New("unexpected token")).
		Build()

	require.NotNil(t, verr)
	assert.Equal(t, "error: failed to load 'schema.yaml'", verr.Error())
	assert.Equal(t, "error: failed to load 'schema.yaml'\nline 3\ncolumn 7\ncause:\n\t\tunexpected token", verr.Verbose())
}

func TestBuildIfNil(t *testing.T) {
	assert.Nil(t, BuildIf(nil, "never").AddDetails("x").Build())

	verr := BuildIf(errors.New("boom"), "error: %s", "wrapped").Build()
	require.NotNil(t, verr)
	assert.Equal(t, "error: wrapped\ncause:\n\t\tboom", verr.Verbose())
}

func TestNestedVerboseCause(t *testing.T) {
	inner := BuildDError("inner").AddDetails("a\nb").Build()
	outer := BuildDError("outer").AddCause(inner).Build()
	assert.Equal(t, "outer\ncause:\n\t\tinner\n\t\ta\n\t\tb", outer.Verbose())
}

func TestVerboseErrorFromError(t *testing.T) {
	assert.Nil(t, VerboseErrorFromError(nil))

	verr := VerboseErrorFromError(syserr.New("name 'm' is already in use"))
	assert.Equal(t, "error: schema edit rejected", verr.Error())
	assert.Contains(t, verr.Verbose(), "name 'm' is already in use")

	verr = VerboseErrorFromError(errors.New("disk full"))
	assert.Equal(t, "error: disk full", verr.Error())

	same := BuildDError("x").Build()
	assert.Equal(t, same, VerboseErrorFromError(same))
}
