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

package syserr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("element %d not found", 7)
	assert.True(t, Is(err))
	assert.Equal(t, "system error: element 7 not found", err.Error())

	err = New("100% literal")
	assert.Equal(t, "system error: 100% literal", err.Error())
}

func TestIsOtherErrors(t *testing.T) {
	assert.False(t, Is(nil))
	assert.False(t, Is(errors.New("plain")))
}
