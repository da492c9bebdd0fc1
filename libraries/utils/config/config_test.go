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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapConfig(t *testing.T) {
	cfg := NewMapConfig(nil)
	assert.Equal(t, 0, cfg.Size())

	_, err := cfg.GetString("db.name")
	assert.Equal(t, ErrConfigParamNotFound, err)

	require.NoError(t, cfg.SetStrings(map[string]string{"db.name": "study", "log.level": "debug"}))
	assert.Equal(t, 2, cfg.Size())

	val, err := cfg.GetString("db.name")
	require.NoError(t, err)
	assert.Equal(t, "study", val)

	var keys []string
	cfg.Iter(func(k, v string) bool {
		keys = append(keys, k)
		return false
	})
	assert.Equal(t, []string{"db.name", "log.level"}, keys)

	require.NoError(t, cfg.Unset([]string{"db.name"}))
	assert.Equal(t, 1, cfg.Size())
	assert.Equal(t, "fallback", GetStringOrDefault(cfg, "db.name", "fallback"))
}

func TestGetBool(t *testing.T) {
	cfg := NewMapConfig(map[string]string{"events.trace": "true", "bad": "maybe"})

	b, err := GetBool(cfg, "events.trace", false)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = GetBool(cfg, "missing", true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = GetBool(cfg, "bad", false)
	assert.Error(t, err)
}

func TestFromYAML(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected map[string]string
		expErr   bool
	}{
		{
			name:     "flat",
			yaml:     "db.name: study\n",
			expected: map[string]string{"db.name": "study"},
		},
		{
			name:     "nested",
			yaml:     "db:\n  name: study\nlog:\n  level: debug\n  format: json\nevents:\n  trace: true\n",
			expected: map[string]string{"db.name": "study", "log.level": "debug", "log.format": "json", "events.trace": "true"},
		},
		{
			name:   "list",
			yaml:   "db:\n  - a\n  - b\n",
			expErr: true,
		},
		{
			name:   "malformed",
			yaml:   "db: [",
			expErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := FromYAML([]byte(test.yaml))
			if test.expErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(test.expected), cfg.Size())
			for k, v := range test.expected {
				assert.Equal(t, v, GetStringOrDefault(cfg, k, ""), k)
			}
		})
	}
}

func TestFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocabdb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: trace\n"), 0644))

	cfg, err := FromYAMLFile(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", GetStringOrDefault(cfg, "log.level", ""))

	_, err = FromYAMLFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
