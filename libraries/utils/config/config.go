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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrConfigParamNotFound is returned when a requested key is not set.
var ErrConfigParamNotFound = errors.New("param not found")

// ReadableConfig is a source of string properties.
type ReadableConfig interface {
	// GetString retrieves a value for a given key, or ErrConfigParamNotFound.
	GetString(key string) (string, error)

	// Iter calls cb for each property until cb returns true.
	Iter(cb func(string, string) (stop bool))

	Size() int
}

// WritableConfig is a ReadableConfig that can be changed.
type WritableConfig interface {
	ReadableConfig

	SetStrings(updates map[string]string) error
	Unset(params []string) error
}

// GetStringOrDefault returns the value for key, or defStr if the key is not set.
func GetStringOrDefault(cfg ReadableConfig, key, defStr string) string {
	if cfg == nil {
		return defStr
	}

	val, err := cfg.GetString(key)
	if err != nil {
		return defStr
	}

	return val
}

// GetBool parses the value for key as a bool. A missing key yields defVal.
func GetBool(cfg ReadableConfig, key string, defVal bool) (bool, error) {
	if cfg == nil {
		return defVal, nil
	}

	val, err := cfg.GetString(key)
	if err == ErrConfigParamNotFound {
		return defVal, nil
	} else if err != nil {
		return false, err
	}

	return strconv.ParseBool(strings.TrimSpace(val))
}
