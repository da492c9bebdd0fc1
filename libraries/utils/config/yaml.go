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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// FromYAML reads a YAML mapping into a MapConfig. Nested mappings are flattened into dotted keys, so
//
//	log:
//	  level: debug
//
// sets "log.level". Scalars are stored in their YAML string form.
func FromYAML(data []byte) (*MapConfig, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	props := make(map[string]string)
	if err := flatten("", doc, props); err != nil {
		return nil, err
	}

	return NewMapConfig(props), nil
}

// FromYAMLFile reads the YAML config file at path.
func FromYAMLFile(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file '%s'", path)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config file '%s'", path)
	}

	return cfg, nil
}

func flatten(prefix string, doc yaml.MapSlice, props map[string]string) error {
	for _, item := range doc {
		key := fmt.Sprint(item.Key)
		if prefix != "" {
			key = prefix + "." + key
		}

		switch val := item.Value.(type) {
		case yaml.MapSlice:
			if err := flatten(key, val, props); err != nil {
				return err
			}
		case []interface{}:
			return errors.Errorf("config key '%s' is a list; only scalar values are supported", key)
		case nil:
			props[key] = ""
		default:
			props[key] = fmt.Sprint(val)
		}
	}

	return nil
}
