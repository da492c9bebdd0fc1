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
	"io"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/vocabdb/libraries/utils/config"
)

const (
	NameKey        = "db.name"
	LogLevelKey    = "log.level"
	LogFormatKey   = "log.format"
	TraceEventsKey = "events.trace"
)

// Options configure a Database.
type Options struct {
	Name      string `yaml:"name" default:"untitled"`
	LogLevel  string `yaml:"log_level" default:"info"`
	LogFormat string `yaml:"log_format" default:"text"`

	// TraceEvents writes every delivered vocabulary event to TraceWriter, or stderr if it is nil.
	TraceEvents bool      `yaml:"trace_events"`
	TraceWriter io.Writer `yaml:"-" default:"-"`

	// Logger overrides the logger built from LogLevel and LogFormat.
	Logger *logrus.Logger `yaml:"-" default:"-"`
}

// DefaultOptions returns Options with every default applied.
func DefaultOptions() Options {
	var opts Options
	defaults.MustSet(&opts)
	return opts
}

// OptionsFromConfig reads Options from cfg. Keys that are not set keep their defaults.
func OptionsFromConfig(cfg config.ReadableConfig) (Options, error) {
	opts := DefaultOptions()

	opts.Name = config.GetStringOrDefault(cfg, NameKey, opts.Name)
	opts.LogLevel = config.GetStringOrDefault(cfg, LogLevelKey, opts.LogLevel)
	opts.LogFormat = config.GetStringOrDefault(cfg, LogFormatKey, opts.LogFormat)

	trace, err := config.GetBool(cfg, TraceEventsKey, opts.TraceEvents)
	if err != nil {
		return Options{}, errors.Wrapf(err, "invalid value for %s", TraceEventsKey)
	}
	opts.TraceEvents = trace

	if _, err := opts.logger(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func (opts Options) logger() (*logrus.Logger, error) {
	if opts.Logger != nil {
		return opts.Logger, nil
	}

	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value for %s", LogLevelKey)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	switch strings.ToLower(opts.LogFormat) {
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("invalid value for %s: '%s' (expected text or json)", LogFormatKey, opts.LogFormat)
	}

	return logger, nil
}
