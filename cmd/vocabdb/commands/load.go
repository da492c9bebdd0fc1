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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dolthub/vocabdb/libraries/database"
	"github.com/dolthub/vocabdb/libraries/errhand"
	"github.com/dolthub/vocabdb/libraries/utils/config"
)

const (
	configFlag = "config"
	debugFlag  = "debug"
)

// NewLoadCmd returns the load command. It builds a fresh in-memory database from a schema file and prints the
// resulting vocabulary. Nothing is persisted.
func NewLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <schema.yaml>",
		Short: "Load a vocabulary definition and print the resulting vocabulary list",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoad,
	}

	cmd.Flags().String(configFlag, "", "YAML configuration file (db.name, log.level, log.format, events.trace)")
	cmd.Flags().Bool(debugFlag, false, "log at debug level and print the full database representation")

	return cmd
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString(configFlag)
	debug, _ := cmd.Flags().GetBool(debugFlag)

	opts, verr := loadOptions(cfgPath)
	if verr != nil {
		return verr
	}

	if debug {
		opts.LogLevel = "debug"
	}

	if opts.TraceEvents && opts.TraceWriter == nil {
		opts.TraceWriter = cmd.ErrOrStderr()
	}

	sch, err := LoadSchemaFile(args[0])
	if err != nil {
		return errhand.BuildDError("error: failed to load schema").AddCause(err).Build()
	}

	db, err := database.New(opts)
	if err != nil {
		return errhand.BuildDError("error: failed to create database").AddCause(err).Build()
	}

	if verr := sch.Apply(db); verr != nil {
		return verr
	}

	out := cmd.OutOrStdout()
	if debug {
		fmt.Fprintln(out, db.VocabList().DBString())
		return nil
	}

	fmt.Fprintf(out, "%s: %d columns, %d predicates\n", db.Name(), len(db.Columns()), len(db.VocabList().GetPreds()))
	fmt.Fprintln(out, db.VocabList().String())

	return nil
}

func loadOptions(path string) (database.Options, errhand.VerboseError) {
	if path == "" {
		return database.DefaultOptions(), nil
	}

	cfg, err := config.FromYAMLFile(path)
	if err != nil {
		return database.Options{}, errhand.BuildDError("error: failed to read config").AddCause(err).Build()
	}

	opts, err := database.OptionsFromConfig(cfg)
	if err != nil {
		return database.Options{}, errhand.BuildDError("error: invalid config '%s'", path).AddCause(err).Build()
	}

	return opts, nil
}
