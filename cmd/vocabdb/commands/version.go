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
)

const Version = "0.1.0"

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the vocabdb version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vocabdb version %s\n", Version)
		},
	}
}

// NewRootCmd assembles the vocabdb command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocabdb",
		Short:         "vocabdb builds and checks coding vocabularies",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(NewLoadCmd(), NewVersionCmd())

	return root
}
