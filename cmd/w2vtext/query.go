// Copyright 2015 Daniël de Kok
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

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieldk/w2vtext"
)

const queryLimit = 10

func newSimilarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "similar [vectors.txt]",
		Short: "Print the nearest neighbours of words read from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			embeds, err := a.queryEmbeddings(args)
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Split(bufio.ScanWords)
			for scanner.Scan() {
				token := scanner.Text()
				results, err := embeds.Similarity(token, queryLimit)
				if err != nil {
					a.logger.Warn(err)
					continue
				}

				printResults(cmd, results)
			}

			return scanner.Err()
		},
	}
}

func newAnalogyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analogy [vectors.txt]",
		Short: "Answer analogies (one 'a b c' triple per stdin line)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			embeds, err := a.queryEmbeddings(args)
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := scanner.Text()

				parts := strings.Fields(line)
				if len(parts) != 3 {
					a.logger.Warnf("Skipping line that does not have three words: %s", line)
					continue
				}

				results, err := embeds.Analogy(parts[0], parts[1], parts[2], queryLimit)
				if err != nil {
					a.logger.Warn(err)
					continue
				}

				printResults(cmd, results)
			}

			return scanner.Err()
		},
	}
}

func (a *app) queryEmbeddings(args []string) (*w2vtext.Embeddings, error) {
	r, err := a.openEmbeddings(args)
	if err != nil {
		return nil, err
	}

	return r.Embeddings()
}

func printResults(cmd *cobra.Command, results []w2vtext.WordSimilarity) {
	out := cmd.OutOrStdout()
	for _, wordSimilarity := range results {
		fmt.Fprintln(out, wordSimilarity.Word, wordSimilarity.Similarity)
	}
}
