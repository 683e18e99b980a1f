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
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danieldk/w2vtext"
	"github.com/danieldk/w2vtext/internal/config"
)

// app carries state shared by the subcommands.
type app struct {
	configPath string
	dim        int
	logLevel   string

	cfg    *config.Config
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		logger: logrus.New(),
	}
	a.logger.SetOutput(os.Stderr)

	rootCmd := &cobra.Command{
		Use:   "w2vtext",
		Short: "Inspect and apply word2vec text embeddings",
		Long: `w2vtext loads word embeddings in the word2vec text format, with or
without a (vocab_size, emb_dim) header, and uses them to initialize
embedding matrices or to answer similarity queries.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/w2vtext/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&a.dim, "dim", 0, "expected embedding dimension (0: any)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newStatsCmd(a),
		newFillCmd(a),
		newSimilarCmd(a),
		newAnalogyCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("dim") {
		cfg.Dim = a.dim
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)

	a.cfg = cfg

	return nil
}

// embeddingsPath returns the embeddings file from the arguments or,
// failing that, from the configuration.
func (a *app) embeddingsPath(args []string) (string, error) {
	path := a.cfg.Embeddings
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", fmt.Errorf("no embeddings file given")
	}

	return config.ExpandPath(path)
}

func (a *app) openEmbeddings(args []string) (*w2vtext.Reader, error) {
	path, err := a.embeddingsPath(args)
	if err != nil {
		return nil, err
	}

	return w2vtext.Open(path,
		w2vtext.WithExpectedDim(a.cfg.Dim),
		w2vtext.WithLogger(a.logger))
}
