// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/storage"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	lines, err := scriptLines(c.Args().First(), m.config)
	if nil != err {
		return err
	}

	save := c.Bool("save")
	tree := newTree(m.config)

	var source *storage.Source
	if "" != m.config.Database.Directory {
		source, err = storage.Open(m.config.Database.Directory, !save)
		if nil != err {
			return err
		}
		defer source.Close()

		if err := fill(m, source, tree, m.config.Database.Prefix, m.config.Database.Limit); nil != err {
			return err
		}
	}

	r := newRunner(tree, m.w)
	if err := r.run(lines); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d  failures: %d\n", r.operations.Uint64(), r.failures.Uint64())
	}

	if save && nil != source {
		n, err := source.Save(tree, []byte(m.config.Database.Prefix))
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "saved: %d\n", n)
	}

	if c.Bool("strict") && !r.failures.IsZero() {
		return ErrScriptFailed
	}
	return nil
}

// script file argument takes precedence over the configured script
func scriptLines(fileName string, config *Configuration) ([]string, error) {
	if "" != fileName {
		return readScript(fileName)
	}
	if len(config.Script) > 0 {
		return config.Script, nil
	}
	return nil, ErrMissingScript
}

// load records from the database into the tree
func fill(m *metadata, source *storage.Source, tree *avl.Tree[string, string], prefix string, limit int) error {
	result, err := source.Fill(tree, []byte(prefix), limit)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "loaded: %d  duplicates: %d\n", result.Inserted, result.Duplicates)
	}
	return nil
}
