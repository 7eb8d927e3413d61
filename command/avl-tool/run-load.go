// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/storage"
)

func runLoad(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	directory := m.config.Database.Directory
	if "" != c.Args().First() {
		directory = configuration.EnsureAbsolute(m.config.DataDirectory, c.Args().First())
	}

	prefix := m.config.Database.Prefix
	if c.IsSet("prefix") {
		prefix = c.String("prefix")
	}
	limit := m.config.Database.Limit
	if c.IsSet("limit") {
		limit = c.Int("limit")
	}

	source, err := storage.Open(directory, true)
	if nil != err {
		return err
	}
	defer source.Close()

	tree := newTree(m.config)
	if err := fill(m, source, tree, prefix, limit); nil != err {
		return err
	}

	if c.Bool("print") {
		tree.Fprint(m.w, true)
	} else {
		for key, value := range tree.InOrder() {
			fmt.Fprintf(m.w, "%s → %s\n", key, value)
		}
	}

	if root := tree.Root(); nil != root {
		fmt.Fprintf(m.w, "count: %d  height: %d\n", tree.Count(), root.Height())
	} else {
		fmt.Fprintf(m.w, "count: 0\n")
	}
	return nil
}
