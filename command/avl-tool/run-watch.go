// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.Args().First()
	if "" == fileName {
		return ErrMissingScript
	}

	// buffer of one, further events are merged
	change := make(chan struct{}, 1)
	remove := make(chan struct{}, 1)

	watcher, err := newFileWatcher(fileName, m.log, change, remove)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	execute := func() {
		lines, err := readScript(fileName)
		if nil != err {
			fmt.Fprintf(m.e, "read: %s\n", err)
			return
		}
		fmt.Fprintf(m.w, "--- %s\n", fileName)
		r := newRunner(newTree(m.config), m.w)
		if err := r.run(lines); nil != err {
			fmt.Fprintf(m.e, "%s\n", err)
		}
	}
	execute()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	for {
		select {
		case <-change:
			execute()
		case <-remove:
			m.log.Info("script removed")
			return nil
		case sig := <-ch:
			m.log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
