// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp()
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "avl-tool"
	app.Usage = "run operation scripts against an AVL tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "checks, k",
			Usage: " verify the tree structure after every change",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute a script of tree operations",
			ArgsUsage: "[SCRIPT-FILE]\n   (default is the configuration script)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "save, s",
					Usage: " write the final tree back to the configured database",
				},
				cli.BoolFlag{
					Name:  "strict",
					Usage: " fail if any operation failed",
				},
			},
			Action: runScript,
		},
		{
			Name:      "load",
			Usage:     "fill a tree from a LevelDB database and list it",
			ArgsUsage: "[DATABASE-DIRECTORY]\n   (default is the configuration database)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: " only load keys starting with `PREFIX`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 0,
					Usage: " maximum records to load `COUNT`",
				},
				cli.BoolFlag{
					Name:  "print",
					Usage: " draw the tree instead of listing it",
				},
			},
			Action: runLoad,
		},
		{
			Name:      "stress",
			Usage:     "insert, remove and re-insert a permuted key sequence",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 1000,
					Usage: " number of keys `COUNT`",
				},
				cli.IntFlag{
					Name:  "step, s",
					Value: 1,
					Usage: " insertion order step, coprime with count `STEP`",
				},
				cli.IntFlag{
					Name:  "every, e",
					Value: 7,
					Usage: " remove keys that are multiples of `N`",
				},
			},
			Action: runStress,
		},
		{
			Name:      "watch",
			Usage:     "run a script each time the file changes",
			ArgsUsage: "SCRIPT-FILE",
			Action:    runWatch,
		},
		{
			Name:   "version",
			Usage:  "display avl-tool version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		file := c.GlobalString("config")

		var config *Configuration
		var err error
		if "" == file {
			config, err = getDefaultConfiguration()
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			config, err = getConfiguration(file)
		}
		if nil != err {
			return err
		}

		if c.GlobalBool("checks") {
			config.Checks = true
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("main")
		log.Infof("starting: %s  version: %s", app.Name, version)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}

// create an empty tree honouring the checks setting
func newTree(config *Configuration) *avl.Tree[string, string] {
	if config.Checks {
		return avl.New[string, string](avl.WithChecks())
	}
	return avl.New[string, string]()
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
