// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// executes script operations against a single tree
type runner struct {
	log        *logger.L
	tree       *avl.Tree[string, string]
	w          io.Writer
	operations counter.Counter
	failures   counter.Counter
}

func newRunner(tree *avl.Tree[string, string], w io.Writer) *runner {
	return &runner{
		log:  logger.New("script"),
		tree: tree,
		w:    w,
	}
}

// argument counts for each operation: minimum and maximum, -1 for
// unlimited
var operations = map[string][2]int{
	"insert":   {2, -1},
	"remove":   {1, 1},
	"find":     {1, 1},
	"contains": {1, 1},
	"count":    {0, 0},
	"list":     {0, 0},
	"print":    {0, 0},
	"check":    {0, 0},
	"clear":    {0, 0},
}

// parse a line into an operation and its arguments
//
// blank lines and comments return an empty operation
func parseLine(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if 0 == len(fields) || strings.HasPrefix(fields[0], "#") {
		return "", nil, nil
	}

	op := strings.ToLower(fields[0])
	arguments := fields[1:]

	limits, ok := operations[op]
	if !ok {
		return "", nil, fault.ErrInvalidScriptLine
	}
	n := len(arguments)
	if n < limits[0] || (limits[1] >= 0 && n > limits[1]) {
		return "", nil, fault.ErrInvalidScriptLine
	}

	// value is the rest of the line
	if "insert" == op {
		arguments = []string{arguments[0], strings.Join(arguments[1:], " ")}
	}
	return op, arguments, nil
}

// execute a single line
//
// a malformed line is an error, failed operations are reported to
// the output and counted
func (r *runner) execute(line string) error {
	op, arguments, err := parseLine(line)
	if nil != err {
		r.log.Warnf("invalid line: %q", line)
		return err
	}
	if "" == op {
		return nil
	}

	r.operations.Increment()
	r.log.Debugf("%s %q", op, arguments)

	switch op {
	case "insert":
		err = r.tree.Insert(arguments[0], arguments[1])
		if nil == err {
			fmt.Fprintf(r.w, "insert: %s → %s\n", arguments[0], arguments[1])
		}

	case "remove":
		var value string
		value, err = r.tree.Remove(arguments[0])
		if nil == err {
			fmt.Fprintf(r.w, "remove: %s → %s\n", arguments[0], value)
		}

	case "find":
		var value *string
		value, err = r.tree.Find(arguments[0])
		if nil == err {
			fmt.Fprintf(r.w, "find: %s → %s\n", arguments[0], *value)
		}

	case "contains":
		fmt.Fprintf(r.w, "contains: %s: %t\n", arguments[0], r.tree.Contains(arguments[0]))

	case "count":
		fmt.Fprintf(r.w, "count: %d\n", r.tree.Count())

	case "list":
		for key, value := range r.tree.InOrder() {
			fmt.Fprintf(r.w, "%s → %s\n", key, value)
		}

	case "print":
		r.tree.Fprint(r.w, true)

	case "check":
		err = r.tree.Check()
		if nil == err {
			fmt.Fprintf(r.w, "check: ok\n")
		}

	case "clear":
		r.tree.Clear()
		fmt.Fprintf(r.w, "clear: ok\n")
	}

	if nil != err {
		r.failures.Increment()
		if len(arguments) > 0 {
			fmt.Fprintf(r.w, "%s: %s  error: %s\n", op, arguments[0], err)
		} else {
			fmt.Fprintf(r.w, "%s: error: %s\n", op, err)
		}
	}
	return nil
}

// run all lines, stopping at the first malformed one
func (r *runner) run(lines []string) error {
	for i, line := range lines {
		if err := r.execute(line); nil != err {
			return fmt.Errorf("line %d: %q: %w", i+1, line, err)
		}
	}
	r.log.Infof("operations: %d  failures: %d", r.operations.Uint64(), r.failures.Uint64())
	return nil
}

// read a script file into lines
func readScript(fileName string) ([]string, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	lines := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
