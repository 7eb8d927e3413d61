// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// InternalError - the value passed to panic when a structural
// invariant has been broken
type InternalError string

func (e InternalError) Error() string { return string(e) }

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// logger.Initialise must already have been called
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(2, format, arguments)...)
}

// Panicf - log the formatted message then panic with an InternalError
func Panicf(format string, arguments ...interface{}) {
	a := withCaller(2, format, arguments)
	internalCriticalf(a...)
	panic(InternalError(fmt.Sprintf(a[0].(string), a[1:]...)))
}

// prefix the format with the file:line of the caller
func withCaller(skip int, format string, arguments []interface{}) []interface{} {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 3, 3+len(arguments))
		a[0] = "(%q:%d) " + format
		a[1] = file
		a[2] = line
		return append(a, arguments...)
	}
	return append([]interface{}{format}, arguments...)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(a ...interface{}) {
	format := a[0].(string)
	if nil == log {
		fmt.Printf("*** "+format+"\n", a[1:]...)
	} else {
		log.Criticalf(format, a[1:]...)
		log.Flush() // make sure log file is saved
	}
}
