// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avltree/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidStep    = fault.InvalidError("step must be coprime with count")
	ErrMissingScript  = fault.NotFoundError("no script file or configured script")
	ErrNotFoundFile   = fault.NotFoundError("file does not exist")
	ErrScriptFailed   = fault.ProcessError("script had failed operations")
	ErrStressMismatch = fault.ProcessError("stress result does not match inserted keys")
)
