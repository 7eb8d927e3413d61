// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Conditions that indicate a defect in the tree code itself are not
// returned as errors, they are reported through Panicf which logs to
// the PANIC channel before aborting.
package fault
