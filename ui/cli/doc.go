// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the passfail command-line interface. It wires
// the verification engine to the console: flags and config select the
// wordlists, status output is rendered with colored segments, and an
// interrupt signal cancels the running verification.
package cli
