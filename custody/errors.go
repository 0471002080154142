// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import "github.com/pkg/errors"

var (
	// ErrInvalidInput indicates a zero identity, an empty or oversized batch, or a registry out of the whitelist
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized indicates the caller lacks a capability or does not own the referenced record or asset
	ErrUnauthorized = errors.New("unauthorized")
	// ErrWindowViolation indicates the operation is attempted outside of the allowed time window
	ErrWindowViolation = errors.New("window violation")
	// ErrStateConflict indicates the operation conflicts with the current ledger state
	ErrStateConflict = errors.New("state conflict")
	// ErrNotOperational indicates the ledger is paused
	ErrNotOperational = errors.New("ledger is not operational")
	// ErrExternalFailure indicates a failure in an asset registry or another collaborator
	ErrExternalFailure = errors.New("external failure")
)
