// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"strings"

	"github.com/pkg/errors"
)

// CreateKVStore creates the kv store for the configured backend
func CreateKVStore(cfg Config) (KVStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendBolt:
		if cfg.DbPath == "" {
			return nil, errors.Wrap(ErrInvalidBackend, "empty db path for bolt")
		}
		return NewBoltDB(cfg), nil
	case BackendPebble:
		if cfg.DbPath == "" {
			return nil, errors.Wrap(ErrInvalidBackend, "empty db path for pebble")
		}
		return NewPebbleDB(cfg), nil
	case BackendMemory:
		return NewMemKVStore(), nil
	default:
		return nil, errors.Wrapf(ErrInvalidBackend, "unknown backend %s", cfg.Backend)
	}
}
