// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

// Package identityset provides deterministic identities for tests. The i-th key is the hash of a fixed seed and
// i, so the same index yields the same address in every run.
package identityset

import (
	"fmt"
	"sync"

	"github.com/iotexproject/go-pkgs/crypto"
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"
	"go.uber.org/zap"

	"github.com/iotexproject/plug-custody/pkg/log"
)

const _size = 32

var (
	_once sync.Once
	_keys [_size]crypto.PrivateKey
)

// Size returns the number of identities in the set
func Size() int {
	return _size
}

// PrivateKey returns the i-th identity's private key
func PrivateKey(i int) crypto.PrivateKey {
	_once.Do(func() {
		for j := range _keys {
			seed := hash.Hash256b([]byte(fmt.Sprintf("plug-custody identity %d", j)))
			sk, err := crypto.BytesToPrivateKey(seed[:])
			if err != nil {
				log.L().Panic("failed to derive identity", zap.Int("index", j), zap.Error(err))
			}
			_keys[j] = sk
		}
	})
	if i < 0 || i >= _size {
		log.L().Panic("identity index out of range", zap.Int("index", i), zap.Int("size", _size))
	}
	return _keys[i]
}

// Address returns the i-th identity's address
func Address(i int) address.Address {
	addr := PrivateKey(i).PublicKey().Address()
	if addr == nil {
		log.L().Panic("failed to get address", zap.Int("index", i))
	}
	return addr
}
