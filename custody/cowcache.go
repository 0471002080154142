// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"sync"

	"github.com/iotexproject/iotex-address/address"
)

// cowCache shares the committed cache until the first write
type cowCache struct {
	cache ledgerCache
	dirty bool
	mu    sync.Mutex
}

func newCowCache(cache ledgerCache) *cowCache {
	return &cowCache{
		cache: cache,
		dirty: false,
	}
}

func (cow *cowCache) Copy() ledgerCache {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	return &cowCache{
		cache: cow.cache,
		dirty: false,
	}
}

func (cow *cowCache) Settings() settings {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	return cow.cache.Settings()
}

func (cow *cowCache) SetSettings(s settings) {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	cow.ensureCopied()
	cow.cache.SetSettings(s)
}

func (cow *cowCache) Record(registry address.Address, assetID uint64) *DepositRecord {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	return cow.cache.Record(registry, assetID)
}

func (cow *cowCache) PutRecord(registry address.Address, rec *DepositRecord) {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	cow.ensureCopied()
	cow.cache.PutRecord(registry, rec)
}

func (cow *cowCache) DeleteRecord(registry address.Address, assetID uint64) {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	cow.ensureCopied()
	cow.cache.DeleteRecord(registry, assetID)
}

func (cow *cowCache) AssetIDs(registry, holder address.Address) []uint64 {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	return cow.cache.AssetIDs(registry, holder)
}

func (cow *cowCache) RecordCount(registry address.Address) int {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	return cow.cache.RecordCount(registry)
}

func (cow *cowCache) HasExtended(holder address.Address) bool {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	return cow.cache.HasExtended(holder)
}

func (cow *cowCache) SetExtended(holder address.Address) {
	cow.mu.Lock()
	defer cow.mu.Unlock()
	cow.ensureCopied()
	cow.cache.SetExtended(holder)
}

func (cow *cowCache) ensureCopied() {
	if !cow.dirty {
		cow.cache = cow.cache.Copy()
		cow.dirty = true
	}
}
