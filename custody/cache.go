// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"sort"

	"github.com/iotexproject/iotex-address/address"
	"github.com/mohae/deepcopy"
)

type (
	// settings is the admin-mutated configuration aggregate
	settings struct {
		window     SeasonWindow
		registries [NumRegistries]RegistryConfig
		custodian  address.Address
		maxBatch   uint64
		paused     bool
	}

	ledgerCache interface {
		Copy() ledgerCache
		Settings() settings
		SetSettings(s settings)
		Record(registry address.Address, assetID uint64) *DepositRecord
		PutRecord(registry address.Address, rec *DepositRecord)
		DeleteRecord(registry address.Address, assetID uint64)
		AssetIDs(registry, holder address.Address) []uint64
		RecordCount(registry address.Address) int
		HasExtended(holder address.Address) bool
		SetExtended(holder address.Address)
	}

	plugCache struct {
		settings     settings
		records      map[string]map[uint64]*DepositRecord  // registry -> asset id -> record
		holderAssets map[string]map[string]map[uint64]bool // registry -> holder -> asset ids
		extended     map[string]bool                       // holders opted into the global extension
	}
)

func newPlugCache() *plugCache {
	return &plugCache{
		records:      make(map[string]map[uint64]*DepositRecord),
		holderAssets: make(map[string]map[string]map[uint64]bool),
		extended:     make(map[string]bool),
	}
}

func (c *plugCache) Copy() ledgerCache {
	records := make(map[string]map[uint64]*DepositRecord, len(c.records))
	for reg, recs := range c.records {
		m := make(map[uint64]*DepositRecord, len(recs))
		// records are never mutated in place
		for id, rec := range recs {
			m[id] = rec
		}
		records[reg] = m
	}
	return &plugCache{
		settings:     c.settings,
		records:      records,
		holderAssets: deepcopy.Copy(c.holderAssets).(map[string]map[string]map[uint64]bool),
		extended:     deepcopy.Copy(c.extended).(map[string]bool),
	}
}

func (c *plugCache) Settings() settings {
	return c.settings
}

func (c *plugCache) SetSettings(s settings) {
	c.settings = s
}

func (c *plugCache) Record(registry address.Address, assetID uint64) *DepositRecord {
	recs, ok := c.records[registry.String()]
	if !ok {
		return nil
	}
	return recs[assetID]
}

func (c *plugCache) PutRecord(registry address.Address, rec *DepositRecord) {
	reg := registry.String()
	if old := c.Record(registry, rec.AssetID); old != nil {
		c.unindex(reg, old.Holder.String(), old.AssetID)
	}
	recs, ok := c.records[reg]
	if !ok {
		recs = make(map[uint64]*DepositRecord)
		c.records[reg] = recs
	}
	recs[rec.AssetID] = rec
	holders, ok := c.holderAssets[reg]
	if !ok {
		holders = make(map[string]map[uint64]bool)
		c.holderAssets[reg] = holders
	}
	holder := rec.Holder.String()
	if _, ok := holders[holder]; !ok {
		holders[holder] = make(map[uint64]bool)
	}
	holders[holder][rec.AssetID] = true
}

func (c *plugCache) DeleteRecord(registry address.Address, assetID uint64) {
	reg := registry.String()
	rec := c.Record(registry, assetID)
	if rec == nil {
		return
	}
	c.unindex(reg, rec.Holder.String(), assetID)
	delete(c.records[reg], assetID)
	if len(c.records[reg]) == 0 {
		delete(c.records, reg)
	}
}

func (c *plugCache) unindex(reg, holder string, assetID uint64) {
	holders, ok := c.holderAssets[reg]
	if !ok {
		return
	}
	delete(holders[holder], assetID)
	if len(holders[holder]) == 0 {
		delete(holders, holder)
	}
	if len(holders) == 0 {
		delete(c.holderAssets, reg)
	}
}

func (c *plugCache) AssetIDs(registry, holder address.Address) []uint64 {
	ids, ok := c.holderAssets[registry.String()][holder.String()]
	if !ok {
		return nil
	}
	res := make([]uint64, 0, len(ids))
	for id := range ids {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (c *plugCache) RecordCount(registry address.Address) int {
	return len(c.records[registry.String()])
}

func (c *plugCache) HasExtended(holder address.Address) bool {
	return c.extended[holder.String()]
}

func (c *plugCache) SetExtended(holder address.Address) {
	c.extended[holder.String()] = true
}
