// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/test/identityset"
)

func TestPlugCache(t *testing.T) {
	r := require.New(t)
	reg1, reg2 := identityset.Address(20), identityset.Address(21)
	alice, bob := identityset.Address(1), identityset.Address(2)

	c := newPlugCache()
	c.PutRecord(reg1, &DepositRecord{Holder: alice, AssetID: 3})
	c.PutRecord(reg1, &DepositRecord{Holder: alice, AssetID: 1})
	c.PutRecord(reg2, &DepositRecord{Holder: alice, AssetID: 1})
	c.PutRecord(reg1, &DepositRecord{Holder: bob, AssetID: 2})
	r.Equal([]uint64{1, 3}, c.AssetIDs(reg1, alice))
	r.Equal([]uint64{2}, c.AssetIDs(reg1, bob))
	r.Equal([]uint64{1}, c.AssetIDs(reg2, alice))
	r.Equal(3, c.RecordCount(reg1))

	// overwriting a record with another holder moves the index entry
	c.PutRecord(reg1, &DepositRecord{Holder: bob, AssetID: 3})
	r.Equal([]uint64{1}, c.AssetIDs(reg1, alice))
	r.Equal([]uint64{2, 3}, c.AssetIDs(reg1, bob))

	c.DeleteRecord(reg1, 1)
	r.Nil(c.Record(reg1, 1))
	r.Empty(c.AssetIDs(reg1, alice))
	r.NotContains(c.holderAssets[reg1.String()], alice.String())
	// deleting a missing record is a no-op
	c.DeleteRecord(reg1, 100)
	r.Equal(2, c.RecordCount(reg1))

	r.False(c.HasExtended(alice))
	c.SetExtended(alice)
	r.True(c.HasExtended(alice))
}

func TestCowCache(t *testing.T) {
	r := require.New(t)
	reg := identityset.Address(20)
	alice := identityset.Address(1)

	base := newPlugCache()
	base.PutRecord(reg, &DepositRecord{Holder: alice, AssetID: 1, LockedUntil: 200})
	base.settings.maxBatch = 75
	committed := newCowCache(base)

	dirty := committed.Copy()
	r.Equal(uint64(200), dirty.Record(reg, 1).LockedUntil)
	dirty.PutRecord(reg, &DepositRecord{Holder: alice, AssetID: 2})
	dirty.DeleteRecord(reg, 1)
	dirty.SetExtended(alice)
	s := dirty.Settings()
	s.maxBatch = 10
	s.paused = true
	dirty.SetSettings(s)

	// the committed view is untouched
	r.Equal([]uint64{1}, committed.AssetIDs(reg, alice))
	r.NotNil(committed.Record(reg, 1))
	r.False(committed.HasExtended(alice))
	r.Equal(uint64(75), committed.Settings().maxBatch)
	r.False(committed.Settings().paused)

	r.Equal([]uint64{2}, dirty.AssetIDs(reg, alice))
	r.True(dirty.HasExtended(alice))
	r.Equal(uint64(10), dirty.Settings().maxBatch)

	// copies of a dirty cache do not share writes either
	again := dirty.Copy()
	again.PutRecord(reg, &DepositRecord{Holder: alice, AssetID: 3})
	r.Equal([]uint64{2}, dirty.AssetIDs(reg, alice))
	r.Equal([]uint64{2, 3}, again.AssetIDs(reg, alice))
}

func TestLoadCache(t *testing.T) {
	r := require.New(t)
	kv := db.NewMemKVStore()
	r.NoError(kv.Start(context.Background()))

	c, initialized, err := loadCache(kv)
	r.NoError(err)
	r.False(initialized)
	r.Zero(c.RecordCount(identityset.Address(20)))

	regs := []string{identityset.Address(20).String(), identityset.Address(21).String(), identityset.Address(22).String()}
	cfg := Config{
		Owner:        identityset.Address(0).String(),
		Custodian:    identityset.Address(9).String(),
		Registries:   regs,
		MaxBatchSize: 75,
		Genesis:      _testWindow,
	}
	g, err := cfg.genesis()
	r.NoError(err)
	h := newOpHandler(newCowCache(c).Copy())
	h.setSettings(g.settings)
	reg := identityset.Address(21)
	alice := identityset.Address(1)
	h.putRecord(reg, &DepositRecord{Holder: alice, AssetID: 7, LockedAt: 100, LockedUntil: 200})
	h.putRecord(reg, &DepositRecord{Holder: alice, AssetID: 5, LockedAt: 100, LockedUntil: 300})
	h.setExtended(alice)
	delta, _ := h.Finalize()
	r.NoError(kv.WriteBatch(delta))

	c, initialized, err = loadCache(kv)
	r.NoError(err)
	r.True(initialized)
	r.Equal(_testWindow, c.settings.window)
	r.Equal(uint64(75), c.settings.maxBatch)
	r.Equal(identityset.Address(9).String(), c.settings.custodian.String())
	r.False(c.settings.paused)
	for i, rc := range c.settings.registries {
		r.Equal(regs[i], rc.Address.String())
		r.False(rc.Withdrawable)
	}
	// the holder index is rebuilt from the records
	r.Equal([]uint64{5, 7}, c.AssetIDs(reg, alice))
	r.Equal(uint64(300), c.Record(reg, 5).LockedUntil)
	r.True(c.HasExtended(alice))
}

func TestConfigValidate(t *testing.T) {
	r := require.New(t)
	cfg := Config{
		Owner:        identityset.Address(0).String(),
		Custodian:    identityset.Address(9).String(),
		Registries:   []string{identityset.Address(20).String(), identityset.Address(21).String(), identityset.Address(22).String()},
		MaxBatchSize: 75,
		Genesis:      _testWindow,
	}
	r.NoError(cfg.Validate())

	bad := cfg
	bad.Owner = ""
	r.ErrorIs(bad.Validate(), ErrInvalidInput)
	bad = cfg
	bad.Registries = bad.Registries[:2]
	r.ErrorIs(bad.Validate(), ErrInvalidInput)
	bad = cfg
	bad.Registries = []string{cfg.Registries[0], cfg.Registries[0], cfg.Registries[1]}
	r.ErrorIs(bad.Validate(), ErrInvalidInput)
	bad = cfg
	bad.MaxBatchSize = 0
	r.ErrorIs(bad.Validate(), ErrInvalidInput)
	bad = cfg
	bad.Genesis.End = bad.Genesis.GracePeriod
	r.ErrorIs(bad.Validate(), ErrStateConflict)
}
