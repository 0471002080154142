// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody_test

import (
	"context"
	"testing"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/plug-custody/access"
	"github.com/iotexproject/plug-custody/custody"
	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/db/batch"
	"github.com/iotexproject/plug-custody/test/identityset"
)

func TestLedgerGenesis(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)

	r.True(tl.IsOperational())
	r.Equal(_window, tl.SeasonWindow())
	r.Equal(uint64(75), tl.MaxBatchSize())
	r.Equal(tl.custodian.String(), tl.Custodian().String())
	for i, rc := range tl.Registries() {
		r.Equal(tl.regAddrs[i].String(), rc.Address.String())
		r.False(rc.Withdrawable)
	}

	// a restart keeps the stored state rather than the genesis config
	ctx := context.Background()
	_, _, err := tl.SetSeasonEnd(ctx, tl.owner, 210)
	r.NoError(err)
	tl.cfg.MaxBatchSize = 10
	tl.restart(t)
	r.Equal(uint64(210), tl.SeasonWindow().End)
	r.Equal(uint64(75), tl.MaxBatchSize())
}

func TestLedgerInvalidGenesis(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	cfg := tl.cfg
	cfg.Genesis.ExtendableBefore = cfg.Genesis.ExtendedUntil

	kv := db.NewMemKVStore()
	l := custody.NewLedger(kv, cfg, tl.book, access.NewStore(kv))
	r.ErrorIs(l.Start(context.Background()), custody.ErrStateConflict)
	r.False(l.IsOperational())

	// the stored genesis wins over the config
	tl.cfg = cfg
	tl.restart(t)
	r.Equal(_window, tl.SeasonWindow())
}

func TestLedgerGenesisZeroField(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	tl.kv = db.NewMemKVStore()
	tl.cfg.Genesis.ExtendableBefore = 0
	tl.Ledger = tl.newLedger()
	r.NoError(tl.Start(context.Background()))
	r.Zero(tl.SeasonWindow().ExtendableBefore)

	tl.restart(t)
	r.True(tl.IsOperational())
	r.Equal(tl.cfg.Genesis, tl.SeasonWindow())
}

type failingKV struct {
	db.KVStore
	failBatch bool
}

func (f *failingKV) WriteBatch(b batch.KVStoreBatch) error {
	if f.failBatch {
		return errors.New("disk full")
	}
	return f.KVStore.WriteBatch(b)
}

func TestLedgerCommitFailure(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	bob := identityset.Address(2)
	kv := &failingKV{KVStore: db.NewMemKVStore(), failBatch: true}
	caps := access.NewStore(kv)
	hasAll := func(principal address.Address) bool {
		for _, c := range custody.Capabilities {
			ok, err := caps.HasCapability(principal, c)
			r.NoError(err)
			if !ok {
				return false
			}
		}
		return true
	}

	// a failed genesis leaves neither settings nor grants behind
	l := custody.NewLedger(kv, tl.cfg, tl.book, caps)
	r.ErrorContains(l.Start(ctx), "disk full")
	r.False(l.IsOperational())
	r.False(hasAll(tl.owner))
	_, err := kv.Get("prm", []byte("start"))
	r.ErrorIs(err, db.ErrNotExist)

	kv.failBatch = false
	l = custody.NewLedger(kv, tl.cfg, tl.book, caps)
	r.NoError(l.Start(ctx))
	r.True(hasAll(tl.owner))

	// grants move only with the ledger commit
	kv.failBatch = true
	r.ErrorContains(l.TransferCapabilities(ctx, tl.owner, bob), "disk full")
	r.True(hasAll(tl.owner))
	r.False(hasAll(bob))

	kv.failBatch = false
	r.NoError(l.TransferCapabilities(ctx, tl.owner, bob))
	r.False(hasAll(tl.owner))
	r.True(hasAll(bob))
}

func TestLedgerNotStarted(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	r.NoError(tl.Stop(context.Background()))
	r.False(tl.IsOperational())
	err := tl.ExtendAll(context.Background(), identityset.Address(1))
	r.ErrorIs(err, custody.ErrNotOperational)
}

func TestDepositScenario(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	alice := identityset.Address(1)
	tl.regs[0].Mint(alice, 1, 2)

	tl.setNow(120)
	r.NoError(tl.Deposit(ctx, tl.regAddrs[0], alice, []uint64{1}))
	rec, ok := tl.Record(tl.regAddrs[0], 1)
	r.True(ok)
	r.Equal(alice.String(), rec.Holder.String())
	r.Equal(uint64(100), rec.LockedAt)
	r.Equal(uint64(200), rec.LockedUntil)
	r.Equal(tl.custodian.String(), tl.ownerOf(t, 0, 1))

	tl.setNow(180)
	r.NoError(tl.Deposit(ctx, tl.regAddrs[0], alice, []uint64{2}))
	rec, ok = tl.Record(tl.regAddrs[0], 2)
	r.True(ok)
	r.Equal(uint64(180), rec.LockedAt)
	r.Equal(uint64(200), rec.LockedUntil)
	r.Equal([]uint64{1, 2}, tl.Holdings(tl.regAddrs[0], alice))

	tl.enableWithdraw(t, 0)
	tl.setNow(199)
	withdrawable, err := tl.IsWithdrawable(tl.regAddrs[0], 1)
	r.NoError(err)
	r.False(withdrawable)
	err = tl.Withdraw(ctx, tl.regAddrs[0], alice, []uint64{1})
	r.ErrorIs(err, custody.ErrWindowViolation)
	r.Equal(tl.custodian.String(), tl.ownerOf(t, 0, 1))

	tl.setNow(200)
	withdrawable, err = tl.IsWithdrawable(tl.regAddrs[0], 1)
	r.NoError(err)
	r.True(withdrawable)
	r.NoError(tl.Withdraw(ctx, tl.regAddrs[0], alice, []uint64{1}))
	_, ok = tl.Record(tl.regAddrs[0], 1)
	r.False(ok)
	r.Equal([]uint64{2}, tl.Holdings(tl.regAddrs[0], alice))
	r.Equal(alice.String(), tl.ownerOf(t, 0, 1))

	// a second withdraw fails loudly
	err = tl.Withdraw(ctx, tl.regAddrs[0], alice, []uint64{1})
	r.ErrorIs(err, custody.ErrUnauthorized)
	_, err = tl.IsWithdrawable(tl.regAddrs[0], 1)
	r.ErrorIs(err, custody.ErrInvalidInput)

	// records survive a restart
	tl.restart(t)
	r.Equal([]uint64{2}, tl.Holdings(tl.regAddrs[0], alice))
}

func TestDepositValidation(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	alice, bob := identityset.Address(1), identityset.Address(2)
	tl.regs[0].Mint(alice, assetRange(1, 80)...)
	tl.regs[0].Mint(bob, 100)
	reg := tl.regAddrs[0]
	tl.setNow(120)

	r.ErrorIs(tl.Deposit(ctx, identityset.Address(5), alice, []uint64{1}), custody.ErrInvalidInput)
	r.ErrorIs(tl.Deposit(ctx, nil, alice, []uint64{1}), custody.ErrInvalidInput)
	r.ErrorIs(tl.Deposit(ctx, reg, nil, []uint64{1}), custody.ErrInvalidInput)
	r.ErrorIs(tl.Deposit(ctx, reg, alice, nil), custody.ErrInvalidInput)
	r.ErrorIs(tl.Deposit(ctx, reg, alice, []uint64{1, 2, 1}), custody.ErrInvalidInput)
	// 76 assets with a maximum of 75 fail before any transfer
	r.ErrorIs(tl.Deposit(ctx, reg, alice, assetRange(1, 76)), custody.ErrInvalidInput)
	r.Zero(tl.regs[0].Transfers())
	r.Empty(tl.Holdings(reg, alice))
	// not the owner of asset 100
	r.ErrorIs(tl.Deposit(ctx, reg, alice, []uint64{1, 100}), custody.ErrUnauthorized)
	// unknown asset
	r.ErrorIs(tl.Deposit(ctx, reg, alice, []uint64{1, 1000}), custody.ErrExternalFailure)
	r.Zero(tl.regs[0].Transfers())

	tl.setNow(99)
	r.ErrorIs(tl.Deposit(ctx, reg, alice, []uint64{1}), custody.ErrWindowViolation)
	tl.setNow(100)
	r.NoError(tl.Deposit(ctx, reg, alice, []uint64{1}))
	tl.setNow(200)
	r.NoError(tl.Deposit(ctx, reg, alice, assetRange(2, 76)))
	r.Len(tl.Holdings(reg, alice), 76)
	// already in custody
	r.ErrorIs(tl.Deposit(ctx, reg, alice, []uint64{1}), custody.ErrStateConflict)
	tl.setNow(201)
	r.ErrorIs(tl.Deposit(ctx, reg, alice, []uint64{77}), custody.ErrWindowViolation)
}
