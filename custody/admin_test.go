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
	"go.uber.org/mock/gomock"

	"github.com/iotexproject/plug-custody/access"
	"github.com/iotexproject/plug-custody/custody"
	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/test/identityset"
	"github.com/iotexproject/plug-custody/test/mock/mock_custody"
)

func TestSetParams(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	alice := identityset.Address(1)

	_, _, err := tl.SetSeasonEnd(ctx, alice, 260)
	r.ErrorIs(err, custody.ErrUnauthorized)

	for _, c := range []struct {
		set func(context.Context, address.Address, uint64) (uint64, uint64, error)
		v   uint64
		err error
		old uint64
	}{
		{tl.SetSeasonEnd, 150, custody.ErrStateConflict, 0},
		{tl.SetSeasonEnd, 260, nil, 200},
		{tl.SetExtendedUntil, 260, custody.ErrStateConflict, 0},
		{tl.SetExtendedUntil, 400, nil, 300},
		{tl.SetExtendableBefore, 400, custody.ErrStateConflict, 0},
		{tl.SetExtendableBefore, 350, nil, 250},
		{tl.SetGracePeriod, 100, custody.ErrStateConflict, 0},
		{tl.SetGracePeriod, 120, nil, 150},
		{tl.SetSeasonStart, 0, custody.ErrInvalidInput, 0},
		{tl.SetSeasonStart, 90, nil, 100},
		{tl.SetMaxBatchSize, 0, custody.ErrInvalidInput, 0},
		{tl.SetMaxBatchSize, 10, nil, 75},
	} {
		old, nv, err := c.set(ctx, tl.owner, c.v)
		if c.err != nil {
			r.ErrorIs(err, c.err)
			continue
		}
		r.NoError(err)
		r.Equal(c.old, old)
		r.Equal(c.v, nv)
	}
	expected := custody.SeasonWindow{
		Start:            90,
		GracePeriod:      120,
		End:              260,
		ExtendedUntil:    400,
		ExtendableBefore: 350,
	}
	r.Equal(expected, tl.SeasonWindow())
	r.Equal(uint64(10), tl.MaxBatchSize())

	// validation is one-directional, moving the start past the grace period is accepted
	_, _, err = tl.SetSeasonStart(ctx, tl.owner, 130)
	r.NoError(err)
	r.Equal(uint64(130), tl.SeasonWindow().Start)

	// the parameters are persisted
	tl.restart(t)
	expected.Start = 130
	r.Equal(expected, tl.SeasonWindow())
	r.Equal(uint64(10), tl.MaxBatchSize())

	last := tl.events[len(tl.events)-1]
	r.Equal(custody.EventParamUpdated, last.Kind)
	r.Equal("seasonStart", last.Param)
	r.Equal(uint64(90), last.Before)
	r.Equal(uint64(130), last.After)
}

func TestSetRegistry(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	alice := identityset.Address(1)
	newReg := identityset.Address(25)

	r.ErrorIs(tl.SetRegistry(ctx, alice, 0, newReg), custody.ErrUnauthorized)
	r.ErrorIs(tl.SetRegistry(ctx, tl.owner, 3, newReg), custody.ErrInvalidInput)
	r.ErrorIs(tl.SetRegistry(ctx, tl.owner, 0, nil), custody.ErrInvalidInput)
	// a non-zero identity that is not a contract is rejected
	r.ErrorIs(tl.SetRegistry(ctx, tl.owner, 0, newReg), custody.ErrInvalidInput)
	// already whitelisted in another slot
	r.ErrorIs(tl.SetRegistry(ctx, tl.owner, 0, tl.regAddrs[1]), custody.ErrInvalidInput)

	tl.book.Deploy(newReg).Mint(alice, 1)
	r.NoError(tl.SetRegistry(ctx, tl.owner, 0, newReg))
	r.Equal(newReg.String(), tl.Registries()[0].Address.String())
	tl.setNow(120)
	r.ErrorIs(tl.Deposit(ctx, tl.regAddrs[0], alice, []uint64{1}), custody.ErrInvalidInput)
	r.NoError(tl.Deposit(ctx, newReg, alice, []uint64{1}))

	tl.restart(t)
	r.Equal(newReg.String(), tl.Registries()[0].Address.String())
}

func TestSetRegistryInspectorFailure(t *testing.T) {
	r := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	owner := identityset.Address(0)
	newReg := identityset.Address(25)

	inspector := mock_custody.NewMockContractInspector(ctrl)
	inspector.EXPECT().IsContract(gomock.Any(), newReg).Return(false, errors.New("rpc timeout")).Times(1)
	kv := db.NewMemKVStore()
	cfg := custody.Config{
		Owner:        owner.String(),
		Custodian:    identityset.Address(9).String(),
		Registries:   []string{identityset.Address(20).String(), identityset.Address(21).String(), identityset.Address(22).String()},
		MaxBatchSize: 75,
		Genesis:      _window,
	}
	l := custody.NewLedger(kv, cfg, mock_custody.NewMockRegistryResolver(ctrl), access.NewStore(kv), custody.WithContractInspector(inspector))
	r.NoError(l.Start(ctx))
	r.ErrorIs(l.SetRegistry(ctx, owner, 1, newReg), custody.ErrExternalFailure)
	r.Equal(identityset.Address(21).String(), l.Registries()[1].Address.String())

	// no inspector configured
	kv = db.NewMemKVStore()
	l = custody.NewLedger(kv, cfg, mock_custody.NewMockRegistryResolver(ctrl), access.NewStore(kv))
	r.NoError(l.Start(ctx))
	r.ErrorIs(l.SetRegistry(ctx, owner, 1, newReg), custody.ErrExternalFailure)
}

func TestSetRegistryInspectorCallback(t *testing.T) {
	r := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	tl := newTestLedger(t)
	newReg := identityset.Address(25)

	var l *custody.Ledger
	inspector := mock_custody.NewMockContractInspector(ctrl)
	inspector.EXPECT().IsContract(gomock.Any(), newReg).DoAndReturn(func(context.Context, address.Address) (bool, error) {
		r.ErrorIs(l.Pause(context.Background(), tl.owner), custody.ErrStateConflict)
		return true, nil
	}).Times(1)
	l = custody.NewLedger(tl.kv, tl.cfg, tl.book, access.NewStore(tl.kv), custody.WithContractInspector(inspector))
	r.NoError(l.Start(ctx))
	r.NoError(l.SetRegistry(ctx, tl.owner, 1, newReg))
	r.Equal(newReg.String(), l.Registries()[1].Address.String())
	r.True(l.IsOperational())
}

func TestSetWithdrawEnabled(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()

	regs := []address.Address{tl.regAddrs[0], tl.regAddrs[2]}
	r.ErrorIs(tl.SetWithdrawEnabled(ctx, identityset.Address(1), regs, []bool{true, true}), custody.ErrUnauthorized)
	r.ErrorIs(tl.SetWithdrawEnabled(ctx, tl.owner, regs, []bool{true}), custody.ErrInvalidInput)
	r.ErrorIs(tl.SetWithdrawEnabled(ctx, tl.owner, nil, nil), custody.ErrInvalidInput)
	// one unknown registry fails the whole batch
	r.ErrorIs(tl.SetWithdrawEnabled(ctx, tl.owner, []address.Address{tl.regAddrs[0], identityset.Address(5)}, []bool{true, true}), custody.ErrInvalidInput)
	r.False(tl.Registries()[0].Withdrawable)

	r.NoError(tl.SetWithdrawEnabled(ctx, tl.owner, regs, []bool{true, true}))
	flags := tl.Registries()
	r.True(flags[0].Withdrawable)
	r.False(flags[1].Withdrawable)
	r.True(flags[2].Withdrawable)
	r.Len(tl.events, 2)

	r.NoError(tl.SetWithdrawEnabled(ctx, tl.owner, []address.Address{tl.regAddrs[2]}, []bool{false}))
	tl.restart(t)
	flags = tl.Registries()
	r.True(flags[0].Withdrawable)
	r.False(flags[2].Withdrawable)
}

func TestSetCustodian(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	alice, vault := identityset.Address(1), identityset.Address(8)
	tl.regs[0].Mint(alice, 1)

	r.ErrorIs(tl.SetCustodian(ctx, alice, vault), custody.ErrUnauthorized)
	r.ErrorIs(tl.SetCustodian(ctx, tl.owner, nil), custody.ErrInvalidInput)
	zero, err := address.FromString(address.ZeroAddress)
	r.NoError(err)
	r.ErrorIs(tl.SetCustodian(ctx, tl.owner, zero), custody.ErrInvalidInput)
	r.NoError(tl.SetCustodian(ctx, tl.owner, vault))
	r.Equal(vault.String(), tl.Custodian().String())

	tl.setNow(120)
	r.NoError(tl.Deposit(ctx, tl.regAddrs[0], alice, []uint64{1}))
	r.Equal(vault.String(), tl.ownerOf(t, 0, 1))
}

func TestPause(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	alice := identityset.Address(1)
	tl.regs[0].Mint(alice, 1)
	tl.setNow(120)

	r.ErrorIs(tl.Unpause(ctx, tl.owner), custody.ErrStateConflict)
	r.ErrorIs(tl.Pause(ctx, alice), custody.ErrUnauthorized)
	r.NoError(tl.Pause(ctx, tl.owner))
	r.False(tl.IsOperational())
	r.ErrorIs(tl.Pause(ctx, tl.owner), custody.ErrStateConflict)

	r.ErrorIs(tl.Deposit(ctx, tl.regAddrs[0], alice, []uint64{1}), custody.ErrNotOperational)
	r.ErrorIs(tl.ExtendAll(ctx, alice), custody.ErrNotOperational)
	_, _, err := tl.SetMaxBatchSize(ctx, tl.owner, 5)
	r.ErrorIs(err, custody.ErrNotOperational)
	r.ErrorIs(tl.TransferCapabilities(ctx, tl.owner, alice), custody.ErrNotOperational)
	r.Zero(tl.regs[0].Transfers())

	// the pause flag survives a restart
	tl.restart(t)
	r.False(tl.IsOperational())
	r.NoError(tl.Unpause(ctx, tl.owner))
	r.True(tl.IsOperational())
	r.NoError(tl.Deposit(ctx, tl.regAddrs[0], alice, []uint64{1}))
}

func TestTransferCapabilities(t *testing.T) {
	r := require.New(t)
	tl := newTestLedger(t)
	ctx := context.Background()
	alice, bob := identityset.Address(1), identityset.Address(2)

	r.ErrorIs(tl.TransferCapabilities(ctx, tl.owner, nil), custody.ErrInvalidInput)
	r.ErrorIs(tl.TransferCapabilities(ctx, tl.owner, tl.owner), custody.ErrInvalidInput)
	r.ErrorIs(tl.TransferCapabilities(ctx, alice, bob), custody.ErrUnauthorized)

	// holding a part of the capabilities is not enough, and nothing moves
	caps := access.NewStore(tl.kv)
	r.NoError(caps.Grant(alice, custody.CapAdmin))
	r.ErrorIs(tl.TransferCapabilities(ctx, alice, bob), custody.ErrUnauthorized)
	ok, err := caps.HasCapability(alice, custody.CapAdmin)
	r.NoError(err)
	r.True(ok)
	ok, err = caps.HasCapability(bob, custody.CapAdmin)
	r.NoError(err)
	r.False(ok)

	r.NoError(tl.TransferCapabilities(ctx, tl.owner, bob))
	for _, c := range custody.Capabilities {
		ok, err := caps.HasCapability(tl.owner, c)
		r.NoError(err)
		r.False(ok)
		ok, err = caps.HasCapability(bob, c)
		r.NoError(err)
		r.True(ok)
	}
	_, _, err = tl.SetMaxBatchSize(ctx, tl.owner, 5)
	r.ErrorIs(err, custody.ErrUnauthorized)
	r.ErrorIs(tl.Pause(ctx, tl.owner), custody.ErrUnauthorized)
	_, _, err = tl.SetMaxBatchSize(ctx, bob, 5)
	r.NoError(err)
	r.NoError(tl.Pause(ctx, bob))
}

func TestTransferCapabilitiesFailure(t *testing.T) {
	r := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	owner, bob := identityset.Address(0), identityset.Address(2)

	caps := mock_custody.NewMockCapabilityManager(ctrl)
	caps.EXPECT().StageGrant(gomock.Any(), gomock.Any(), custody.CapOwner, custody.CapAdmin, custody.CapPauser).Return(nil).Times(1)
	caps.EXPECT().HasCapability(owner, gomock.Any()).Return(true, nil).Times(3)
	caps.EXPECT().StageTransfer(gomock.Any(), owner, bob, custody.CapOwner, custody.CapAdmin, custody.CapPauser).Return(errors.New("disk full")).Times(1)
	kv := db.NewMemKVStore()
	cfg := custody.Config{
		Owner:        owner.String(),
		Custodian:    identityset.Address(9).String(),
		Registries:   []string{identityset.Address(20).String(), identityset.Address(21).String(), identityset.Address(22).String()},
		MaxBatchSize: 75,
		Genesis:      _window,
	}
	l := custody.NewLedger(kv, cfg, mock_custody.NewMockRegistryResolver(ctrl), caps)
	r.NoError(l.Start(ctx))
	r.ErrorIs(l.TransferCapabilities(ctx, owner, bob), custody.ErrExternalFailure)
}
