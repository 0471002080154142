// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody_test

import (
	"context"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/iotexproject/iotex-address/address"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/plug-custody/access"
	"github.com/iotexproject/plug-custody/custody"
	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/registry/memregistry"
	"github.com/iotexproject/plug-custody/test/identityset"
)

var _window = custody.SeasonWindow{
	Start:            100,
	GracePeriod:      150,
	End:              200,
	ExtendedUntil:    300,
	ExtendableBefore: 250,
}

type testLedger struct {
	*custody.Ledger
	kv        db.KVStore
	clk       *clock.Mock
	book      *memregistry.Book
	regs      [custody.NumRegistries]*memregistry.Registry
	regAddrs  [custody.NumRegistries]address.Address
	owner     address.Address
	custodian address.Address
	cfg       custody.Config
	events    []custody.Event
}

func newTestLedger(t *testing.T) *testLedger {
	r := require.New(t)
	tl := &testLedger{
		kv:        db.NewMemKVStore(),
		clk:       clock.NewMock(),
		book:      memregistry.NewBook(),
		owner:     identityset.Address(0),
		custodian: identityset.Address(9),
	}
	tl.cfg = custody.Config{
		Owner:        tl.owner.String(),
		Custodian:    tl.custodian.String(),
		MaxBatchSize: 75,
		Genesis:      _window,
	}
	for i := range tl.regAddrs {
		tl.regAddrs[i] = identityset.Address(20 + i)
		tl.regs[i] = tl.book.Deploy(tl.regAddrs[i])
		tl.cfg.Registries = append(tl.cfg.Registries, tl.regAddrs[i].String())
	}
	tl.Ledger = tl.newLedger()
	r.NoError(tl.Start(context.Background()))
	return tl
}

func (tl *testLedger) newLedger() *custody.Ledger {
	return custody.NewLedger(
		tl.kv,
		tl.cfg,
		tl.book,
		access.NewStore(tl.kv),
		custody.WithClock(tl.clk),
		custody.WithContractInspector(tl.book),
		custody.WithEventSink(func(e custody.Event) {
			tl.events = append(tl.events, e)
		}),
	)
}

// restart reloads the ledger from the same store
func (tl *testLedger) restart(t *testing.T) {
	r := require.New(t)
	r.NoError(tl.Stop(context.Background()))
	tl.Ledger = tl.newLedger()
	r.NoError(tl.Start(context.Background()))
}

func (tl *testLedger) setNow(now uint64) {
	tl.clk.Add(time.Unix(int64(now), 0).Sub(tl.clk.Now()))
}

func (tl *testLedger) ownerOf(t *testing.T, slot int, assetID uint64) string {
	owner, err := tl.regs[slot].OwnerOf(context.Background(), assetID)
	require.NoError(t, err)
	return owner.String()
}

func (tl *testLedger) enableWithdraw(t *testing.T, slots ...int) {
	var (
		regs  []address.Address
		flags []bool
	)
	for _, s := range slots {
		regs = append(regs, tl.regAddrs[s])
		flags = append(flags, true)
	}
	require.NoError(t, tl.SetWithdrawEnabled(context.Background(), tl.owner, regs, flags))
}

func assetRange(from, to uint64) []uint64 {
	ids := make([]uint64, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}

func newMockClock(now uint64) *clock.Mock {
	clk := clock.NewMock()
	clk.Add(time.Unix(int64(now), 0).Sub(clk.Now()))
	return clk
}
