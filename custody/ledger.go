// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"context"
	"sync"

	"github.com/facebookgo/clock"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/pkg/lifecycle"
	"github.com/iotexproject/plug-custody/pkg/log"
)

type (
	// Option is the option to create a ledger
	Option func(*Ledger)

	// Ledger is the time-windowed custody ledger. Mutations are serialized and staged on a copy of the
	// committed state, which is swapped in only after the write batch is persisted.
	Ledger struct {
		lifecycle.Readiness
		kv        db.KVStore
		cfg       Config
		resolver  RegistryResolver
		caps      CapabilityManager
		inspector ContractInspector
		clock     clock.Clock
		sink      EventSink
		seq       *atomic.Uint64
		// set while a mutation waits on a registry or inspector call
		callingOut *atomic.Bool

		opMu  sync.Mutex   // serializes mutations
		mu    sync.RWMutex // guards cache swap
		cache *cowCache    // committed state
	}

	ledgerCtxKey struct{}
)

// WithClock sets the time source
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

// WithContractInspector sets the inspector used to vet registry swaps
func WithContractInspector(inspector ContractInspector) Option {
	return func(l *Ledger) {
		l.inspector = inspector
	}
}

// WithEventSink sets the receiver of audit events
func WithEventSink(sink EventSink) Option {
	return func(l *Ledger) {
		l.sink = sink
	}
}

// NewLedger creates a new ledger, the genesis config is applied on the first start
func NewLedger(kv db.KVStore, cfg Config, resolver RegistryResolver, caps CapabilityManager, opts ...Option) *Ledger {
	l := &Ledger{
		kv:         kv,
		cfg:        cfg,
		resolver:   resolver,
		caps:       caps,
		clock:      clock.New(),
		sink:       logEvent,
		seq:        atomic.NewUint64(0),
		callingOut: atomic.NewBool(false),
		cache:      newCowCache(newPlugCache()),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start starts the kv store and loads the committed state
func (l *Ledger) Start(ctx context.Context) error {
	if err := l.kv.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start kv store")
	}
	c, initialized, err := loadCache(l.kv)
	if err != nil {
		return errors.Wrap(err, "failed to load ledger")
	}
	l.cache = newCowCache(c)
	if !initialized {
		if err := l.writeGenesis(ctx); err != nil {
			return err
		}
	}
	l.updateDepositMetrics()
	return l.TurnOn()
}

// Stop stops the ledger
func (l *Ledger) Stop(ctx context.Context) error {
	if err := l.TurnOff(); err != nil {
		return err
	}
	return l.kv.Stop(ctx)
}

func (l *Ledger) writeGenesis(ctx context.Context) error {
	g, err := l.cfg.genesis()
	if err != nil {
		return errors.Wrap(err, "invalid genesis config")
	}
	h := newOpHandler(l.snapshot().Copy())
	if err := l.caps.StageGrant(h.delta, g.owner, Capabilities...); err != nil {
		return errors.Wrap(err, "failed to grant genesis capabilities")
	}
	h.initSettings(g.settings)
	if err := l.commit(ctx, h); err != nil {
		return errors.Wrap(err, "failed to write genesis")
	}
	log.Logger("custody").Info("ledger genesis written",
		zap.String("owner", g.owner.String()),
		zap.String("custodian", g.settings.custodian.String()),
		zap.Uint64("seasonStart", g.settings.window.Start),
		zap.Uint64("seasonEnd", g.settings.window.End))
	return nil
}

// run executes a mutation under the single writer lock. Calls carrying the context marker of this ledger come
// from within one of its external calls and are rejected, and so is any call arriving while an external call is
// in progress.
func (l *Ledger) run(ctx context.Context, op string, gated bool, fn func(context.Context, *opHandler) error) (err error) {
	defer func() {
		recordOperation(op, err)
	}()
	if ctx.Value(ledgerCtxKey{}) == l {
		return errors.Wrapf(ErrStateConflict, "reentrant %s rejected", op)
	}
	if !l.IsReady() {
		return errors.Wrap(ErrNotOperational, "ledger is not started")
	}
	if l.callingOut.Load() {
		return errors.Wrapf(ErrStateConflict, "%s rejected during an external call", op)
	}
	l.opMu.Lock()
	h := newOpHandler(l.snapshot().Copy())
	if gated && h.base.paused {
		l.opMu.Unlock()
		return errors.Wrapf(ErrNotOperational, "%s rejected while paused", op)
	}
	ctx = context.WithValue(ctx, ledgerCtxKey{}, l)
	if err = fn(ctx, h); err == nil {
		err = l.commit(ctx, h)
	}
	l.opMu.Unlock()
	if err != nil {
		log.Logger("custody").Debug("operation failed", zap.String("op", op), zap.Error(err))
		return err
	}
	for _, e := range h.events {
		e.Seq = l.seq.Inc()
		l.sink(e)
	}
	return nil
}

func (l *Ledger) commit(ctx context.Context, h *opHandler) error {
	delta, dirty := h.Finalize()
	if err := l.kv.WriteBatch(delta); err != nil {
		l.compensate(ctx, h.transfers)
		return errors.Wrap(err, "failed to commit")
	}
	l.mu.Lock()
	l.cache = dirty.(*cowCache)
	l.mu.Unlock()
	l.updateDepositMetrics()
	return nil
}

// transfer moves an asset. On failure every transfer already made by the operation is reversed.
func (l *Ledger) transfer(ctx context.Context, h *opHandler, t transfer) error {
	if err := l.callout(func() error {
		return t.registry.Transfer(ctx, t.assetID, t.from, t.to)
	}); err != nil {
		l.compensate(ctx, h.transfers)
		h.transfers = nil
		return errors.Wrapf(ErrExternalFailure, "failed to transfer asset %d from %s to %s: %v",
			t.assetID, t.from.String(), t.to.String(), err)
	}
	h.transfers = append(h.transfers, t)
	return nil
}

func (l *Ledger) compensate(ctx context.Context, transfers []transfer) {
	for i := len(transfers) - 1; i >= 0; i-- {
		t := transfers[i]
		if err := l.callout(func() error {
			return t.registry.Transfer(ctx, t.assetID, t.to, t.from)
		}); err != nil {
			log.Logger("custody").Error("failed to reverse transfer",
				zap.Uint64("assetID", t.assetID),
				zap.String("from", t.to.String()),
				zap.String("to", t.from.String()),
				zap.Error(err))
		}
	}
}

// callout runs an external call with the ledger closed to mutations
func (l *Ledger) callout(fn func() error) error {
	l.callingOut.Store(true)
	defer l.callingOut.Store(false)
	return fn()
}

func (l *Ledger) registry(addr address.Address) (AssetRegistry, error) {
	reg, err := l.resolver.Registry(addr)
	if err != nil {
		return nil, errors.Wrapf(ErrExternalFailure, "failed to resolve registry %s: %v", addr.String(), err)
	}
	return reg, nil
}

func (l *Ledger) requireCapability(caller address.Address, capability string) error {
	if isZero(caller) {
		return errors.Wrap(ErrUnauthorized, "zero caller")
	}
	ok, err := l.caps.HasCapability(caller, capability)
	if err != nil {
		return errors.Wrapf(ErrExternalFailure, "failed to check capability %s: %v", capability, err)
	}
	if !ok {
		log.Logger("custody").Warn("privileged call rejected",
			zap.String("caller", caller.String()),
			zap.String("capability", capability))
		return errors.Wrapf(ErrUnauthorized, "%s lacks capability %s", caller.String(), capability)
	}
	return nil
}

func (l *Ledger) now() uint64 {
	return uint64(l.clock.Now().Unix())
}

func (l *Ledger) snapshot() *cowCache {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cache
}

func (l *Ledger) updateDepositMetrics() {
	c := l.snapshot()
	for _, rc := range c.Settings().registries {
		if rc.Address == nil {
			continue
		}
		_depositMtc.WithLabelValues(rc.Address.String()).Set(float64(c.RecordCount(rc.Address)))
	}
}

func validateBatch(s settings, assetIDs []uint64) error {
	if len(assetIDs) == 0 {
		return errors.Wrap(ErrInvalidInput, "empty batch")
	}
	if uint64(len(assetIDs)) > s.maxBatch {
		return errors.Wrapf(ErrInvalidInput, "batch size %d exceeds the maximum %d", len(assetIDs), s.maxBatch)
	}
	seen := make(map[uint64]bool, len(assetIDs))
	for _, id := range assetIDs {
		if seen[id] {
			return errors.Wrapf(ErrInvalidInput, "duplicate asset %d", id)
		}
		seen[id] = true
	}
	return nil
}

func addrString(addr address.Address) string {
	if addr == nil {
		return "<nil>"
	}
	return addr.String()
}
