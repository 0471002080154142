// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"context"
	"fmt"
	"math"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/plug-custody/pkg/util/byteutil"
)

// SetParam updates a parameter and returns its old and new values
func (l *Ledger) SetParam(ctx context.Context, caller address.Address, p Param, v uint64) (uint64, uint64, error) {
	var old uint64
	err := l.run(ctx, "setParam", true, func(ctx context.Context, h *opHandler) error {
		if err := l.requireCapability(caller, CapAdmin); err != nil {
			return err
		}
		s := h.base
		if p == ParamMaxBatchSize {
			if v == 0 || v > math.MaxUint32 {
				return errors.Wrapf(ErrInvalidInput, "invalid max batch size %d", v)
			}
			old = s.maxBatch
			s.maxBatch = v
		} else {
			var err error
			if old, err = s.window.Field(p); err != nil {
				return err
			}
			if s.window, err = s.window.With(p, v); err != nil {
				return err
			}
		}
		h.setSettings(s)
		h.emit(Event{
			Kind:      EventParamUpdated,
			Actor:     caller,
			Param:     p.String(),
			Before:    old,
			After:     v,
			Timestamp: l.now(),
		})
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return old, v, nil
}

// SetSeasonStart sets the season start, it must be positive
func (l *Ledger) SetSeasonStart(ctx context.Context, caller address.Address, t uint64) (uint64, uint64, error) {
	return l.SetParam(ctx, caller, ParamSeasonStart, t)
}

// SetGracePeriod sets the grace period, it must be after the season start
func (l *Ledger) SetGracePeriod(ctx context.Context, caller address.Address, t uint64) (uint64, uint64, error) {
	return l.SetParam(ctx, caller, ParamGracePeriod, t)
}

// SetSeasonEnd sets the season end, it must be after the grace period
func (l *Ledger) SetSeasonEnd(ctx context.Context, caller address.Address, t uint64) (uint64, uint64, error) {
	return l.SetParam(ctx, caller, ParamSeasonEnd, t)
}

// SetExtendedUntil sets the extended deadline, it must be after the season end
func (l *Ledger) SetExtendedUntil(ctx context.Context, caller address.Address, t uint64) (uint64, uint64, error) {
	return l.SetParam(ctx, caller, ParamExtendedUntil, t)
}

// SetExtendableBefore sets the last time of per-asset extension, it must be before the extended deadline
func (l *Ledger) SetExtendableBefore(ctx context.Context, caller address.Address, t uint64) (uint64, uint64, error) {
	return l.SetParam(ctx, caller, ParamExtendableBefore, t)
}

// SetMaxBatchSize sets the maximum number of assets in one call
func (l *Ledger) SetMaxBatchSize(ctx context.Context, caller address.Address, n uint64) (uint64, uint64, error) {
	return l.SetParam(ctx, caller, ParamMaxBatchSize, n)
}

// SetRegistry swaps the registry of a slot. The new registry must be a deployed contract.
func (l *Ledger) SetRegistry(ctx context.Context, caller address.Address, slot int, registry address.Address) error {
	return l.run(ctx, "setRegistry", true, func(ctx context.Context, h *opHandler) error {
		if err := l.requireCapability(caller, CapAdmin); err != nil {
			return err
		}
		if slot < 0 || slot >= NumRegistries {
			return errors.Wrapf(ErrInvalidInput, "invalid registry slot %d", slot)
		}
		if isZero(registry) {
			return errors.Wrap(ErrInvalidInput, "zero registry")
		}
		s := h.base
		if i, ok := slotOf(s.registries, registry); ok && i != slot {
			return errors.Wrapf(ErrInvalidInput, "registry %s is already in slot %d", registry.String(), i)
		}
		if l.inspector == nil {
			return errors.Wrap(ErrExternalFailure, "no contract inspector")
		}
		var isContract bool
		if err := l.callout(func() (err error) {
			isContract, err = l.inspector.IsContract(ctx, registry)
			return err
		}); err != nil {
			return errors.Wrapf(ErrExternalFailure, "failed to inspect %s: %v", registry.String(), err)
		}
		if !isContract {
			return errors.Wrapf(ErrInvalidInput, "%s is not a contract", registry.String())
		}
		old := s.registries[slot].Address
		s.registries[slot].Address = registry
		h.setSettings(s)
		h.emit(Event{
			Kind:      EventRegistryUpdated,
			Actor:     caller,
			Registry:  registry,
			Param:     fmt.Sprintf("registry%d:%s", slot, addrString(old)),
			Timestamp: l.now(),
		})
		return nil
	})
}

// SetWithdrawEnabled sets the withdraw flags of whitelisted registries in one call
func (l *Ledger) SetWithdrawEnabled(ctx context.Context, caller address.Address, registries []address.Address, enabled []bool) error {
	return l.run(ctx, "setWithdrawEnabled", true, func(ctx context.Context, h *opHandler) error {
		if err := l.requireCapability(caller, CapAdmin); err != nil {
			return err
		}
		if len(registries) == 0 || len(registries) != len(enabled) {
			return errors.Wrapf(ErrInvalidInput, "%d registries with %d flags", len(registries), len(enabled))
		}
		s := h.base
		now := l.now()
		for i, registry := range registries {
			slot, ok := slotOf(s.registries, registry)
			if !ok {
				return errors.Wrapf(ErrInvalidInput, "registry %s is not whitelisted", addrString(registry))
			}
			before := s.registries[slot].Withdrawable
			s.registries[slot].Withdrawable = enabled[i]
			h.emit(Event{
				Kind:      EventWithdrawFlagUpdated,
				Actor:     caller,
				Registry:  registry,
				Before:    uint64(byteutil.BoolToByte(before)),
				After:     uint64(byteutil.BoolToByte(enabled[i])),
				Timestamp: now,
			})
		}
		h.setSettings(s)
		return nil
	})
}

// SetCustodian sets the identity holding deposited assets
func (l *Ledger) SetCustodian(ctx context.Context, caller, custodian address.Address) error {
	return l.run(ctx, "setCustodian", true, func(ctx context.Context, h *opHandler) error {
		if err := l.requireCapability(caller, CapAdmin); err != nil {
			return err
		}
		if isZero(custodian) {
			return errors.Wrap(ErrInvalidInput, "zero custodian")
		}
		s := h.base
		old := s.custodian
		s.custodian = custodian
		h.setSettings(s)
		h.emit(Event{
			Kind:      EventCustodianUpdated,
			Actor:     caller,
			Holder:    custodian,
			Param:     addrString(old),
			Timestamp: l.now(),
		})
		return nil
	})
}

// Pause disables every mutation but unpausing
func (l *Ledger) Pause(ctx context.Context, caller address.Address) error {
	return l.setPaused(ctx, caller, true)
}

// Unpause enables mutations again
func (l *Ledger) Unpause(ctx context.Context, caller address.Address) error {
	return l.setPaused(ctx, caller, false)
}

func (l *Ledger) setPaused(ctx context.Context, caller address.Address, paused bool) error {
	op, kind := "unpause", EventUnpaused
	if paused {
		op, kind = "pause", EventPaused
	}
	return l.run(ctx, op, false, func(ctx context.Context, h *opHandler) error {
		if err := l.requireCapability(caller, CapPauser); err != nil {
			return err
		}
		s := h.base
		if s.paused == paused {
			return errors.Wrapf(ErrStateConflict, "ledger paused = %t", paused)
		}
		s.paused = paused
		h.setSettings(s)
		h.emit(Event{
			Kind:      kind,
			Actor:     caller,
			Timestamp: l.now(),
		})
		return nil
	})
}

// TransferCapabilities hands over the owner, admin and pauser capabilities of caller to a new principal
func (l *Ledger) TransferCapabilities(ctx context.Context, caller, to address.Address) error {
	return l.run(ctx, "transferCapabilities", true, func(ctx context.Context, h *opHandler) error {
		if isZero(to) {
			return errors.Wrap(ErrInvalidInput, "zero principal")
		}
		if caller != nil && caller.String() == to.String() {
			return errors.Wrap(ErrInvalidInput, "transfer to self")
		}
		for _, c := range Capabilities {
			if err := l.requireCapability(caller, c); err != nil {
				return err
			}
		}
		if err := l.caps.StageTransfer(h.delta, caller, to, Capabilities...); err != nil {
			return errors.Wrapf(ErrExternalFailure, "failed to transfer capabilities: %v", err)
		}
		h.emit(Event{
			Kind:      EventCapabilitiesTransferred,
			Actor:     caller,
			Holder:    to,
			Timestamp: l.now(),
		})
		return nil
	})
}
