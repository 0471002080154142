// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"context"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
)

// Deposit takes the assets of holder into custody for the current season
func (l *Ledger) Deposit(ctx context.Context, registry, holder address.Address, assetIDs []uint64) error {
	return l.run(ctx, "deposit", true, func(ctx context.Context, h *opHandler) error {
		s := h.base
		if _, ok := slotOf(s.registries, registry); !ok {
			return errors.Wrapf(ErrInvalidInput, "registry %s is not whitelisted", addrString(registry))
		}
		if isZero(holder) {
			return errors.Wrap(ErrInvalidInput, "zero holder")
		}
		if err := validateBatch(s, assetIDs); err != nil {
			return err
		}
		now := l.now()
		if !s.window.InSeason(now) {
			return errors.Wrapf(ErrWindowViolation, "deposit at %d is out of season [%d, %d]", now, s.window.Start, s.window.End)
		}
		for _, id := range assetIDs {
			if h.dirty.Record(registry, id) != nil {
				return errors.Wrapf(ErrStateConflict, "asset %d is already in custody", id)
			}
		}
		reg, err := l.registry(registry)
		if err != nil {
			return err
		}
		for _, id := range assetIDs {
			var owner address.Address
			if err := l.callout(func() (err error) {
				owner, err = reg.OwnerOf(ctx, id)
				return err
			}); err != nil {
				return errors.Wrapf(ErrExternalFailure, "failed to get owner of asset %d: %v", id, err)
			}
			if owner == nil || owner.String() != holder.String() {
				return errors.Wrapf(ErrUnauthorized, "asset %d is not owned by %s", id, holder.String())
			}
		}
		lockedAt := s.window.LockedAt(now)
		for _, id := range assetIDs {
			h.putRecord(registry, &DepositRecord{
				Holder:      holder,
				AssetID:     id,
				LockedAt:    lockedAt,
				LockedUntil: s.window.End,
			})
		}
		for _, id := range assetIDs {
			if err := l.transfer(ctx, h, transfer{registry: reg, assetID: id, from: holder, to: s.custodian}); err != nil {
				return err
			}
		}
		h.emit(Event{
			Kind:      EventDeposited,
			Actor:     holder,
			Registry:  registry,
			Holder:    holder,
			AssetIDs:  append([]uint64{}, assetIDs...),
			Before:    lockedAt,
			After:     s.window.End,
			Timestamp: now,
		})
		return nil
	})
}

// Withdraw returns unlocked assets from custody to their holder
func (l *Ledger) Withdraw(ctx context.Context, registry, holder address.Address, assetIDs []uint64) error {
	return l.run(ctx, "withdraw", true, func(ctx context.Context, h *opHandler) error {
		s := h.base
		slot, ok := slotOf(s.registries, registry)
		if !ok {
			return errors.Wrapf(ErrInvalidInput, "registry %s is not whitelisted", addrString(registry))
		}
		if !s.registries[slot].Withdrawable {
			return errors.Wrapf(ErrStateConflict, "withdrawal from registry %s is not enabled", registry.String())
		}
		if isZero(holder) {
			return errors.Wrap(ErrInvalidInput, "zero holder")
		}
		if err := validateBatch(s, assetIDs); err != nil {
			return err
		}
		now := l.now()
		extended := h.dirty.HasExtended(holder)
		for _, id := range assetIDs {
			rec := h.dirty.Record(registry, id)
			if rec == nil || rec.Holder.String() != holder.String() {
				return errors.Wrapf(ErrUnauthorized, "asset %d is not deposited by %s", id, holder.String())
			}
			if !IsWithdrawable(rec, extended, now, s.window) {
				return errors.Wrapf(ErrWindowViolation, "asset %d is locked until %d", id, EffectiveLockedUntil(rec, extended, s.window))
			}
		}
		reg, err := l.registry(registry)
		if err != nil {
			return err
		}
		for _, id := range assetIDs {
			h.deleteRecord(registry, id)
		}
		for _, id := range assetIDs {
			if err := l.transfer(ctx, h, transfer{registry: reg, assetID: id, from: s.custodian, to: holder}); err != nil {
				return err
			}
		}
		h.emit(Event{
			Kind:      EventWithdrawn,
			Actor:     holder,
			Registry:  registry,
			Holder:    holder,
			AssetIDs:  append([]uint64{}, assetIDs...),
			Timestamp: now,
		})
		return nil
	})
}

// ExtendOne locks the given records until the extended deadline
func (l *Ledger) ExtendOne(ctx context.Context, registry, holder address.Address, assetIDs []uint64) error {
	return l.run(ctx, "extendOne", true, func(ctx context.Context, h *opHandler) error {
		s := h.base
		if _, ok := slotOf(s.registries, registry); !ok {
			return errors.Wrapf(ErrInvalidInput, "registry %s is not whitelisted", addrString(registry))
		}
		if isZero(holder) {
			return errors.Wrap(ErrInvalidInput, "zero holder")
		}
		if err := validateBatch(s, assetIDs); err != nil {
			return err
		}
		if h.dirty.HasExtended(holder) {
			return errors.Wrapf(ErrStateConflict, "%s has opted into the global extension", holder.String())
		}
		now := l.now()
		if !s.window.Extendable(now) {
			return errors.Wrapf(ErrWindowViolation, "extension at %d is after %d", now, s.window.ExtendableBefore)
		}
		recs := make([]*DepositRecord, 0, len(assetIDs))
		for _, id := range assetIDs {
			rec := h.dirty.Record(registry, id)
			if rec == nil || rec.Holder.String() != holder.String() {
				return errors.Wrapf(ErrUnauthorized, "asset %d is not deposited by %s", id, holder.String())
			}
			recs = append(recs, rec)
		}
		for _, rec := range recs {
			extended := rec.Clone()
			extended.LockedUntil = s.window.ExtendedUntil
			h.putRecord(registry, extended)
			h.emit(Event{
				Kind:      EventExtendedOne,
				Actor:     holder,
				Registry:  registry,
				Holder:    holder,
				AssetIDs:  []uint64{rec.AssetID},
				Before:    rec.LockedUntil,
				After:     extended.LockedUntil,
				Timestamp: now,
			})
		}
		return nil
	})
}

// ExtendAll opts holder into the global extension, once and for good
func (l *Ledger) ExtendAll(ctx context.Context, holder address.Address) error {
	return l.run(ctx, "extendAll", true, func(ctx context.Context, h *opHandler) error {
		if isZero(holder) {
			return errors.Wrap(ErrInvalidInput, "zero holder")
		}
		if h.dirty.HasExtended(holder) {
			return errors.Wrapf(ErrStateConflict, "%s has already opted into the global extension", holder.String())
		}
		h.setExtended(holder)
		h.emit(Event{
			Kind:      EventExtendedAll,
			Actor:     holder,
			Holder:    holder,
			After:     h.base.window.ExtendedUntil,
			Timestamp: l.now(),
		})
		return nil
	})
}

// ForceRemove deletes a record without moving the asset, for operator recovery
func (l *Ledger) ForceRemove(ctx context.Context, caller, registry, holder address.Address, assetID uint64) error {
	return l.run(ctx, "forceRemove", true, func(ctx context.Context, h *opHandler) error {
		if err := l.requireCapability(caller, CapAdmin); err != nil {
			return err
		}
		if isZero(registry) {
			return errors.Wrap(ErrInvalidInput, "zero registry")
		}
		rec := h.dirty.Record(registry, assetID)
		if rec == nil {
			return errors.Wrapf(ErrStateConflict, "asset %d of %s is not in custody", assetID, registry.String())
		}
		if holder == nil || rec.Holder.String() != holder.String() {
			return errors.Wrapf(ErrInvalidInput, "asset %d is deposited by %s", assetID, rec.Holder.String())
		}
		h.deleteRecord(registry, assetID)
		h.emit(Event{
			Kind:      EventForceRemoved,
			Actor:     caller,
			Registry:  registry,
			Holder:    holder,
			AssetIDs:  []uint64{assetID},
			Before:    rec.LockedUntil,
			Timestamp: l.now(),
		})
		return nil
	})
}
