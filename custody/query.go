// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
)

// Holdings returns the asset ids deposited by holder under registry, in ascending order
func (l *Ledger) Holdings(registry, holder address.Address) []uint64 {
	if registry == nil || holder == nil {
		return nil
	}
	return l.snapshot().AssetIDs(registry, holder)
}

// Records returns the records deposited by holder under registry, in ascending asset id order
func (l *Ledger) Records(registry, holder address.Address) []*DepositRecord {
	if registry == nil || holder == nil {
		return nil
	}
	c := l.snapshot()
	ids := c.AssetIDs(registry, holder)
	recs := make([]*DepositRecord, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, c.Record(registry, id).Clone())
	}
	return recs
}

// AllRecords returns the records of holder under each whitelisted registry, indexed by slot
func (l *Ledger) AllRecords(holder address.Address) [NumRegistries][]*DepositRecord {
	var res [NumRegistries][]*DepositRecord
	if holder == nil {
		return res
	}
	c := l.snapshot()
	for i, rc := range c.Settings().registries {
		if rc.Address == nil {
			continue
		}
		for _, id := range c.AssetIDs(rc.Address, holder) {
			res[i] = append(res[i], c.Record(rc.Address, id).Clone())
		}
	}
	return res
}

// Record returns the record of an asset
func (l *Ledger) Record(registry address.Address, assetID uint64) (*DepositRecord, bool) {
	if registry == nil {
		return nil, false
	}
	rec := l.snapshot().Record(registry, assetID)
	if rec == nil {
		return nil, false
	}
	return rec.Clone(), true
}

// SeasonWindow returns the current season window
func (l *Ledger) SeasonWindow() SeasonWindow {
	return l.snapshot().Settings().window
}

// Registries returns the whitelisted registries
func (l *Ledger) Registries() [NumRegistries]RegistryConfig {
	return l.snapshot().Settings().registries
}

// DepositCount returns the number of assets of a registry in custody
func (l *Ledger) DepositCount(registry address.Address) int {
	if registry == nil {
		return 0
	}
	return l.snapshot().RecordCount(registry)
}

// Now returns the current time of the ledger clock in seconds
func (l *Ledger) Now() uint64 {
	return l.now()
}

// Custodian returns the identity holding deposited assets
func (l *Ledger) Custodian() address.Address {
	return l.snapshot().Settings().custodian
}

// MaxBatchSize returns the maximum number of assets in one call
func (l *Ledger) MaxBatchSize() uint64 {
	return l.snapshot().Settings().maxBatch
}

// HasExtendedAll returns true if holder opted into the global extension
func (l *Ledger) HasExtendedAll(holder address.Address) bool {
	if holder == nil {
		return false
	}
	return l.snapshot().HasExtended(holder)
}

// IsOperational returns true if the ledger is started and not paused
func (l *Ledger) IsOperational() bool {
	return l.IsReady() && !l.snapshot().Settings().paused
}

// IsWithdrawable returns true if the asset can be withdrawn by its holder now
func (l *Ledger) IsWithdrawable(registry address.Address, assetID uint64) (bool, error) {
	if registry == nil {
		return false, errors.Wrap(ErrInvalidInput, "nil registry")
	}
	c := l.snapshot()
	rec := c.Record(registry, assetID)
	if rec == nil {
		return false, errors.Wrapf(ErrInvalidInput, "asset %d of %s is not in custody", assetID, registry.String())
	}
	return IsWithdrawable(rec, c.HasExtended(rec.Holder), l.now(), c.Settings().window), nil
}
