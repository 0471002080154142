// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

// IsWithdrawable returns true if the record can be withdrawn at now
func IsWithdrawable(rec *DepositRecord, extendedAll bool, now uint64, w SeasonWindow) bool {
	return now >= EffectiveLockedUntil(rec, extendedAll, w)
}

// EffectiveLockedUntil returns the unlock time of a record. Holders opted into the global extension are locked
// until the extended deadline regardless of the record's own lock.
func EffectiveLockedUntil(rec *DepositRecord, extendedAll bool, w SeasonWindow) uint64 {
	if extendedAll {
		return w.ExtendedUntil
	}
	return rec.LockedUntil
}
