// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/iotexproject/iotex-address/address"

	"github.com/iotexproject/plug-custody/db/batch"
)

type (
	// transfer is an asset movement performed by the current operation
	transfer struct {
		registry AssetRegistry
		assetID  uint64
		from, to address.Address
	}

	// opHandler stages the effects of one operation on a dirty cache and a write batch
	opHandler struct {
		dirty     ledgerCache
		delta     batch.KVStoreBatch
		base      settings
		initial   bool
		transfers []transfer
		events    []Event
	}
)

func newOpHandler(dirty ledgerCache) *opHandler {
	return &opHandler{
		dirty: dirty,
		delta: batch.NewBatch(),
		base:  dirty.Settings(),
	}
}

func (h *opHandler) putRecord(registry address.Address, rec *DepositRecord) {
	h.dirty.PutRecord(registry, rec)
	h.delta.Put(_recordNS, recordKey(registry, rec.AssetID), rec.Serialize(), "failed to put record %d", rec.AssetID)
}

func (h *opHandler) deleteRecord(registry address.Address, assetID uint64) {
	h.dirty.DeleteRecord(registry, assetID)
	h.delta.Delete(_recordNS, recordKey(registry, assetID), "failed to delete record %d", assetID)
}

func (h *opHandler) setExtended(holder address.Address) {
	h.dirty.SetExtended(holder)
	h.delta.Put(_extensionNS, holder.Bytes(), []byte{1}, "failed to put extension of %s", holder.String())
}

func (h *opHandler) setSettings(s settings) {
	h.dirty.SetSettings(s)
}

// initSettings stages s as the first settings of the ledger
func (h *opHandler) initSettings(s settings) {
	h.dirty.SetSettings(s)
	h.initial = true
}

func (h *opHandler) emit(e Event) {
	h.events = append(h.events, e)
}

// Finalize returns the write batch and the cache to commit
func (h *opHandler) Finalize() (batch.KVStoreBatch, ledgerCache) {
	if h.initial {
		writeAllSettings(h.delta, h.dirty.Settings())
	} else {
		writeSettings(h.delta, h.base, h.dirty.Settings())
	}
	return h.delta, h.dirty
}
