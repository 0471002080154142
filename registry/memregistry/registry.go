// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

// Package memregistry is an in-memory asset registry with injectable failures
package memregistry

import (
	"context"
	"sync"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/plug-custody/custody"
)

var (
	// ErrUnknownAsset indicates the asset has never been minted
	ErrUnknownAsset = errors.New("unknown asset")
	// ErrNotAuthorized indicates the transfer source is not the owner of the asset
	ErrNotAuthorized = errors.New("transfer not authorized")
	// ErrUnknownRegistry indicates no registry is deployed at the address
	ErrUnknownRegistry = errors.New("unknown registry")
)

type (
	// Registry is an in-memory ownership table
	Registry struct {
		mu          sync.RWMutex
		owners      map[uint64]address.Address
		failOwnerOf map[uint64]error
		failOn      map[uint64]error
		onTransfer  func(ctx context.Context, assetID uint64)
		transfers   int
	}

	// Book resolves addresses to in-memory registries, every registry in the book counts as a contract
	Book struct {
		mu         sync.RWMutex
		registries map[string]*Registry
	}
)

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		owners:      make(map[uint64]address.Address),
		failOwnerOf: make(map[uint64]error),
		failOn:      make(map[uint64]error),
	}
}

// Mint assigns an asset to owner
func (r *Registry) Mint(owner address.Address, assetIDs ...uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range assetIDs {
		r.owners[id] = owner
	}
}

// FailOwnerOf makes ownership queries of the asset fail with err, a nil err clears the failure
func (r *Registry) FailOwnerOf(assetID uint64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.failOwnerOf, assetID)
		return
	}
	r.failOwnerOf[assetID] = err
}

// FailTransfer makes transfers of the asset fail with err, a nil err clears the failure
func (r *Registry) FailTransfer(assetID uint64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.failOn, assetID)
		return
	}
	r.failOn[assetID] = err
}

// OnTransfer sets a hook called before each transfer, outside of the registry lock
func (r *Registry) OnTransfer(fn func(ctx context.Context, assetID uint64)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onTransfer = fn
}

// Transfers returns the number of successful transfers
func (r *Registry) Transfers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transfers
}

// OwnerOf returns the owner of an asset
func (r *Registry) OwnerOf(_ context.Context, assetID uint64) (address.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err, ok := r.failOwnerOf[assetID]; ok {
		return nil, err
	}
	owner, ok := r.owners[assetID]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAsset, "asset %d", assetID)
	}
	return owner, nil
}

// Transfer moves an asset owned by from to to
func (r *Registry) Transfer(ctx context.Context, assetID uint64, from, to address.Address) error {
	r.mu.RLock()
	hook := r.onTransfer
	r.mu.RUnlock()
	if hook != nil {
		hook(ctx, assetID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failOn[assetID]; ok {
		return err
	}
	owner, ok := r.owners[assetID]
	if !ok {
		return errors.Wrapf(ErrUnknownAsset, "asset %d", assetID)
	}
	if owner.String() != from.String() {
		return errors.Wrapf(ErrNotAuthorized, "asset %d is owned by %s", assetID, owner.String())
	}
	r.owners[assetID] = to
	r.transfers++
	return nil
}

// NewBook creates an empty book
func NewBook() *Book {
	return &Book{
		registries: make(map[string]*Registry),
	}
}

// Deploy registers an empty registry at addr and returns it
func (b *Book) Deploy(addr address.Address) *Registry {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := NewRegistry()
	b.registries[addr.String()] = r
	return r
}

// Registry returns the registry deployed at addr
func (b *Book) Registry(addr address.Address) (custody.AssetRegistry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.registries[addr.String()]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRegistry, "address %s", addr.String())
	}
	return r, nil
}

// IsContract returns true if a registry is deployed at addr
func (b *Book) IsContract(_ context.Context, addr address.Address) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.registries[addr.String()]
	return ok, nil
}
