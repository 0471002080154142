// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"context"

	"github.com/iotexproject/iotex-address/address"

	"github.com/iotexproject/plug-custody/db/batch"
)

// capabilities consumed by the ledger
const (
	// CapOwner is the default admin capability, required to hand over the capabilities
	CapOwner = "owner"
	// CapAdmin is required by parameter, registry and recovery operations
	CapAdmin = "admin"
	// CapPauser is required to pause and unpause the ledger
	CapPauser = "pauser"
)

// Capabilities is the set of capabilities granted at genesis and handed over together
var Capabilities = []string{CapOwner, CapAdmin, CapPauser}

//go:generate mockgen -destination=../test/mock/mock_custody/mock_custody.go -source=collaborators.go -package=mock_custody AssetRegistry,RegistryResolver,ContractInspector,CapabilityManager

type (
	// AssetRegistry tracks ownership of a class of uniquely identified assets
	AssetRegistry interface {
		OwnerOf(ctx context.Context, assetID uint64) (address.Address, error)
		Transfer(ctx context.Context, assetID uint64, from, to address.Address) error
	}

	// RegistryResolver returns the asset registry deployed at an address
	RegistryResolver interface {
		Registry(addr address.Address) (AssetRegistry, error)
	}

	// ContractInspector tells whether an identity is a deployed contract
	ContractInspector interface {
		IsContract(ctx context.Context, addr address.Address) (bool, error)
	}

	// CapabilityManager checks capability grants and stages their changes into the ledger's write batch
	CapabilityManager interface {
		HasCapability(principal address.Address, capability string) (bool, error)
		StageGrant(b batch.KVStoreBatch, principal address.Address, capabilities ...string) error
		// StageTransfer stages the move of all capabilities from one principal to another, or nothing at all
		StageTransfer(b batch.KVStoreBatch, from, to address.Address, capabilities ...string) error
	}
)
