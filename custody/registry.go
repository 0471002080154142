// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
)

// NumRegistries is the number of whitelisted registry slots
const NumRegistries = 3

const _addrLen = 20

// RegistryConfig is a whitelisted registry and whether its assets can currently be withdrawn
type RegistryConfig struct {
	Address      address.Address
	Withdrawable bool
}

func (rc RegistryConfig) serialize() []byte {
	b := make([]byte, 0, _addrLen+1)
	b = append(b, rc.Address.Bytes()...)
	if rc.Withdrawable {
		return append(b, 1)
	}
	return append(b, 0)
}

func (rc *RegistryConfig) deserialize(b []byte) error {
	if len(b) != _addrLen+1 {
		return errors.Errorf("invalid registry config length %d", len(b))
	}
	addr, err := address.FromBytes(b[:_addrLen])
	if err != nil {
		return err
	}
	rc.Address = addr
	rc.Withdrawable = b[_addrLen] == 1
	return nil
}

// slotOf returns the slot of a whitelisted registry
func slotOf(registries [NumRegistries]RegistryConfig, registry address.Address) (int, bool) {
	if registry == nil {
		return 0, false
	}
	for i, rc := range registries {
		if rc.Address != nil && rc.Address.String() == registry.String() {
			return i, true
		}
	}
	return 0, false
}
