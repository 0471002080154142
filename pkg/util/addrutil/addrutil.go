// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package addrutil

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/iotexproject/iotex-address/address"
)

// IoAddrToEvmAddr converts an io address string into an evm address
func IoAddrToEvmAddr(ioAddr string) (common.Address, error) {
	addr, err := address.FromString(ioAddr)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(addr.Bytes()), nil
}

// ToEvmAddr converts an address into an evm address, nil becomes the zero address
func ToEvmAddr(addr address.Address) common.Address {
	if addr == nil {
		return common.Address{}
	}
	return common.BytesToAddress(addr.Bytes())
}
