// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package erc721

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/plug-custody/custody"
	"github.com/iotexproject/plug-custody/pkg/log"
	"github.com/iotexproject/plug-custody/pkg/util/addrutil"
)

const _erc721ABI = `[
	{
		"inputs": [{"internalType": "uint256", "name": "tokenId", "type": "uint256"}],
		"name": "ownerOf",
		"outputs": [{"internalType": "address", "name": "", "type": "address"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "address", "name": "from", "type": "address"},
			{"internalType": "address", "name": "to", "type": "address"},
			{"internalType": "uint256", "name": "tokenId", "type": "uint256"}
		],
		"name": "safeTransferFrom",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var (
	_abi abi.ABI

	_ custody.AssetRegistry     = (*Registry)(nil)
	_ custody.RegistryResolver  = (*Client)(nil)
	_ custody.ContractInspector = (*Client)(nil)
)

func init() {
	var err error
	_abi, err = abi.JSON(strings.NewReader(_erc721ABI))
	if err != nil {
		panic(err)
	}
}

type (
	// Caller reads contract state
	Caller interface {
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
		CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	}

	// Sender submits a contract call and returns once it is executed
	Sender interface {
		Send(ctx context.Context, contract common.Address, data []byte) error
	}

	// Registry is an ERC-721 contract. Transfers are sent by the operator key, which must be approved by
	// both the holders and the custodian.
	Registry struct {
		contract common.Address
		client   *Client
	}

	// Client resolves ERC-721 registries and inspects contract code on one chain
	Client struct {
		caller     Caller
		sender     Sender
		cfg        Config
		mu         sync.Mutex
		registries map[common.Address]*Registry
		closer     func()
	}
)

// NewClient creates a client on top of a caller and a sender
func NewClient(caller Caller, sender Sender, cfg Config) *Client {
	return &Client{
		caller:     caller,
		sender:     sender,
		cfg:        cfg,
		registries: make(map[common.Address]*Registry),
		closer:     func() {},
	}
}

// Close releases the connection to the chain
func (c *Client) Close() {
	c.closer()
}

// Registry returns the registry deployed at addr
func (c *Client) Registry(addr address.Address) (custody.AssetRegistry, error) {
	if addr == nil {
		return nil, errors.New("nil registry address")
	}
	contract := addrutil.ToEvmAddr(addr)
	c.mu.Lock()
	defer c.mu.Unlock()
	if reg, ok := c.registries[contract]; ok {
		return reg, nil
	}
	reg := &Registry{contract: contract, client: c}
	c.registries[contract] = reg
	return reg, nil
}

// IsContract returns true if code is deployed at addr
func (c *Client) IsContract(ctx context.Context, addr address.Address) (bool, error) {
	var code []byte
	err := c.retry(ctx, func() error {
		var err error
		code, err = c.caller.CodeAt(ctx, addrutil.ToEvmAddr(addr), nil)
		return err
	})
	if err != nil {
		return false, errors.Wrapf(err, "failed to read code at %s", addr.String())
	}
	return len(code) > 0, nil
}

func (c *Client) retry(ctx context.Context, fn func() error) error {
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.RetryInterval), c.cfg.ReadRetries),
		ctx,
	)
	return backoff.RetryNotify(fn, bo, func(err error, d time.Duration) {
		log.L().Debug("retry chain read", zap.Error(err), zap.Duration("after", d))
	})
}

// OwnerOf returns the owner of an asset
func (r *Registry) OwnerOf(ctx context.Context, assetID uint64) (address.Address, error) {
	data, err := _abi.Pack("ownerOf", new(big.Int).SetUint64(assetID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack ownerOf")
	}
	var ret []byte
	err = r.client.retry(ctx, func() error {
		var err error
		ret, err = r.client.caller.CallContract(ctx, ethereum.CallMsg{
			To:   &r.contract,
			Data: data,
		}, nil)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call ownerOf(%d) on %s", assetID, r.contract.Hex())
	}
	out, err := _abi.Unpack("ownerOf", ret)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unpack ownerOf(%d)", assetID)
	}
	if len(out) != 1 {
		return nil, errors.Errorf("ownerOf(%d) returned %d values", assetID, len(out))
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return nil, errors.Errorf("ownerOf(%d) returned %T", assetID, out[0])
	}
	return address.FromBytes(owner.Bytes())
}

// Transfer moves an asset by safeTransferFrom
func (r *Registry) Transfer(ctx context.Context, assetID uint64, from, to address.Address) error {
	data, err := _abi.Pack("safeTransferFrom", addrutil.ToEvmAddr(from), addrutil.ToEvmAddr(to), new(big.Int).SetUint64(assetID))
	if err != nil {
		return errors.Wrap(err, "failed to pack safeTransferFrom")
	}
	if err := r.client.sender.Send(ctx, r.contract, data); err != nil {
		return errors.Wrapf(err, "failed to transfer asset %d on %s", assetID, r.contract.Hex())
	}
	return nil
}
