// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package erc721

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/iotexproject/go-pkgs/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/plug-custody/pkg/log"
	"github.com/iotexproject/plug-custody/pkg/util/addrutil"
)

type (
	// Config is the config of the chain client
	Config struct {
		Endpoint string `yaml:"endpoint"`
		// ChainID is queried from the endpoint if zero
		ChainID uint64 `yaml:"chainID"`
		// OperatorKey is the hex private key sending transfers
		OperatorKey    string        `yaml:"operatorKey"`
		GasLimit       uint64        `yaml:"gasLimit"`
		ReadRetries    uint64        `yaml:"readRetries"`
		RetryInterval  time.Duration `yaml:"retryInterval"`
		ReceiptTimeout time.Duration `yaml:"receiptTimeout"`
	}

	ethSender struct {
		cli      *ethclient.Client
		key      *ecdsa.PrivateKey
		from     common.Address
		chainID  *big.Int
		gasLimit uint64
		cfg      Config
	}
)

// DefaultConfig is the default config
var DefaultConfig = Config{
	Endpoint:       "https://babel-api.mainnet.iotex.io",
	ReadRetries:    3,
	RetryInterval:  time.Second,
	ReceiptTimeout: time.Minute,
}

// Dial connects to the endpoint and returns a client sending transfers with the operator key
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	sk, err := crypto.HexStringToPrivateKey(cfg.OperatorKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid operator key")
	}
	key, ok := sk.EcdsaPrivateKey().(*ecdsa.PrivateKey)
	if !ok {
		return nil, errors.New("operator key is not a secp256k1 key")
	}
	cli, err := ethclient.DialContext(ctx, cfg.Endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", cfg.Endpoint)
	}
	chainID := new(big.Int).SetUint64(cfg.ChainID)
	if cfg.ChainID == 0 {
		if chainID, err = cli.ChainID(ctx); err != nil {
			cli.Close()
			return nil, errors.Wrap(err, "failed to query chain id")
		}
	}
	sender := &ethSender{
		cli:     cli,
		key:     key,
		from:    addrutil.ToEvmAddr(sk.PublicKey().Address()),
		chainID: chainID,
		cfg:     cfg,
	}
	c := NewClient(cli, sender, cfg)
	c.closer = cli.Close
	log.L().Info("connected to chain",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("chainID", chainID.String()),
		zap.String("operator", sender.from.Hex()))
	return c, nil
}

// Send signs and sends a legacy transaction, then waits for its receipt
func (s *ethSender) Send(ctx context.Context, contract common.Address, data []byte) error {
	nonce, err := s.cli.PendingNonceAt(ctx, s.from)
	if err != nil {
		return errors.Wrap(err, "failed to get nonce")
	}
	gasPrice, err := s.cli.SuggestGasPrice(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get gas price")
	}
	gas := s.cfg.GasLimit
	if gas == 0 {
		gas, err = s.cli.EstimateGas(ctx, ethereum.CallMsg{
			From: s.from,
			To:   &contract,
			Data: data,
		})
		if err != nil {
			return errors.Wrap(err, "failed to estimate gas")
		}
	}
	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &contract,
		Value:    big.NewInt(0),
		Data:     data,
	}), types.NewEIP155Signer(s.chainID), s.key)
	if err != nil {
		return errors.Wrap(err, "failed to sign transaction")
	}
	if err := s.cli.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ReceiptTimeout)
	defer cancel()
	var receipt *types.Receipt
	if err := backoff.Retry(func() error {
		receipt, err = s.cli.TransactionReceipt(ctx, tx.Hash())
		return err
	}, backoff.WithContext(backoff.NewConstantBackOff(s.cfg.RetryInterval), ctx)); err != nil {
		return errors.Wrapf(err, "failed to get receipt of %s", tx.Hash().Hex())
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return nil
}
