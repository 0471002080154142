// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
)

// Config is the genesis config of the ledger, applied on first start only
type Config struct {
	// Owner receives the owner, admin and pauser capabilities
	Owner        string       `yaml:"owner"`
	Custodian    string       `yaml:"custodian"`
	Registries   []string     `yaml:"registries"`
	MaxBatchSize uint64       `yaml:"maxBatchSize"`
	Genesis      SeasonWindow `yaml:"genesis"`
}

// DefaultConfig is the default genesis config
var DefaultConfig = Config{
	MaxBatchSize: 75,
}

type genesis struct {
	owner    address.Address
	settings settings
}

// Validate checks the genesis config
func (cfg Config) Validate() error {
	_, err := cfg.genesis()
	return err
}

func (cfg Config) genesis() (*genesis, error) {
	owner, err := parseIdentity(cfg.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "invalid owner")
	}
	custodian, err := parseIdentity(cfg.Custodian)
	if err != nil {
		return nil, errors.Wrap(err, "invalid custodian")
	}
	if len(cfg.Registries) != NumRegistries {
		return nil, errors.Wrapf(ErrInvalidInput, "expecting %d registries, got %d", NumRegistries, len(cfg.Registries))
	}
	if cfg.MaxBatchSize == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "max batch size must be positive")
	}
	if err := cfg.Genesis.Validate(); err != nil {
		return nil, err
	}
	g := &genesis{
		owner: owner,
		settings: settings{
			window:    cfg.Genesis,
			custodian: custodian,
			maxBatch:  cfg.MaxBatchSize,
		},
	}
	seen := make(map[string]bool, NumRegistries)
	for i, s := range cfg.Registries {
		addr, err := parseIdentity(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid registry %d", i)
		}
		if seen[addr.String()] {
			return nil, errors.Wrapf(ErrInvalidInput, "duplicate registry %s", s)
		}
		seen[addr.String()] = true
		g.settings.registries[i] = RegistryConfig{Address: addr}
	}
	return g, nil
}

func parseIdentity(s string) (address.Address, error) {
	addr, err := address.FromString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "failed to parse address %s: %v", s, err)
	}
	if isZero(addr) {
		return nil, errors.Wrap(ErrInvalidInput, "zero address")
	}
	return addr, nil
}

func isZero(addr address.Address) bool {
	return addr == nil || addr.String() == address.ZeroAddress
}
