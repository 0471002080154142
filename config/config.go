// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	uconfig "go.uber.org/config"

	"github.com/iotexproject/plug-custody/custody"
	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/pkg/log"
	"github.com/iotexproject/plug-custody/registry/erc721"
)

// IMPORTANT: to define a config, add a field or a new config type to the existing config types. In addition, provide
// the default value in Default var.

var (
	// Default is the default config
	Default = Config{
		SubLogs: make(map[string]log.GlobalConfig),
		DB:      db.DefaultConfig,
		Custody: custody.DefaultConfig,
		Chain:   erc721.DefaultConfig,
	}

	// ErrInvalidCfg indicates the invalid config value
	ErrInvalidCfg = errors.New("invalid config value")

	// Validates is the collection config validation functions
	Validates = []Validate{
		ValidateDB,
		ValidateCustody,
		ValidateChain,
	}
)

type (
	// Config is the root config of plug-custody
	Config struct {
		Log     log.GlobalConfig            `yaml:"log"`
		SubLogs map[string]log.GlobalConfig `yaml:"subLogs"`
		DB      db.Config                   `yaml:"db"`
		Custody custody.Config              `yaml:"custody"`
		Chain   erc721.Config               `yaml:"chain"`
	}

	// Validate is the interface of validating the config
	Validate func(Config) error
)

// New creates a config instance. It first loads the default configs. If the config paths are not empty, it will read
// from the files and override the default configs. By default, it will apply all validation functions. To bypass
// validation, use DoNotValidate instead.
func New(configPaths []string, validates ...Validate) (Config, error) {
	opts := make([]uconfig.YAMLOption, 0)
	opts = append(opts, uconfig.Static(Default))
	opts = append(opts, uconfig.Expand(os.LookupEnv))
	for _, path := range configPaths {
		if path != "" {
			opts = append(opts, uconfig.File(path))
		}
	}
	yaml, err := uconfig.NewYAML(opts...)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to init config")
	}

	var cfg Config
	if err := yaml.Get(uconfig.Root).Populate(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal YAML config to struct")
	}

	// By default, the config needs to pass all the validation
	if len(validates) == 0 {
		validates = Validates
	}
	for _, validate := range validates {
		if err := validate(cfg); err != nil {
			return Config{}, errors.Wrap(err, "failed to validate config")
		}
	}
	return cfg, nil
}

// ValidateDB validates the db config
func ValidateDB(cfg Config) error {
	switch strings.ToLower(cfg.DB.Backend) {
	case db.BackendMemory:
		return nil
	case "", db.BackendBolt, db.BackendPebble:
		if cfg.DB.DbPath == "" {
			return errors.Wrap(ErrInvalidCfg, "db path is empty")
		}
		return nil
	default:
		return errors.Wrapf(ErrInvalidCfg, "unknown db backend %s", cfg.DB.Backend)
	}
}

// ValidateCustody validates the genesis of the custody ledger
func ValidateCustody(cfg Config) error {
	if err := cfg.Custody.Validate(); err != nil {
		return errors.Wrap(ErrInvalidCfg, err.Error())
	}
	return nil
}

// ValidateChain validates the chain client config
func ValidateChain(cfg Config) error {
	if cfg.Chain.Endpoint == "" {
		return errors.Wrap(ErrInvalidCfg, "chain endpoint is empty")
	}
	if cfg.Chain.RetryInterval < 0 || cfg.Chain.ReceiptTimeout <= 0 {
		return errors.Wrap(ErrInvalidCfg, "retry interval should not be negative and receipt timeout should be positive")
	}
	return nil
}

// DoNotValidate validates the given config
func DoNotValidate(cfg Config) error { return nil }
