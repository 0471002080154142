// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/plug-custody/custody"
	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/test/identityset"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	r := require.New(t)
	// default config has no owner
	_, err := New(nil)
	r.Equal(ErrInvalidCfg, errors.Cause(err))

	cfg, err := New(nil, DoNotValidate)
	r.NoError(err)
	r.Equal(db.DefaultConfig, cfg.DB)
	r.Equal(uint64(75), cfg.Custody.MaxBatchSize)
	r.Equal(time.Minute, cfg.Chain.ReceiptTimeout)
}

func TestNewConfigWithWrongConfigPath(t *testing.T) {
	_, err := New([]string{"wrong_path"})
	require.Error(t, err)
}

func TestNewConfigWithOverride(t *testing.T) {
	r := require.New(t)
	t.Setenv("PLUG_CUSTODIAN", identityset.Address(9).String())
	path := writeConfig(t, fmt.Sprintf(`
db:
    backend: pebble
    dbPath: /var/data/plug
custody:
    owner: %s
    custodian: ${PLUG_CUSTODIAN}
    registries:
        - %s
        - %s
        - %s
    genesis:
        start: 100
        gracePeriod: 150
        end: 200
        extendedUntil: 300
        extendableBefore: 250
chain:
    endpoint: http://localhost:15014
    retryInterval: 2s
`,
		identityset.Address(0).String(),
		identityset.Address(20).String(),
		identityset.Address(21).String(),
		identityset.Address(22).String(),
	))

	cfg, err := New([]string{path})
	r.NoError(err)
	r.Equal(db.BackendPebble, cfg.DB.Backend)
	r.Equal("/var/data/plug", cfg.DB.DbPath)
	r.Equal(identityset.Address(9).String(), cfg.Custody.Custodian)
	r.Len(cfg.Custody.Registries, 3)
	r.Equal(uint64(75), cfg.Custody.MaxBatchSize)
	r.Equal(custody.SeasonWindow{
		Start:            100,
		GracePeriod:      150,
		End:              200,
		ExtendedUntil:    300,
		ExtendableBefore: 250,
	}, cfg.Custody.Genesis)
	r.Equal("http://localhost:15014", cfg.Chain.Endpoint)
	r.Equal(2*time.Second, cfg.Chain.RetryInterval)
	r.Equal(uint64(3), cfg.Chain.ReadRetries)
}

func TestValidateDB(t *testing.T) {
	r := require.New(t)
	cfg := Default
	r.NoError(ValidateDB(cfg))
	cfg.DB.DbPath = ""
	r.Equal(ErrInvalidCfg, errors.Cause(ValidateDB(cfg)))
	cfg.DB.Backend = db.BackendMemory
	r.NoError(ValidateDB(cfg))
	cfg.DB.Backend = "leveldb"
	r.Equal(ErrInvalidCfg, errors.Cause(ValidateDB(cfg)))
}

func TestValidateCustody(t *testing.T) {
	r := require.New(t)
	cfg := Default
	cfg.Custody = custody.Config{
		Owner:        identityset.Address(0).String(),
		Custodian:    identityset.Address(9).String(),
		Registries:   []string{identityset.Address(20).String(), identityset.Address(21).String(), identityset.Address(22).String()},
		MaxBatchSize: 75,
		Genesis: custody.SeasonWindow{
			Start:            100,
			GracePeriod:      150,
			End:              200,
			ExtendedUntil:    300,
			ExtendableBefore: 250,
		},
	}
	r.NoError(ValidateCustody(cfg))

	cfg.Custody.Genesis.End = 150
	r.Equal(ErrInvalidCfg, errors.Cause(ValidateCustody(cfg)))
	cfg.Custody.Genesis.End = 200
	cfg.Custody.Registries = cfg.Custody.Registries[:2]
	r.Equal(ErrInvalidCfg, errors.Cause(ValidateCustody(cfg)))
}

func TestValidateChain(t *testing.T) {
	r := require.New(t)
	cfg := Default
	r.NoError(ValidateChain(cfg))
	cfg.Chain.ReceiptTimeout = 0
	r.Equal(ErrInvalidCfg, errors.Cause(ValidateChain(cfg)))
	cfg = Default
	cfg.Chain.Endpoint = ""
	r.Equal(ErrInvalidCfg, errors.Cause(ValidateChain(cfg)))
}
