// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/db/batch"
	"github.com/iotexproject/plug-custody/pkg/util/byteutil"
)

// storage namespaces
const (
	_recordNS    = "plg"
	_paramNS     = "prm"
	_registryNS  = "reg"
	_extensionNS = "ext"
	_scoutNS     = "sct"
)

var (
	_startKey            = []byte("start")
	_graceKey            = []byte("grace")
	_endKey              = []byte("end")
	_extendedUntilKey    = []byte("extendedUntil")
	_extendableBeforeKey = []byte("extendableBefore")
	_maxBatchKey         = []byte("maxBatch")
	_custodianKey        = []byte("custodian")
	_pausedKey           = []byte("paused")

	_windowKeys = map[Param][]byte{
		ParamSeasonStart:      _startKey,
		ParamGracePeriod:      _graceKey,
		ParamSeasonEnd:        _endKey,
		ParamExtendedUntil:    _extendedUntilKey,
		ParamExtendableBefore: _extendableBeforeKey,
	}
)

func recordKey(registry address.Address, assetID uint64) []byte {
	k := make([]byte, 0, _addrLen+8)
	k = append(k, registry.Bytes()...)
	return append(k, byteutil.Uint64ToBytesBigEndian(assetID)...)
}

func decodeRecordKey(k []byte) (address.Address, uint64, error) {
	if len(k) != _addrLen+8 {
		return nil, 0, errors.Errorf("invalid record key length %d", len(k))
	}
	registry, err := address.FromBytes(k[:_addrLen])
	if err != nil {
		return nil, 0, err
	}
	return registry, byteutil.BytesToUint64BigEndian(k[_addrLen:]), nil
}

// loadCache rebuilds the cache from the store, it returns false if no genesis has been written yet
func loadCache(kv db.KVStore) (*plugCache, bool, error) {
	c := newPlugCache()
	if _, err := kv.Get(_paramNS, _startKey); err != nil {
		if errors.Cause(err) == db.ErrNotExist {
			return c, false, nil
		}
		return nil, false, err
	}
	s, err := loadSettings(kv)
	if err != nil {
		return nil, false, err
	}
	c.settings = s
	if err := kv.ForEach(_recordNS, func(k, v []byte) error {
		registry, assetID, err := decodeRecordKey(k)
		if err != nil {
			return err
		}
		rec := &DepositRecord{}
		if err := rec.Deserialize(v); err != nil {
			return errors.Wrapf(err, "failed to load record %d of %s", assetID, registry.String())
		}
		if rec.AssetID != assetID {
			return errors.Errorf("record key %d mismatches asset id %d", assetID, rec.AssetID)
		}
		c.PutRecord(registry, rec)
		return nil
	}); err != nil {
		return nil, false, err
	}
	if err := kv.ForEach(_extensionNS, func(k, _ []byte) error {
		holder, err := address.FromBytes(k)
		if err != nil {
			return err
		}
		c.SetExtended(holder)
		return nil
	}); err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func loadSettings(kv db.KVStore) (settings, error) {
	var (
		s   settings
		err error
	)
	getUint64 := func(key []byte) uint64 {
		if err != nil {
			return 0
		}
		var v []byte
		v, err = kv.Get(_paramNS, key)
		if err == nil && len(v) != 8 {
			err = errors.Errorf("invalid value length of %s", key)
		}
		if err != nil {
			return 0
		}
		return byteutil.BytesToUint64BigEndian(v)
	}
	s.window.Start = getUint64(_startKey)
	s.window.GracePeriod = getUint64(_graceKey)
	s.window.End = getUint64(_endKey)
	s.window.ExtendedUntil = getUint64(_extendedUntilKey)
	s.window.ExtendableBefore = getUint64(_extendableBeforeKey)
	s.maxBatch = getUint64(_maxBatchKey)
	if err != nil {
		return s, errors.Wrap(err, "failed to load parameters")
	}
	v, err := kv.Get(_paramNS, _custodianKey)
	if err != nil {
		return s, errors.Wrap(err, "failed to load custodian")
	}
	if s.custodian, err = address.FromBytes(v); err != nil {
		return s, errors.Wrap(err, "failed to load custodian")
	}
	switch v, err := kv.Get(_paramNS, _pausedKey); {
	case err == nil:
		s.paused = len(v) == 1 && v[0] == 1
	case errors.Cause(err) != db.ErrNotExist:
		return s, errors.Wrap(err, "failed to load pause flag")
	}
	for i := range s.registries {
		v, err := kv.Get(_registryNS, []byte{byte(i)})
		if err != nil {
			return s, errors.Wrapf(err, "failed to load registry %d", i)
		}
		if err := s.registries[i].deserialize(v); err != nil {
			return s, errors.Wrapf(err, "failed to load registry %d", i)
		}
	}
	return s, nil
}

// writeSettings stages every field that differs between old and new
func writeSettings(b batch.KVStoreBatch, old, s settings) {
	for p, key := range _windowKeys {
		ov, _ := old.window.Field(p)
		nv, _ := s.window.Field(p)
		if ov != nv {
			b.Put(_paramNS, key, byteutil.Uint64ToBytesBigEndian(nv), "failed to put %s", p)
		}
	}
	if old.maxBatch != s.maxBatch {
		b.Put(_paramNS, _maxBatchKey, byteutil.Uint64ToBytesBigEndian(s.maxBatch), "failed to put max batch size")
	}
	if old.custodian == nil || old.custodian.String() != s.custodian.String() {
		b.Put(_paramNS, _custodianKey, s.custodian.Bytes(), "failed to put custodian")
	}
	if old.paused != s.paused {
		b.Put(_paramNS, _pausedKey, []byte{byteutil.BoolToByte(s.paused)}, "failed to put pause flag")
	}
	for i, rc := range s.registries {
		orc := old.registries[i]
		if orc.Address == nil || orc.Address.String() != rc.Address.String() || orc.Withdrawable != rc.Withdrawable {
			b.Put(_registryNS, []byte{byte(i)}, rc.serialize(), "failed to put registry %d", i)
		}
	}
}

// writeAllSettings stages every field of s, zero values included
func writeAllSettings(b batch.KVStoreBatch, s settings) {
	for p, key := range _windowKeys {
		v, _ := s.window.Field(p)
		b.Put(_paramNS, key, byteutil.Uint64ToBytesBigEndian(v), "failed to put %s", p)
	}
	b.Put(_paramNS, _maxBatchKey, byteutil.Uint64ToBytesBigEndian(s.maxBatch), "failed to put max batch size")
	b.Put(_paramNS, _custodianKey, s.custodian.Bytes(), "failed to put custodian")
	b.Put(_paramNS, _pausedKey, []byte{byteutil.BoolToByte(s.paused)}, "failed to put pause flag")
	for i, rc := range s.registries {
		b.Put(_registryNS, []byte{byte(i)}, rc.serialize(), "failed to put registry %d", i)
	}
}
