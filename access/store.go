// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package access

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/db/batch"
	"github.com/iotexproject/plug-custody/pkg/log"
)

const _grantNS = "acl"

var (
	// ErrMissingCapability indicates the principal does not hold a capability
	ErrMissingCapability = errors.New("missing capability")
	// ErrInvalidPrincipal indicates a nil principal or an empty capability
	ErrInvalidPrincipal = errors.New("invalid principal")
)

// Store persists capability grants, a grant is keyed by principal bytes followed by the capability name
type Store struct {
	kv db.KVStore
}

// NewStore creates a new capability store on top of a started kv store
func NewStore(kv db.KVStore) *Store {
	return &Store{kv: kv}
}

// HasCapability returns true if principal holds the capability
func (s *Store) HasCapability(principal address.Address, capability string) (bool, error) {
	key, err := grantKey(principal, capability)
	if err != nil {
		return false, err
	}
	if _, err := s.kv.Get(_grantNS, key); err != nil {
		if errors.Cause(err) == db.ErrNotExist {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to get capability %s", capability)
	}
	return true, nil
}

// Grant grants capabilities to principal, granting a held capability is a no-op
func (s *Store) Grant(principal address.Address, capabilities ...string) error {
	b := batch.NewBatch()
	if err := s.StageGrant(b, principal, capabilities...); err != nil {
		return err
	}
	if err := s.kv.WriteBatch(b); err != nil {
		return err
	}
	log.L().Info("capabilities granted", zap.String("principal", principal.String()), zap.Strings("capabilities", capabilities))
	return nil
}

// StageGrant stages the grants into b, nothing is staged if any capability is invalid
func (s *Store) StageGrant(b batch.KVStoreBatch, principal address.Address, capabilities ...string) error {
	keys := make([][]byte, 0, len(capabilities))
	for _, c := range capabilities {
		key, err := grantKey(principal, c)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}
	for i, key := range keys {
		b.Put(_grantNS, key, []byte{1}, "failed to grant %s", capabilities[i])
	}
	return nil
}

// Revoke revokes capabilities from principal
func (s *Store) Revoke(principal address.Address, capabilities ...string) error {
	b := batch.NewBatch()
	for _, c := range capabilities {
		key, err := grantKey(principal, c)
		if err != nil {
			return err
		}
		b.Delete(_grantNS, key, "failed to revoke %s", c)
	}
	return s.kv.WriteBatch(b)
}

// Transfer revokes capabilities from one principal and grants them to another in one batch. It fails without
// any change if from lacks one of them.
func (s *Store) Transfer(from, to address.Address, capabilities ...string) error {
	b := batch.NewBatch()
	if err := s.StageTransfer(b, from, to, capabilities...); err != nil {
		return err
	}
	if err := s.kv.WriteBatch(b); err != nil {
		return err
	}
	log.L().Info("capabilities transferred",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Strings("capabilities", capabilities))
	return nil
}

// StageTransfer stages the revocations and grants of a transfer into b. Every capability is checked against the
// committed grants before anything is staged.
func (s *Store) StageTransfer(b batch.KVStoreBatch, from, to address.Address, capabilities ...string) error {
	if len(capabilities) == 0 {
		return errors.Wrap(ErrInvalidPrincipal, "no capability to transfer")
	}
	type move struct {
		capability string
		fromKey    []byte
		toKey      []byte
	}
	moves := make([]move, 0, len(capabilities))
	for _, c := range capabilities {
		ok, err := s.HasCapability(from, c)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(ErrMissingCapability, "%s lacks %s", from.String(), c)
		}
		fromKey, _ := grantKey(from, c)
		toKey, err := grantKey(to, c)
		if err != nil {
			return err
		}
		moves = append(moves, move{c, fromKey, toKey})
	}
	for _, m := range moves {
		b.Delete(_grantNS, m.fromKey, "failed to revoke %s", m.capability)
		b.Put(_grantNS, m.toKey, []byte{1}, "failed to grant %s", m.capability)
	}
	return nil
}

func grantKey(principal address.Address, capability string) ([]byte, error) {
	if principal == nil || capability == "" {
		return nil, ErrInvalidPrincipal
	}
	pb := principal.Bytes()
	key := make([]byte, 0, len(pb)+len(capability))
	key = append(key, pb...)
	return append(key, capability...), nil
}
