// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"

	"github.com/iotexproject/plug-custody/custody/custodypb"
	"github.com/iotexproject/plug-custody/pkg/util/byteutil"
)

// DepositRecord is an asset held in custody on behalf of its holder
type DepositRecord struct {
	Holder      address.Address
	AssetID     uint64
	LockedAt    uint64
	LockedUntil uint64
}

// Serialize serializes the record
func (r *DepositRecord) Serialize() []byte {
	return byteutil.Must(proto.Marshal(r.toProto()))
}

// Deserialize deserializes the record
func (r *DepositRecord) Deserialize(b []byte) error {
	m := custodypb.DepositRecord{}
	if err := proto.Unmarshal(b, &m); err != nil {
		return err
	}
	return r.loadProto(&m)
}

func (r *DepositRecord) toProto() *custodypb.DepositRecord {
	return &custodypb.DepositRecord{
		Holder:      r.Holder.Bytes(),
		AssetID:     r.AssetID,
		LockedAt:    r.LockedAt,
		LockedUntil: r.LockedUntil,
	}
}

func (r *DepositRecord) loadProto(p *custodypb.DepositRecord) error {
	if len(p.Holder) == 0 {
		return errors.New("record without holder")
	}
	holder, err := address.FromBytes(p.Holder)
	if err != nil {
		return errors.Wrap(err, "invalid holder")
	}
	r.Holder = holder
	r.AssetID = p.AssetID
	r.LockedAt = p.LockedAt
	r.LockedUntil = p.LockedUntil
	return nil
}

// Clone clones the record, the holder address is immutable and shared
func (r *DepositRecord) Clone() *DepositRecord {
	c := *r
	return &c
}
