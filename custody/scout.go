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
	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/pkg/util/byteutil"
)

// ScoutNode is a node registered by a holder. Registration is disabled, the ledger only serves what is stored.
type ScoutNode struct {
	Holder       address.Address
	NodeID       string
	RegisteredAt uint64
}

// Serialize serializes the scout node
func (n *ScoutNode) Serialize() []byte {
	return byteutil.Must(proto.Marshal(&custodypb.ScoutNode{
		Holder:       n.Holder.Bytes(),
		NodeID:       n.NodeID,
		RegisteredAt: n.RegisteredAt,
	}))
}

// Deserialize deserializes the scout node
func (n *ScoutNode) Deserialize(b []byte) error {
	m := custodypb.ScoutNode{}
	if err := proto.Unmarshal(b, &m); err != nil {
		return err
	}
	if len(m.Holder) == 0 {
		return errors.New("scout node without holder")
	}
	holder, err := address.FromBytes(m.Holder)
	if err != nil {
		return errors.Wrap(err, "invalid holder")
	}
	n.Holder = holder
	n.NodeID = m.NodeID
	n.RegisteredAt = m.RegisteredAt
	return nil
}

// ScoutNode returns the scout node registered by holder
func (l *Ledger) ScoutNode(holder address.Address) (*ScoutNode, bool, error) {
	if holder == nil {
		return nil, false, errors.Wrap(ErrInvalidInput, "nil holder")
	}
	v, err := l.kv.Get(_scoutNS, holder.Bytes())
	if err != nil {
		if errors.Cause(err) == db.ErrNotExist {
			return nil, false, nil
		}
		return nil, false, err
	}
	node := &ScoutNode{}
	if err := node.Deserialize(v); err != nil {
		return nil, false, err
	}
	return node, true, nil
}

// ScoutNodes returns all registered scout nodes
func (l *Ledger) ScoutNodes() ([]*ScoutNode, error) {
	var nodes []*ScoutNode
	if err := l.kv.ForEach(_scoutNS, func(_, v []byte) error {
		node := &ScoutNode{}
		if err := node.Deserialize(v); err != nil {
			return err
		}
		nodes = append(nodes, node)
		return nil
	}); err != nil {
		return nil, err
	}
	return nodes, nil
}
