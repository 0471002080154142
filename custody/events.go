// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/iotexproject/iotex-address/address"
	"go.uber.org/zap"

	"github.com/iotexproject/plug-custody/pkg/log"
)

// EventKind is the kind of an audit event
type EventKind uint8

// audit event kinds
const (
	EventDeposited EventKind = iota + 1
	EventWithdrawn
	EventExtendedOne
	EventExtendedAll
	EventForceRemoved
	EventParamUpdated
	EventRegistryUpdated
	EventWithdrawFlagUpdated
	EventCustodianUpdated
	EventPaused
	EventUnpaused
	EventCapabilitiesTransferred
)

var _eventNames = map[EventKind]string{
	EventDeposited:               "deposited",
	EventWithdrawn:               "withdrawn",
	EventExtendedOne:             "extendedOne",
	EventExtendedAll:             "extendedAll",
	EventForceRemoved:            "forceRemoved",
	EventParamUpdated:            "paramUpdated",
	EventRegistryUpdated:         "registryUpdated",
	EventWithdrawFlagUpdated:     "withdrawFlagUpdated",
	EventCustodianUpdated:        "custodianUpdated",
	EventPaused:                  "paused",
	EventUnpaused:                "unpaused",
	EventCapabilitiesTransferred: "capabilitiesTransferred",
}

func (k EventKind) String() string {
	if name, ok := _eventNames[k]; ok {
		return name
	}
	return "unknown"
}

type (
	// Event is the audit record of a committed mutation
	Event struct {
		Seq       uint64
		Kind      EventKind
		Actor     address.Address
		Registry  address.Address
		Holder    address.Address
		AssetIDs  []uint64
		Param     string
		Before    uint64
		After     uint64
		Timestamp uint64
	}

	// EventSink receives audit events after commit
	EventSink func(Event)
)

func logEvent(e Event) {
	fields := []zap.Field{
		zap.Uint64("seq", e.Seq),
		zap.Stringer("kind", e.Kind),
		zap.Uint64("timestamp", e.Timestamp),
	}
	for _, f := range []struct {
		name string
		addr address.Address
	}{
		{"actor", e.Actor},
		{"registry", e.Registry},
		{"holder", e.Holder},
	} {
		if f.addr != nil {
			fields = append(fields, zap.String(f.name, f.addr.String()))
		}
	}
	if len(e.AssetIDs) > 0 {
		fields = append(fields, zap.Uint64s("assetIDs", e.AssetIDs))
	}
	if e.Param != "" {
		fields = append(fields, zap.String("param", e.Param))
	}
	fields = append(fields, zap.Uint64("before", e.Before), zap.Uint64("after", e.After))
	log.Logger("custody").Info("audit event", fields...)
}
