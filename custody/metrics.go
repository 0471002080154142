// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_operationMtc = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plugcustody_operation_total",
			Help: "The total number of ledger operations",
		},
		[]string{"op", "status"},
	)
	_depositMtc = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "plugcustody_deposits",
			Help: "The number of assets in custody per registry",
		},
		[]string{"registry"},
	)
)

func init() {
	prometheus.MustRegister(_operationMtc)
	prometheus.MustRegister(_depositMtc)
}

func recordOperation(op string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	_operationMtc.WithLabelValues(op, status).Inc()
}
