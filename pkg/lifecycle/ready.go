// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// ErrWrongState is returned when a service is turned on or off twice
var ErrWrongState = errors.New("service is in wrong state")

// Readiness tells whether a service accepts requests, the zero value is not ready
type Readiness struct {
	on atomic.Bool
}

// TurnOn marks the service ready
func (r *Readiness) TurnOn() error {
	return r.flip(true)
}

// TurnOff marks the service not ready
func (r *Readiness) TurnOff() error {
	return r.flip(false)
}

// IsReady returns true between TurnOn and TurnOff
func (r *Readiness) IsReady() bool {
	return r.on.Load()
}

func (r *Readiness) flip(on bool) error {
	if !r.on.CompareAndSwap(!on, on) {
		return errors.Wrapf(ErrWrongState, "ready is already %t", on)
	}
	return nil
}
