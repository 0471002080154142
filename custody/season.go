// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package custody

import (
	"strings"

	"github.com/pkg/errors"
)

// Param is an admin-mutable ledger parameter
type Param uint8

// ledger parameters
const (
	ParamSeasonStart Param = iota
	ParamGracePeriod
	ParamSeasonEnd
	ParamExtendedUntil
	ParamExtendableBefore
	ParamMaxBatchSize
)

var _paramNames = map[Param]string{
	ParamSeasonStart:      "seasonStart",
	ParamGracePeriod:      "gracePeriod",
	ParamSeasonEnd:        "seasonEnd",
	ParamExtendedUntil:    "extendedUntil",
	ParamExtendableBefore: "extendableBefore",
	ParamMaxBatchSize:     "maxBatchSize",
}

func (p Param) String() string {
	if name, ok := _paramNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseParam parses a parameter name, case insensitive
func ParseParam(name string) (Param, error) {
	for p, n := range _paramNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidInput, "unknown parameter %s", name)
}

// SeasonWindow is the set of timestamps (unix seconds) governing deposits, unlocks and extensions.
// The expected ordering is start < gracePeriod < end < extendedUntil, and extendableBefore < extendedUntil.
type SeasonWindow struct {
	Start            uint64 `yaml:"start"`
	GracePeriod      uint64 `yaml:"gracePeriod"`
	End              uint64 `yaml:"end"`
	ExtendedUntil    uint64 `yaml:"extendedUntil"`
	ExtendableBefore uint64 `yaml:"extendableBefore"`
}

// Validate checks the whole ordering chain
func (w SeasonWindow) Validate() error {
	switch {
	case w.Start == 0:
		return errors.Wrap(ErrInvalidInput, "season start must be positive")
	case w.GracePeriod <= w.Start:
		return errors.Wrapf(ErrStateConflict, "grace period %d is not after season start %d", w.GracePeriod, w.Start)
	case w.End <= w.GracePeriod:
		return errors.Wrapf(ErrStateConflict, "season end %d is not after grace period %d", w.End, w.GracePeriod)
	case w.ExtendedUntil <= w.End:
		return errors.Wrapf(ErrStateConflict, "extended until %d is not after season end %d", w.ExtendedUntil, w.End)
	case w.ExtendableBefore >= w.ExtendedUntil:
		return errors.Wrapf(ErrStateConflict, "extendable before %d is not before extended until %d", w.ExtendableBefore, w.ExtendedUntil)
	}
	return nil
}

// Field returns the value of a window parameter
func (w SeasonWindow) Field(p Param) (uint64, error) {
	switch p {
	case ParamSeasonStart:
		return w.Start, nil
	case ParamGracePeriod:
		return w.GracePeriod, nil
	case ParamSeasonEnd:
		return w.End, nil
	case ParamExtendedUntil:
		return w.ExtendedUntil, nil
	case ParamExtendableBefore:
		return w.ExtendableBefore, nil
	default:
		return 0, errors.Wrapf(ErrInvalidInput, "%s is not a window parameter", p)
	}
}

// With returns a copy of the window with one field updated. The new value is checked against the current value
// of its neighbour only; fields depending on the updated one are not re-validated.
func (w SeasonWindow) With(p Param, t uint64) (SeasonWindow, error) {
	switch p {
	case ParamSeasonStart:
		if t == 0 {
			return w, errors.Wrap(ErrInvalidInput, "season start must be positive")
		}
		w.Start = t
	case ParamGracePeriod:
		if t <= w.Start {
			return w, errors.Wrapf(ErrStateConflict, "grace period %d is not after season start %d", t, w.Start)
		}
		w.GracePeriod = t
	case ParamSeasonEnd:
		if t <= w.GracePeriod {
			return w, errors.Wrapf(ErrStateConflict, "season end %d is not after grace period %d", t, w.GracePeriod)
		}
		w.End = t
	case ParamExtendedUntil:
		if t <= w.End {
			return w, errors.Wrapf(ErrStateConflict, "extended until %d is not after season end %d", t, w.End)
		}
		w.ExtendedUntil = t
	case ParamExtendableBefore:
		if t >= w.ExtendedUntil {
			return w, errors.Wrapf(ErrStateConflict, "extendable before %d is not before extended until %d", t, w.ExtendedUntil)
		}
		w.ExtendableBefore = t
	default:
		return w, errors.Wrapf(ErrInvalidInput, "%s is not a window parameter", p)
	}
	return w, nil
}

// InSeason returns true if deposits are accepted at now, both bounds inclusive
func (w SeasonWindow) InSeason(now uint64) bool {
	return w.Start <= now && now <= w.End
}

// LockedAt returns the lock time of a deposit made at now. Deposits within the grace period are back-dated to
// the season start.
func (w SeasonWindow) LockedAt(now uint64) uint64 {
	if now <= w.GracePeriod {
		return w.Start
	}
	return now
}

// Extendable returns true if a per-asset extension is allowed at now
func (w SeasonWindow) Extendable(now uint64) bool {
	return now <= w.ExtendableBefore
}
