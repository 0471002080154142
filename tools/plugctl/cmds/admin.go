// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iotexproject/plug-custody/custody"
)

var (
	// PauseCmd pauses the ledger
	PauseCmd = &cobra.Command{
		Use:   "pause",
		Short: "Pause every ledger mutation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return privileged(false, func(ctx context.Context, s *session, caller address.Address) error {
				if err := s.ledger.Pause(ctx, caller); err != nil {
					return err
				}
				fmt.Fprintln(output(cmd), "ledger paused")
				return nil
			})
		},
	}

	// UnpauseCmd unpauses the ledger
	UnpauseCmd = &cobra.Command{
		Use:   "unpause",
		Short: "Resume ledger mutations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return privileged(false, func(ctx context.Context, s *session, caller address.Address) error {
				if err := s.ledger.Unpause(ctx, caller); err != nil {
					return err
				}
				fmt.Fprintln(output(cmd), "ledger unpaused")
				return nil
			})
		},
	}

	// SetParamCmd updates a window parameter or the max batch size
	SetParamCmd = &cobra.Command{
		Use:   "set-param PARAM VALUE",
		Short: "Set a season window parameter or the max batch size",
		Long: "Set a season window parameter or the max batch size. PARAM is one of seasonStart, gracePeriod, " +
			"seasonEnd, extendedUntil, extendableBefore and maxBatchSize.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := custody.ParseParam(args[0])
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid value %s", args[1])
			}
			return privileged(false, func(ctx context.Context, s *session, caller address.Address) error {
				old, updated, err := s.ledger.SetParam(ctx, caller, p, v)
				if err != nil {
					return err
				}
				fmt.Fprintf(output(cmd), "%s: %d -> %d\n", p, old, updated)
				return nil
			})
		},
	}

	// SetRegistryCmd swaps the registry of a slot
	SetRegistryCmd = &cobra.Command{
		Use:   "set-registry SLOT REGISTRY",
		Short: "Swap the registry contract of a slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid slot %s", args[0])
			}
			registry, err := parseAddress(args[1])
			if err != nil {
				return err
			}
			return privileged(true, func(ctx context.Context, s *session, caller address.Address) error {
				if err := s.ledger.SetRegistry(ctx, caller, slot, registry); err != nil {
					return err
				}
				fmt.Fprintf(output(cmd), "registry %d: %s\n", slot, registry.String())
				return nil
			})
		},
	}

	// SetWithdrawCmd sets the withdraw flag of a registry
	SetWithdrawCmd = &cobra.Command{
		Use:   "set-withdraw REGISTRY true|false",
		Short: "Enable or disable withdrawals from a registry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid flag %s", args[1])
			}
			return privileged(false, func(ctx context.Context, s *session, caller address.Address) error {
				if err := s.ledger.SetWithdrawEnabled(ctx, caller, []address.Address{registry}, []bool{enabled}); err != nil {
					return err
				}
				fmt.Fprintf(output(cmd), "withdraw from %s: %t\n", registry.String(), enabled)
				return nil
			})
		},
	}
)

func privileged(withChain bool, fn func(context.Context, *session, address.Address) error) error {
	caller, err := callerAddress()
	if err != nil {
		return err
	}
	return withSession(withChain, func(ctx context.Context, s *session) error {
		return fn(ctx, s, caller)
	})
}
