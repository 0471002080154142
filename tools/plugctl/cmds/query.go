// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/iotexproject/plug-custody/custody"
)

var (
	// ConfigCmd prints the effective config
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Chain.OperatorKey != "" {
				cfg.Chain.OperatorKey = "******"
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = output(cmd).Write(out)
			return err
		},
	}

	// WindowCmd prints the season window and the registries
	WindowCmd = &cobra.Command{
		Use:   "window",
		Short: "Print the season window, registries and operational state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(false, func(_ context.Context, s *session) error {
				w := s.ledger.SeasonWindow()
				tb := table.New("Parameter", "Value").WithWriter(output(cmd))
				for _, p := range []custody.Param{
					custody.ParamSeasonStart,
					custody.ParamGracePeriod,
					custody.ParamSeasonEnd,
					custody.ParamExtendedUntil,
					custody.ParamExtendableBefore,
				} {
					v, err := w.Field(p)
					if err != nil {
						return err
					}
					tb.AddRow(p.String(), formatTime(v))
				}
				tb.AddRow(custody.ParamMaxBatchSize.String(), s.ledger.MaxBatchSize())
				tb.AddRow("custodian", s.ledger.Custodian().String())
				tb.AddRow("operational", s.ledger.IsOperational())
				tb.Print()

				fmt.Fprintln(output(cmd))
				tb = table.New("Slot", "Registry", "Withdrawable", "Deposits").WithWriter(output(cmd))
				for i, rc := range s.ledger.Registries() {
					tb.AddRow(i, rc.Address.String(), rc.Withdrawable, s.ledger.DepositCount(rc.Address))
				}
				tb.Print()
				return nil
			})
		},
	}

	// RecordsCmd prints the records of a holder in a registry
	RecordsCmd = &cobra.Command{
		Use:   "records REGISTRY HOLDER",
		Short: "Print the deposit records of a holder in a registry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			holder, err := parseAddress(args[1])
			if err != nil {
				return err
			}
			return withSession(false, func(_ context.Context, s *session) error {
				window := s.ledger.SeasonWindow()
				extendedAll := s.ledger.HasExtendedAll(holder)
				now := s.ledger.Now()
				tb := table.New("AssetID", "LockedAt", "LockedUntil", "Withdrawable").WithWriter(output(cmd))
				for _, rec := range s.ledger.Records(registry, holder) {
					tb.AddRow(
						rec.AssetID,
						formatTime(rec.LockedAt),
						formatTime(custody.EffectiveLockedUntil(rec, extendedAll, window)),
						custody.IsWithdrawable(rec, extendedAll, now, window),
					)
				}
				tb.Print()
				return nil
			})
		},
	}

	// HoldingsCmd prints the deposits of a holder across all registries
	HoldingsCmd = &cobra.Command{
		Use:   "holdings HOLDER",
		Short: "Print the deposited asset ids of a holder in every registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			holder, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			return withSession(false, func(_ context.Context, s *session) error {
				registries := s.ledger.Registries()
				tb := table.New("Slot", "Registry", "Count", "AssetIDs").WithWriter(output(cmd))
				for i, recs := range s.ledger.AllRecords(holder) {
					ids := make([]string, 0, len(recs))
					for _, rec := range recs {
						ids = append(ids, fmt.Sprint(rec.AssetID))
					}
					tb.AddRow(i, registries[i].Address.String(), len(recs), strings.Join(ids, ","))
				}
				tb.Print()
				fmt.Fprintf(output(cmd), "\nextended all: %t\n", s.ledger.HasExtendedAll(holder))
				return nil
			})
		},
	}

	// ScoutsCmd prints the registered scout nodes
	ScoutsCmd = &cobra.Command{
		Use:   "scouts",
		Short: "Print the registered scout nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(false, func(_ context.Context, s *session) error {
				nodes, err := s.ledger.ScoutNodes()
				if err != nil {
					return err
				}
				tb := table.New("Holder", "NodeID", "RegisteredAt").WithWriter(output(cmd))
				for _, n := range nodes {
					tb.AddRow(n.Holder.String(), n.NodeID, formatTime(n.RegisteredAt))
				}
				tb.Print()
				return nil
			})
		},
	}
)
