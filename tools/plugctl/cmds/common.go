// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iotexproject/plug-custody/access"
	"github.com/iotexproject/plug-custody/config"
	"github.com/iotexproject/plug-custody/custody"
	"github.com/iotexproject/plug-custody/db"
	"github.com/iotexproject/plug-custody/pkg/lifecycle"
	"github.com/iotexproject/plug-custody/pkg/log"
	"github.com/iotexproject/plug-custody/registry/erc721"
)

var (
	// ConfigPaths are the config files loaded by every command
	ConfigPaths []string

	_caller string
)

// AddCommands adds all plugctl commands to the root
func AddCommands(root *cobra.Command) {
	root.AddCommand(
		ConfigCmd,
		WindowCmd,
		RecordsCmd,
		HoldingsCmd,
		ScoutsCmd,
		PauseCmd,
		UnpauseCmd,
		SetParamCmd,
		SetRegistryCmd,
		SetWithdrawCmd,
	)
}

func init() {
	for _, c := range []*cobra.Command{PauseCmd, UnpauseCmd, SetParamCmd, SetRegistryCmd, SetWithdrawCmd} {
		c.Flags().StringVar(&_caller, "caller", "", "identity making the privileged call")
	}
}

// session is an opened ledger, optionally connected to the chain
type session struct {
	cfg    config.Config
	ledger *custody.Ledger
	chain  *erc721.Client
	lc     lifecycle.Lifecycle
}

func loadConfig() (config.Config, error) {
	cfg, err := config.New(ConfigPaths)
	if err != nil {
		return config.Config{}, err
	}
	if err := log.InitLoggers(cfg.Log, cfg.SubLogs); err != nil {
		return config.Config{}, errors.Wrap(err, "failed to init loggers")
	}
	return cfg, nil
}

// openSession starts the ledger. The chain client is dialed only when the command calls registries.
func openSession(ctx context.Context, withChain bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := db.CreateKVStore(cfg.DB)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg}
	var (
		resolver custody.RegistryResolver
		opts     []custody.Option
	)
	if withChain {
		if s.chain, err = erc721.Dial(ctx, cfg.Chain); err != nil {
			return nil, err
		}
		resolver = s.chain
		opts = append(opts, custody.WithContractInspector(s.chain))
	}
	s.ledger = custody.NewLedger(kv, cfg.Custody, resolver, access.NewStore(kv), opts...)
	s.lc.Add(s.ledger)
	if err := s.lc.OnStart(ctx); err != nil {
		s.closeChain()
		return nil, errors.Wrap(err, "failed to start ledger")
	}
	return s, nil
}

func (s *session) close(ctx context.Context) error {
	defer s.closeChain()
	return s.lc.OnStop(ctx)
}

func (s *session) closeChain() {
	if s.chain != nil {
		s.chain.Close()
	}
}

// withSession runs fn on an opened ledger and closes it afterwards
func withSession(withChain bool, fn func(context.Context, *session) error) error {
	ctx := context.Background()
	s, err := openSession(ctx, withChain)
	if err != nil {
		return err
	}
	if err := fn(ctx, s); err != nil {
		_ = s.close(ctx)
		return err
	}
	return s.close(ctx)
}

func parseAddress(s string) (address.Address, error) {
	addr, err := address.FromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %s", s)
	}
	return addr, nil
}

func callerAddress() (address.Address, error) {
	if _caller == "" {
		return nil, errors.New("--caller is required")
	}
	return parseAddress(_caller)
}

func formatTime(ts uint64) string {
	return fmt.Sprintf("%d (%s)", ts, time.Unix(int64(ts), 0).UTC().Format(time.RFC3339))
}

func output(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
