// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package log

import (
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// GlobalConfig defines the global logger configurations.
type GlobalConfig struct {
	Zap            *zap.Config `json:"zap" yaml:"zap"`
	RedirectStdLog bool        `json:"stdLogRedirect" yaml:"stdLogRedirect"`
}

var (
	_logMu            sync.RWMutex
	_logServeMux      = http.NewServeMux()
	_subLoggers       = make(map[string]*zap.Logger)
	_levelHandlers    = make(map[string]struct{})
	_globalLoggerName = "global"
)

func init() {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level.SetLevel(zap.InfoLevel)
	l, err := zapCfg.Build()
	if err != nil {
		zap.S().Errorf("failed to init zap global logger, no zap log will be shown till zap is properly initialized: %v", err)
		return
	}
	zap.ReplaceGlobals(l)
}

// L wraps zap.L().
func L() *zap.Logger { return zap.L() }

// S wraps zap.S().
func S() *zap.SugaredLogger { return zap.S() }

// Logger returns logger of the given name
func Logger(name string) *zap.Logger {
	_logMu.RLock()
	defer _logMu.RUnlock()
	logger, ok := _subLoggers[name]
	if !ok {
		return L().Named(name)
	}
	return logger
}

// InitLoggers initializes the global logger and other sub loggers.
func InitLoggers(globalCfg GlobalConfig, subCfgs map[string]GlobalConfig, opts ...zap.Option) error {
	if subCfgs == nil {
		subCfgs = make(map[string]GlobalConfig)
	}
	if _, exists := subCfgs[_globalLoggerName]; exists {
		return errors.New("'" + _globalLoggerName + "' is a reserved name for global logger")
	}
	_logMu.RLock()
	for name := range subCfgs {
		if _, exists := _subLoggers[name]; exists {
			_logMu.RUnlock()
			return errors.Errorf("duplicate sub logger name: %s", name)
		}
	}
	_logMu.RUnlock()
	subCfgs[_globalLoggerName] = globalCfg
	for name, cfg := range subCfgs {
		if cfg.Zap == nil {
			zapCfg := zap.NewProductionConfig()
			cfg.Zap = &zapCfg
		}
		logger, err := cfg.Zap.Build(opts...)
		if err != nil {
			return errors.Wrapf(err, "failed to build logger %s", name)
		}

		_logMu.Lock()
		if name == _globalLoggerName {
			zap.ReplaceGlobals(logger)
			if cfg.RedirectStdLog {
				zap.RedirectStdLog(logger)
			}
		} else {
			_subLoggers[name] = logger.Named(name)
		}
		if _, ok := _levelHandlers[name]; !ok {
			_logServeMux.HandleFunc("/"+name, cfg.Zap.Level.ServeHTTP)
			_levelHandlers[name] = struct{}{}
		}
		_logMu.Unlock()
	}
	return nil
}

// RegisterLevelConfigMux registers log's level config http mux.
func RegisterLevelConfigMux(root *http.ServeMux) {
	_logMu.Lock()
	root.Handle("/logging/", http.StripPrefix("/logging", _logServeMux))
	_logMu.Unlock()
}
