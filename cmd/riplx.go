// Copyright © 2021 The riplx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/riplx/riplx/internal/apiserver"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/orchestrator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sigs = make(chan os.Signal, 1)

var cfgFile string

var _utOrchestrator orchestrator.Orchestrator

var rootCmd = &cobra.Command{
	Use:   "riplx",
	Short: "XRPL payments and credential-gated RWA backend",
	Long: `Serves the REST API a wallet frontend uses to prepare, sign and submit XRPL payments,
issue and check on-ledger credentials, and mint credential-gated RWA tokens`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var showConfigCommand = &cobra.Command{
	Use:     "showconfig",
	Aliases: []string{"showconf"},
	Short:   "List out the configuration options",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(showConfig())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(showConfigCommand)
}

func getOrchestrator() orchestrator.Orchestrator {
	if _utOrchestrator != nil {
		return _utOrchestrator
	}
	return orchestrator.NewOrchestrator()
}

func resetConfig() {
	config.Reset()
	apiserver.InitConfig()
}

func showConfig() string {
	// Registers the keys of every plugin, before the file is read
	resetConfig()
	getOrchestrator()
	_ = config.ReadConfig(cfgFile)

	result := fmt.Sprintf("%-64s %v\n", "Key", "Value")
	result = fmt.Sprintf("%s-----------------------------------------------------------------------------------\n", result)
	for _, k := range config.GetKnownKeys() {
		result = fmt.Sprintf("%s%-64s %v\n", result, k, config.Get(config.RootKey(k)))
	}
	return result
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

func run() error {
	resetConfig()
	or := getOrchestrator()
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	rootCtx, cancelRootCtx := context.WithCancel(context.Background())
	defer cancelRootCtx()
	rootCtx = log.WithLogger(rootCtx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))

	config.SetupLogging(rootCtx)
	log.L(rootCtx).Infof("riplx XRPL backend")
	log.L(rootCtx).Infof("© Copyright 2021 Kaleido, Inc.")

	// Deferred error return from reading config
	if err != nil {
		return i18n.WrapError(rootCtx, err, i18n.MsgConfigFailed)
	}

	// Setup signal handling to cancel the context, which shuts down the API Server
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	log.L(rootCtx).Infof("Starting up")
	runCtx, cancelRunCtx := context.WithCancel(rootCtx)
	defer cancelRunCtx()
	as := apiserver.NewAPIServer()
	errChan := make(chan error, 1)
	done := make(chan struct{})
	go startServer(runCtx, or, as, errChan, done)
	select {
	case sig := <-sigs:
		log.L(rootCtx).Infof("Shutting down due to %s", sig.String())
		cancelRunCtx()
		<-done
		return nil
	case err := <-errChan:
		cancelRunCtx()
		<-done
		return err
	}
}

func startServer(ctx context.Context, or orchestrator.Orchestrator, as apiserver.Server, errChan chan error, done chan struct{}) {
	var debugServer *http.Server
	debugPort := config.GetInt(config.DebugPort)
	debugAddress := config.GetString(config.DebugAddress)
	if debugPort >= 0 {
		r := mux.NewRouter()
		r.PathPrefix("/debug/pprof/cmdline").HandlerFunc(pprof.Cmdline)
		r.PathPrefix("/debug/pprof/profile").HandlerFunc(pprof.Profile)
		r.PathPrefix("/debug/pprof/symbol").HandlerFunc(pprof.Symbol)
		r.PathPrefix("/debug/pprof/trace").HandlerFunc(pprof.Trace)
		r.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)
		debugServer = &http.Server{Addr: fmt.Sprintf("%s:%d", debugAddress, debugPort), Handler: r, ReadHeaderTimeout: 30 * time.Second}
		go func() {
			_ = debugServer.ListenAndServe()
		}()
		log.L(ctx).Debugf("Debug HTTP endpoint listening on %s:%d", debugAddress, debugPort)
	}

	defer func() {
		if debugServer != nil {
			_ = debugServer.Close()
		}
		close(done)
	}()

	if err := or.Init(ctx); err != nil {
		errChan <- err
		return
	}
	defer or.Close()
	if err := or.Start(); err != nil {
		errChan <- err
		return
	}

	if err := as.Serve(ctx, or); err != nil {
		errChan <- err
	}
}
