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
	"fmt"
	"syscall"
	"testing"

	"github.com/riplx/riplx/mocks/orchestratormocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const configFile = "../test/data/config/riplx.core.yaml"

func withConfig(t *testing.T, f string) {
	cfgFile = f
	t.Cleanup(func() { cfgFile = "" })
}

func TestGetOrchestrator(t *testing.T) {
	assert.NotNil(t, getOrchestrator())
}

func TestExecMissingConfig(t *testing.T) {
	_utOrchestrator = &orchestratormocks.Orchestrator{}
	defer func() { _utOrchestrator = nil }()
	withConfig(t, "../test/data/config/missing.yaml")
	err := run()
	assert.Regexp(t, "RPX10101", err)
}

func TestShowConfig(t *testing.T) {
	withConfig(t, configFile)
	out := showConfig()
	assert.Regexp(t, `ledger\.url\s+https://s\.altnet\.rippletest\.net:51234`, out)
	assert.Regexp(t, `database\.type\s+memory`, out)
}

func TestShowConfigCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"showconf", "-f", configFile})
	defer rootCmd.SetArgs([]string{})
	defer func() { cfgFile = "" }()
	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestExecInitFail(t *testing.T) {
	o := &orchestratormocks.Orchestrator{}
	o.On("Init", mock.Anything).Return(fmt.Errorf("splutter"))
	_utOrchestrator = o
	defer func() { _utOrchestrator = nil }()
	withConfig(t, configFile)
	err := run()
	assert.Regexp(t, "splutter", err)
}

func TestExecStartFail(t *testing.T) {
	o := &orchestratormocks.Orchestrator{}
	o.On("Init", mock.Anything).Return(nil)
	o.On("Start").Return(fmt.Errorf("bang"))
	o.On("Close").Return()
	_utOrchestrator = o
	defer func() { _utOrchestrator = nil }()
	withConfig(t, configFile)
	err := run()
	assert.Regexp(t, "bang", err)
	o.AssertCalled(t, "Close")
}

func TestExecOkExitSIGINT(t *testing.T) {
	o := &orchestratormocks.Orchestrator{}
	o.On("Init", mock.Anything).Return(nil)
	o.On("Start").Return(nil)
	o.On("Close").Return()
	_utOrchestrator = o
	defer func() { _utOrchestrator = nil }()
	withConfig(t, configFile)

	go func() {
		sigs <- syscall.SIGINT
	}()
	err := run()
	assert.NoError(t, err)
	o.AssertCalled(t, "Close")
}
