// Copyright © 2021 Kaleido, Inc.
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

package config

import (
	"context"
	"os"
	"path"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const configDir = "../../test/data/config"

func TestInitConfigOK(t *testing.T) {
	viper.Reset()
	err := ReadConfig("")
	assert.Regexp(t, "Not Found", err)
}

func TestDefaults(t *testing.T) {
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	os.Chdir(configDir)
	defer os.Chdir(cwd)

	Reset()
	err = ReadConfig("")
	assert.NoError(t, err)

	assert.Equal(t, "info", GetString(LogLevel))
	assert.True(t, GetBool(CorsEnabled))
	assert.Equal(t, []string{"*"}, GetStringSlice(CorsAllowedOrigins))
	assert.Equal(t, 30*time.Second, GetDuration(APIRequestTimeout))
	assert.Equal(t, "524C555344000000000000000000000000000000", GetString(RLUSDCurrency))
	assert.True(t, GetBool(CredentialsOpenWhenAllowlistEmpty))
	assert.Equal(t, int64(100*1024*1024), GetByteSize(LogFilesize))
}

func TestSpecificConfigFileOk(t *testing.T) {
	Reset()
	err := ReadConfig(configDir + "/riplx.core.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "debug", GetString(LogLevel))
}

func TestSpecificConfigFileFail(t *testing.T) {
	Reset()
	err := ReadConfig(configDir + "/no.hope.yaml")
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	Reset()
	os.Setenv("RIPLX_CREDENTIALS_ALLOWLIST", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh, rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe,")
	defer os.Unsetenv("RIPLX_CREDENTIALS_ALLOWLIST")
	err := ReadConfig(configDir + "/riplx.core.yaml")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe",
	}, GetStringSlice(CredentialsAllowlist))
}

func TestAttemptToAccessRandomKey(t *testing.T) {
	assert.Panics(t, func() {
		GetString("any.unknown.key")
	})
}

func TestSetGetMap(t *testing.T) {
	defer Reset()
	Set(LedgerNetwork, map[string]interface{}{"some": "map"})
	assert.Equal(t, map[string]interface{}{"some": "map"}, GetStringMap(LedgerNetwork))
}

func TestSetGetRawInterace(t *testing.T) {
	defer Reset()
	type myType struct{ name string }
	Set(LedgerNetwork, &myType{name: "test"})
	v := Get(LedgerNetwork)
	assert.Equal(t, myType{name: "test"}, *(v.(*myType)))
}

func TestGetNumbers(t *testing.T) {
	defer Reset()
	Set(APIMaxHistoryLimit, 123)
	assert.Equal(t, 123, GetInt(APIMaxHistoryLimit))
	assert.Equal(t, int64(123), GetInt64(APIMaxHistoryLimit))
	assert.Equal(t, uint(123), GetUint(APIMaxHistoryLimit))
	Set(APIRateLimitClientRPS, 1.5)
	assert.Equal(t, 1.5, GetFloat64(APIRateLimitClientRPS))
}

func TestPluginConfig(t *testing.T) {
	pic := NewPluginConfig("my")
	pic.AddKnownKey("special.encodedKey", "value")
	pic.AddKnownKey("special.list", "a", "b")
	assert.Equal(t, "my.special.encodedKey", pic.Resolve("special.encodedKey"))
	assert.Equal(t, "value", pic.GetString("special.encodedKey"))
	assert.Equal(t, []string{"a", "b"}, pic.GetStringSlice("special.list"))

	sub := pic.SubPrefix("special")
	assert.Equal(t, "value", sub.GetString("encodedKey"))
	sub.Set("encodedKey", "updated")
	assert.Equal(t, "updated", pic.GetString("special.encodedKey"))
}

func TestPluginConfigArrayInit(t *testing.T) {
	pic := NewPluginConfig("my.")
	pic.AddKnownKey("bool", true)
	pic.AddKnownKey("duration", "10s")
	pic.AddKnownKey("bytes", "1m")
	pic.AddKnownKey("int", 12345)
	pic.AddKnownKey("int64", 567)
	pic.AddKnownKey("float64", 1.5)
	assert.True(t, pic.GetBool("bool"))
	assert.Equal(t, 10*time.Second, pic.GetDuration("duration"))
	assert.Equal(t, int64(1024*1024), pic.GetByteSize("bytes"))
	assert.Equal(t, 12345, pic.GetInt("int"))
	assert.Equal(t, int64(567), pic.GetInt64("int64"))
	assert.Equal(t, 1.5, pic.GetFloat64("float64"))
}

func TestGetKnownKeys(t *testing.T) {
	knownKeys := GetKnownKeys()
	assert.NotEmpty(t, knownKeys)
	assert.Contains(t, knownKeys, "credentials.allowlist")
	for _, k := range knownKeys {
		assert.NotEmpty(t, root.Resolve(k))
	}
}

func TestUnmarshalKey(t *testing.T) {
	Reset()
	defer Reset()
	viper.Set("ledger.network", map[string]interface{}{"name": "devnet"})
	var conf struct {
		Name string `json:"name"`
	}
	err := UnmarshalKey(context.Background(), LedgerNetwork, &conf)
	assert.NoError(t, err)
	assert.Equal(t, "devnet", conf.Name)
}

func TestUnmarshalKeyFail(t *testing.T) {
	Reset()
	defer Reset()
	viper.Set("ledger.network", "not a map")
	var conf struct{}
	err := UnmarshalKey(context.Background(), LedgerNetwork, &conf)
	assert.Regexp(t, "RPX10101", err)
}

func TestSetupLogging(t *testing.T) {
	defer Reset()
	dir := t.TempDir()
	Set(LogFilename, path.Join(dir, "riplx.log"))
	Set(LogLevel, "debug")
	SetupLogging(context.Background())
}
