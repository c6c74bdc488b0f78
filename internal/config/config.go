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
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// The following keys can be access from the root configuration.
// Plugins are resonsible for defining their own keys using the Prefix interface
var (
	Lang                              = ark("lang")
	DebugPort                         = ark("debug.port")
	DebugAddress                      = ark("debug.address")
	LogLevel                          = ark("log.level")
	LogNoColor                        = ark("log.noColor")
	LogForceColor                     = ark("log.forceColor")
	LogTimeFormat                     = ark("log.timeFormat")
	LogUTC                            = ark("log.utc")
	LogFilename                       = ark("log.filename")
	LogFilesize                       = ark("log.filesize")
	LogMaxBackups                     = ark("log.maxBackups")
	LogMaxAge                         = ark("log.maxAge")
	LogCompress                       = ark("log.compress")
	CorsEnabled                       = ark("cors.enabled")
	CorsAllowedOrigins                = ark("cors.origins")
	CorsAllowedMethods                = ark("cors.methods")
	CorsAllowedHeaders                = ark("cors.headers")
	CorsAllowCredentials              = ark("cors.credentials")
	CorsMaxAge                        = ark("cors.maxAge")
	CorsDebug                         = ark("cors.debug")
	APIRequestTimeout                 = ark("api.requestTimeout")
	APIRequestMaxTimeout              = ark("api.requestMaxTimeout")
	APIDefaultHistoryLimit            = ark("api.defaultHistoryLimit")
	APIMaxHistoryLimit                = ark("api.maxHistoryLimit")
	APIRateLimitEnabled               = ark("api.rateLimit.enabled")
	APIRateLimitGlobalRPS             = ark("api.rateLimit.globalRPS")
	APIRateLimitGlobalBurst           = ark("api.rateLimit.globalBurst")
	APIRateLimitClientRPS             = ark("api.rateLimit.clientRPS")
	APIRateLimitClientBurst           = ark("api.rateLimit.clientBurst")
	MetricsEnabled                    = ark("metrics.enabled")
	MetricsPath                       = ark("metrics.path")
	LedgerNetwork                     = ark("ledger.network")
	LedgerExplorer                    = ark("ledger.explorer")
	RLUSDIssuer                       = ark("rlusd.issuer")
	RLUSDCurrency                     = ark("rlusd.currency")
	IssuerAddress                     = ark("issuer.address")
	IssuerSecret                      = ark("issuer.secret")
	IssuerSignToken                   = ark("issuer.signToken")
	RWAAccreditedCode                 = ark("rwa.accreditedCode")
	RWALocalCode                      = ark("rwa.localCode")
	RWATrustlineLimit                 = ark("rwa.trustlineLimit")
	RWARequireGate                    = ark("rwa.requireGate")
	CredentialsIssuerAddress          = ark("credentials.issuerAddress")
	CredentialsIssuerSecret           = ark("credentials.issuerSecret")
	CredentialsType                   = ark("credentials.type")
	CredentialsAdminToken             = ark("credentials.adminToken")
	CredentialsAllowlist              = ark("credentials.allowlist")
	CredentialsOpenWhenAllowlistEmpty = ark("credentials.openWhenAllowlistEmpty")
	DatabaseType                      = ark("database.type")
)

// Prefix represents the global configuration, at a nested point in
// the config heirarchy. This allows plugins to define their
// own keys underneath a common root.
//
// Note that all values are GLOBAL so this cannot be used for per-instance
// customization. Rather for global initialization of plugins.
type Prefix interface {
	AddKnownKey(key string, defValue ...interface{})
	SubPrefix(suffix string) Prefix
	Set(key string, value interface{})
	Resolve(key string) string

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	GetFloat64(key string) float64
	GetUint(key string) uint
	GetDuration(key string) time.Duration
	GetByteSize(key string) int64
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error
	Get(key string) interface{}
}

// RootKey key are the known configuration keys
type RootKey string

func Reset() {
	viper.Reset()

	// Set defaults
	viper.SetDefault(string(Lang), "en")
	viper.SetDefault(string(DebugPort), -1)
	viper.SetDefault(string(DebugAddress), "localhost")
	viper.SetDefault(string(LogLevel), "info")
	viper.SetDefault(string(LogNoColor), false)
	viper.SetDefault(string(LogForceColor), false)
	viper.SetDefault(string(LogTimeFormat), "2006-01-02T15:04:05.000Z07:00")
	viper.SetDefault(string(LogUTC), false)
	viper.SetDefault(string(LogFilesize), "100m")
	viper.SetDefault(string(LogMaxBackups), 2)
	viper.SetDefault(string(LogMaxAge), "24h")
	viper.SetDefault(string(LogCompress), true)
	viper.SetDefault(string(CorsEnabled), true)
	viper.SetDefault(string(CorsAllowedOrigins), []string{"*"})
	viper.SetDefault(string(CorsAllowedMethods), []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete})
	viper.SetDefault(string(CorsAllowedHeaders), []string{"*"})
	viper.SetDefault(string(CorsAllowCredentials), true)
	viper.SetDefault(string(CorsMaxAge), 600)
	viper.SetDefault(string(CorsDebug), false)
	viper.SetDefault(string(APIRequestTimeout), "30s")
	viper.SetDefault(string(APIRequestMaxTimeout), "2m")
	viper.SetDefault(string(APIDefaultHistoryLimit), 20)
	viper.SetDefault(string(APIMaxHistoryLimit), 200)
	viper.SetDefault(string(APIRateLimitEnabled), false)
	viper.SetDefault(string(APIRateLimitGlobalRPS), 100)
	viper.SetDefault(string(APIRateLimitGlobalBurst), 100)
	viper.SetDefault(string(APIRateLimitClientRPS), 10)
	viper.SetDefault(string(APIRateLimitClientBurst), 20)
	viper.SetDefault(string(MetricsEnabled), true)
	viper.SetDefault(string(MetricsPath), "/metrics")
	viper.SetDefault(string(LedgerNetwork), "testnet")
	viper.SetDefault(string(LedgerExplorer), "https://testnet.xrpl.org/")
	viper.SetDefault(string(RLUSDIssuer), "rQhWct2fv4Vc4KRjRgMrxa8xPN9Zx9iLKV")
	viper.SetDefault(string(RLUSDCurrency), "524C555344000000000000000000000000000000")
	viper.SetDefault(string(RWAAccreditedCode), "RWAACC")
	viper.SetDefault(string(RWALocalCode), "RWALOC")
	viper.SetDefault(string(RWATrustlineLimit), "10")
	viper.SetDefault(string(RWARequireGate), true)
	viper.SetDefault(string(CredentialsType), "41434352454449544544")
	viper.SetDefault(string(CredentialsAllowlist), []string{})
	viper.SetDefault(string(CredentialsOpenWhenAllowlistEmpty), true)
	viper.SetDefault(string(DatabaseType), "memory")

	i18n.SetLang(GetString(Lang))
}

// ReadConfig initializes the config
func ReadConfig(cfgFile string) error {
	// Set precedence order for reading config location
	viper.SetEnvPrefix("riplx")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		f, err := os.Open(cfgFile)
		if err == nil {
			defer f.Close()
			err = viper.ReadConfig(f)
		}
		return err
	}
	viper.SetConfigName("riplx.core")
	viper.AddConfigPath("/etc/riplx/")
	viper.AddConfigPath("$HOME/.riplx")
	viper.AddConfigPath(".")
	return viper.ReadInConfig()
}

var root = &configPrefix{
	keys: map[string]bool{}, // All keys go here, including those defined in sub prefixies
}

// ark adds a root key, used to define the keys that are used within the core
func ark(k string) RootKey {
	root.AddKnownKey(k)
	return RootKey(k)
}

// GetKnownKeys gets the known keys
func GetKnownKeys() []string {
	var keys []string
	for k := range root.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// configPrefix is the main config structure passed to plugins, and used for root to wrap viper
type configPrefix struct {
	prefix string
	keys   map[string]bool
}

// NewPluginConfig creates a new plugin configuration object, at the specified prefix
func NewPluginConfig(prefix string) Prefix {
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	return &configPrefix{
		prefix: prefix,
		keys:   root.keys,
	}
}

func (c *configPrefix) prefixKey(k string) string {
	key := c.prefix + k
	if !c.keys[key] {
		panic(fmt.Sprintf("Undefined configuration key '%s'", key))
	}
	return key
}

func (c *configPrefix) SubPrefix(suffix string) Prefix {
	return &configPrefix{
		prefix: c.prefix + suffix + ".",
		keys:   root.keys,
	}
}

func (c *configPrefix) AddKnownKey(k string, defValue ...interface{}) {
	key := c.prefix + k
	if len(defValue) == 1 {
		viper.SetDefault(key, defValue[0])
	} else if len(defValue) > 0 {
		viper.SetDefault(key, defValue)
	}
	c.keys[key] = true
}

func (c *configPrefix) Resolve(key string) string {
	return c.prefixKey(key)
}

// GetString gets a configuration string
func GetString(key RootKey) string {
	return root.GetString(string(key))
}
func (c *configPrefix) GetString(key string) string {
	return viper.GetString(c.prefixKey(key))
}

// GetStringSlice gets a configuration string array. A single string value
// (such as from an environment variable) is split on commas.
func GetStringSlice(key RootKey) []string {
	return root.GetStringSlice(string(key))
}
func (c *configPrefix) GetStringSlice(key string) []string {
	pk := c.prefixKey(key)
	if s, ok := viper.Get(pk).(string); ok {
		return splitList(s)
	}
	return viper.GetStringSlice(pk)
}

func splitList(s string) []string {
	list := []string{}
	for _, entry := range strings.Split(s, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			list = append(list, entry)
		}
	}
	return list
}

// GetBool gets a configuration bool
func GetBool(key RootKey) bool {
	return root.GetBool(string(key))
}
func (c *configPrefix) GetBool(key string) bool {
	return viper.GetBool(c.prefixKey(key))
}

// GetDuration gets a configuration time duration with consistent semantics
func GetDuration(key RootKey) time.Duration {
	return root.GetDuration(string(key))
}
func (c *configPrefix) GetDuration(key string) time.Duration {
	return rptypes.ParseToDuration(viper.GetString(c.prefixKey(key)))
}

// GetByteSize get a size in bytes
func GetByteSize(key RootKey) int64 {
	return root.GetByteSize(string(key))
}
func (c *configPrefix) GetByteSize(key string) int64 {
	return rptypes.ParseToByteSize(viper.GetString(c.prefixKey(key)))
}

// GetUint gets a configuration uint
func GetUint(key RootKey) uint {
	return root.GetUint(string(key))
}
func (c *configPrefix) GetUint(key string) uint {
	return viper.GetUint(c.prefixKey(key))
}

// GetInt gets a configuration int
func GetInt(key RootKey) int {
	return root.GetInt(string(key))
}
func (c *configPrefix) GetInt(key string) int {
	return viper.GetInt(c.prefixKey(key))
}

// GetInt64 gets a configuration int64
func GetInt64(key RootKey) int64 {
	return root.GetInt64(string(key))
}
func (c *configPrefix) GetInt64(key string) int64 {
	return viper.GetInt64(c.prefixKey(key))
}

// GetFloat64 gets a configuration float64
func GetFloat64(key RootKey) float64 {
	return root.GetFloat64(string(key))
}
func (c *configPrefix) GetFloat64(key string) float64 {
	return viper.GetFloat64(c.prefixKey(key))
}

// GetStringMap gets a configuration map
func GetStringMap(key RootKey) map[string]interface{} {
	return root.GetStringMap(string(key))
}
func (c *configPrefix) GetStringMap(key string) map[string]interface{} {
	return viper.GetStringMap(c.prefixKey(key))
}

// Get gets a configuration in raw form
func Get(key RootKey) interface{} {
	return root.Get(string(key))
}
func (c *configPrefix) Get(key string) interface{} {
	return viper.Get(c.prefixKey(key))
}

// Set allows runtime setting of config (used in unit tests)
func Set(key RootKey, value interface{}) {
	root.Set(string(key), value)
}
func (c *configPrefix) Set(key string, value interface{}) {
	viper.Set(c.prefixKey(key), value)
}

// UnmarshalKey gets a configuration section into a struct
func UnmarshalKey(ctx context.Context, key RootKey, rawVal interface{}) error {
	return root.UnmarshalKey(ctx, string(key), rawVal)
}
func (c *configPrefix) UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error {
	// Viper's unmarshal does not work with our json annotated config
	// structures, so we have to go from map to JSON, then to unmarshal
	var intermediate map[string]interface{}
	err := viper.UnmarshalKey(c.prefixKey(key), &intermediate)
	if err == nil {
		b, _ := json.Marshal(intermediate)
		err = json.Unmarshal(b, rawVal)
	}
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}
	return nil
}

// SetupLogging initializes logging
func SetupLogging(ctx context.Context) {
	log.SetFormatting(log.Formatting{
		DisableColor:    GetBool(LogNoColor),
		ForceColor:      GetBool(LogForceColor),
		TimestampFormat: GetString(LogTimeFormat),
		UTC:             GetBool(LogUTC),
	})
	logFilename := GetString(LogFilename)
	if logFilename != "" {
		lumberjack := &lumberjack.Logger{
			Filename:   logFilename,
			MaxSize:    int(math.Ceil(float64(GetByteSize(LogFilesize)) / 1024 / 1024)), /* round up in megabytes */
			MaxBackups: GetInt(LogMaxBackups),
			MaxAge:     int(math.Ceil(float64(GetDuration(LogMaxAge)) / float64(time.Hour) / 24)), /* round up in days */
			Compress:   GetBool(LogCompress),
		}
		logrus.SetOutput(lumberjack)
	}
	log.SetLevel(GetString(LogLevel))
	log.L(ctx).Debugf("Log level: %s", logrus.GetLevel())
}
