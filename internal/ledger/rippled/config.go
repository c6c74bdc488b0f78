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

package rippled

import (
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/restclient"
)

const (
	defaultURL                   = "https://s.altnet.rippletest.net:51234"
	defaultMaxConcurrentRequests = 5
	defaultCacheSize             = 1000
	defaultCacheTTL              = "5m"
	defaultStartupInitialDelay   = "250ms"
	defaultStartupMaxDelay       = "10s"
	defaultStartupMaxAttempts    = 10
	defaultAccountLinesMaxPages  = 10
)

const (
	RippledConfigMaxConcurrentRequests = "maxConcurrentRequests"
	RippledConfigCacheSize             = "cache.size"
	RippledConfigCacheTTL              = "cache.ttl"
	RippledConfigWaitForReady          = "waitForReady"
	RippledConfigStartupInitialDelay   = "startup.initialDelay"
	RippledConfigStartupMaxDelay       = "startup.maxDelay"
	RippledConfigStartupMaxAttempts    = "startup.maxAttempts"
	RippledConfigAccountLinesMaxPages  = "accountLines.maxPages"
)

func (r *Rippled) InitConfigPrefix(prefix config.Prefix) {
	restclient.InitPrefixWithDefaults(prefix, defaultURL)
	prefix.AddKnownKey(RippledConfigMaxConcurrentRequests, defaultMaxConcurrentRequests)
	prefix.AddKnownKey(RippledConfigCacheSize, defaultCacheSize)
	prefix.AddKnownKey(RippledConfigCacheTTL, defaultCacheTTL)
	prefix.AddKnownKey(RippledConfigWaitForReady, false)
	prefix.AddKnownKey(RippledConfigStartupInitialDelay, defaultStartupInitialDelay)
	prefix.AddKnownKey(RippledConfigStartupMaxDelay, defaultStartupMaxDelay)
	prefix.AddKnownKey(RippledConfigStartupMaxAttempts, defaultStartupMaxAttempts)
	prefix.AddKnownKey(RippledConfigAccountLinesMaxPages, defaultAccountLinesMaxPages)
}
