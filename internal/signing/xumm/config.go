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

package xumm

import (
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/restclient"
)

const (
	defaultURL = "https://xumm.app/api/v1/platform"
)

const (
	XummConfigAPIKey    = "apiKey"
	XummConfigAPISecret = "apiSecret"
)

func (x *Xumm) InitConfigPrefix(prefix config.Prefix) {
	restclient.InitPrefixWithDefaults(prefix, defaultURL)
	prefix.AddKnownKey(XummConfigAPIKey)
	prefix.AddKnownKey(XummConfigAPISecret)
}
