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

package apiserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/karlseguin/ccache"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"golang.org/x/time/rate"
)

const (
	clientLimiterTTL  = 10 * time.Minute
	maxTrackedClients = 10000
)

// rateLimiter applies a global token bucket, and a token bucket per client IP.
// Idle client buckets age out of the cache.
type rateLimiter struct {
	global      *rate.Limiter
	clients     *ccache.Cache
	clientRPS   rate.Limit
	clientBurst int
}

func newRateLimiter() *rateLimiter {
	if !config.GetBool(config.APIRateLimitEnabled) {
		return nil
	}
	return &rateLimiter{
		global:      rate.NewLimiter(rate.Limit(config.GetFloat64(config.APIRateLimitGlobalRPS)), config.GetInt(config.APIRateLimitGlobalBurst)),
		clients:     ccache.New(ccache.Configure().MaxSize(maxTrackedClients)),
		clientRPS:   rate.Limit(config.GetFloat64(config.APIRateLimitClientRPS)),
		clientBurst: config.GetInt(config.APIRateLimitClientBurst),
	}
}

func clientIP(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}

func (rl *rateLimiter) clientLimiter(ip string) *rate.Limiter {
	item, _ := rl.clients.Fetch(ip, clientLimiterTTL, func() (interface{}, error) {
		return rate.NewLimiter(rl.clientRPS, rl.clientBurst), nil
	})
	item.Extend(clientLimiterTTL)
	return item.Value().(*rate.Limiter)
}

func (rl *rateLimiter) allow(ctx context.Context, req *http.Request) error {
	if !rl.global.Allow() {
		return i18n.NewError(ctx, i18n.MsgRateLimitExceeded, "global")
	}
	if !rl.clientLimiter(clientIP(req)).Allow() {
		return i18n.NewError(ctx, i18n.MsgRateLimitExceeded, "client")
	}
	return nil
}
