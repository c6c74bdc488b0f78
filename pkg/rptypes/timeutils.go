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

package rptypes

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"time"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
)

// RPTime is serialized to JSON on the API in RFC3339 nanosecond UTC time.
// It is persisted as a nanosecond resolution timestamp in the database.
type RPTime time.Time

func Now() *RPTime {
	t := RPTime(time.Now().UTC())
	return &t
}

func ZeroTime() RPTime {
	return RPTime(time.Time{}.UTC())
}

func UnixTime(unixTime int64) *RPTime {
	if unixTime < 1e10 {
		unixTime *= 1e3 // secs to millis
	}
	if unixTime < 1e15 {
		unixTime *= 1e6 // millis to nanos
	}
	t := RPTime(time.Unix(0, unixTime))
	return &t
}

func (rt *RPTime) MarshalJSON() ([]byte, error) {
	if rt == nil || time.Time(*rt).IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(rt.String())
}

func (rt *RPTime) UnmarshalText(b []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		unixTime, perr := strconv.ParseInt(string(b), 10, 64)
		if perr != nil {
			return err
		}
		*rt = *UnixTime(unixTime)
		return nil
	}
	*rt = RPTime(t)
	return nil
}

// Scan implements sql.Scanner
func (rt *RPTime) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*rt = ZeroTime()
		return nil

	case int64:
		if src == 0 {
			return nil
		}
		*rt = *UnixTime(src)
		return nil

	default:
		return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, rt)
	}
}

// Value implements sql.Valuer
func (rt *RPTime) Value() (driver.Value, error) {
	if rt == nil || time.Time(*rt).IsZero() {
		return nil, nil
	}
	return rt.UnixNano(), nil
}

func (rt *RPTime) UnixNano() int64 {
	if rt == nil {
		return 0
	}
	return time.Time(*rt).UnixNano()
}

func (rt *RPTime) String() string {
	if rt == nil || time.Time(*rt).IsZero() {
		return ""
	}
	return time.Time(*rt).UTC().Format(time.RFC3339Nano)
}

// ParseToDuration is a standard handling of any duration string, in config or API options.
// A bare number is treated as milliseconds.
func ParseToDuration(durationString string) time.Duration {
	if durationString == "" {
		return time.Duration(0)
	}
	if ms, err := strconv.ParseInt(durationString, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(durationString)
	if err != nil {
		log.L(context.Background()).Warnf("Unable to parse duration '%s': %s", durationString, err)
		return time.Duration(0)
	}
	return d
}

// ParseDurationString parses the Request-Timeout header, where a bare number has a caller supplied default unit
func ParseDurationString(durationString string, defaultUnit time.Duration) (time.Duration, error) {
	if n, err := strconv.ParseFloat(durationString, 64); err == nil {
		return time.Duration(n * float64(defaultUnit)), nil
	}
	return time.ParseDuration(durationString)
}
