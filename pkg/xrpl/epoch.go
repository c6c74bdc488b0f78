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

package xrpl

import "time"

// RippleEpochOffset is the number of seconds between the unix epoch and 2000-01-01T00:00:00Z
const RippleEpochOffset = 946684800

const epochFormat = "2006-01-02T15:04:05Z"

// DecodeEpoch renders seconds since the ripple epoch as an ISO-8601 UTC timestamp
func DecodeEpoch(rippleSeconds int64) string {
	return EpochTime(rippleSeconds).Format(epochFormat)
}

// EpochTime converts seconds since the ripple epoch to a time
func EpochTime(rippleSeconds int64) time.Time {
	return time.Unix(rippleSeconds+RippleEpochOffset, 0).UTC()
}
