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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEpochZero(t *testing.T) {
	assert.Equal(t, "2000-01-01T00:00:00Z", DecodeEpoch(0))
}

func TestDecodeEpochKnown(t *testing.T) {
	// 2021-05-15T19:49:04Z
	assert.Equal(t, "2021-05-15T19:49:04Z", DecodeEpoch(1621108144-RippleEpochOffset))
}

func TestDecodeEpochMonotonic(t *testing.T) {
	prev := EpochTime(0)
	for _, s := range []int64{1, 60, 86400, 700000000, 800000000} {
		next := EpochTime(s)
		assert.True(t, next.After(prev))
		assert.Greater(t, DecodeEpoch(s), DecodeEpoch(0))
		prev = next
	}
}
