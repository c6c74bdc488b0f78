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
	"strings"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
)

// JSONObject is the opaque structured data returned by the ledger and the signing
// service, from which only the fields we need are extracted
type JSONObject map[string]interface{}

// Scan implements sql.Scanner
func (jd *JSONObject) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil

	case string:
		if src == "" {
			return nil
		}
		return json.Unmarshal([]byte(src), &jd)

	case []byte:
		if len(src) == 0 {
			return nil
		}
		return json.Unmarshal(src, &jd)

	default:
		return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, jd)
	}

}

// Value implements sql.Valuer
func (jd JSONObject) Value() (driver.Value, error) {
	return json.Marshal(&jd)
}

func (jd JSONObject) String() string {
	b, _ := json.Marshal(&jd)
	return string(b)
}

func (jd JSONObject) GetString(key string) string {
	s, _ := jd.GetStringOk(key)
	return s
}

func (jd JSONObject) GetStringOk(key string) (string, bool) {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case string:
		return vt, true
	case bool:
		return strconv.FormatBool(vt), true
	case float64:
		return strconv.FormatFloat(vt, 'f', -1, 64), true
	case json.Number:
		return vt.String(), true
	case nil:
		return "", false
	default:
		log.L(context.Background()).Errorf("Invalid string value '%+v' for key '%s'", vInterface, key)
		return "", false
	}
}

func (jd JSONObject) GetBool(key string) bool {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case string:
		return strings.EqualFold(vt, "true")
	case bool:
		return vt
	default:
		return false
	}
}

// GetInt64Ok handles numbers decoded as float64 or json.Number, and numeric strings
func (jd JSONObject) GetInt64Ok(key string) (int64, bool) {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case float64:
		return int64(vt), true
	case json.Number:
		i, err := vt.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(vt, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func (jd JSONObject) GetInt64(key string) int64 {
	i, _ := jd.GetInt64Ok(key)
	return i
}

func (jd JSONObject) GetObject(key string) JSONObject {
	ob, _ := jd.GetObjectOk(key)
	return ob
}

func (jd JSONObject) GetObjectOk(key string) (JSONObject, bool) {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		switch vMap := vInterface.(type) {
		case map[string]interface{}:
			return JSONObject(vMap), true
		case JSONObject:
			return vMap, true
		default:
			return JSONObject{}, false // Ensures a non-nil return
		}
	}
	return JSONObject{}, false // Ensures a non-nil return
}

func (jd JSONObject) GetObjectArray(key string) []JSONObject {
	vArray, ok := jd[key].([]interface{})
	if !ok {
		if joa, ok := jd[key].([]JSONObject); ok {
			return joa
		}
		return []JSONObject{}
	}
	joa := make([]JSONObject, 0, len(vArray))
	for _, joi := range vArray {
		if jo, ok := joi.(map[string]interface{}); ok {
			joa = append(joa, JSONObject(jo))
		}
	}
	return joa
}
