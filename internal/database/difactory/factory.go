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

package difactory

import (
	"context"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/database/memory"
	"github.com/riplx/riplx/internal/database/postgres"
	"github.com/riplx/riplx/internal/database/sqlite"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/pkg/database"
)

var pluginsByName = map[string]func() database.Plugin{
	(*memory.Memory)(nil).Name():     func() database.Plugin { return &memory.Memory{} },
	(*sqlite.SQLite)(nil).Name():     func() database.Plugin { return &sqlite.SQLite{} },
	(*postgres.Postgres)(nil).Name(): func() database.Plugin { return &postgres.Postgres{} },
}

// InitPrefix registers the config of every provider under its own sub-prefix
func InitPrefix(prefix config.Prefix) {
	for name, plugin := range pluginsByName {
		plugin().InitConfigPrefix(prefix.SubPrefix(name))
	}
}

func GetPlugin(ctx context.Context, pluginType string) (database.Plugin, error) {
	plugin, ok := pluginsByName[pluginType]
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgUnknownDatabasePlugin, pluginType)
	}
	return plugin(), nil
}
