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

package oapispec

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
)

type SwaggerGenConfig struct {
	BaseURL     string
	Title       string
	Version     string
	Description string
}

var customRegexRemoval = regexp.MustCompile(`{(\w+)\:[^}]+}`)

func SwaggerGen(ctx context.Context, routes []*Route, conf *SwaggerGenConfig) *openapi3.T {

	doc := &openapi3.T{
		OpenAPI: "3.0.2",
		Servers: openapi3.Servers{
			{URL: conf.BaseURL},
		},
		Info: &openapi3.Info{
			Title:       conf.Title,
			Version:     conf.Version,
			Description: conf.Description,
		},
		Components: openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}
	opIds := make(map[string]bool)
	for _, route := range routes {
		if route.Name == "" || opIds[route.Name] {
			log.Panicf("Duplicate/invalid name (used as operation ID in swagger): %s", route.Name)
		}
		addRoute(ctx, doc, route)
		opIds[route.Name] = true
	}
	return doc
}

func getPathItem(doc *openapi3.T, path string) *openapi3.PathItem {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = customRegexRemoval.ReplaceAllString(path, `{$1}`)
	if doc.Paths == nil {
		doc.Paths = openapi3.Paths{}
	}
	pi, ok := doc.Paths[path]
	if ok {
		return pi
	}
	pi = &openapi3.PathItem{}
	doc.Paths[path] = pi
	return pi
}

// schemaCustomizer maps the types that marshal to strings, rather than their Go shape
func schemaCustomizer(name string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	switch t.Name() {
	case "UUID":
		schema.Type = "string"
		schema.Format = "uuid"
		schema.Items = nil
	case "RPTime":
		schema.Type = "string"
		schema.Format = "date-time"
		schema.Properties = nil
	case "RawMessage":
		schema.Type = "object"
		schema.Items = nil
	case "Amount":
		// Either a drops string, or an issued currency object
		schema.Type = ""
		schema.Properties = nil
	}
	return nil
}

func schemaFor(doc *openapi3.T, value interface{}) *openapi3.SchemaRef {
	schemaRef, err := openapi3gen.NewSchemaRefForValue(value, doc.Components.Schemas, openapi3gen.SchemaCustomizer(schemaCustomizer))
	if err != nil {
		panic(fmt.Sprintf("invalid schema: %s", err))
	}
	return schemaRef
}

func addInput(doc *openapi3.T, route *Route, op *openapi3.Operation) {
	if route.JSONInputValue == nil {
		return
	}
	input := route.JSONInputValue()
	if input == nil {
		return
	}
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{
					Schema: schemaFor(doc, input),
				},
			},
		},
	}
}

func addOutput(ctx context.Context, doc *openapi3.T, route *Route, op *openapi3.Operation) {
	var schemaRef *openapi3.SchemaRef
	s := i18n.Expand(ctx, i18n.APISuccessResponse)
	if route.JSONOutputValue != nil {
		if outputValue := route.JSONOutputValue(); outputValue != nil {
			schemaRef = schemaFor(doc, outputValue)
		}
	}
	for _, code := range route.JSONOutputCodes {
		op.Responses[strconv.FormatInt(int64(code), 10)] = &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: &s,
				Content: openapi3.Content{
					"application/json": &openapi3.MediaType{
						Schema: schemaRef,
					},
				},
			},
		}
	}
}

func addParam(ctx context.Context, op *openapi3.Operation, in, name, def, example string, description i18n.MessageKey, msgArgs ...interface{}) {
	required := false
	if in == "path" {
		required = true
	}
	var defValue interface{}
	if def != "" {
		defValue = &def
	}
	var exampleValue interface{}
	if example != "" {
		exampleValue = example
	}
	op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
		Value: &openapi3.Parameter{
			In:          in,
			Name:        name,
			Required:    required,
			Description: i18n.Expand(ctx, description, msgArgs...),
			Schema: &openapi3.SchemaRef{
				Value: &openapi3.Schema{
					Type:    "string",
					Default: defValue,
					Example: exampleValue,
				},
			},
		},
	})
}

func addRoute(ctx context.Context, doc *openapi3.T, route *Route) {
	pi := getPathItem(doc, route.Path)
	op := &openapi3.Operation{
		Description: i18n.Expand(ctx, route.Description),
		OperationID: route.Name,
		Responses:   openapi3.NewResponses(),
	}
	if route.Tag != "" {
		op.Tags = []string{route.Tag}
	}
	if route.Method != http.MethodGet && route.Method != http.MethodDelete {
		addInput(doc, route, op)
	}
	addOutput(ctx, doc, route, op)
	for _, p := range route.PathParams {
		example := p.Example
		if p.ExampleFromConf != "" {
			example = config.GetString(p.ExampleFromConf)
		}
		addParam(ctx, op, "path", p.Name, "", example, p.Description)
	}
	for _, q := range route.QueryParams {
		example := q.Example
		if q.ExampleFromConf != "" {
			example = config.GetString(q.ExampleFromConf)
		}
		var args []interface{}
		if q.DescriptionArgs != nil {
			args = q.DescriptionArgs()
		}
		addParam(ctx, op, "query", q.Name, q.Default, example, q.Description, args...)
	}
	for _, h := range route.HeaderParams {
		addParam(ctx, op, "header", h.Name, "", "", h.Description)
	}
	addParam(ctx, op, "header", "Request-Timeout", config.GetString(config.APIRequestTimeout), "", i18n.APIRequestTimeoutDesc)
	switch route.Method {
	case http.MethodGet:
		pi.Get = op
	case http.MethodPut:
		pi.Put = op
	case http.MethodPost:
		pi.Post = op
	case http.MethodDelete:
		pi.Delete = op
	}
}
