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

package apiserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/metrics"
	"github.com/riplx/riplx/internal/oapispec"
	"github.com/riplx/riplx/internal/orchestrator"
	"github.com/riplx/riplx/pkg/rptypes"
)

var rpcodeExtractor = regexp.MustCompile(`^(RPX\d+):`)

var (
	apiConfigPrefix     = config.NewPluginConfig("http")
	metricsConfigPrefix = config.NewPluginConfig("metrics")
)

const swaggerTitle = "riplx"

// Server is the external interface for the API Server
type Server interface {
	Serve(ctx context.Context, o orchestrator.Orchestrator) error
}

type apiServer struct {
	// Defaults set with config
	apiTimeout     time.Duration
	apiMaxTimeout  time.Duration
	metricsEnabled bool
	limiter        *rateLimiter
}

// restError is the body of every error response
type restError struct {
	Detail string `json:"detail"`
}

type httpStatusError interface {
	HTTPStatus() int
}

func InitConfig() {
	initHTTPConfPrefix(apiConfigPrefix, "0.0.0.0", 8000)
	initHTTPConfPrefix(metricsConfigPrefix, "127.0.0.1", 6000)
}

func NewAPIServer() Server {
	return &apiServer{
		apiTimeout:     config.GetDuration(config.APIRequestTimeout),
		apiMaxTimeout:  config.GetDuration(config.APIRequestMaxTimeout),
		metricsEnabled: config.GetBool(config.MetricsEnabled),
		limiter:        newRateLimiter(),
	}
}

// Serve is the main entry point for the API Server
func (as *apiServer) Serve(ctx context.Context, o orchestrator.Orchestrator) (err error) {
	httpErrChan := make(chan error, 1)
	metricsErrChan := make(chan error, 1)

	apiHTTPServer, err := newHTTPServer(ctx, "api", wrapCorsIfEnabled(ctx, as.createMuxRouter(ctx, o)), httpErrChan, apiConfigPrefix)
	if err != nil {
		return err
	}
	go apiHTTPServer.serveHTTP(ctx)

	if as.metricsEnabled {
		metricsHTTPServer, err := newHTTPServer(ctx, "metrics", as.createMetricsMuxRouter(), metricsErrChan, metricsConfigPrefix)
		if err != nil {
			return err
		}
		go metricsHTTPServer.serveHTTP(ctx)
	}

	return as.waitForServerStop(httpErrChan, metricsErrChan)
}

func (as *apiServer) waitForServerStop(httpErrChan, metricsErrChan chan error) error {
	select {
	case err := <-httpErrChan:
		return err
	case err := <-metricsErrChan:
		return err
	}
}

func (as *apiServer) getParams(req *http.Request, route *oapispec.Route) (queryParams, pathParams map[string]string) {
	queryParams = make(map[string]string)
	pathParams = make(map[string]string)
	if len(route.PathParams) > 0 {
		v := mux.Vars(req)
		for _, pp := range route.PathParams {
			pathParams[pp.Name] = v[pp.Name]
		}
	}
	for _, qp := range route.QueryParams {
		val, exists := req.URL.Query()[qp.Name]
		if exists && len(val) > 0 {
			queryParams[qp.Name] = val[0]
		} else if qp.Default != "" {
			queryParams[qp.Name] = qp.Default
		}
	}
	return queryParams, pathParams
}

func (as *apiServer) decodeInput(req *http.Request, route *oapispec.Route) (interface{}, error) {
	if route.JSONInputValue == nil || req.Method == http.MethodGet || req.Method == http.MethodDelete {
		return nil, nil
	}
	jsonInput := route.JSONInputValue()
	if jsonInput == nil {
		return nil, nil
	}
	contentType := strings.ToLower(req.Header.Get("Content-Type"))
	if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
		return nil, i18n.NewError(req.Context(), i18n.MsgInvalidContentType)
	}
	err := json.NewDecoder(req.Body).Decode(jsonInput)
	if err != nil && err != io.EOF {
		return nil, i18n.WrapError(req.Context(), err, i18n.MsgJSONDecodeFailed)
	}
	return jsonInput, nil
}

func (as *apiServer) routeHandler(o orchestrator.Orchestrator, route *oapispec.Route) http.HandlerFunc {
	return as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {
		input, err := as.decodeInput(req, route)
		if err != nil {
			return http.StatusBadRequest, err
		}
		queryParams, pathParams := as.getParams(req, route)
		r := &oapispec.APIRequest{
			Ctx:           req.Context(),
			Or:            o,
			Req:           req,
			PP:            pathParams,
			QP:            queryParams,
			Input:         input,
			SuccessStatus: http.StatusOK,
		}
		if len(route.JSONOutputCodes) > 0 {
			r.SuccessStatus = route.JSONOutputCodes[0]
		}
		output, err := route.JSONHandler(r)
		if err != nil {
			return http.StatusInternalServerError, err
		}
		return as.handleOutput(req.Context(), res, r.SuccessStatus, output)
	})
}

func (as *apiServer) handleOutput(ctx context.Context, res http.ResponseWriter, status int, output interface{}) (int, error) {
	vOutput := reflect.ValueOf(output)
	isNil := output == nil || (vOutput.Kind() == reflect.Ptr && vOutput.IsNil())
	if isNil {
		if status != http.StatusNoContent {
			return http.StatusNotFound, i18n.NewError(ctx, i18n.Msg404NoResult)
		}
		res.WriteHeader(http.StatusNoContent)
		return status, nil
	}
	b, err := json.Marshal(output)
	if err != nil {
		err = i18n.WrapError(ctx, err, i18n.MsgResponseMarshalError)
		log.L(ctx).Errorf(err.Error())
		return http.StatusInternalServerError, err
	}
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_, _ = res.Write(b)
	return status, nil
}

func (as *apiServer) getTimeout(req *http.Request) time.Duration {
	// Configure a server-side timeout on each request, so we stop work the caller has
	// given up on. This relies on the context being passed down to every ledger and signing call.
	reqTimeout := as.apiTimeout
	reqTimeoutHeader := req.Header.Get("Request-Timeout")
	if reqTimeoutHeader != "" {
		customTimeout, err := rptypes.ParseDurationString(reqTimeoutHeader, time.Second /* default is seconds */)
		if err != nil || customTimeout <= 0 {
			log.L(req.Context()).Warnf("Invalid Request-Timeout header '%s': %v", reqTimeoutHeader, err)
		} else {
			reqTimeout = customTimeout
			if reqTimeout > as.apiMaxTimeout {
				reqTimeout = as.apiMaxTimeout
			}
		}
	}
	return reqTimeout
}

// errorStatus works out the status for a failed request, from the handler's default,
// an explicit upstream status, or the status hint of the RPX code.
func errorStatus(err error, status int) int {
	var se httpStatusError
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	rpcodeExtract := rpcodeExtractor.FindStringSubmatch(err.Error())
	if len(rpcodeExtract) >= 2 {
		if statusHint, ok := i18n.GetStatusHint(rpcodeExtract[1]); ok {
			return statusHint
		}
	}
	return status
}

func (as *apiServer) apiWrapper(handler func(res http.ResponseWriter, req *http.Request) (status int, err error)) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		reqTimeout := as.getTimeout(req)
		ctx, cancel := context.WithTimeout(req.Context(), reqTimeout)
		httpReqID := rptypes.ShortID()
		ctx = log.WithLogField(ctx, "httpreq", httpReqID)
		req = req.WithContext(ctx)
		defer cancel()

		// Wrap the request itself in a log wrapper, that gives minimal request/response and timing info
		l := log.L(ctx)
		l.Infof("--> %s %s", req.Method, req.URL.Path)
		startTime := time.Now()
		var status int
		var err error
		if as.limiter != nil {
			err = as.limiter.allow(ctx, req)
		}
		if err == nil {
			status, err = handler(res, req)
		}
		durationMS := float64(time.Since(startTime)) / float64(time.Millisecond)
		if err != nil {
			status = errorStatus(err, status)

			// If the context is done, we wrap in 408
			if status != http.StatusRequestTimeout {
				select {
				case <-ctx.Done():
					l.Errorf("Request failed and context is closed. Returning %d (overriding %d): %s", http.StatusRequestTimeout, status, err)
					status = http.StatusRequestTimeout
					err = i18n.WrapError(ctx, err, i18n.MsgRequestTimeout, httpReqID, durationMS)
				default:
				}
			}

			// ... or we default to 500
			if status < 300 {
				status = http.StatusInternalServerError
			}
			l.Infof("<-- %s %s [%d] (%.2fms): %s", req.Method, req.URL.Path, status, durationMS, err)
			res.Header().Set("Content-Type", "application/json")
			res.WriteHeader(status)
			_ = json.NewEncoder(res).Encode(&restError{
				Detail: err.Error(),
			})
		} else {
			l.Infof("<-- %s %s [%d] (%.2fms)", req.Method, req.URL.Path, status, durationMS)
		}
	}
}

func (as *apiServer) notFoundHandler(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return http.StatusNotFound, i18n.NewError(req.Context(), i18n.Msg404NotFound)
}

func (as *apiServer) getPublicURL(conf config.Prefix) string {
	publicURL := conf.GetString(HTTPConfPublicURL)
	if publicURL == "" {
		proto := "https"
		if !conf.GetBool(HTTPConfTLSEnabled) {
			proto = "http"
		}
		publicURL = fmt.Sprintf("%s://%s:%s", proto, conf.GetString(HTTPConfAddress), conf.GetString(HTTPConfPort))
	}
	return strings.TrimSuffix(publicURL, "/")
}

func (as *apiServer) swaggerUIHandler(url string) func(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		res.Header().Set("Content-Type", "text/html")
		_, _ = res.Write(oapispec.SwaggerUIHTML(req.Context(), swaggerTitle, url+"/api/swagger.yaml"))
		return http.StatusOK, nil
	}
}

func (as *apiServer) swaggerHandler(routes []*oapispec.Route, url string) func(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		doc := oapispec.SwaggerGen(req.Context(), routes, &oapispec.SwaggerGenConfig{
			BaseURL: url,
			Title:   swaggerTitle,
			Version: "1.0",
		})
		var b []byte
		if mux.Vars(req)["ext"] == ".json" {
			res.Header().Set("Content-Type", "application/json")
			b, err = json.Marshal(doc)
		} else {
			res.Header().Set("Content-Type", "application/x-yaml")
			b, err = yaml.Marshal(doc)
		}
		if err != nil {
			return http.StatusInternalServerError, i18n.WrapError(req.Context(), err, i18n.MsgResponseMarshalError)
		}
		_, _ = res.Write(b)
		return http.StatusOK, nil
	}
}

func (as *apiServer) createMuxRouter(ctx context.Context, o orchestrator.Orchestrator) *mux.Router {
	r := mux.NewRouter()
	if as.metricsEnabled {
		r.Use(metrics.GetRestServerInstrumentation().Middleware)
	}

	for _, route := range routes {
		if route.JSONHandler != nil {
			r.HandleFunc("/"+route.Path, as.routeHandler(o, route)).
				Methods(route.Method)
		}
	}
	publicURL := as.getPublicURL(apiConfigPrefix)
	r.HandleFunc(`/api/swagger{ext:\.yaml|\.json|}`, as.apiWrapper(as.swaggerHandler(routes, publicURL)))
	r.HandleFunc(`/api`, as.apiWrapper(as.swaggerUIHandler(publicURL)))

	r.NotFoundHandler = as.apiWrapper(as.notFoundHandler)
	return r
}

func (as *apiServer) createMetricsMuxRouter() *mux.Router {
	r := mux.NewRouter()

	r.Path(config.GetString(config.MetricsPath)).Handler(promhttp.InstrumentMetricHandler(metrics.Registry(),
		promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	return r
}
