// Package client implements a very simple wrapper for the web API of a ternary node.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized defines the "unauthorized" error.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrServiceUnavailable defines the "service unavailable" error.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
)

const (
	contentTypeJSON = "application/json"
)

// Option is a function that configures the API.
type Option func(api *API)

// WithHTTPClient sets the http.Client that is used to send the requests.
func WithHTTPClient(httpClient http.Client) Option {
	return func(api *API) {
		api.httpClient = httpClient
	}
}

// WithBasicAuth sets the credentials that are sent with every request.
func WithBasicAuth(username, password string) Option {
	return func(api *API) {
		api.basicAuth = &basicAuth{username: username, password: password}
	}
}

// NewAPI returns a new *API with the given baseURL.
func NewAPI(baseURL string, setters ...Option) *API {
	api := &API{baseURL: baseURL}
	for _, setter := range setters {
		setter(api)
	}

	return api
}

// API is an API wrapper over the web API of a ternary node.
type API struct {
	httpClient http.Client
	baseURL    string
	basicAuth  *basicAuth
}

type basicAuth struct {
	username string
	password string
}

type errorresponse struct {
	Error string `json:"error"`
}

func interpretBody(res *http.Response, decodeTo interface{}) error {
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Errorf("unable to read response body: %w", err)
	}

	if res.StatusCode == http.StatusOK || res.StatusCode == http.StatusCreated {
		if decodeTo == nil {
			return nil
		}
		return json.Unmarshal(resBody, decodeTo)
	}

	errRes := &errorresponse{}
	if len(resBody) > 0 {
		if err := json.Unmarshal(resBody, errRes); err != nil {
			return errors.Errorf("unable to read error from response body: %w", err)
		}
	}

	switch res.StatusCode {
	case http.StatusInternalServerError:
		return errors.Errorf("%w: %s", ErrInternalServerError, errRes.Error)
	case http.StatusNotFound:
		return errors.Errorf("%w: %s", ErrNotFound, res.Request.URL.String())
	case http.StatusBadRequest:
		return errors.Errorf("%w: %s", ErrBadRequest, errRes.Error)
	case http.StatusUnauthorized:
		return errors.Errorf("%w: %s", ErrUnauthorized, errRes.Error)
	case http.StatusServiceUnavailable:
		return errors.Errorf("%w: %s", ErrServiceUnavailable, errRes.Error)
	}

	return errors.Errorf("%w: %s", ErrUnknownError, errRes.Error)
}

func (api *API) do(method string, route string, reqObj interface{}, resObj interface{}) error {
	// marshal request object
	var data []byte
	if reqObj != nil {
		var err error
		data, err = json.Marshal(reqObj)
		if err != nil {
			return err
		}
	}

	// construct request
	req, err := http.NewRequest(method, fmt.Sprintf("%s/%s", api.baseURL, route), func() io.Reader {
		if data == nil {
			return nil
		}
		return bytes.NewReader(data)
	}())
	if err != nil {
		return err
	}

	if data != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	if api.basicAuth != nil {
		req.SetBasicAuth(api.basicAuth.username, api.basicAuth.password)
	}

	// make the request
	res, err := api.httpClient.Do(req)
	if err != nil {
		return err
	}

	// write response into response object
	return interpretBody(res, resObj)
}

// BaseURL returns the baseURL of the API.
func (api *API) BaseURL() string {
	return api.baseURL
}
