package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/strfmt"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/util"
)

// GenericPayload is a free-form JSON request body.
type GenericPayload map[string]interface{}

func (g GenericPayload) Reader(t *testing.T) *bytes.Reader {
	t.Helper()

	b, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("failed to serialize payload: %v", err)
	}

	return bytes.NewReader(b)
}

// PerformRequest runs the given request against the server's echo instance
// and returns the response recorder. A nil body performs a bodyless request.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body GenericPayload, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		return PerformRequestWithRawBody(t, s, method, path, nil, headers)
	}

	return PerformRequestWithRawBody(t, s, method, path, body.Reader(t), headers)
}

func PerformRequestWithRawBody(t *testing.T, s *api.Server, method string, path string, body io.Reader, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)

	if headers != nil {
		req.Header = headers
	}

	if body != nil && len(req.Header.Get(echoHeaderContentType)) == 0 {
		req.Header.Set(echoHeaderContentType, "application/json")
	}

	res := httptest.NewRecorder()

	s.Echo.ServeHTTP(res, req)

	return res
}

const echoHeaderContentType = "Content-Type"

// ParseResponseBody unmarshals the recorded response body into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.NewDecoder(res.Result().Body).Decode(v); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
}

// ParseResponseAndValidate unmarshals the recorded response body into the
// validatable v and asserts it passes its own validation.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v util.Validatable) {
	t.Helper()

	ParseResponseBody(t, res, v)

	if err := v.Validate(strfmt.Default); err != nil {
		t.Fatalf("failed to validate response: %v", err)
	}
}
