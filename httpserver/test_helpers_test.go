//nolint:unused
package httpserver_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/pkg/config"

	"github.com/stretchr/testify/assert"
)

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Info    string          `json:"info"`
}

func testConfig() *config.Config {
	return &config.Config{}
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode API response envelope")
	return resp
}

func decodeAPIResult(t *testing.T, raw json.RawMessage, out interface{}) {
	t.Helper()
	err := json.Unmarshal(raw, out)
	assert.NoError(t, err, "Failed to decode API result")
}

func contactJSON(firstName, lastName, email, phone string) string {
	return fmt.Sprintf(`{"firstName":%q,"lastName":%q,"email":%q,"phoneNumber":%q}`,
		firstName, lastName, email, phone)
}

func newJSONRequest(method, path, body string) *http.Request {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}
