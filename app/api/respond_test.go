package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name       string
		body       string
		expectedOK bool
	}{
		{name: "Valid body", body: `{"name":"Ana"}`, expectedOK: true},
		{name: "Empty object", body: `{}`, expectedOK: true},
		{name: "Malformed JSON", body: `{broken`, expectedOK: false},
		{name: "Unknown field rejected", body: `{"name":"Ana","role":"admin"}`, expectedOK: false},
		{name: "Trailing data rejected", body: `{"name":"Ana"}{"name":"Bob"}`, expectedOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			var dst payload

			ok := Decode(rec, req, &dst)

			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.Equal(t, "Ana", dst.Name)
			} else {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "Invalid JSON body", errResp["error"])
			}
		})
	}
}
