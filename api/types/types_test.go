package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/search-api/pkg/errors"
)

func TestSearchQueryNormalize(t *testing.T) {
	q := &SearchQuery{SearchText: "  golang  "}
	q.Normalize()

	assert.Equal(t, "golang", q.SearchText)
	assert.Equal(t, DefaultNumResults, q.Limit())

	n := ResultCount(7)
	q = &SearchQuery{SearchText: "x", NumResults: &n}
	q.Normalize()
	assert.Equal(t, 7, q.Limit())
}

func TestResultCountUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
		expected  int
	}{
		{"integer", `{"search_text":"x","num_results":5}`, false, 5},
		{"whole float", `{"search_text":"x","num_results":3.0}`, false, 3},
		{"exponent", `{"search_text":"x","num_results":1e1}`, false, 10},
		{"null uses default", `{"search_text":"x","num_results":null}`, false, DefaultNumResults},
		{"fraction", `{"search_text":"x","num_results":2.5}`, true, 0},
		{"string", `{"search_text":"x","num_results":"5"}`, true, 0},
		{"huge", `{"search_text":"x","num_results":1e300}`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q SearchQuery
			err := json.Unmarshal([]byte(tt.body), &q)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			q.Normalize()
			assert.Equal(t, tt.expected, q.Limit())
		})
	}
}

func TestActorSearchRequestNormalize(t *testing.T) {
	r := &ActorSearchRequest{Name: " Chiranjeevi ", Craft: "\tactor\n"}
	r.Normalize()

	assert.Equal(t, "Chiranjeevi", r.Name)
	assert.Equal(t, "actor", r.Craft)
}

func newContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectOK       bool
		expectedStatus int
		expectedError  string
	}{
		{"valid", `{"name":"Chiranjeevi","craft":"actor"}`, true, http.StatusOK, ""},
		{"invalid json", `invalid json`, false, http.StatusUnprocessableEntity, "INVALID_INPUT"},
		{"empty body", ``, false, http.StatusUnprocessableEntity, "INVALID_INPUT"},
		{"wrong type", `{"name":42,"craft":"actor"}`, false, http.StatusUnprocessableEntity, "INVALID_INPUT"},
		{"missing craft", `{"name":"Test Actor"}`, false, http.StatusUnprocessableEntity, "MISSING_FIELD"},
		{"blank name", `{"name":"   ","craft":"actor"}`, false, http.StatusUnprocessableEntity, "MISSING_FIELD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(tt.body)

			var req ActorSearchRequest
			ok := BindAndValidate(c, &req)
			assert.Equal(t, tt.expectOK, ok)

			if tt.expectOK {
				return
			}
			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, StatusError, resp["status"])
			assert.Equal(t, tt.expectedError, resp["error"])
			assert.NotEmpty(t, resp["message"])
		})
	}
}

func TestSendError(t *testing.T) {
	t.Run("validation error keeps field details", func(t *testing.T) {
		c, w := newContext("")
		SendError(c, apperrors.ValidationError("num_results", "must be less than or equal to 50"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		details := resp["details"].(map[string]interface{})
		assert.Equal(t, "num_results", details["field"])
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		c, w := newContext("")
		SendError(c, errors.New("database password is hunter2"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "hunter2")
		assert.Contains(t, w.Body.String(), InternalErrorMessage)
	})
}

func TestSendBadRequest(t *testing.T) {
	c, w := newContext("")
	SendBadRequest(c, "Name cannot be empty")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Name cannot be empty"}`, w.Body.String())
}
