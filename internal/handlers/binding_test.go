package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expected    TransitionRequest
		expectError bool
	}{
		{
			name:     "Nested Structure",
			body:     `{"reservation": {"note": "late arrival"}}`,
			expected: TransitionRequest{Note: "late arrival"},
		},
		{
			name:     "Flat Structure",
			body:     `{"note": "paid at front desk"}`,
			expected: TransitionRequest{Note: "paid at front desk"},
		},
		{
			name:     "Missing Key Falls Back To Flat",
			body:     `{"other": "value", "note": "no show"}`,
			expected: TransitionRequest{Note: "no show"},
		},
		{
			name:     "Empty Body",
			body:     ``,
			expected: TransitionRequest{},
		},
		{
			name:        "Invalid Type",
			body:        `{"note": 42}`,
			expectError: true,
		},
		{
			name:        "Nested Key Present but Invalid Type",
			body:        `{"reservation": "cancel it"}`,
			expectError: true,
		},
		{
			name:        "Not JSON",
			body:        `note=hi`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var result TransitionRequest
			err := BindNestedOrFlat(c, "reservation", &result)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			// body stays readable
			rest, _ := io.ReadAll(c.Request.Body)
			assert.Equal(t, tt.body, string(rest))
		})
	}
}
