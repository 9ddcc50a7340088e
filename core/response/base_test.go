package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrforge/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "simple_string",
			content:  "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "empty_string",
			content:  "",
			expected: "",
		},
		{
			name:     "multiline_string",
			content:  "Line 1\nLine 2\nLine 3",
			expected: "Line 1\nLine 2\nLine 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.String(tt.content)
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()

			err := resp(w, req)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "simple_html",
			content:  "<h1>Hello, World!</h1>",
			expected: "<h1>Hello, World!</h1>",
		},
		{
			name:     "empty_html",
			content:  "",
			expected: "",
		},
		{
			name:     "html_with_attributes",
			content:  `<div class="container" id="main"><span>Text</span></div>`,
			expected: `<div class="container" id="main"><span>Text</span></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.HTML(tt.content)
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()

			err := resp(w, req)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	resp := response.NoContent()
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("Content-Type"))
}
