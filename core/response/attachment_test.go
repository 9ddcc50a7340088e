package response_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrforge/core/response"
)

func TestAttachment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		data                []byte
		filename            string
		expectedType        string
		expectedDisposition string
	}{
		{
			name:                "png_download",
			data:                []byte("fake png data"),
			filename:            "example.com.png",
			expectedType:        "image/png",
			expectedDisposition: `attachment; filename="example.com.png"`,
		},
		{
			name:                "jpeg_download",
			data:                []byte("fake jpeg data"),
			filename:            "example.com.jpeg",
			expectedType:        "image/jpeg",
			expectedDisposition: `attachment; filename="example.com.jpeg"`,
		},
		{
			name:                "svg_download",
			data:                []byte("<svg></svg>"),
			filename:            "example.com.svg",
			expectedType:        "image/svg+xml",
			expectedDisposition: `attachment; filename="example.com.svg"`,
		},
		{
			name:                "unknown_extension_falls_back_to_octet_stream",
			data:                []byte("data"),
			filename:            "payload.qrx",
			expectedType:        "application/octet-stream",
			expectedDisposition: `attachment; filename="payload.qrx"`,
		},
		{
			name:                "header_injection_stripped",
			data:                []byte("data"),
			filename:            "evil\r\nSet-Cookie: x=1\".png",
			expectedType:        "image/png",
			expectedDisposition: `attachment; filename="evilSet-Cookie: x=1'.png"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.Attachment(tt.data, tt.filename)
			req := httptest.NewRequest("POST", "/download", nil)
			w := httptest.NewRecorder()

			err := resp(w, req)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tt.expectedType)
			assert.Equal(t, tt.expectedDisposition, w.Header().Get("Content-Disposition"))
			assert.Equal(t, strconv.Itoa(len(tt.data)), w.Header().Get("Content-Length"))
			assert.Equal(t, tt.data, w.Body.Bytes())
		})
	}
}

func TestAttachmentEmptyData(t *testing.T) {
	t.Parallel()

	resp := response.Attachment(nil, "empty.png")
	req := httptest.NewRequest("POST", "/download", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("Content-Length"))
	assert.Empty(t, w.Body.Bytes())
}
