package response

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrforge/core/handler"
)

// Attachment creates a response that sends the given bytes as a file download.
// The Content-Type is detected from the filename extension, falling back to
// application/octet-stream for unknown extensions.
func Attachment(data []byte, filename string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		// Strip characters that would break the Content-Disposition header.
		safe := strings.NewReplacer("\n", "", "\r", "", `"`, "'").Replace(filename)

		contentType := mime.TypeByExtension(filepath.Ext(safe))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, safe))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)

		_, err := w.Write(data)
		return err
	}
}
