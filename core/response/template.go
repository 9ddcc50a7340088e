package response

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/qrforge/core/handler"
)

// Template creates an HTML response using html/template with 200 OK status.
// The template is buffered before writing, so a failing template produces no
// partial output and the error can still reach the error handler.
func Template(tmpl *template.Template, data any) handler.Response {
	if tmpl == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return err
		}

		w.WriteHeader(http.StatusOK)
		_, err := w.Write(buf.Bytes())
		return err
	}
}
