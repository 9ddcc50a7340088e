package main

import (
	"embed"
	"html/template"
	"strings"

	"github.com/dmitrymomot/qrforge/core/handler"
	"github.com/dmitrymomot/qrforge/core/response"
	"github.com/dmitrymomot/qrforge/pkg/qrgen"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// generateRequest is the JSON body shared by the generate and download
// endpoints. Unknown fields are ignored by the binder.
type generateRequest struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	Theme  string `json:"theme"`
}

type generateResponse struct {
	Success  bool   `json:"success"`
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

var errURLRequired = response.ErrBadRequest.WithMessage("URL is required")

func landingHandler(ctx *Context) handler.Response {
	return response.Template(indexTemplate, nil)
}

// generateHandler renders the QR code and returns it inline as a base64
// data URI for browser preview.
func generateHandler(ctx *Context) handler.Response {
	req, err := bindGenerateRequest(ctx)
	if err != nil {
		return response.Error(err)
	}

	img, err := qrgen.Generate(req.URL, qrgen.Format(req.Format), qrgen.Theme(req.Theme))
	if err != nil {
		return response.Error(err)
	}

	return response.JSON(generateResponse{
		Success:  true,
		Image:    img.DataURI(),
		Filename: img.Filename,
	})
}

// downloadHandler renders the same QR code as a file attachment.
func downloadHandler(ctx *Context) handler.Response {
	req, err := bindGenerateRequest(ctx)
	if err != nil {
		return response.Error(err)
	}

	img, err := qrgen.Generate(req.URL, qrgen.Format(req.Format), qrgen.Theme(req.Theme))
	if err != nil {
		return response.Error(err)
	}

	return response.Attachment(img.Bytes, img.Filename)
}

func bindGenerateRequest(ctx *Context) (generateRequest, error) {
	var req generateRequest
	if err := ctx.Bind(&req); err != nil {
		return req, err
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return req, errURLRequired
	}
	return req, nil
}
