package qrgen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/qrforge/pkg/urlname"
)

// Format selects the output container for a generated image.
type Format string

const (
	FormatPNG    Format = "png"
	FormatJPEG   Format = "jpeg"
	FormatSVG    Format = "svg"
	FormatStyled Format = "styled"
)

// Theme selects the color scheme and module geometry for styled output.
type Theme string

const (
	ThemeMatrix    Theme = "matrix"
	ThemeCyberpunk Theme = "cyberpunk"
	ThemeTerminal  Theme = "terminal"
)

const (
	// boxSize is the edge length of one module in pixels for raster output.
	boxSize = 10

	// gappedRatio is the fraction of the module box filled by a gapped
	// square module.
	gappedRatio = 0.8
)

// Image is a fully rendered QR code ready to be served.
type Image struct {
	Bytes    []byte
	MIMEType string
	Filename string
}

// DataURI returns the image as a base64 data URI for inline embedding
// in HTML or JSON payloads.
func (i *Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Bytes)
}

// Generate renders content as a QR code in the requested format. The
// download filename is derived from the content, so URL-like content
// yields names such as "example.com.png". Unrecognized formats render
// as plain PNG and unrecognized themes as plain black-on-white modules.
func Generate(content string, format Format, theme Theme) (*Image, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	name := urlname.Derive(content)

	switch format {
	case FormatStyled:
		matrix, err := encode(content, qrcode.Highest)
		if err != nil {
			return nil, err
		}
		data, err := encodePNG(renderRaster(matrix, styleFor(theme)))
		if err != nil {
			return nil, err
		}
		filename := name + ".png"
		if theme != "" {
			filename = name + "_" + string(theme) + ".png"
		}
		return &Image{Bytes: data, MIMEType: "image/png", Filename: filename}, nil

	case FormatSVG:
		matrix, err := encode(content, qrcode.Low)
		if err != nil {
			return nil, err
		}
		return &Image{Bytes: renderSVG(matrix), MIMEType: "image/svg+xml", Filename: name + ".svg"}, nil

	case FormatJPEG:
		matrix, err := encode(content, qrcode.Low)
		if err != nil {
			return nil, err
		}
		data, err := encodeJPEG(renderRaster(matrix, plainStyle()))
		if err != nil {
			return nil, err
		}
		return &Image{Bytes: data, MIMEType: "image/jpeg", Filename: name + ".jpeg"}, nil

	default:
		matrix, err := encode(content, qrcode.Low)
		if err != nil {
			return nil, err
		}
		data, err := encodePNG(renderRaster(matrix, plainStyle()))
		if err != nil {
			return nil, err
		}
		return &Image{Bytes: data, MIMEType: "image/png", Filename: name + ".png"}, nil
	}
}

// encode builds the module matrix, quiet zone included.
func encode(content string, level qrcode.RecoveryLevel) ([][]bool, error) {
	code, err := qrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGenerateQRCode, err)
	}
	return code.Bitmap(), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGenerateQRCode, err)
	}
	return buf.Bytes(), nil
}

// encodeJPEG flattens the image onto an opaque canvas before encoding,
// since JPEG has no alpha channel.
func encodeJPEG(img image.Image) ([]byte, error) {
	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGenerateQRCode, err)
	}
	return buf.Bytes(), nil
}
