// Package qrgen renders QR codes for URL-like content in several output
// formats, from plain black-and-white rasters to themed presentations.
//
// # Features
//
//   - PNG, JPEG, and SVG containers behind a single entry point
//   - Styled PNG rendering with matrix, cyberpunk, and terminal themes
//   - Download filenames derived from the encoded content
//   - Base64 data URIs for inline embedding
//   - Permissive handling of unknown format and theme values
//
// # Usage
//
//	img, err := qrgen.Generate("https://example.com", qrgen.FormatPNG, "")
//	if err != nil {
//		return err
//	}
//	fmt.Println(img.Filename) // example.com.png
//	fmt.Println(img.MIMEType) // image/png
//
// Styled output picks module geometry and colors from the theme:
//
//	img, err := qrgen.Generate("https://example.com", qrgen.FormatStyled, qrgen.ThemeMatrix)
//	// img.Filename == "example.com_matrix.png"
//
// # Rendering
//
// Raster output draws each module as a 10-pixel box around the standard
// 4-module quiet zone. Styled output is encoded at the highest error
// correction level so the decorative module shapes do not cost
// readability; plain PNG, JPEG, and SVG output use the lowest level to
// keep symbols small. Unknown format values render as plain PNG and
// unknown theme values as plain black-on-white modules rather than
// failing the request.
package qrgen
