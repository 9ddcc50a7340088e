// Package urlname derives filesystem-safe base names from URL-like strings.
//
// The package answers one question: given whatever a user typed into a
// "URL" field, what should the downloaded file be called? The answer is
// always a non-empty string containing only letters, digits, underscores,
// dots, and hyphens, so callers can embed it in filenames and
// Content-Disposition headers without further escaping.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrforge/pkg/urlname"
//
//	urlname.Derive("https://www.example.com:8080/path") // "example.com"
//	urlname.Derive("github.com/user/repo")              // "github.com"
//	urlname.Derive("Hello, мир!")                       // "qrcode"
//
// # Derivation Rules
//
// Input without an http:// or https:// prefix is treated as https://
// before parsing. The host part is preferred; when the parsed host is
// empty the path is used instead. A leading "www." and any ":port"
// suffix are removed, every character outside [A-Za-z0-9_.-] becomes an
// underscore, and trailing dots are stripped. Letter case is preserved.
//
// Derivation never fails: when parsing errors out or the result is
// empty, the fallback name "qrcode" is returned.
package urlname
