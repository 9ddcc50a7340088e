package qrgen

import "errors"

var (
	// ErrEmptyContent is returned when there is nothing to encode.
	ErrEmptyContent = errors.New("content is empty")

	// ErrFailedToGenerateQRCode wraps encoder failures, such as content
	// exceeding the symbol capacity.
	ErrFailedToGenerateQRCode = errors.New("failed to generate qr code")
)
