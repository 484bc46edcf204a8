package media

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrTypeNotAllowed  = errors.New("file type is not allowed")
	ErrUnknownKind     = errors.New("unknown media kind")
	ErrInvalidQRImage  = errors.New("invalid QR image data")
	ErrUploaderMissing = errors.New("no uploader configured")
)
