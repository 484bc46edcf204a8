// Package media checks local files before they are sent as photo, video,
// audio or document messages, and turns them into URLs the backend can fetch.
package media

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

const mb = 1 << 20

type rule struct {
	maxSize int
	types   []string
}

var rules = map[models.MediaKind]rule{
	models.MediaPhoto: {
		maxSize: 10 * mb,
		types:   []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	},
	models.MediaVideo: {
		maxSize: 50 * mb,
		types:   []string{"video/mp4", "video/webm", "video/quicktime"},
	},
	models.MediaAudio: {
		maxSize: 20 * mb,
		types:   []string{"audio/mpeg", "audio/ogg", "audio/wav", "audio/mp3"},
	},
	models.MediaFile: {
		maxSize: 50 * mb,
		types: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
		},
	},
}

// MaxSize returns the size cap in bytes for kind.
func MaxSize(kind models.MediaKind) int {
	return rules[kind].maxSize
}

// ValidateFile sniffs data and checks it against the allow-list and size cap
// for kind. It returns the detected MIME type without parameters.
func ValidateFile(kind models.MediaKind, data []byte) (string, error) {
	r, ok := rules[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > r.maxSize {
		return "", fmt.Errorf("%w: %d bytes, max %d MB", ErrFileTooLarge, len(data), r.maxSize/mb)
	}

	detected := mimetype.Detect(data)
	for _, allowed := range r.types {
		if detected.Is(allowed) {
			return strings.SplitN(detected.String(), ";", 2)[0], nil
		}
	}
	return "", fmt.Errorf("%w: %s for %s", ErrTypeNotAllowed, detected.String(), kind)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UniqueFilename keeps a sanitized form of name and appends a random suffix
// so uploads never overwrite each other.
func UniqueFilename(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	stem = strings.Trim(unsafeChars.ReplaceAllString(stem, "_"), "_.")
	if stem == "" {
		stem = "upload"
	}
	if len(stem) > 64 {
		stem = stem[:64]
	}
	ext = strings.ToLower(unsafeChars.ReplaceAllString(ext, ""))
	if ext == "." {
		ext = ""
	}

	return stem + "-" + uuid.NewString() + ext
}
