package models

import "time"

type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaFile  MediaKind = "file"
)

// Valid reports whether k is one of the supported media kinds.
func (k MediaKind) Valid() bool {
	switch k {
	case MediaPhoto, MediaVideo, MediaAudio, MediaFile:
		return true
	}
	return false
}

// DefaultBulkDelayMs is the pause between bulk messages when none is given.
const DefaultBulkDelayMs = 3000

type SendTextRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// SendMediaRequest is sent to the backend through Body, which uses the
// kind-specific URL field (photo_url, video_url, ...).
type SendMediaRequest struct {
	Kind     MediaKind `json:"-"`
	To       string    `json:"to" validate:"required"`
	MediaURL string    `json:"media_url" validate:"required,media_url"`
	Caption  string    `json:"caption,omitempty"`
}

// Body returns the JSON body for the kind-specific endpoint.
func (r SendMediaRequest) Body() map[string]string {
	body := map[string]string{"to": r.To}
	body[string(r.Kind)+"_url"] = r.MediaURL
	if r.Caption != "" {
		body["caption"] = r.Caption
	}
	return body
}

type SendBulkRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,required"`
	Text       string   `json:"text" validate:"required"`
	DelayMs    int      `json:"delay_ms,omitempty" validate:"gte=0"`
}

type MessageResponse struct {
	JobID   string     `json:"job_id"`
	Message string     `json:"message"`
	Status  string     `json:"status"`
	SendAt  *time.Time `json:"send_at,omitempty"`
}

// Message job statuses that end polling.
const (
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type MessageJob struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	To        string     `json:"to"`
	Type      string     `json:"type"`
	Text      string     `json:"text,omitempty"`
	MediaURL  string     `json:"media_url,omitempty"`
	Caption   string     `json:"caption,omitempty"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

// Done reports whether the job reached sent or failed.
func (j *MessageJob) Done() bool {
	return j.Status == JobStatusSent || j.Status == JobStatusFailed
}
