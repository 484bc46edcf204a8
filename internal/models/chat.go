package models

import "time"

type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

type Chat struct {
	ID            int64      `json:"id"`
	Type          ChatType   `json:"type"`
	Title         string     `json:"title,omitempty"`
	FirstName     string     `json:"first_name,omitempty"`
	LastName      string     `json:"last_name,omitempty"`
	Username      string     `json:"username,omitempty"`
	Photo         string     `json:"photo,omitempty"`
	IsPinned      bool       `json:"is_pinned"`
	IsMuted       bool       `json:"is_muted"`
	IsArchived    bool       `json:"is_archived"`
	UnreadCount   int        `json:"unread_count"`
	LastMessage   string     `json:"last_message,omitempty"`
	LastMessageID int64      `json:"last_message_id,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
}

type ChatsResponse struct {
	Chats      []Chat `json:"chats"`
	TotalCount int    `json:"total_count"`
	HasMore    bool   `json:"has_more"`
}

type ChatMessage struct {
	ID          int64     `json:"id"`
	ChatID      int64     `json:"chat_id"`
	FromID      int64     `json:"from_id"`
	FromName    string    `json:"from_name"`
	Text        string    `json:"text"`
	Date        time.Time `json:"date"`
	IsOutgoing  bool      `json:"is_outgoing"`
	IsRead      bool      `json:"is_read"`
	MediaType   string    `json:"media_type,omitempty"`
	ForwardFrom string    `json:"forward_from,omitempty"`
}

type HistoryResponse struct {
	Messages   []ChatMessage `json:"messages"`
	TotalCount int           `json:"total_count"`
	HasMore    bool          `json:"has_more"`
}

// NewestID is the highest message id in the page, or 0 for an empty page.
func (h *HistoryResponse) NewestID() int64 {
	var newest int64
	for _, m := range h.Messages {
		if m.ID > newest {
			newest = m.ID
		}
	}
	return newest
}

type Contact struct {
	ID         int64      `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name,omitempty"`
	Username   string     `json:"username,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Photo      string     `json:"photo,omitempty"`
	Status     string     `json:"status,omitempty"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	IsMutual   bool       `json:"is_mutual"`
	IsBlocked  bool       `json:"is_blocked"`
}

type ContactsResponse struct {
	Contacts   []Contact `json:"contacts"`
	TotalCount int       `json:"total_count"`
	HasMore    bool      `json:"has_more"`
	FromCache  bool      `json:"from_cache,omitempty"`
}

// GetChatsParams are optional; zero values are not sent.
type GetChatsParams struct {
	Limit    int
	Offset   int
	Archived *bool
}

type GetHistoryParams struct {
	Limit      int
	OffsetID   int64
	OffsetDate int64
}

type GetContactsParams struct {
	Limit  int
	Offset int
	Search string
}
