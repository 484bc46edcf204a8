package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

func (c *Client) GetChats(ctx context.Context, sessionID string, params models.GetChatsParams) (*models.ChatsResponse, error) {
	q := url.Values{}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Archived != nil {
		q.Set("archived", strconv.FormatBool(*params.Archived))
	}

	var out models.ChatsResponse
	if err := c.get(ctx, sessionPath(sessionID, "chats"), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetChat(ctx context.Context, sessionID string, chatID int64) (*models.Chat, error) {
	var out models.Chat
	if err := c.get(ctx, sessionPath(sessionID, "chats", strconv.FormatInt(chatID, 10)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetHistory(ctx context.Context, sessionID string, chatID int64, params models.GetHistoryParams) (*models.HistoryResponse, error) {
	q := url.Values{}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.OffsetID > 0 {
		q.Set("offset_id", strconv.FormatInt(params.OffsetID, 10))
	}
	if params.OffsetDate > 0 {
		q.Set("offset_date", strconv.FormatInt(params.OffsetDate, 10))
	}

	var out models.HistoryResponse
	path := sessionPath(sessionID, "chats", strconv.FormatInt(chatID, 10), "history")
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetContacts(ctx context.Context, sessionID string, params models.GetContactsParams) (*models.ContactsResponse, error) {
	q := url.Values{}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}

	var out models.ContactsResponse
	if err := c.get(ctx, sessionPath(sessionID, "contacts"), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
