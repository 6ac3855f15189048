// Package telegram is a minimal Bot API client: inbound update types and
// sendMessage.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type User struct {
	Id int64 `json:"id"`
}

type Chat struct {
	Id int64 `json:"id"`
}

type Message struct {
	MessageId int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Update struct {
	UpdateId int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Sender delivers a plain text reply to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type sendMessageRequest struct {
	ChatId int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c.token == "" {
		return fmt.Errorf("telegram bot token is not configured")
	}

	body, err := json.Marshal(sendMessageRequest{ChatId: chatID, Text: text})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendMessage failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return err
	}

	var res apiResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return fmt.Errorf("sendMessage: unexpected response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || !res.Ok {
		return fmt.Errorf("sendMessage: status %d: %s", resp.StatusCode, res.Description)
	}
	return nil
}
