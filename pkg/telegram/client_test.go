package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var got sendMessageRequest
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "123:abc", time.Second)
	require.NoError(t, c.SendMessage(context.Background(), 42, "hello"))

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, int64(42), got.ChatId)
	assert.Equal(t, "hello", got.Text)
}

func TestSendMessageApiError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "t", time.Second).SendMessage(context.Background(), 1, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendMessageWithoutToken(t *testing.T) {
	err := NewClient("http://unused", "", time.Second).SendMessage(context.Background(), 1, "x")
	assert.Error(t, err)
}

func TestUpdateDecoding(t *testing.T) {
	var u Update
	require.NoError(t, json.Unmarshal([]byte(`{"update_id":10,"message":{"message_id":3,"from":{"id":7},"chat":{"id":7},"text":"READY"}}`), &u))

	assert.Equal(t, int64(10), u.UpdateId)
	require.NotNil(t, u.Message)
	assert.Equal(t, int64(7), u.Message.From.Id)
	assert.Equal(t, "READY", u.Message.Text)
}
