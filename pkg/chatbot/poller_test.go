package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		update Update
		want   Inbound
		ok     bool
	}{
		{
			name:   "text message",
			update: Update{Message: &Message{MessageID: 1, Chat: Chat{ID: 42}, Text: "hi ellie"}},
			want:   Inbound{Kind: KindText, Text: "hi ellie", MessageID: "1", ChatID: 42},
			ok:     true,
		},
		{
			name: "voice note",
			update: Update{Message: &Message{
				MessageID: 2, Chat: Chat{ID: 42},
				Voice: &Voice{FileID: "v1", Duration: 4},
			}},
			want: Inbound{Kind: KindVoice, FileID: "v1", MessageID: "2", ChatID: 42},
			ok:   true,
		},
		{
			name: "photo picks largest rendition",
			update: Update{Message: &Message{
				MessageID: 3, Chat: Chat{ID: 42}, Caption: "whiteboard",
				Photo: []PhotoSize{{FileID: "small"}, {FileID: "large"}},
			}},
			want: Inbound{Kind: KindPhoto, FileID: "large", Text: "whiteboard", MessageID: "3", ChatID: 42},
			ok:   true,
		},
		{
			name: "document",
			update: Update{Message: &Message{
				MessageID: 4, Chat: Chat{ID: 42},
				Document: &Document{FileID: "d1", FileName: "notes.pdf"},
			}},
			want: Inbound{Kind: KindDocument, FileID: "d1", FileName: "notes.pdf", MessageID: "4", ChatID: 42},
			ok:   true,
		},
		{
			name: "approve callback",
			update: Update{CallbackQuery: &CallbackQuery{
				ID: "cb1", Data: "approve:act-9",
				Message: &Message{MessageID: 5, Chat: Chat{ID: 42}},
			}},
			want: Inbound{Kind: KindCallback, CallbackID: "cb1", ActionID: "act-9", Approved: true, MessageID: "5", ChatID: 42},
			ok:   true,
		},
		{
			name: "deny callback",
			update: Update{CallbackQuery: &CallbackQuery{
				ID: "cb2", Data: "deny:act-9",
			}},
			want: Inbound{Kind: KindCallback, CallbackID: "cb2", ActionID: "act-9", Approved: false},
			ok:   true,
		},
		{
			name:   "unknown callback data dropped",
			update: Update{CallbackQuery: &CallbackQuery{ID: "cb3", Data: "other:x"}},
			ok:     false,
		},
		{
			name:   "empty message dropped",
			update: Update{Message: &Message{MessageID: 6, Chat: Chat{ID: 42}}},
			ok:     false,
		},
		{
			name:   "no message at all",
			update: Update{},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalize(tt.update)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseCallbackData(t *testing.T) {
	id, approved, ok := parseCallbackData("approve:abc")
	assert.True(t, ok)
	assert.True(t, approved)
	assert.Equal(t, "abc", id)

	id, approved, ok = parseCallbackData("deny:abc")
	assert.True(t, ok)
	assert.False(t, approved)
	assert.Equal(t, "abc", id)

	_, _, ok = parseCallbackData("garbage")
	assert.False(t, ok)
}
