package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elliebot/relay/pkg/transport"
)

const (
	defaultBaseURL   = "https://api.telegram.org"
	maxMessageLength = 4096
)

// Client is a hand-rolled Bot API client. The API surface the relay needs
// is small enough that a JSON POST helper covers all of it.
type Client struct {
	token   string
	chatID  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Bot API client bound to one chat.
func NewClient(token, chatID string) *Client {
	return NewClientWithBaseURL(token, chatID, defaultBaseURL)
}

// NewClientWithBaseURL creates a client targeting a custom API host.
// Useful for testing with a mock server.
func NewClientWithBaseURL(token, chatID, baseURL string) *Client {
	return &Client{
		token:   token,
		chatID:  chatID,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		logger:  slog.Default().With("component", "chatbot-client"),
	}
}

// SendMessage sends text, splitting at the Bot API's 4096-char limit.
// Returns the message id of the last chunk sent.
func (c *Client) SendMessage(ctx context.Context, text string) (string, error) {
	var lastID string
	for _, chunk := range splitMessage(text) {
		body := map[string]any{
			"chat_id": c.chatID,
			"text":    chunk,
		}
		var result Message
		if err := c.call(ctx, "sendMessage", body, &result); err != nil {
			return "", err
		}
		lastID = strconv.FormatInt(result.MessageID, 10)
	}
	return lastID, nil
}

// EditMessage replaces the text of a sent message. A "message is not
// modified" rejection is swallowed: the content is already what we want.
func (c *Client) EditMessage(ctx context.Context, messageID, text string) error {
	idInt, err := strconv.ParseInt(messageID, 10, 64)
	if err != nil {
		return transport.Permanent(fmt.Errorf("invalid message id %q: %w", messageID, err))
	}
	body := map[string]any{
		"chat_id":    c.chatID,
		"message_id": idInt,
		"text":       text,
	}
	err = c.call(ctx, "editMessageText", body, nil)
	if err != nil && isNotModified(err) {
		return nil
	}
	return err
}

// SendTyping shows the typing indicator for a few seconds.
func (c *Client) SendTyping(ctx context.Context) error {
	body := map[string]any{
		"chat_id": c.chatID,
		"action":  "typing",
	}
	return c.call(ctx, "sendChatAction", body, nil)
}

// SendConfirmation sends an approval prompt with inline approve/deny
// buttons. The pending action id rides in the callback data.
func (c *Client) SendConfirmation(ctx context.Context, actionID, description string) (string, error) {
	body := map[string]any{
		"chat_id": c.chatID,
		"text":    "Approval needed:\n" + description,
		"reply_markup": map[string]any{
			"inline_keyboard": [][]map[string]string{{
				{"text": "Approve", "callback_data": "approve:" + actionID},
				{"text": "Deny", "callback_data": "deny:" + actionID},
			}},
		},
	}
	var result Message
	if err := c.call(ctx, "sendMessage", body, &result); err != nil {
		return "", err
	}
	return strconv.FormatInt(result.MessageID, 10), nil
}

// AnswerCallback acknowledges a button press so the client stops spinning.
func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	body := map[string]any{
		"callback_query_id": callbackID,
		"text":              text,
	}
	return c.call(ctx, "answerCallbackQuery", body, nil)
}

// GetUpdates long-polls for updates past offset. Blocks up to timeout
// seconds server-side before returning an empty batch.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout int) ([]Update, error) {
	body := map[string]any{
		"offset":          offset,
		"timeout":         timeout,
		"allowed_updates": []string{"message", "callback_query"},
	}
	var result []Update
	if err := c.call(ctx, "getUpdates", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DownloadFile fetches a file's bytes. Two steps: getFile resolves the
// server-side path, then a plain GET retrieves the data.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, string, error) {
	var file File
	if err := c.call(ctx, "getFile", map[string]any{"file_id": fileID}, &file); err != nil {
		return nil, "", err
	}
	if file.FilePath == "" {
		return nil, "", transport.Permanent(fmt.Errorf("empty file_path for file_id %s", fileID))
	}

	url := fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, file.FilePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create download request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", transport.Retryable(fmt.Errorf("file download failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", transport.FromStatusCode(resp.StatusCode, "file download")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", transport.Retryable(fmt.Errorf("failed to read file body: %w", err))
	}

	parts := strings.Split(file.FilePath, "/")
	return data, parts[len(parts)-1], nil
}

// call posts JSON to a Bot API method and decodes the result envelope.
func (c *Client) call(ctx context.Context, method string, reqBody any, result any) error {
	url := c.baseURL + "/bot" + c.token + "/" + method

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return transport.Retryable(fmt.Errorf("%s request failed: %w", method, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transport.Retryable(fmt.Errorf("failed to read %s response: %w", method, err))
	}

	var envelope struct {
		OK          bool            `json:"ok"`
		Description string          `json:"description,omitempty"`
		ErrorCode   int             `json:"error_code,omitempty"`
		Result      json.RawMessage `json:"result,omitempty"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return transport.Retryable(fmt.Errorf("failed to decode %s response: %w", method, err))
	}

	if !envelope.OK {
		apiErr := &apiError{Code: envelope.ErrorCode, Description: envelope.Description}
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500 {
			return transport.Retryable(apiErr)
		}
		return transport.Permanent(apiErr)
	}

	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

// apiError is a Bot API error response.
type apiError struct {
	Code        int
	Description string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("bot API error %d: %s", e.Code, e.Description)
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// splitMessage chunks text at the Bot API limit, breaking on newlines
// where possible so sentences stay intact.
func splitMessage(text string) []string {
	if len(text) <= maxMessageLength {
		return []string{text}
	}

	var chunks []string
	for len(text) > maxMessageLength {
		cut := strings.LastIndex(text[:maxMessageLength], "\n")
		if cut <= 0 {
			cut = maxMessageLength
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimLeft(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
