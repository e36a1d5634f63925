package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"t2c/internal/errors"
)

// defaultTelegramBaseURL is the Telegram Bot API endpoint
const defaultTelegramBaseURL = "https://api.telegram.org"

// Telegram delivers messages to a Telegram chat via the Bot API
type Telegram struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
}

// NewTelegram creates a new Telegram notifier for the given bot token and
// chat
func NewTelegram(token, chatID string, timeout time.Duration) *Telegram {
	return newTelegramWithBaseURL(defaultTelegramBaseURL, token, chatID, timeout)
}

// newTelegramWithBaseURL allows tests to point the notifier at a fake server
func newTelegramWithBaseURL(baseURL, token, chatID string, timeout time.Duration) *Telegram {
	return &Telegram{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Notify sends one text message to the configured chat
func (t *Telegram) Notify(ctx context.Context, message string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)

	form := url.Values{}
	form.Set("chat_id", t.chatID)
	form.Set("text", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.NewNotifyError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.NewNotifyError(err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return errors.NewNotifyError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewNotifyError(fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(body)))
	}
	return nil
}
