package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"legalassist_backend/internal/logger"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioTransport sends SMS through the Twilio REST API.
type TwilioTransport struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
}

func NewTwilioTransport(accountSID, authToken, from string) *TwilioTransport {
	return &TwilioTransport{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type twilioResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (t *TwilioTransport) SendSMS(ctx context.Context, to, message string) SendResult {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.baseURL, t.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.from)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		logger.CtxError(ctx, "twilio request failed", "to", to, "error", err)
		return SendResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var parsed twilioResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return SendResult{Success: false, Error: fmt.Sprintf("unexpected provider response (status %d)", resp.StatusCode)}
	}

	if resp.StatusCode >= 300 {
		errMsg := parsed.Message
		if errMsg == "" {
			errMsg = fmt.Sprintf("provider returned status %d", resp.StatusCode)
		}
		logger.CtxWarn(ctx, "twilio rejected message", "to", to, "status", resp.StatusCode, "error", errMsg)
		return SendResult{Success: false, Error: errMsg}
	}

	return SendResult{Success: true, MessageID: parsed.SID}
}
