package outreach

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bookflow/agentplane/ent"
	entoutreach "github.com/bookflow/agentplane/ent/outreach"
)

const twilioBaseURL = "https://api.twilio.com"

// TwilioProvider sends messages through the Twilio Messages API. Status
// updates come back asynchronously on the status webhook keyed by the
// returned message sid.
type TwilioProvider struct {
	httpClient *http.Client
	baseURL    string
	accountSID string
	authToken  string
	fromSMS    string
	fromWA     string
	statusURL  string
	logger     *slog.Logger
}

// NewTwilioProvider creates the provider. fromWhatsApp may be empty when
// the tenant only sends SMS.
func NewTwilioProvider(accountSID, authToken, fromSMS, fromWhatsApp, statusCallbackURL string, logger *slog.Logger) *TwilioProvider {
	return &TwilioProvider{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    twilioBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromSMS:    fromSMS,
		fromWA:     fromWhatsApp,
		statusURL:  statusCallbackURL,
		logger:     logger,
	}
}

// Send posts the message and returns the provider message sid.
// HTTP 4xx is a definitive rejection; 5xx and transport errors are
// transient and retried by the task queue.
func (p *TwilioProvider) Send(ctx context.Context, o *ent.Outreach) (string, error) {
	to := o.CustomerPhone
	from := p.fromSMS
	if o.Channel == entoutreach.ChannelWhatsapp {
		to = "whatsapp:" + to
		from = "whatsapp:" + p.fromWA
	}

	form := url.Values{
		"To":   {to},
		"From": {from},
		"Body": {o.Message},
	}
	if p.statusURL != "" {
		form.Set("StatusCallback", p.statusURL)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.baseURL, p.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(p.accountSID, p.authToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send message for outreach %s: %w", o.ID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		p.logger.Warn("provider rejected message",
			slog.String("outreach_id", o.ID),
			slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: HTTP %d", ErrSendRejected, resp.StatusCode)
	default:
		return "", fmt.Errorf("provider returned HTTP %d for outreach %s", resp.StatusCode, o.ID)
	}

	var payload struct {
		Sid string `json:"sid"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}
	if payload.Sid == "" {
		return "", fmt.Errorf("provider response missing sid for outreach %s", o.ID)
	}
	return payload.Sid, nil
}
