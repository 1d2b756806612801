package service

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fizika_backend/internals/configs"
)

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	Send(phone, message string) error
}

// NewSMSSender picks Twilio when credentials are configured,
// otherwise falls back to the console sender (dev / demo mode).
func NewSMSSender() SMSSender {
	if configs.TwilioSID != "" && configs.TwilioToken != "" && configs.TwilioPhone != "" {
		return &twilioSender{}
	}
	return &consoleSender{}
}

// NormalizePhone formats an Algerian number to E.164 (+213...).
func NormalizePhone(phone string) string {
	p := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	switch {
	case strings.HasPrefix(p, "0"):
		return "+213" + p[1:]
	case strings.HasPrefix(p, "+"):
		return p
	default:
		return "+213" + p
	}
}

/* ==========================
   Twilio sender
========================== */

type twilioSender struct{}

func (s *twilioSender) Send(phone, message string) error {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", configs.TwilioSID)

	form := url.Values{}
	form.Set("To", NormalizePhone(phone))
	form.Set("From", configs.TwilioPhone)
	form.Set("Body", message)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(configs.TwilioSID + ":" + configs.TwilioToken))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

/* ==========================
   Console sender (demo mode)
========================== */

type consoleSender struct{}

func (s *consoleSender) Send(phone, message string) error {
	log.Printf("[SMS demo] to=%s body=%q", NormalizePhone(phone), message)
	return nil
}
