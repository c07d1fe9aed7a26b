package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
)

// Gateway é o contrato mínimo com o provedor de mensagens. O core não
// faz retry, batch nem rate-limit; isso é problema do provedor ou de
// uma camada externa.
type Gateway interface {
	Send(ctx context.Context, phone string, text string) error
}

// WhatsappSender envia texto via webhook HTTP compatível com WhatsApp.
type WhatsappSender struct {
	url   string
	token string
	http  *http.Client
}

func NewWhatsappSender(url string, token string) *WhatsappSender {
	return &WhatsappSender{
		url:   strings.TrimSpace(url),
		token: strings.TrimSpace(token),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *WhatsappSender) Send(ctx context.Context, phone string, text string) error {
	if s.url == "" {
		return errors.New("whatsapp api url not configured")
	}

	payload := map[string]string{
		"phone": phone,
		"text":  text,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("whatsapp api returned non-2xx")
	}
	return nil
}

// NoopSender descarta mensagens (ambiente de desenvolvimento).
type NoopSender struct{}

func (NoopSender) Send(_ context.Context, _ string, _ string) error {
	return nil
}

// New escolhe o sender conforme a configuração.
func New(url string, token string) Gateway {
	if strings.TrimSpace(url) == "" {
		log.Println("WHATSAPP_API_URL not set, reminders will be discarded")
		return NoopSender{}
	}
	return NewWhatsappSender(url, token)
}
