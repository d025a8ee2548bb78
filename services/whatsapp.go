package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultGraphAPIBase = "https://graph.facebook.com"

// ReplySender delivers one text reply to one recipient
type ReplySender interface {
	SendText(ctx context.Context, recipientID, text string) error
}

// WhatsAppClient sends messages through the WhatsApp Cloud API
type WhatsAppClient struct {
	accessToken   string
	phoneNumberID string
	apiVersion    string
	baseURL       string
	client        *http.Client
}

// NewWhatsAppClient creates a sender for the configured business phone number
func NewWhatsAppClient(accessToken, phoneNumberID, apiVersion string) *WhatsAppClient {
	return &WhatsAppClient{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		apiVersion:    apiVersion,
		baseURL:       defaultGraphAPIBase,
		client:        &http.Client{Timeout: 30 * time.Second},
	}
}

// textMessagePayload is the Cloud API envelope for an outbound text message
type textMessagePayload struct {
	MessagingProduct string          `json:"messaging_product"`
	RecipientType    string          `json:"recipient_type"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Text             textMessageBody `json:"text"`
}

type textMessageBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// SendText posts a text reply to the recipient via the Cloud API
func (c *WhatsAppClient) SendText(ctx context.Context, recipientID, text string) error {
	url := fmt.Sprintf("%s/%s/%s/messages", c.baseURL, c.apiVersion, c.phoneNumberID)

	payload := textMessagePayload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               recipientID,
		Type:             "text",
		Text: textMessageBody{
			PreviewURL: false,
			Body:       text,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.Error("Failed to send WhatsApp reply", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("failed to send message: %s", resp.Status)
	}

	slog.Info("WhatsApp reply sent",
		"recipientID", recipientID,
		"messageLength", len(text),
	)

	return nil
}
