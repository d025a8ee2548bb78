package handlers

import (
	"context"
	"log/slog"
	"time"

	"finlit-bot/services"
)

// IncomingText is one inbound text message, converted from the webhook
// payload (kept separate from webhooks types to avoid an import cycle)
type IncomingText struct {
	SenderID   string
	MessageID  string
	SenderName string
	Text       string
}

// MessageHandler bridges webhook events to the response engine and the
// outbound reply sender
type MessageHandler struct {
	responder *services.Responder
	sender    services.ReplySender
}

// NewMessageHandler wires the handler with its collaborators
func NewMessageHandler(responder *services.Responder, sender services.ReplySender) *MessageHandler {
	return &MessageHandler{
		responder: responder,
		sender:    sender,
	}
}

// HandleTextMessage generates and delivers the reply for one message. Each
// message is handled to completion independently; there is no shared
// conversation state.
func (h *MessageHandler) HandleTextMessage(msg IncomingText) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	slog.Info("Handling message",
		"senderID", msg.SenderID,
		"messageID", msg.MessageID,
		"message", msg.Text,
	)

	reply := h.responder.Respond(ctx, msg.Text)

	if err := h.sender.SendText(ctx, msg.SenderID, reply); err != nil {
		slog.Error("Failed to send reply",
			"error", err,
			"senderID", msg.SenderID,
			"messageID", msg.MessageID,
		)
	}
}
