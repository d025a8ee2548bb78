package webhooks

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"finlit-bot/config"
	"finlit-bot/handlers"
)

// RegisterRoutes mounts the webhook verification and event endpoints
func RegisterRoutes(app *fiber.App, cfg *config.Config, handler *handlers.MessageHandler) {
	webhook := app.Group("/webhook")

	// Meta verification handshake
	webhook.Get("/", verifyWebhook(cfg))

	// Incoming message notifications
	webhook.Post("/", handleWebhookEvent(handler))
}

// verifyWebhook answers the Meta verification request by echoing the
// challenge when the verify token matches
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode)
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// handleWebhookEvent parses incoming webhook notifications. Processing runs
// in a separate goroutine so Meta gets its 200 immediately.
func handleWebhookEvent(handler *handlers.MessageHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WebhookEvent
		if err := c.BodyParser(&body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		if body.Object != "whatsapp_business_account" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		go processWebhookEvent(body, handler)

		return c.SendString("EVENT_RECEIVED")
	}
}

// processWebhookEvent walks the entries of one webhook delivery and hands
// text messages to the message handler
func processWebhookEvent(body WebhookEvent, handler *handlers.MessageHandler) {
	for _, entry := range body.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}

			senderName := ""
			if len(change.Value.Contacts) > 0 {
				senderName = change.Value.Contacts[0].Profile.Name
			}

			for _, message := range change.Value.Messages {
				if message.Type != "text" || message.Text == nil {
					slog.Info("Skipping non-text message",
						"messageID", message.ID,
						"type", message.Type,
					)
					continue
				}

				handler.HandleTextMessage(handlers.IncomingText{
					SenderID:   message.From,
					MessageID:  message.ID,
					SenderName: senderName,
					Text:       message.Text.Body,
				})
			}

			for _, status := range change.Value.Statuses {
				slog.Info("Status update",
					"messageID", status.ID,
					"status", status.Status,
				)
			}
		}
	}
}
