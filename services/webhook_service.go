package services

import (
	"context"
	"encoding/json"
	"fmt"

	"ShopOrder/models"

	"github.com/rs/zerolog/log"
)

type WebhookService struct {
	ChannelSecret string
	Settings      *SettingsService
}

func NewWebhookService(channelSecret string, settings *SettingsService) *WebhookService {
	return &WebhookService{ChannelSecret: channelSecret, Settings: settings}
}

// Handle verifies the raw body against signature, then records the sender of
// follow and message events as the shop admin. Only signature and decoding
// failures are returned.
func (s *WebhookService) Handle(ctx context.Context, body []byte, signature string) error {
	if err := VerifySignature(s.ChannelSecret, body, signature); err != nil {
		return err
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	for _, event := range payload.Events {
		if event.Type != "follow" && event.Type != "message" {
			continue
		}
		if event.Source.UserID == "" {
			continue
		}
		// a store failure must not make LINE treat the delivery as failed
		if err := s.Settings.RecordAdmin(ctx, event.Source.UserID); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("user_id", event.Source.UserID).Msg("record admin")
			continue
		}
		log.Ctx(ctx).Info().Str("event", event.Type).Str("user_id", event.Source.UserID).Msg("admin recorded")
	}
	return nil
}
