package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// Messenger delivers a text message to the shop's recipient.
type Messenger interface {
	PushText(ctx context.Context, text string) error
}

// LineService sends push messages through the LINE Messaging API.
type LineService struct {
	bot *messaging_api.MessagingApiAPI
	to  string
}

// NewLineService builds a client for the API at baseURL that pushes to the user id to.
func NewLineService(baseURL, accessToken, to string) (*LineService, error) {
	bot, err := messaging_api.NewMessagingApiAPI(accessToken,
		messaging_api.WithEndpoint(baseURL),
		messaging_api.WithHTTPClient(&http.Client{}),
	)
	if err != nil {
		return nil, fmt.Errorf("create line client: %w", err)
	}
	return &LineService{bot: bot, to: to}, nil
}

// PushText sends text as a single message. Any non-2xx answer is an error.
func (s *LineService) PushText(ctx context.Context, text string) error {
	_, err := s.bot.WithContext(ctx).PushMessage(&messaging_api.PushMessageRequest{
		To:       s.to,
		Messages: []messaging_api.MessageInterface{messaging_api.TextMessage{Text: text}},
	}, "")
	if err != nil {
		return fmt.Errorf("push message: %w", err)
	}
	return nil
}
