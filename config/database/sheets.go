package database

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// InitSheets decodes the base64 service account and opens a Google Sheets client.
func InitSheets(ctx context.Context, encodedCredentials string) (*sheets.Service, error) {
	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return nil, fmt.Errorf("decode google credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(decodedCredentials),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	log.Info().Msg("google sheets initialized")
	return srv, nil
}
