package main

import (
	"context"

	"ShopOrder/config/database"
	"ShopOrder/config/environment"
	v1 "ShopOrder/routes/v1"
	"ShopOrder/services"
	"ShopOrder/store"
	"ShopOrder/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := environment.Load()
	utils.InitLogger(cfg.LogLevel, cfg.LogPretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	gin.SetMode(cfg.GinMode)

	st, err := openStore(context.Background(), cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open store")
	}
	messenger, err := services.NewLineService(cfg.Line.APIBaseURL, cfg.Line.ChannelAccessToken, cfg.Line.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create line client")
	}

	r := v1.NewRouter(cfg, st, messenger)

	log.Info().Str("port", cfg.Port).Str("backend", cfg.Store.Backend).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func openStore(ctx context.Context, cfg environment.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case environment.BackendFirestore:
		client, err := database.InitFirestore(ctx, cfg.FirebaseCredentials, cfg.FirebaseProjectID)
		if err != nil {
			return nil, err
		}
		return store.NewFirestoreStore(client), nil
	case environment.BackendMemory:
		log.Warn().Msg("using in-memory store, settings are lost on restart")
		return store.NewMemoryStore(nil), nil
	default:
		srv, err := database.InitSheets(ctx, cfg.GoogleCredentials)
		if err != nil {
			return nil, err
		}
		return store.NewSheetsStore(srv, store.SheetsConfig{
			SpreadsheetID: cfg.SpreadsheetID,
			MenuRange:     cfg.MenuRange,
			Cells: map[store.Cell]string{
				store.CellInterval: cfg.IntervalCell,
				store.CellOpen:     cfg.OpenCell,
				store.CellAdmin:    cfg.AdminCell,
			},
		}), nil
	}
}
