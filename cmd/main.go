// Package main is the entry point for the portfolio-service application.
//
// @title           Portfolio Service API
// @version         1.0.0
// @description     Content API for a personal portfolio site.
//
//	Serves posts, notes and projects with pagination, tag counts, a resume,
//	skills, search and an RSS feed. Content is cached in memory with a TTL.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/portfolio-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for admin routes when JWT login is not configured.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin access token as "Bearer <token>".
//
// @tag.name        Content
// @tag.description Posts, notes, projects, tags, resume and skills
//
// @tag.name        Search
// @tag.description Search and feeds
//
// @tag.name        Pagination
// @tag.description Pagination helper
//
// @tag.name        Auth
// @tag.description Admin login
//
// @tag.name        Admin
// @tag.description Cache administration
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"

	_ "github.com/guttosm/portfolio-service/docs" // swagger docs

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.Load()

	application, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize application")
		return 1
	}
	defer func() {
		if err := application.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to close content source")
		}
	}()

	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server error")
		return 1
	}
	return 0
}
