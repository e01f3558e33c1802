package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"cofound_server/routes"
	"cofound_server/services"
	"cofound_server/socket"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gorilla/mux"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Initialize DynamoDB client and services
	log.Info().Msg("initializing DynamoDB client")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}

	profileService := &services.ProfileService{Dynamo: dynamoService}
	postService := &services.PostService{Dynamo: dynamoService, Profiles: profileService}
	favoriteService := &services.FavoriteService{Dynamo: dynamoService}
	messageService := &services.MessageService{Dynamo: dynamoService, Profiles: profileService}

	composeSearch := os.Getenv("COMPOSE_SEARCH") == "true"
	feedService := services.NewFeedService(postService, profileService, favoriteService, composeSearch)

	// Socket server for feed and conversation push events
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Error().Err(err).Msg("socket server stopped")
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Cofound")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterSessionRoutes(r, feedService)
	routes.RegisterFeedRoutes(r, feedService)
	routes.RegisterPostRoutes(r, postService, feedService, socketServer)
	routes.RegisterProfileRoutes(r, profileService, feedService, socketServer)
	routes.RegisterFavoriteRoutes(r, favoriteService, feedService, socketServer)
	routes.RegisterMessageRoutes(r, messageService, socketServer)
	routes.RegisterS3Routes(r)
	r.Handle("/socket.io/", socketServer)

	// Load the collections once at startup, then keep them fresh in the
	// background so long-lived sessions see new posts and members. The same
	// ticker sweeps out sessions whose tab went away without a delete.
	feedService.Refresh(context.Background())
	go func() {
		interval := 5 * time.Minute
		if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				interval = parsed
			} else {
				log.Warn().Str("value", v).Msg("invalid REFRESH_INTERVAL, using default")
			}
		}
		sessionTTL := time.Hour
		if v := os.Getenv("SESSION_TTL"); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				sessionTTL = parsed
			} else {
				log.Warn().Str("value", v).Msg("invalid SESSION_TTL, using default")
			}
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			feedService.Refresh(context.Background())
			feedService.PruneSessions(sessionTTL)
		}
	}()

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Info().Str("port", port).Msg("starting server")
	if err := http.ListenAndServe(":"+port, corsHandler); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
