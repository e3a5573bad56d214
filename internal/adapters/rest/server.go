package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(
	port string,
	pieceHandlers *PieceHandler,
	searchHandlers *SearchHandler,
	locationHandlers *LocationHandler,
	favoritesHandlers *FavoritesHandler,
	authHandlers *AuthHandler,
	chatHandlers *ChatHandler,
	validateTokenUC usecases_port.ValidateTokenUseCasePort,
	imagesDir string,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authRequired := AuthMiddleware(validateTokenUC)
	operatorOnly := RequireRole("operator")

	r.Route("/api/v1", func(r chi.Router) {
		// Публичные роуты
		r.Post("/auth/register", authHandlers.Register)
		r.Post("/auth/login", authHandlers.Login)
		r.Post("/auth/validate", authHandlers.ValidateToken)

		r.Get("/pieces", pieceHandlers.GetPieces)
		r.Get("/pieces/{pieceID}", pieceHandlers.GetPieceByID)
		r.Get("/search", searchHandlers.SearchPieces)
		r.Get("/dictionaries", searchHandlers.GetDictionaries)

		r.Get("/locations", locationHandlers.GetLocations)
		r.Get("/locations/nearby", locationHandlers.GetNearbyLocations)
		r.Get("/locations/{locationID}", locationHandlers.GetLocationByID)

		r.Post("/chat", chatHandlers.SendMessage)

		// Роуты аутентифицированных пользователей
		r.Group(func(r chi.Router) {
			r.Use(authRequired)

			r.Get("/my/pieces", pieceHandlers.GetMyPieces)
			r.Post("/pieces", pieceHandlers.CreatePiece)
			r.Put("/pieces/{pieceID}", pieceHandlers.UpdatePiece)
			r.Delete("/pieces/{pieceID}", pieceHandlers.DeletePiece)
			r.Post("/pieces/{pieceID}/images", pieceHandlers.UploadPieceImages)

			r.Get("/favorites", favoritesHandlers.GetUserFavorites)
			r.Get("/favorites/ids", favoritesHandlers.GetUserFavoritesIDs)
			r.Post("/favorites", favoritesHandlers.AddToFavorites)
			r.Delete("/favorites/{pieceID}", favoritesHandlers.RemoveFromFavorites)
		})

		// Управление пунктами приема - только операторы
		r.Group(func(r chi.Router) {
			r.Use(authRequired, operatorOnly)

			r.Post("/locations", locationHandlers.CreateLocation)
			r.Put("/locations/{locationID}", locationHandlers.UpdateLocation)
			r.Delete("/locations/{locationID}", locationHandlers.DeleteLocation)
		})
	})

	// Статика с изображениями объявлений
	if imagesDir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
