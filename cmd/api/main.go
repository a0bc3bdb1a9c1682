package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "github.com/Dew789/Game-Community/docs" // swagger docs

	"github.com/Dew789/Game-Community/internal/cache"
	"github.com/Dew789/Game-Community/internal/config"
	"github.com/Dew789/Game-Community/internal/db"
	"github.com/Dew789/Game-Community/internal/handler"
	"github.com/Dew789/Game-Community/internal/repository"
	"github.com/Dew789/Game-Community/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Game Community API
// @version 1.0
// @description Comunidad de juegos con recomendaciones item-based (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	followRepo := repository.NewFollowRepository()
	gameRepo := repository.NewGameRepository()
	gameReqRepo := repository.NewGameRequestRepository()
	scoreRepo := repository.NewScoreRepository()
	recRepo := repository.NewRecommendRepository()
	postRepo := repository.NewPostRepository()

	// ==============================
	// Leer direcciones de sim nodes
	// ==============================
	var simNodes []string
	if env := os.Getenv("SIM_NODE_ADDRS"); env != "" {
		for _, v := range strings.Split(env, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				simNodes = append(simNodes, v)
			}
		}
	}

	// fallback por si no hay variable de entorno (útil en local sin Docker)
	if len(simNodes) == 0 {
		simNodes = []string{
			"simnode1:9001",
			"simnode2:9001",
			"simnode3:9001",
		}
	}

	// services
	authSvc := service.NewAuthService(userRepo, followRepo, cfg.JWTSecret)
	gameSvc := service.NewGameService(gameRepo)
	gameReqSvc := service.NewGameRequestService(gameReqRepo, gameSvc)
	scoreSvc := service.NewScoreService(scoreRepo, gameRepo)
	postSvc := service.NewPostService(postRepo, followRepo)
	// coordinador del rebuild: local o repartido entre los sim nodes
	recSvc := service.NewRecommendService(gameRepo, scoreRepo, recRepo,
		cfg.RebuildK, cfg.RebuildWorkers, simNodes)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	gameH := handler.NewGameHandler(gameSvc)
	gameReqH := handler.NewGameRequestHandler(gameReqSvc)
	scoreH := handler.NewScoreHandler(scoreSvc)
	postH := handler.NewPostHandler(postSvc)
	recH := handler.NewRecommendHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Juegos (públicos)
	r.Get("/games", gameH.Search)
	r.Get("/games/top", gameH.Top)
	r.Get("/games/{id}", gameH.GetGame)
	r.Get("/games/{id}/similar", recH.GetSimilarGames)

	// Posts (lectura pública)
	r.Get("/posts", postH.List)
	r.Get("/posts/{id}", postH.GetPost)
	r.Get("/posts/{id}/comments", postH.ListComments)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/scores", scoreH.GetMyScores)
			r.Get("/games/{id}/score", scoreH.GetMyScore)
			r.Put("/games/{id}/score", scoreH.PutMyScore)

			r.Post("/posts", postH.CreatePost)
			r.Post("/posts/{id}/comments", postH.AddComment)
			r.Get("/feed", postH.Feed)

			// game requests (USER)
			r.Get("/game-requests", gameReqH.ListMine)
			r.Post("/game-requests", gameReqH.Create)
		})

		// seguir / dejar de seguir
		r.Post("/users/{id}/follow", authH.Follow)
		r.Delete("/users/{id}/follow", authH.Unfollow)
		r.Get("/users/{id}/followers", authH.Followers)
		r.Get("/users/{id}", authH.GetUserByID)

		// ---- Endpoints MODERATOR ----
		r.Group(func(r chi.Router) {
			r.Use(handler.ModeratorOnly())

			r.Put("/mod/comments/{id}", postH.ModerateComment)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// gestión de usuarios
			r.Get("/users", authH.ListUsers)
			r.Put("/users/{id}/update", authH.UpdateUser)

			// gestión del catálogo
			r.Post("/admin/games", gameH.CreateGame)
			r.Put("/admin/games/{id}", gameH.UpdateGame)

			// game-requests (ADMIN)
			r.Get("/admin/game-requests", gameReqH.ListAll)
			r.Post("/admin/game-requests/{id}/approve", gameReqH.Approve)
			r.Post("/admin/game-requests/{id}/reject", gameReqH.Reject)

			// --- recomendaciones ---
			r.Get("/admin/recommendations/summary", recH.Summary)
			r.Post("/admin/recommendations/rebuild", recH.Rebuild)

			// WebSocket con progreso
			r.Get("/admin/recommendations/ws/rebuild", recH.RebuildWS)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
