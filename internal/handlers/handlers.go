package handlers

import (
	"net/http"

	"ItemGateway/internal/config"
	"ItemGateway/internal/middleware"
	"ItemGateway/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithRecover)
	r.Use(middleware.WithCORS(middleware.CORSOptions{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowAll:       config.CORSAllowAll,
	}))
	r.Use(middleware.WithGzip)

	itemHandler := NewItemHandler(itemService, logger, config)
	userHandler := NewUserHandler(userService, itemService, logger, config)

	r.Get("/", Root)
	r.Get("/healthz", Health)

	// Item routes
	r.Get("/dados", itemHandler.List)
	// NOTE: {id} не используется, фильтрация только по query. Клиенты уже на это завязаны.
	r.Get("/dados/{id}", itemHandler.List)
	r.Post("/dados", itemHandler.Create)
	r.Put("/dados/{id}", itemHandler.Update)
	r.Delete("/dados/{id}", itemHandler.Delete)
	r.Delete("/delete-item/{id}", itemHandler.DeleteWithPhoto)

	// User routes
	r.Get("/current-user", userHandler.CurrentUser)
	r.Get("/user-profile/{userId}", userHandler.GetProfile)
	r.Put("/user-profile/{userId}", userHandler.UpdateProfile)
	// NOTE: {userId} не используется, владелец берётся из query user_id (известная особенность).
	r.Get("/usuario/{userId}", userHandler.ListItems)

	return &Handler{Router: r}
}

// Root: подтверждение, что API запущен.
func Root(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "API funcionando!")
}

func Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
