package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"taskboard/internal/api/handler"
	"taskboard/internal/api/middleware"
	"taskboard/internal/core/service"
)

// NewRouter wires the HTTP surface. Session verification applies to
// every board route except the board detail read, plus the profile and
// password update routes.
func NewRouter(
	authService service.AuthService,
	boardService service.BoardService,
	jwtSecret []byte,
	logger *zap.Logger,
) http.Handler {
	authHandler := handler.NewAuthHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	authMiddleware := middleware.NewAuthMiddleware(jwtSecret)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"health check successful"}`))
	})

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/edit/{id}", boardHandler.Get)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/profile", authHandler.Profile)
		r.Put("/passwordUpdation", authHandler.UpdatePassword)

		r.Post("/boardCreate", boardHandler.Create)
		r.Get("/getAnalytics", boardHandler.Analytics)
		r.Put("/updateDueTask", boardHandler.UpdateDueTask)
		r.Get("/getCardData", boardHandler.GetCardData)
		r.Put("/updateStatus", boardHandler.UpdateStatus)
		r.Put("/edit/{id}", boardHandler.Edit)
		r.Delete("/delete/{id}", boardHandler.Delete)
	})

	return r
}
