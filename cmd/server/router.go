package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/storefront-api/internal/api"
	apiMiddleware "github.com/phrazzld/storefront-api/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(app.corsHandler().Handler)

	authHandler := api.NewAuthHandler(app.stores.users, app.jwtService, app.passwords)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	itemHandler := api.NewItemHandler(app.itemService)
	userHandler := api.NewUserHandler(app.userService)
	cartHandler := api.NewCartHandler(app.cartService)
	orderHandler := api.NewOrderHandler(app.orderService)

	r.Post("/login", authHandler.Login)

	r.Route("/api", func(r chi.Router) {
		// Registration is public
		r.Post("/user/create", userHandler.CreateUser)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/item", itemHandler.ListItems)
			r.Get("/item/{id}", itemHandler.GetItem)
			r.Get("/item/name/{name}", itemHandler.FindItemsByName)

			r.Get("/user/{username}", userHandler.GetUserByUsername)
			r.Get("/user/id/{id}", userHandler.GetUserByID)

			r.Post("/cart/addToCart", cartHandler.AddToCart)
			r.Post("/cart/removeFromCart", cartHandler.RemoveFromCart)

			r.Post("/order/submit/{username}", orderHandler.SubmitOrder)
			r.Get("/order/history/{username}", orderHandler.OrderHistory)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// corsHandler allows the configured origins and exposes the Authorization
// header so browser clients can read the token issued by /login.
func (app *application) corsHandler() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Authorization"},
	})
}
