package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/dashboard"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/notification"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/settings"
	"lodge/internal/handlers/user"
	"lodge/transport/http/middleware"
	"lodge/transport/http/response"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Dashboard    dashboard.Handler
	Guest        guest.Handler
	Notification notification.Handler
	Payment      payment.Handler
	Room         room.Handler
	Settings     settings.Handler
	User         user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	appMiddleware  middleware.AppMiddleware
	authMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.appMiddleware.CORS)
	router.Use(r.appMiddleware.Tracing)
	router.Use(r.appMiddleware.RateLimit())

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "OK")
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.authMiddleware.APIKey)
			protected.Use(r.authMiddleware.Auth)

			r.DomainHandlers.Auth.RouterProtected(protected)
			r.DomainHandlers.Dashboard.Router(protected)
			r.DomainHandlers.Guest.Router(protected)
			r.DomainHandlers.Notification.Router(protected)
			r.DomainHandlers.Payment.Router(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Settings.Router(protected)
			r.DomainHandlers.User.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		appMiddleware:  appMiddleware,
		authMiddleware: authMiddleware,
	}
}
