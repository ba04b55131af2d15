package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/evgzln/iiko-transfer/docs"
	ordershandlers "github.com/evgzln/iiko-transfer/internal/handlers/orders"
	synchandlers "github.com/evgzln/iiko-transfer/internal/handlers/sync"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type SyncHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Dispatch(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SyncHandler  SyncHandler
	OrderHandler OrderHandler
}

func New(syncService synchandlers.Service, dispatchService ordershandlers.DispatchService, reconcileService ordershandlers.ReconcileService) *Handlers {
	return &Handlers{
		SyncHandler:  synchandlers.New(syncService),
		OrderHandler: ordershandlers.New(dispatchService, reconcileService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/iiko", func(r chi.Router) {
		r.Post("/sync/{category}", h.SyncHandler.Run)
		r.Route("/orders", func(r chi.Router) {
			r.Post("/dispatch", h.OrderHandler.Dispatch)
			r.Post("/reconcile", h.OrderHandler.Reconcile)
		})
	})

	return r
}
