package handlers

import (
	"FindIt/internal/middleware"
	"FindIt/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	// у каждого роутера свой реестр метрик
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(metrics.WithMetrics)

	itemHandler := NewItemHandler(itemService, logger)

	// Items routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Create)
	r.Get("/api/items/{id}", itemHandler.Get)
	r.Get("/api/categories", itemHandler.Categories)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Handler{Router: r}
}
