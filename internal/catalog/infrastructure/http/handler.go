package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/ecommerce-store/internal/catalog/application"
	"github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
	"github.com/dmehra2102/ecommerce-store/pkg/httpx"
	"github.com/dmehra2102/ecommerce-store/pkg/metrics"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service, m *metrics.Metrics) *Handler {
	return &Handler{
		log:     log,
		service: service,
		metrics: m,
		tracer:  otel.Tracer("catalog-http"),
	}
}

type createProductReq struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Size       domain.Size `json:"size"`
	PriceCents int64       `json:"price_cents"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/products", h.createProduct)
	r.Get("/products/{id}", h.getProduct)

	return r
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateProduct")
	defer span.End()

	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, err)
		return
	}

	p, err := h.service.CreateProduct(ctx, req.ID, req.Name, req.Size, req.PriceCents)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, p)
	case errors.Is(err, enumeration.ErrInvalidValue), errors.Is(err, domain.ErrInvalidProduct):
		h.badRequest(w, err)
	case errors.Is(err, domain.ErrProductExists):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		h.log.Error("create product failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetProduct")
	defer span.End()

	p, err := h.service.GetProduct(ctx, chi.URLParam(r, "id"))
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, p)
	case errors.Is(err, domain.ErrProductNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error("get product failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	if h.metrics.ObserveRejection(err, "http") {
		httpx.WriteInvalidValue(w, err)
		return
	}
	httpx.WriteError(w, http.StatusBadRequest, err.Error())
}
