package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/ecommerce-store/internal/order/application"
	"github.com/dmehra2102/ecommerce-store/internal/order/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
	"github.com/dmehra2102/ecommerce-store/pkg/httpx"
	"github.com/dmehra2102/ecommerce-store/pkg/metrics"
	"github.com/dmehra2102/ecommerce-store/pkg/tracing"
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
		tracer:  otel.Tracer("order-http"),
	}
}

type createOrderReq struct {
	ID       string             `json:"id"`
	Customer string             `json:"customer"`
	Items    []domain.OrderItem `json:"items"`
	Headers  map[string]string  `json:"headers"`
}

type updateStatusReq struct {
	Status  domain.OrderStatus `json:"status"`
	Headers map[string]string  `json:"headers"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{id}", h.getOrder)
	r.Put("/orders/{id}/status", h.updateStatus)

	return r
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, err)
		return
	}

	o, err := domain.NewOrder(req.ID, req.Customer, req.Items)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	if err := h.service.CreateOrder(ctx, o, req.Headers, traceparent(ctx, r)); err != nil {
		h.serviceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, map[string]string{"status": o.Status.String(), "order_id": o.ID})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	o, err := h.service.GetOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateOrderStatus")
	defer span.End()

	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, err)
		return
	}

	o, err := h.service.UpdateStatus(ctx, chi.URLParam(r, "id"), req.Status, req.Headers, traceparent(ctx, r))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, enumeration.ErrInvalidValue),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidItem):
		h.badRequest(w, err)
	case errors.Is(err, domain.ErrOrderNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrOrderExists):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, application.ErrVariantUnavailable):
		httpx.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error("order request failed", "err", err)
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

func traceparent(ctx context.Context, r *http.Request) string {
	if tp := r.Header.Get(tracing.TraceparentHeader); tp != "" {
		return tp
	}
	return tracing.Traceparent(ctx)
}
