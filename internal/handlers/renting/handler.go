package renting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/renting/model/dto"
	"lodge/internal/domains/renting/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Renting
	otel    otel.Otel
}

func New(service service.Renting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rentings", func(routerGroup chi.Router) {
		routerGroup.Post("/from-booking", handler.ConvertBooking)
		routerGroup.Post("/direct", handler.CreateDirectRenting)
		routerGroup.Put("/{id}/complete", handler.CompleteRenting)
		routerGroup.Post("/{id}/payment", handler.RecordPayment)
		routerGroup.Get("/{id}/payments", handler.GetRentingPayments)
		routerGroup.Get("/customer/{id}", handler.GetCustomerRentings)
	})
}

// ConvertBooking converts a confirmed booking into an active renting.
// @Summary Convert a booking to a renting
// @Tags Renting
// @Accept json
// @Produce json
// @Success 201 {object} response.Data[dto.RentingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings/from-booking [post]
// @Security BearerAuth
func (handler *Handler) ConvertBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertBooking")
	defer scope.End()

	var req dto.ConvertBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	renting, err := handler.service.ConvertFromBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert booking to renting")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, renting)
}

// CreateDirectRenting checks a walk-in customer into a room.
// @Summary Create a direct renting
// @Tags Renting
// @Accept json
// @Produce json
// @Success 201 {object} response.Data[dto.RentingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings/direct [post]
// @Security BearerAuth
func (handler *Handler) CreateDirectRenting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDirectRenting")
	defer scope.End()

	var req dto.CreateDirectRentingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	renting, err := handler.service.CreateDirect(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create direct renting")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, renting)
}

// CompleteRenting completes an active renting. Idempotent on already completed.
// @Summary Complete a renting
// @Tags Renting
// @Produce json
// @Param id path string true "Renting ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/rentings/{id}/complete [put]
// @Security BearerAuth
func (handler *Handler) CompleteRenting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteRenting")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	message, err := handler.service.Complete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete renting")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, message)
}

// RecordPayment appends a payment against a renting.
// @Summary Record a payment
// @Tags Renting
// @Accept json
// @Produce json
// @Param id path string true "Renting ID"
// @Success 201 {object} response.Data[dto.RecordPaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.RecordPaymentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	payment, err := handler.service.RecordPayment(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, payment)
}

// GetRentingPayments lists a renting's payments with the running sum.
// @Summary Get payments for a renting
// @Tags Renting
// @Produce json
// @Param id path string true "Renting ID"
// @Success 200 {object} response.Data[dto.GetRentingPaymentsResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rentings/{id}/payments [get]
// @Security BearerAuth
func (handler *Handler) GetRentingPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentingPayments")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payments, err := handler.service.ListPayments(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get renting payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// GetCustomerRentings lists a customer's rentings with room and hotel details.
// @Summary Get rentings for a customer
// @Tags Renting
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.GetCustomerRentingsResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rentings/customer/{id} [get]
func (handler *Handler) GetCustomerRentings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerRentings")
	defer scope.End()

	customerID := chi.URLParam(r, constant.RequestParamID)

	rentings, err := handler.service.ListByCustomer(ctx, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer rentings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rentings)
}
