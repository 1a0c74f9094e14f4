package chain

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/chain/model"
	"lodge/internal/domains/chain/model/dto"
	"lodge/internal/domains/chain/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Chain
	otel    otel.Otel
}

func New(service service.Chain, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chains", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateChain)
		routerGroup.Get("/", handler.GetChains)
		routerGroup.Get("/{id}", handler.GetChainByID)
		routerGroup.Put("/{id}", handler.UpdateChain)
		routerGroup.Delete("/{id}", handler.DeleteChain)
	})
}

// CreateChain registers a new hotel chain.
// @Summary Create a new hotel chain
// @Tags Chain
// @Accept json
// @Produce json
// @Success 201 {object} response.Message "Chain created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains [post]
// @Security BearerAuth
func (handler *Handler) CreateChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateChain")
	defer scope.End()

	var req dto.CreateChainRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create chain")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Chain created successfully")
}

// GetChains retrieves all hotel chains with optional filtering and pagination.
// @Summary Get all hotel chains
// @Tags Chain
// @Produce json
// @Success 200 {object} response.Data[dto.GetChainsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/chains [get]
func (handler *Handler) GetChains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChains")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if city := r.URL.Query().Get(model.FieldCity); city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    model.TableName,
		})
	}

	chains, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chains")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chains)
}

// GetChainByID retrieves a hotel chain by its ID.
// @Summary Get a hotel chain by ID
// @Tags Chain
// @Produce json
// @Param id path string true "Chain ID"
// @Success 200 {object} response.Data[dto.ChainResponse]
// @Failure 404 {object} response.Error
// @Router /v1/chains/{id} [get]
func (handler *Handler) GetChainByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChainByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	chain, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chain by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chain)
}

// UpdateChain updates an existing hotel chain.
// @Summary Update a hotel chain
// @Tags Chain
// @Accept json
// @Produce json
// @Param id path string true "Chain ID"
// @Success 200 {object} response.Message "Chain updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/chains/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateChain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateChainRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update chain")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Chain updated successfully")
}

// DeleteChain deletes a hotel chain by its ID.
// @Summary Delete a hotel chain
// @Tags Chain
// @Produce json
// @Param id path string true "Chain ID"
// @Success 200 {object} response.Message "Chain deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/chains/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteChain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete chain")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Chain deleted successfully")
}
