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
		routerGroup.Patch("/{id}", handler.UpdateChain)
		routerGroup.Delete("/{id}", handler.DeleteChain)
	})
}

// CreateChain handles the creation of a new hotel chain.
// @Summary Create a new chain
// @Description Create a new hotel chain with the provided details.
// @Tags Chain
// @Accept json
// @Produce json
// @Param request body dto.CreateChainRequest true "Create Chain Request"
// @Success 201 {object} response.Message "Chain created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains [post]
// @Security BearerAuth
func (handler *Handler) CreateChain(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateChain")
	defer scope.End()

	req := dto.CreateChainRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create chain")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Chain created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Chain created successfully")
}

// GetChains retrieves all chains based on query parameters.
// @Summary Get all chains
// @Description Retrieve all hotel chains with optional filtering and pagination.
// @Tags Chain
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetChainsResponse] "List of chains"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains [get]
func (handler *Handler) GetChains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChains")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := model.ListFilter{
		Name: r.URL.Query().Get(model.FieldName),
	}

	chains, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chains")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Chains retrieved successfully")

	response.WithJSON(w, http.StatusOK, chains)
}

// GetChainByID retrieves a chain by its ID.
// @Summary Get a chain by ID
// @Description Retrieve a hotel chain by its unique identifier.
// @Tags Chain
// @Accept json
// @Produce json
// @Param id path string true "Chain ID"
// @Success 200 {object} response.Data[dto.ChainResponse] "Chain details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
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

	scope.AddEvent("Chain retrieved successfully")

	response.WithJSON(w, http.StatusOK, chain)
}

// UpdateChain updates an existing chain by its ID.
// @Summary Update a chain by ID
// @Description Update the details of an existing hotel chain.
// @Tags Chain
// @Accept json
// @Produce json
// @Param id path string true "Chain ID"
// @Param request body dto.UpdateChainRequest true "Update Chain Request"
// @Success 200 {object} response.Message "Chain updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateChain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateChainRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update chain")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Chain updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Chain updated successfully")
}

// DeleteChain deletes a chain by its ID.
// @Summary Delete a chain by ID
// @Description Delete a hotel chain that no longer operates any hotels.
// @Tags Chain
// @Accept json
// @Produce json
// @Param id path string true "Chain ID"
// @Success 200 {object} response.Message "Chain deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
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

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Chain deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Chain deleted successfully")
}
