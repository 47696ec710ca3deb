package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/client/model"
	"lodge/internal/domains/client/model/dto"
	"lodge/internal/domains/client/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/{nas}", handler.GetClientByNAS)
		routerGroup.Patch("/{nas}", handler.UpdateClient)
		routerGroup.Delete("/{nas}", handler.DeleteClient)
	})
}

// CreateClient registers a new client.
// @Summary Register a new client
// @Description Register a client with their NAS, full name and address.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Message "Client created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [post]
// @Security BearerAuth
func (handler *Handler) CreateClient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Client created successfully")
}

// GetClients retrieves all clients based on query parameters.
// @Summary Get all clients
// @Description Retrieve all clients with optional filtering and pagination.
// @Tags Client
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param full_name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetClientsResponse] "List of clients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
// @Security BearerAuth
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := model.ListFilter{
		Name: r.URL.Query().Get(model.FieldFullName),
	}

	clients, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clients retrieved successfully")

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByNAS retrieves a client by their NAS.
// @Summary Get a client by NAS
// @Description Retrieve a client by their national insurance number.
// @Tags Client
// @Accept json
// @Produce json
// @Param nas path string true "Client NAS"
// @Success 200 {object} response.Data[dto.ClientResponse] "Client details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{nas} [get]
// @Security BearerAuth
func (handler *Handler) GetClientByNAS(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByNAS")
	defer scope.End()

	nas := chi.URLParam(r, constant.RequestParamNAS)

	client, err := handler.service.Get(ctx, nas)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client by NAS")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client retrieved successfully")

	response.WithJSON(w, http.StatusOK, client)
}

// UpdateClient updates an existing client by their NAS.
// @Summary Update a client by NAS
// @Description Update the details of an existing client.
// @Tags Client
// @Accept json
// @Produce json
// @Param nas path string true "Client NAS"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} response.Message "Client updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{nas} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	nas := chi.URLParam(r, constant.RequestParamNAS)

	req := dto.UpdateClientRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, nas); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Client updated successfully")
}

// DeleteClient deletes a client by their NAS.
// @Summary Delete a client by NAS
// @Description Delete a client with no remaining reservations or rentals.
// @Tags Client
// @Accept json
// @Produce json
// @Param nas path string true "Client NAS"
// @Success 200 {object} response.Message "Client deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{nas} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClient")
	defer scope.End()

	nas := chi.URLParam(r, constant.RequestParamNAS)

	if err := handler.service.Delete(ctx, nas); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete client")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Client deleted successfully")
}
