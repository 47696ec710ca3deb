package rental

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/rental/model"
	"lodge/internal/domains/rental/model/dto"
	"lodge/internal/domains/rental/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rentals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRental)
		routerGroup.Get("/", handler.GetRentals)
		routerGroup.Get("/{id}", handler.GetRentalByID)
	})
}

// CreateRental checks a walk-in client in directly.
// @Summary Create a rental
// @Description Check a walk-in client in. Records the payment and the rental in one transaction. Unknown clients are registered when full_name and address are supplied.
// @Tags Rental
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalRequest true "Create Rental Request"
// @Success 201 {object} response.Data[dto.RentalResponse] "Rental created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [post]
// @Security BearerAuth
func (handler *Handler) CreateRental(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRental")
	defer scope.End()

	req := dto.CreateRentalRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rental")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRentals retrieves all rentals based on query parameters.
// @Summary Get all rentals
// @Description Retrieve all rentals with optional filtering and pagination.
// @Tags Rental
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param client_nas query string false "Filter by client NAS"
// @Param employee_nas query string false "Filter by employee NAS"
// @Param room_number query integer false "Filter by room number"
// @Success 200 {object} response.Data[dto.GetRentalsResponse] "List of rentals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [get]
// @Security BearerAuth
func (handler *Handler) GetRentals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := model.ListFilter{
		ClientNAS:   r.URL.Query().Get(model.FieldClientNAS),
		EmployeeNAS: r.URL.Query().Get(model.FieldEmployeeNAS),
	}

	if numberStr := r.URL.Query().Get(model.FieldRoomNumber); numberStr != "" {
		if n, err := shared.ConvertStringToInt(numberStr); err == nil {
			filter.RoomNumber = n
		}
	}

	rentals, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rentals retrieved successfully")

	response.WithJSON(w, http.StatusOK, rentals)
}

// GetRentalByID retrieves a rental by its ID.
// @Summary Get a rental by ID
// @Description Retrieve a rental by its unique identifier.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Data[dto.RentalResponse] "Rental details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRentalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rental, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rental retrieved successfully")

	response.WithJSON(w, http.StatusOK, rental)
}
