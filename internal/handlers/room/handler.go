package room

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.SearchAvailable)
		routerGroup.Get("/{number}", handler.GetRoomByNumber)
		routerGroup.Patch("/{number}", handler.UpdateRoom)
		routerGroup.Delete("/{number}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room in a hotel, optionally with an image.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param number formData integer true "Room number"
// @Param hotel_id formData string true "Hotel ID"
// @Param price formData number true "Nightly price"
// @Param capacity formData integer true "Room capacity"
// @Param area formData number false "Room area in square meters"
// @Param view formData string false "Room view"
// @Param amenities formData string false "Amenities"
// @Param extensible formData boolean false "Whether extra beds fit"
// @Param damages formData string false "Known damages"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		HotelID:   request.FormValue(model.FieldHotelID),
		View:      request.FormValue(model.FieldView),
		Amenities: request.FormValue(model.FieldAmenities),
	}

	if numberStr := request.FormValue(model.FieldNumber); numberStr != "" {
		if n, err := shared.ConvertStringToInt(numberStr); err == nil {
			req.Number = n
		}
	}

	if priceStr := request.FormValue(model.FieldPrice); priceStr != "" {
		if p, err := strconv.ParseFloat(priceStr, 64); err == nil {
			req.Price = p
		}
	}

	if capStr := request.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	if areaStr := request.FormValue(model.FieldArea); areaStr != "" {
		if a, err := strconv.ParseFloat(areaStr, 64); err == nil {
			req.Area = a
		}
	}

	if extStr := request.FormValue(model.FieldExtensible); extStr != "" {
		if ext := shared.ConvertStringToBool(extStr); ext != nil {
			req.Extensible = *ext
		}
	}

	if damages := request.FormValue(model.FieldDamages); damages != "" {
		req.Damages = &damages
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query string false "Filter by hotel ID"
// @Param capacity query integer false "Filter by minimum capacity"
// @Param view query string false "Filter by view"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := model.ListFilter{
		HotelID: r.URL.Query().Get(model.FieldHotelID),
		View:    r.URL.Query().Get(model.FieldView),
	}

	if capStr := r.URL.Query().Get(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			filter.Capacity = c
		}
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// SearchAvailable searches rooms free over a date range.
// @Summary Search available rooms
// @Description Search rooms free over an inclusive date range, with optional filters on location, chain, stars, capacity, view, price and area.
// @Tags Room
// @Accept json
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param location query string false "Hotel address fragment"
// @Param chain query string false "Chain name fragment"
// @Param stars query integer false "Exact star rating"
// @Param capacity query integer false "Minimum capacity"
// @Param view query string false "Exact view"
// @Param price_min query number false "Minimum nightly price"
// @Param price_max query number false "Maximum nightly price"
// @Param area_min query number false "Minimum area"
// @Param area_max query number false "Maximum area"
// @Success 200 {object} response.Data[dto.SearchAvailableResponse] "Available rooms ordered by price"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) SearchAvailable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchAvailable")
	defer scope.End()

	req := dto.AvailabilityRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.SearchAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByNumber retrieves a room by its number.
// @Summary Get a room by number
// @Description Retrieve a room by its number.
// @Tags Room
// @Accept json
// @Produce json
// @Param number path integer true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number} [get]
func (handler *Handler) GetRoomByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByNumber")
	defer scope.End()

	number, err := handler.roomNumber(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by number")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its number.
// @Summary Update a room by number
// @Description Update the details of an existing room, optionally replacing its image.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param number path integer true "Room number"
// @Param price formData number false "Nightly price"
// @Param capacity formData integer false "Room capacity"
// @Param area formData number false "Room area in square meters"
// @Param view formData string false "Room view"
// @Param amenities formData string false "Amenities"
// @Param extensible formData boolean false "Whether extra beds fit"
// @Param damages formData string false "Known damages"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	number, err := handler.roomNumber(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{}

	if priceStr := r.FormValue(model.FieldPrice); priceStr != "" {
		if p, err := strconv.ParseFloat(priceStr, 64); err == nil {
			req.Price = &p
		}
	}

	if capStr := r.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	if areaStr := r.FormValue(model.FieldArea); areaStr != "" {
		if a, err := strconv.ParseFloat(areaStr, 64); err == nil {
			req.Area = &a
		}
	}

	if view := r.FormValue(model.FieldView); view != "" {
		req.View = &view
	}

	if amenities := r.FormValue(model.FieldAmenities); amenities != "" {
		req.Amenities = &amenities
	}

	if extStr := r.FormValue(model.FieldExtensible); extStr != "" {
		req.Extensible = shared.ConvertStringToBool(extStr)
	}

	if damages := r.FormValue(model.FieldDamages); damages != "" {
		req.Damages = &damages
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, number); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its number.
// @Summary Delete a room by number
// @Description Delete a room that has no reservations or rentals.
// @Tags Room
// @Accept json
// @Produce json
// @Param number path integer true "Room number"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	number, err := handler.roomNumber(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, number); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

func (handler *Handler) roomNumber(r *http.Request) (int, error) {
	number, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		return 0, failure.BadRequestFromString("invalid room number") //nolint:wrapcheck
	}

	return number, nil
}
