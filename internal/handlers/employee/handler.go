package employee

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/employee/model"
	"lodge/internal/domains/employee/model/dto"
	"lodge/internal/domains/employee/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/{nas}", handler.GetEmployeeByNAS)
		routerGroup.Patch("/{nas}", handler.UpdateEmployee)
		routerGroup.Delete("/{nas}", handler.DeleteEmployee)
	})
}

// CreateEmployee registers a new employee.
// @Summary Register a new employee
// @Description Register an employee assigned to a hotel with one or more roles.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} response.Message "Employee created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Employee created successfully")
}

// GetEmployees retrieves all employees based on query parameters.
// @Summary Get all employees
// @Description Retrieve all employees with optional filtering and pagination.
// @Tags Employee
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query string false "Filter by hotel ID"
// @Param role query string false "Filter by role"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse] "List of employees"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := model.ListFilter{
		HotelID: r.URL.Query().Get(model.FieldHotelID),
		Role:    r.URL.Query().Get("role"),
	}

	employees, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employees retrieved successfully")

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByNAS retrieves an employee by their NAS.
// @Summary Get an employee by NAS
// @Description Retrieve an employee by their national insurance number.
// @Tags Employee
// @Accept json
// @Produce json
// @Param nas path string true "Employee NAS"
// @Success 200 {object} response.Data[dto.EmployeeResponse] "Employee details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{nas} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeByNAS(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByNAS")
	defer scope.End()

	nas := chi.URLParam(r, constant.RequestParamNAS)

	employee, err := handler.service.Get(ctx, nas)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by NAS")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee retrieved successfully")

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee by their NAS.
// @Summary Update an employee by NAS
// @Description Update the details of an existing employee.
// @Tags Employee
// @Accept json
// @Produce json
// @Param nas path string true "Employee NAS"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} response.Message "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{nas} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	nas := chi.URLParam(r, constant.RequestParamNAS)

	req := dto.UpdateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, nas); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee deletes an employee by their NAS.
// @Summary Delete an employee by NAS
// @Description Delete an employee not referenced by any rental.
// @Tags Employee
// @Accept json
// @Produce json
// @Param nas path string true "Employee NAS"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{nas} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	nas := chi.URLParam(r, constant.RequestParamNAS)

	if err := handler.service.Delete(ctx, nas); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
