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
		routerGroup.Get("/{ssn}", handler.GetEmployeeBySSN)
		routerGroup.Put("/{ssn}", handler.UpdateEmployee)
		routerGroup.Put("/{ssn}/password", handler.UpdateEmployeePassword)
		routerGroup.Delete("/{ssn}", handler.DeleteEmployee)
	})
}

// CreateEmployee registers a new employee.
// @Summary Create a new employee
// @Tags Employee
// @Accept json
// @Produce json
// @Success 201 {object} response.Message "Employee created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	var req dto.CreateEmployeeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Employee created successfully")
}

// GetEmployees retrieves all employees with optional filtering and pagination.
// @Summary Get all employees
// @Tags Employee
// @Produce json
// @Param role query string false "Filter by role"
// @Param hotel_id query string false "Filter by hotel"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if role := r.URL.Query().Get(model.FieldRole); role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if hotelID := r.URL.Query().Get(model.FieldHotelID); hotelID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Operator: gDto.FilterOperatorEq,
			Value:    hotelID,
			Table:    model.TableName,
		})
	}

	employees, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeBySSN retrieves an employee by its SSN.
// @Summary Get an employee by SSN
// @Tags Employee
// @Produce json
// @Param ssn path string true "Employee SSN"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 404 {object} response.Error
// @Router /v1/employees/{ssn} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeBySSN(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeBySSN")
	defer scope.End()

	ssn := chi.URLParam(r, constant.RequestParamSSN)

	employee, err := handler.service.Get(ctx, ssn)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by SSN")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee.
// @Summary Update an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param ssn path string true "Employee SSN"
// @Success 200 {object} response.Message "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/employees/{ssn} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	ssn := chi.URLParam(r, constant.RequestParamSSN)

	var req dto.UpdateEmployeeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, ssn); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// UpdateEmployeePassword replaces an employee's password.
// @Summary Update an employee's password
// @Tags Employee
// @Accept json
// @Produce json
// @Param ssn path string true "Employee SSN"
// @Success 200 {object} response.Message "Password updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/employees/{ssn}/password [put]
// @Security BearerAuth
func (handler *Handler) UpdateEmployeePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployeePassword")
	defer scope.End()

	ssn := chi.URLParam(r, constant.RequestParamSSN)

	var req dto.UpdateEmployeePasswordRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePassword(ctx, req, ssn); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password updated successfully")
}

// DeleteEmployee deletes an employee by its SSN.
// @Summary Delete an employee
// @Tags Employee
// @Produce json
// @Param ssn path string true "Employee SSN"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/employees/{ssn} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	ssn := chi.URLParam(r, constant.RequestParamSSN)

	if err := handler.service.Delete(ctx, ssn); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
