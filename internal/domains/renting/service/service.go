package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepository "lodge/internal/domains/booking/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepository "lodge/internal/domains/customer/repository"
	employeeModel "lodge/internal/domains/employee/model"
	employeeRepository "lodge/internal/domains/employee/repository"
	hotelModel "lodge/internal/domains/hotel/model"
	hotelRepository "lodge/internal/domains/hotel/repository"
	"lodge/internal/domains/renting/model"
	"lodge/internal/domains/renting/model/dto"
	"lodge/internal/domains/renting/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type Renting interface {
	ConvertFromBooking(ctx context.Context, req dto.ConvertBookingRequest) (dto.RentingResponse, error)
	CreateDirect(ctx context.Context, req dto.CreateDirectRentingRequest) (dto.RentingResponse, error)
	Complete(ctx context.Context, id string) (string, error)
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, rentingID string) (dto.RecordPaymentResponse, error)
	ListPayments(ctx context.Context, rentingID string) (dto.GetRentingPaymentsResponse, error)
	ListByCustomer(ctx context.Context, customerID string) (dto.GetCustomerRentingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Renting
	bookingRepo  bookingRepository.Booking
	customerRepo customerRepository.Customer
	hotelRepo    hotelRepository.Hotel
	roomRepo     roomRepository.Room
	employeeRepo employeeRepository.Employee
	kafkaClient  kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Renting,
	bookingRepo bookingRepository.Booking,
	customerRepo customerRepository.Customer,
	hotelRepo hotelRepository.Hotel,
	roomRepo roomRepository.Room,
	employeeRepo employeeRepository.Employee,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Renting {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		hotelRepo:    hotelRepo,
		roomRepo:     roomRepo,
		employeeRepo: employeeRepo,
		kafkaClient:  kafkaClient,
		cfg:          cfg,
		otel:         otel,
	}
}

// ConvertFromBooking turns a confirmed booking into an active renting at
// check-in. Preconditions run in a fixed order so each failure mode answers
// distinctly; the write itself re-checks everything under the room row lock.
func (s *serviceImpl) ConvertFromBooking(ctx context.Context, req dto.ConvertBookingRequest) (res dto.RentingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConvertFromBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	employeeSSN, err := s.resolveEmployee(ctx, req.EmployeeSSN)
	if err != nil {
		return res, err
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusConfirmed {
		return res, failure.BadRequestFromString("booking is not confirmed") // nolint:wrapcheck
	}

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(booking.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(booking.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	roomExists := room.ID != constant.Empty

	if !customerExists || !hotelExists || !roomExists {
		return res, failure.BadRequestWithDetails("referenced entities do not exist", map[string]bool{ // nolint:wrapcheck
			"customerExists": customerExists,
			"hotelExists":    hotelExists,
			"roomExists":     roomExists,
		})
	}

	// The booking's own dates do not block conversion: availability is judged
	// against active rentings only.
	rng := daterange.New(booking.CheckInDate, booking.CheckOutDate)

	rentingOverlap, err := s.roomRepo.HasRentingOverlap(ctx, booking.RoomID, rng)
	if err != nil {
		log.Error().Err(err).Msg("failed to check renting overlap")

		return res, fmt.Errorf("failed to check renting overlap: %w", err)
	}

	if rentingOverlap {
		return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	totalPrice := float64(rng.Nights()) * room.Price

	renting := model.Renting{
		ID:           uuid.NewString(),
		CustomerID:   booking.CustomerID,
		HotelID:      booking.HotelID,
		RoomID:       booking.RoomID,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		EmployeeSSN:  employeeSSN,
		Status:       model.StatusActive,
		TotalPrice:   &totalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  employeeSSN,
			ModifiedBy: employeeSSN,
		},
	}

	transform := model.Transform{
		ID:          uuid.NewString(),
		RentingID:   renting.ID,
		BookingID:   booking.ID,
		CheckInDate: booking.CheckInDate,
		EmployeeSSN: employeeSSN,
		CreatedAt:   timezone.Now(),
	}

	if err = s.repo.ConvertFromBooking(ctx, renting, transform); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomUnavailable):
			return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
		case errors.Is(err, repository.ErrBookingNotConfirmed):
			return res, failure.Conflict("booking was converted or cancelled concurrently") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to convert booking to renting")

		return res, fmt.Errorf("failed to convert booking to renting: %w", err)
	}

	s.publishEvent(ctx, constant.EventRentingCreated, renting, booking.ID, nil)

	res.FromModel(renting)

	return res, nil
}

// CreateDirect checks a walk-in customer straight into a room, creating the
// customer row in the same transaction when inline fields are given.
func (s *serviceImpl) CreateDirect(ctx context.Context, req dto.CreateDirectRentingRequest) (res dto.RentingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDirect")
	defer scope.End()
	defer scope.TraceIfError(err)

	employeeSSN, err := s.resolveEmployee(ctx, req.EmployeeSSN)
	if err != nil {
		return res, err
	}

	rng, err := daterange.Parse(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	var inlineCustomer *customerModel.Customer
	customerID := req.CustomerID

	switch {
	case customerID != constant.Empty:
		exists, err := s.customerRepo.Exist(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if customer exists")

			return res, fmt.Errorf("failed to check if customer exists: %w", err)
		}

		if !exists {
			return res, failure.BadRequestFromString("customer does not exist") // nolint:wrapcheck
		}
	case req.Customer != nil:
		customer := req.Customer.ToModel(employeeSSN)
		inlineCustomer = &customer
		customerID = customer.ID
	default:
		return res, failure.BadRequestFromString("customer_id or customer is required") // nolint:wrapcheck
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return res, failure.BadRequestFromString("hotel does not exist") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Damaged {
		return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	bookingOverlap, err := s.roomRepo.HasBookingOverlap(ctx, req.RoomID, rng)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return res, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	rentingOverlap := false
	if !bookingOverlap {
		rentingOverlap, err = s.roomRepo.HasRentingOverlap(ctx, req.RoomID, rng)
		if err != nil {
			log.Error().Err(err).Msg("failed to check renting overlap")

			return res, fmt.Errorf("failed to check renting overlap: %w", err)
		}
	}

	if bookingOverlap || rentingOverlap {
		return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	totalPrice := float64(rng.Nights()) * room.Price

	renting := model.Renting{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		HotelID:      req.HotelID,
		RoomID:       req.RoomID,
		CheckInDate:  rng.CheckIn,
		CheckOutDate: rng.CheckOut,
		EmployeeSSN:  employeeSSN,
		Status:       model.StatusActive,
		TotalPrice:   &totalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  employeeSSN,
			ModifiedBy: employeeSSN,
		},
	}

	if err = s.repo.CreateDirect(ctx, renting, inlineCustomer); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create direct renting")

		return res, fmt.Errorf("failed to create direct renting: %w", err)
	}

	s.publishEvent(ctx, constant.EventRentingCreated, renting, constant.Empty, nil)

	res.FromModel(renting)

	return res, nil
}

// Complete marks an active renting completed at check-out. Completing an
// already completed renting is a no-op answered with a message, not an error.
func (s *serviceImpl) Complete(ctx context.Context, id string) (message string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyEmployeeSSN).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	renting, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get renting")

		return message, fmt.Errorf("failed to get renting: %w", err)
	}

	if renting.ID == constant.Empty {
		return message, failure.NotFound("renting not found") // nolint:wrapcheck
	}

	if renting.Status == model.StatusCompleted {
		return "Renting already completed", nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCompleted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to complete renting")

		return message, fmt.Errorf("failed to complete renting: %w", err)
	}

	s.publishEvent(ctx, constant.EventRentingCompleted, renting, constant.Empty, nil)

	return "Renting completed successfully", nil
}

// RecordPayment appends a payment against the renting. Payments are never
// reconciled against the total price here: the running sum is surfaced on
// reads and settling is front-desk policy.
func (s *serviceImpl) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, rentingID string) (res dto.RecordPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	employeeSSN, err := s.resolveEmployee(ctx, req.EmployeeSSN)
	if err != nil {
		return res, err
	}

	renting, err := s.repo.Get(ctx, shared.FilterByID(rentingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get renting")

		return res, fmt.Errorf("failed to get renting: %w", err)
	}

	if renting.ID == constant.Empty {
		return res, failure.NotFound("renting not found") // nolint:wrapcheck
	}

	payment := model.Payment{
		ID:            uuid.NewString(),
		RentingID:     rentingID,
		Amount:        req.Amount,
		Method:        req.Method,
		EmployeeSSN:   employeeSSN,
		ReceiptNumber: newReceiptNumber(),
		PaidAt:        timezone.Now(),
	}

	if err = s.repo.InsertPayment(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	s.publishEvent(ctx, constant.EventPaymentRecorded, renting, constant.Empty, &payment.Amount)

	res.ID = payment.ID
	res.ReceiptNumber = payment.ReceiptNumber

	return res, nil
}

func (s *serviceImpl) ListPayments(ctx context.Context, rentingID string) (res dto.GetRentingPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(rentingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if renting exists")

		return res, fmt.Errorf("failed to check if renting exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("renting not found") // nolint:wrapcheck
	}

	payments, err := s.repo.ListPaymentsByRenting(ctx, rentingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list payments")

		return res, fmt.Errorf("failed to list payments: %w", err)
	}

	res.FromModels(payments)

	return res, nil
}

func (s *serviceImpl) ListByCustomer(ctx context.Context, customerID string) (res dto.GetCustomerRentingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !customerExists {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	rentings, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rentings by customer")

		return res, fmt.Errorf("failed to list rentings by customer: %w", err)
	}

	res.FromModels(rentings)

	return res, nil
}

// resolveEmployee picks the request's employee SSN, falling back to the
// authenticated employee, and requires the employee to exist.
func (s *serviceImpl) resolveEmployee(ctx context.Context, requestSSN string) (string, error) {
	employeeSSN := requestSSN
	if employeeSSN == constant.Empty {
		employeeSSN, _ = ctx.Value(constant.ContextKeyEmployeeSSN).(string)
	}

	exists, err := s.employeeRepo.Exist(ctx, shared.FilterByID(employeeSSN, employeeModel.FieldSSN, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return constant.Empty, fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exists {
		return constant.Empty, failure.NotFound("employee not found") // nolint:wrapcheck
	}

	return employeeSSN, nil
}

func newReceiptNumber() string {
	return "RCPT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, renting model.Renting, bookingID string, amount *float64) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.RentingEvent{
			Type:         eventType,
			RentingID:    renting.ID,
			BookingID:    bookingID,
			CustomerID:   renting.CustomerID,
			HotelID:      renting.HotelID,
			RoomID:       renting.RoomID,
			EmployeeSSN:  renting.EmployeeSSN,
			CheckInDate:  timezone.Format(renting.CheckInDate, constant.CalendarDateFormat),
			CheckOutDate: timezone.Format(renting.CheckOutDate, constant.CalendarDateFormat),
			TotalPrice:   renting.TotalPrice,
			Amount:       amount,
			OccurredAt:   timezone.Now().Format(constant.DateFormat),
		}

		if err := s.kafkaClient.SendMessages(c, constant.KafkaTopicStayEvents, kafka.Message{
			Key:   renting.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Str("event", eventType).Msg("failed to publish renting event")
		}
	}()
}
