package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepository "lodge/internal/domains/customer/repository"
	hotelModel "lodge/internal/domains/hotel/model"
	hotelRepository "lodge/internal/domains/hotel/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (string, error)
	ListByCustomer(ctx context.Context, customerID string) (dto.GetCustomerBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepository.Customer
	hotelRepo    hotelRepository.Hotel
	roomRepo     roomRepository.Room
	kafkaClient  kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	customerRepo customerRepository.Customer,
	hotelRepo hotelRepository.Hotel,
	roomRepo roomRepository.Room,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		hotelRepo:    hotelRepo,
		roomRepo:     roomRepo,
		kafkaClient:  kafkaClient,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyEmployeeSSN).(string)
	if user == constant.Empty {
		user = req.CustomerID
	}

	rng, err := daterange.Parse(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
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

	booking := req.ToModel(rng, user)

	if err = s.repo.InsertChecked(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, constant.EventBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

// Cancel flips a confirmed booking to cancelled. Cancelling a booking that
// is already in a terminal state is a no-op answered with a message, not an
// error.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (message string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyEmployeeSSN).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return message, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return message, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	switch booking.Status {
	case model.StatusCancelled:
		return "Booking already cancelled", nil
	case model.StatusCompleted:
		return "Booking already completed", nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return message, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.publishEvent(ctx, constant.EventBookingCancelled, booking)

	return "Booking cancelled successfully", nil
}

func (s *serviceImpl) ListByCustomer(ctx context.Context, customerID string) (res dto.GetCustomerBookingsResponse, err error) {
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

	bookings, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings by customer")

		return res, fmt.Errorf("failed to list bookings by customer: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingEvent{
			Type:         eventType,
			BookingID:    booking.ID,
			CustomerID:   booking.CustomerID,
			HotelID:      booking.HotelID,
			RoomID:       booking.RoomID,
			CheckInDate:  timezone.Format(booking.CheckInDate, constant.CalendarDateFormat),
			CheckOutDate: timezone.Format(booking.CheckOutDate, constant.CalendarDateFormat),
			OccurredAt:   timezone.Now().Format(constant.DateFormat),
		}

		if err := s.kafkaClient.SendMessages(c, constant.KafkaTopicStayEvents, kafka.Message{
			Key:   booking.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Str("event", eventType).Msg("failed to publish booking event")
		}
	}()
}
