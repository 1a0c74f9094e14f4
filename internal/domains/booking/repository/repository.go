package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

// ErrRoomUnavailable is returned when the serialized re-check inside the
// insert transaction finds a conflicting stay.
var ErrRoomUnavailable = errors.New("room is not available for the requested dates")

const lockRoomQuery = "SELECT id FROM rooms WHERE id = $1 FOR UPDATE"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertChecked(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListByCustomer(ctx context.Context, customerID string) ([]model.BookingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertChecked inserts the booking inside a transaction that locks the room
// row and re-checks both overlap tables, closing the race between the
// service-level availability check and the write.
func (repo *repositoryImpl) InsertChecked(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertChecked")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var lockedID string
	if err = tx.GetContext(ctx, &lockedID, lockRoomQuery, booking.RoomID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	rng := daterange.New(booking.CheckInDate, booking.CheckOutDate)

	free, err := roomFreeTx(ctx, tx, booking.RoomID, rng)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	if !free {
		return ErrRoomUnavailable
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		scope.TraceError(err)

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// roomFreeTx re-checks both overlap tables under the row lock.
func roomFreeTx(ctx context.Context, tx sqlx.QueryerContext, roomID string, rng daterange.Range) (bool, error) {
	bookingQuery := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE room_id = $1 AND status = 'confirmed'
		AND check_in_date < $3 AND check_out_date > $2
	)`

	var bookingOverlap bool
	if err := sqlx.GetContext(ctx, tx, &bookingOverlap, bookingQuery, roomID, rng.CheckIn, rng.CheckOut); err != nil {
		return false, fmt.Errorf("failed to re-check booking overlap: %w", err)
	}

	if bookingOverlap {
		return false, nil
	}

	rentingQuery := `SELECT EXISTS(
		SELECT 1 FROM rentings
		WHERE room_id = $1 AND status = 'active'
		AND check_in_date < $3 AND check_out_date > $2
	)`

	var rentingOverlap bool
	if err := sqlx.GetContext(ctx, tx, &rentingOverlap, rentingQuery, roomID, rng.CheckIn, rng.CheckOut); err != nil {
		return false, fmt.Errorf("failed to re-check renting overlap: %w", err)
	}

	return !rentingOverlap, nil
}

// ListByCustomer returns the customer's bookings joined with room and hotel
// columns, newest first.
func (repo *repositoryImpl) ListByCustomer(ctx context.Context, customerID string) ([]model.BookingDetail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListByCustomer")
	defer scope.End()

	query := `SELECT
		bookings.id, bookings.customer_id, bookings.hotel_id, hotels.name AS hotel_name,
		bookings.room_id, rooms.room_number, rooms.price AS room_price,
		bookings.check_in_date, bookings.check_out_date, bookings.booking_date, bookings.status
	FROM bookings
	JOIN rooms ON rooms.id = bookings.room_id
	JOIN hotels ON hotels.id = bookings.hotel_id
	WHERE bookings.customer_id = $1
	ORDER BY bookings.booking_date DESC, bookings.id`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.BookingDetail

	if err := repo.db.Read.SelectContext(ctx, &bookings, query, customerID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to list bookings by customer: %w", err)
	}

	return bookings, nil
}
