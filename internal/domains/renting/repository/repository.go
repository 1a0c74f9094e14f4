package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	bookingModel "lodge/internal/domains/booking/model"
	customerModel "lodge/internal/domains/customer/model"
	"lodge/internal/domains/renting/model"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

var (
	// ErrRoomUnavailable is returned when the serialized re-check inside a
	// renting transaction finds a conflicting stay.
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")

	// ErrBookingNotConfirmed is returned when the locked booking row is no
	// longer confirmed, meaning a concurrent converter or cancel won.
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
)

const (
	lockRoomQuery    = "SELECT id FROM rooms WHERE id = $1 FOR UPDATE"
	lockBookingQuery = "SELECT status FROM bookings WHERE id = $1 FOR UPDATE"

	completeBookingQuery = "UPDATE bookings SET status = $2, modified_at = NOW(), modified_by = $3 WHERE id = $1"
)

type Renting interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Renting, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Renting, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ConvertFromBooking(ctx context.Context, renting model.Renting, transform model.Transform) error
	CreateDirect(ctx context.Context, renting model.Renting, customer *customerModel.Customer) error
	InsertPayment(ctx context.Context, payment model.Payment) error
	ListPaymentsByRenting(ctx context.Context, rentingID string) ([]model.PaymentDetail, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.RentingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Renting]
	transformRepo gRepo.Repository[model.Transform]
	paymentRepo   gRepo.Repository[model.Payment]
	customerRepo  gRepo.Repository[customerModel.Customer]
	db            *postgres.Connection
	otel          otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Renting {
	return &repositoryImpl{
		Repository:    gRepo.NewRepository[model.Renting](model.EntityName, model.TableName, model.FieldID, db, otel),
		transformRepo: gRepo.NewRepository[model.Transform](model.TransformEntityName, model.TransformTableName, model.FieldID, db, otel),
		paymentRepo:   gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.PaymentFieldID, db, otel),
		customerRepo:  gRepo.NewRepository[customerModel.Customer](customerModel.EntityName, customerModel.TableName, customerModel.FieldID, db, otel),
		db:            db,
		otel:          otel,
	}
}

// ConvertFromBooking runs the three-write transition in one transaction: the
// room row is locked, the booking is locked and re-checked for confirmed
// status, the overlap re-check runs against active rentings only (the booking
// excludes itself by definition), then the renting is inserted, the booking
// completed and the transform link recorded. Any failure rolls back all three.
func (repo *repositoryImpl) ConvertFromBooking(ctx context.Context, renting model.Renting, transform model.Transform) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.ConvertFromBooking")
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
	if err = tx.GetContext(ctx, &lockedID, lockRoomQuery, renting.RoomID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	var bookingStatus string
	if err = tx.GetContext(ctx, &bookingStatus, lockBookingQuery, transform.BookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock booking row: %w", err)
	}

	if bookingStatus != bookingModel.StatusConfirmed {
		return ErrBookingNotConfirmed
	}

	rng := daterange.New(renting.CheckInDate, renting.CheckOutDate)

	overlap, err := activeRentingOverlapTx(ctx, tx, renting.RoomID, rng)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	if overlap {
		return ErrRoomUnavailable
	}

	if err = repo.InsertTx(ctx, tx, renting); err != nil {
		scope.TraceError(err)

		return err
	}

	if _, err = tx.ExecContext(ctx, completeBookingQuery, transform.BookingID, bookingModel.StatusCompleted, renting.EmployeeSSN); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to complete booking: %w", err)
	}

	if err = repo.transformRepo.InsertTx(ctx, tx, transform); err != nil {
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

// CreateDirect inserts a walk-in renting, creating the inline customer in the
// same transaction when given. The overlap re-check runs against confirmed
// bookings and active rentings under the room row lock.
func (repo *repositoryImpl) CreateDirect(ctx context.Context, renting model.Renting, customer *customerModel.Customer) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.CreateDirect")
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

	if customer != nil {
		if err = repo.customerRepo.InsertTx(ctx, tx, *customer); err != nil {
			scope.TraceError(err)

			return err
		}
	}

	var lockedID string
	if err = tx.GetContext(ctx, &lockedID, lockRoomQuery, renting.RoomID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	rng := daterange.New(renting.CheckInDate, renting.CheckOutDate)

	free, err := roomFreeTx(ctx, tx, renting.RoomID, rng)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	if !free {
		return ErrRoomUnavailable
	}

	if err = repo.InsertTx(ctx, tx, renting); err != nil {
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

func (repo *repositoryImpl) InsertPayment(ctx context.Context, payment model.Payment) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.InsertPayment")
	defer scope.End()

	return repo.paymentRepo.Insert(ctx, payment) //nolint:wrapcheck
}

// ListPaymentsByRenting returns the renting's payments joined with the
// recording employee's name, oldest first.
func (repo *repositoryImpl) ListPaymentsByRenting(ctx context.Context, rentingID string) ([]model.PaymentDetail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.ListPaymentsByRenting")
	defer scope.End()

	query := `SELECT
		payments.id, payments.renting_id, payments.amount, payments.method,
		payments.employee_ssn, employees.first_name AS employee_first_name,
		employees.last_name AS employee_last_name, payments.receipt_number, payments.paid_at
	FROM payments
	JOIN employees ON employees.ssn = payments.employee_ssn
	WHERE payments.renting_id = $1
	ORDER BY payments.paid_at ASC, payments.id`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var payments []model.PaymentDetail

	if err := repo.db.Read.SelectContext(ctx, &payments, query, rentingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return payments, fmt.Errorf("failed to list payments by renting: %w", err)
	}

	return payments, nil
}

// ListByCustomer returns the customer's rentings joined with room and hotel
// columns plus the amount_paid sum, newest first.
func (repo *repositoryImpl) ListByCustomer(ctx context.Context, customerID string) ([]model.RentingDetail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.ListByCustomer")
	defer scope.End()

	query := `SELECT
		rentings.id, rentings.customer_id, rentings.hotel_id, hotels.name AS hotel_name,
		rentings.room_id, rooms.room_number, rentings.check_in_date, rentings.check_out_date,
		rentings.employee_ssn, rentings.status, rentings.total_price,
		COALESCE((SELECT SUM(payments.amount) FROM payments WHERE payments.renting_id = rentings.id), 0) AS amount_paid
	FROM rentings
	JOIN rooms ON rooms.id = rentings.room_id
	JOIN hotels ON hotels.id = rentings.hotel_id
	WHERE rentings.customer_id = $1
	ORDER BY rentings.check_in_date DESC, rentings.id`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rentings []model.RentingDetail

	if err := repo.db.Read.SelectContext(ctx, &rentings, query, customerID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rentings, fmt.Errorf("failed to list rentings by customer: %w", err)
	}

	return rentings, nil
}

func activeRentingOverlapTx(ctx context.Context, tx sqlx.QueryerContext, roomID string, rng daterange.Range) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM rentings
		WHERE room_id = $1 AND status = 'active'
		AND check_in_date < $3 AND check_out_date > $2
	)`

	var overlap bool
	if err := sqlx.GetContext(ctx, tx, &overlap, query, roomID, rng.CheckIn, rng.CheckOut); err != nil {
		return false, fmt.Errorf("failed to re-check renting overlap: %w", err)
	}

	return overlap, nil
}

func roomFreeTx(ctx context.Context, tx sqlx.QueryerContext, roomID string, rng daterange.Range) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE room_id = $1 AND status = 'confirmed'
		AND check_in_date < $3 AND check_out_date > $2
	)`

	var bookingOverlap bool
	if err := sqlx.GetContext(ctx, tx, &bookingOverlap, query, roomID, rng.CheckIn, rng.CheckOut); err != nil {
		return false, fmt.Errorf("failed to re-check booking overlap: %w", err)
	}

	if bookingOverlap {
		return false, nil
	}

	rentingOverlap, err := activeRentingOverlapTx(ctx, tx, roomID, rng)
	if err != nil {
		return false, err
	}

	return !rentingOverlap, nil
}
