package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

const (
	noConfirmedBookingOverlap = `NOT EXISTS (
		SELECT 1 FROM bookings
		WHERE bookings.room_id = rooms.id
		AND bookings.status = 'confirmed'
		AND bookings.check_in_date < :check_out AND bookings.check_out_date > :check_in
	)`

	noActiveRentingOverlap = `NOT EXISTS (
		SELECT 1 FROM rentings
		WHERE rentings.room_id = rooms.id
		AND rentings.status = 'active'
		AND rentings.check_in_date < :check_out AND rentings.check_out_date > :check_in
	)`
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SearchAvailable(ctx context.Context, rng daterange.Range, req dto.SearchAvailableRequest) ([]model.AvailableRoom, error)
	HasBookingOverlap(ctx context.Context, roomID string, rng daterange.Range) (bool, error)
	HasRentingOverlap(ctx context.Context, roomID string, rng daterange.Range) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SearchAvailable returns undamaged rooms with no confirmed booking nor active
// renting overlapping the requested range, joined with their hotel and chain.
func (repo *repositoryImpl) SearchAvailable(ctx context.Context, rng daterange.Range, req dto.SearchAvailableRequest) ([]model.AvailableRoom, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.SearchAvailable")
	defer scope.End()

	conditions := []string{
		"rooms.damaged = FALSE",
		noConfirmedBookingOverlap,
		noActiveRentingOverlap,
	}

	args := map[string]any{
		"check_in":  rng.CheckIn,
		"check_out": rng.CheckOut,
	}

	if req.Capacity != nil {
		conditions = append(conditions, "rooms.capacity >= :capacity")
		args["capacity"] = *req.Capacity
	}

	if req.Area != constant.Empty {
		conditions = append(conditions, "(hotels.city ILIKE :area OR hotels.state ILIKE :area)")
		args["area"] = "%" + req.Area + "%"
	}

	if req.Chain != constant.Empty {
		conditions = append(conditions, "hotel_chains.name ILIKE :chain")
		args["chain"] = "%" + req.Chain + "%"
	}

	if req.Category != nil {
		conditions = append(conditions, "hotels.rating = :category")
		args["category"] = *req.Category
	}

	if req.MinPrice != nil {
		conditions = append(conditions, "rooms.price >= :min_price")
		args["min_price"] = *req.MinPrice
	}

	if req.MaxPrice != nil {
		conditions = append(conditions, "rooms.price <= :max_price")
		args["max_price"] = *req.MaxPrice
	}

	switch req.View {
	case "sea":
		conditions = append(conditions, "rooms.sea_view = TRUE")
	case "mountain":
		conditions = append(conditions, "rooms.mountain_view = TRUE")
	}

	query := fmt.Sprintf(`SELECT
		rooms.id, rooms.hotel_id, hotels.name AS hotel_name, hotels.rating AS hotel_rating,
		hotels.city AS hotel_city, hotel_chains.name AS chain_name,
		rooms.room_number, rooms.floor, rooms.capacity, rooms.price,
		rooms.sea_view, rooms.mountain_view, rooms.extendable,
		rooms.amenities, rooms.description, rooms.image
	FROM rooms
	JOIN hotels ON hotels.id = rooms.hotel_id
	LEFT JOIN hotel_chains ON hotel_chains.id = hotels.chain_id
	WHERE %s
	ORDER BY rooms.price ASC, rooms.id ASC`, strings.Join(conditions, " AND "))

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.AvailableRoom

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to search available rooms: %w", err)
	}

	return rooms, nil
}

// HasBookingOverlap reports whether any confirmed booking on the room
// intersects the half-open range.
func (repo *repositoryImpl) HasBookingOverlap(ctx context.Context, roomID string, rng daterange.Range) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.HasBookingOverlap")
	defer scope.End()

	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE room_id = :room_id
		AND status = 'confirmed'
		AND ` + daterange.OverlapCondition + `
	)`

	return repo.existsOverlap(ctx, scope, query, roomID, rng)
}

// HasRentingOverlap reports whether any active renting on the room intersects
// the half-open range.
func (repo *repositoryImpl) HasRentingOverlap(ctx context.Context, roomID string, rng daterange.Range) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.HasRentingOverlap")
	defer scope.End()

	query := `SELECT EXISTS(
		SELECT 1 FROM rentings
		WHERE room_id = :room_id
		AND status = 'active'
		AND ` + daterange.OverlapCondition + `
	)`

	return repo.existsOverlap(ctx, scope, query, roomID, rng)
}

func (repo *repositoryImpl) existsOverlap(ctx context.Context, scope otel.Scope, query, roomID string, rng daterange.Range) (bool, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":   roomID,
		"check_in":  rng.CheckIn,
		"check_out": rng.CheckOut,
	}

	exists := false

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &exists, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check overlap: %w", err)
	}

	return exists, nil
}
