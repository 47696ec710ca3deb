package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	chainModel "lodge/internal/domains/chain/model"
	hotelModel "lodge/internal/domains/hotel/model"
	rentalModel "lodge/internal/domains/rental/model"
	reservationModel "lodge/internal/domains/reservation/model"
	"lodge/internal/domains/room/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
	"lodge/shared/stay"
)

// Room adds the availability search on top of the usual CRUD set. A
// room is available for a range when no rental and no blocking
// reservation touches any of its days, boundaries included.
type Room interface {
	Insert(ctx context.Context, room model.Room) error
	GetByNumber(ctx context.Context, number int) (model.Room, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Room, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	Update(ctx context.Context, room model.Room) error
	Delete(ctx context.Context, number int) error
	FindAvailable(ctx context.Context, query model.AvailabilityQuery) ([]model.AvailableRoom, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

func listFilterGroup(filter model.ListFilter) gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if filter.HotelID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Value:    filter.HotelID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if filter.Capacity > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Value:    filter.Capacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if filter.View != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldView,
			Value:    filter.View,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}

func (repo *repositoryImpl) Insert(ctx context.Context, room model.Room) error {
	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.InsertTx(ctx, tx, room); err != nil {
			return err
		}

		return repo.adjustHotelCount(ctx, tx, room.HotelID, 1)
	})
	if postgres.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return failure.Conflict("room number already in use")
	}

	return err
}

func (repo *repositoryImpl) GetByNumber(ctx context.Context, number int) (model.Room, error) {
	return repo.Get(ctx, shared.FilterByID(number, model.FieldNumber, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Room, error) {
	return repo.GetAll(ctx, params, listFilterGroup(filter))
}

func (repo *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return repo.Repository.Count(ctx, listFilterGroup(filter))
}

func (repo *repositoryImpl) Update(ctx context.Context, room model.Room) error {
	return repo.UpdateRow(ctx, room)
}

func (repo *repositoryImpl) Delete(ctx context.Context, number int) error {
	room, err := repo.GetByNumber(ctx, number)
	if err != nil {
		return err
	}

	if room.HotelID == constant.Empty {
		return failure.NotFound("room not found")
	}

	err = repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.DeleteTx(ctx, tx, shared.FilterByID(number, model.FieldNumber, model.TableName)); err != nil {
			return err
		}

		return repo.adjustHotelCount(ctx, tx, room.HotelID, -1)
	})
	if postgres.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return failure.Conflict("room still has reservations or rentals")
	}

	return err
}

// FindAvailable runs the search as a single query so the set of free
// rooms is consistent with the stays present at that instant.
func (repo *repositoryImpl) FindAvailable(ctx context.Context, query model.AvailabilityQuery) (rooms []model.AvailableRoom, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	conditions, args := availabilityConditions(query)

	sql := fmt.Sprintf(`
		SELECT
			rooms.number, rooms.hotel_id, rooms.price, rooms.capacity, rooms.area,
			rooms.view, rooms.amenities, rooms.extensible, rooms.image,
			hotels.name AS hotel_name, hotels.address AS hotel_address, hotels.stars,
			chains.name AS chain_name
		FROM %s
		JOIN %s ON hotels.id = rooms.hotel_id
		JOIN %s ON chains.id = hotels.chain_id
		WHERE %s
		ORDER BY rooms.price ASC, rooms.number ASC`,
		model.TableName, hotelModel.TableName, chainModel.TableName, strings.Join(conditions, "\n\t\t\tAND "))

	scope.SetAttribute(constant.OtelQueryAttributeKey, sql)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sql)
	if err != nil {
		logger.ErrorWithStack(err)

		return []model.AvailableRoom{}, nil
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)

		return []model.AvailableRoom{}, nil
	}

	if rooms == nil {
		rooms = []model.AvailableRoom{}
	}

	return rooms, nil
}

func availabilityConditions(query model.AvailabilityQuery) ([]string, map[string]any) {
	args := map[string]any{
		"start": query.Start,
		"end":   query.End,
	}

	conditions := []string{
		fmt.Sprintf(`NOT EXISTS (
			SELECT 1 FROM %s r
			WHERE r.room_number = rooms.number
			AND r.status IN ('%s')
			AND r.start_date <= :end AND r.end_date >= :start
		)`, reservationModel.TableName, strings.Join(reservationModel.BlockingStatuses, "', '")),
		fmt.Sprintf(`NOT EXISTS (
			SELECT 1 FROM %s t
			WHERE t.room_number = rooms.number
			AND t.start_date <= :end AND t.end_date >= :start
		)`, rentalModel.TableName),
	}

	if query.Location != "" {
		args["location"] = "%" + query.Location + "%"
		conditions = append(conditions, "LOWER(hotels.address) LIKE LOWER(:location)")
	}

	if query.Chain != "" {
		args["chain"] = "%" + query.Chain + "%"
		conditions = append(conditions, "LOWER(chains.name) LIKE LOWER(:chain)")
	}

	if query.Stars > 0 {
		args["stars"] = query.Stars
		conditions = append(conditions, "hotels.stars = :stars")
	}

	if query.Capacity > 0 {
		args["capacity"] = query.Capacity
		conditions = append(conditions, "rooms.capacity >= :capacity")
	}

	if query.View != "" {
		args["view"] = query.View
		conditions = append(conditions, "rooms.view = :view")
	}

	if query.PriceMin != nil {
		args["price_min"] = *query.PriceMin
		conditions = append(conditions, "rooms.price >= :price_min")
	}

	if query.PriceMax != nil {
		args["price_max"] = *query.PriceMax
		conditions = append(conditions, "rooms.price <= :price_max")
	}

	if query.AreaMin != nil {
		args["area_min"] = *query.AreaMin
		conditions = append(conditions, "rooms.area >= :area_min")
	}

	if query.AreaMax != nil {
		args["area_max"] = *query.AreaMax
		conditions = append(conditions, "rooms.area <= :area_max")
	}

	return conditions, args
}

func (repo *repositoryImpl) adjustHotelCount(ctx context.Context, tx *sqlx.Tx, hotelID string, delta int) error {
	query := fmt.Sprintf("UPDATE %s SET %s = %s + $1 WHERE %s = $2",
		hotelModel.TableName, hotelModel.FieldRoomCount, hotelModel.FieldRoomCount, hotelModel.FieldID)

	if _, err := tx.ExecContext(ctx, query, delta, hotelID); err != nil {
		return fmt.Errorf("failed to adjust hotel room count: %w", err)
	}

	return nil
}

// LockAndCheckFree takes a row lock on the room and reports whether the
// range is free of rentals and blocking reservations. Callers run it as
// the first step of any transaction that writes a stay.
func LockAndCheckFree(ctx context.Context, tx *sqlx.Tx, roomNumber int, start, end time.Time) error {
	lockQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE",
		model.FieldNumber, model.TableName, model.FieldNumber)

	var number int
	if err := tx.GetContext(ctx, &number, lockQuery, roomNumber); err != nil {
		return fmt.Errorf("failed to lock room %d: %w", roomNumber, err)
	}

	overlapQuery := fmt.Sprintf(`
		SELECT EXISTS(
			SELECT 1 FROM %s r
			WHERE r.room_number = $1
			AND r.status IN ('%s')
			AND r.start_date <= $3 AND r.end_date >= $2
		) OR EXISTS(
			SELECT 1 FROM %s t
			WHERE t.room_number = $1
			AND t.start_date <= $3 AND t.end_date >= $2
		)`, reservationModel.TableName, strings.Join(reservationModel.BlockingStatuses, "', '"), rentalModel.TableName)

	var taken bool
	if err := tx.GetContext(ctx, &taken, overlapQuery, roomNumber, start, end); err != nil {
		return fmt.Errorf("failed to check room %d availability: %w", roomNumber, err)
	}

	if taken {
		return stay.ErrOverlap
	}

	return nil
}
