package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	guestModel "lodge/internal/domains/guest/model"
	paymentModel "lodge/internal/domains/payment/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/constant"
	"lodge/shared/logger"
)

const entityName = "dashboard"

// MisplacedGuest is an active guest whose assigned room is not flagged
// occupied.
type MisplacedGuest struct {
	guestModel.Guest
	RoomStatus string `db:"room_status"`
}

type Dashboard interface {
	RoomStatusCounts(ctx context.Context) (map[string]int, error)
	ActiveGuestCount(ctx context.Context) (int, error)
	PendingPayments(ctx context.Context) (count int, amount int64, err error)
	CheckinsBetween(ctx context.Context, from, to time.Time) (int, error)
	CheckoutsBetween(ctx context.Context, from, to time.Time) (int, error)
	OccupiedRoomsWithoutGuest(ctx context.Context) ([]roomModel.Room, error)
	MisplacedActiveGuests(ctx context.Context) ([]MisplacedGuest, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) RoomStatusCounts(ctx context.Context) (map[string]int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+entityName+".RoomStatusCounts")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s, COUNT(*) AS total FROM %s GROUP BY %s",
		roomModel.FieldStatus, roomModel.TableName, roomModel.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}

	if err := repo.db.Read.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	return counts, nil
}

func (repo *repositoryImpl) ActiveGuestCount(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+entityName+".ActiveGuestCount")
	defer scope.End()

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1",
		guestModel.TableName, guestModel.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int
	if err := repo.db.Read.GetContext(ctx, &count, query, guestModel.StatusActive); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count active guests: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) PendingPayments(ctx context.Context) (count int, amount int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+entityName+".PendingPayments")
	defer scope.End()

	query := fmt.Sprintf("SELECT COUNT(*) AS total, COALESCE(SUM(%s), 0) AS amount FROM %s WHERE %s = $1",
		paymentModel.FieldAmount, paymentModel.TableName, paymentModel.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var row struct {
		Total  int   `db:"total"`
		Amount int64 `db:"amount"`
	}

	if err := repo.db.Read.GetContext(ctx, &row, query, paymentModel.StatusPending); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, 0, fmt.Errorf("failed to sum pending payments: %w", err)
	}

	return row.Total, row.Amount, nil
}

func (repo *repositoryImpl) CheckinsBetween(ctx context.Context, from, to time.Time) (int, error) {
	return repo.countBetween(ctx, "CheckinsBetween", guestModel.FieldCheckinAt, from, to)
}

func (repo *repositoryImpl) CheckoutsBetween(ctx context.Context, from, to time.Time) (int, error) {
	return repo.countBetween(ctx, "CheckoutsBetween", guestModel.FieldCheckoutAt, from, to)
}

func (repo *repositoryImpl) countBetween(ctx context.Context, op, column string, from, to time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+entityName+"."+op)
	defer scope.End()

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s >= $1 AND %s < $2",
		guestModel.TableName, column, column)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int
	if err := repo.db.Read.GetContext(ctx, &count, query, from, to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count guests by %s: %w", column, err)
	}

	return count, nil
}

func (repo *repositoryImpl) OccupiedRoomsWithoutGuest(ctx context.Context) ([]roomModel.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+entityName+".OccupiedRoomsWithoutGuest")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT r.* FROM %s r WHERE r.%s = $1 AND NOT EXISTS (SELECT 1 FROM %s g WHERE g.%s = r.%s AND g.%s = $2)",
		roomModel.TableName, roomModel.FieldStatus,
		guestModel.TableName, guestModel.FieldRoomID, roomModel.FieldID, guestModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []roomModel.Room
	if err := repo.db.Read.SelectContext(ctx, &rooms, query, roomModel.StatusOccupied, guestModel.StatusActive); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find occupied rooms without guests: %w", err)
	}

	return rooms, nil
}

func (repo *repositoryImpl) MisplacedActiveGuests(ctx context.Context) ([]MisplacedGuest, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+entityName+".MisplacedActiveGuests")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT g.*, r.%s AS room_status FROM %s g JOIN %s r ON r.%s = g.%s WHERE g.%s = $1 AND r.%s <> $2",
		roomModel.FieldStatus,
		guestModel.TableName, roomModel.TableName, roomModel.FieldID, guestModel.FieldRoomID,
		guestModel.FieldStatus, roomModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var guests []MisplacedGuest
	if err := repo.db.Read.SelectContext(ctx, &guests, query, guestModel.StatusActive, roomModel.StatusOccupied); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find misplaced active guests: %w", err)
	}

	return guests, nil
}
