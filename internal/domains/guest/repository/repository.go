package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/guest/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	ExistActiveOverlapTx(ctx context.Context, tx *sqlx.Tx, roomID string, checkin, checkout time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ExistActiveOverlapTx re-checks, inside the booking transaction, whether any
// active guest holds a stay on the room overlapping [checkin, checkout).
// Half-open comparison, so back-to-back stays on the same room pass.
func (repo *repositoryImpl) ExistActiveOverlapTx(ctx context.Context, tx *sqlx.Tx, roomID string, checkin, checkout time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ExistActiveOverlapTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s = $2 AND %s < $3 AND %s > $4)",
		model.TableName, model.FieldRoomID, model.FieldStatus, model.FieldCheckinAt, model.FieldCheckoutAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exists bool
	if err := tx.GetContext(ctx, &exists, query, roomID, model.StatusActive, checkout, checkin); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check overlapping stays (%s): %w", model.EntityName, err)
	}

	return exists, nil
}
