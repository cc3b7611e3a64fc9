package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/payment/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
