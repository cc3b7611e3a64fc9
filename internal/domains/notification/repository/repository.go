package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/notification/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type NotificationLog interface {
	Insert(ctx context.Context, model model.NotificationLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.NotificationLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.NotificationLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.NotificationLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) NotificationLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.NotificationLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
