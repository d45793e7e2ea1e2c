package repositories

import (
	"context"

	"kondate/internal/models"
)

type MenuRecordRepository interface {
	Init(ctx context.Context) error
	BulkCreate(ctx context.Context, records []models.MenuRecord) error
	GetAll(ctx context.Context) ([]models.MenuRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
