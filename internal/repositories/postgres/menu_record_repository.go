package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kondate/internal/models"
)

type MenuRecordRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRecordRepository(pool *pgxpool.Pool) *MenuRecordRepository {
	return &MenuRecordRepository{pool: pool}
}

func (r *MenuRecordRepository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS menu_records (
            position   INT PRIMARY KEY,
            id         TEXT NOT NULL,
            name       TEXT NOT NULL,
            main_genre TEXT NOT NULL,
            carb       TEXT NOT NULL
        )
    `)
	return err
}

func (r *MenuRecordRepository) BulkCreate(ctx context.Context, records []models.MenuRecord) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_records"},
		[]string{"position", "id", "name", "main_genre", "carb"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			return []interface{}{
				i,
				records[i].ID,
				records[i].Name,
				string(records[i].MainGenre),
				string(records[i].Carb),
			}, nil
		}),
	)
	return err
}

// GetAll returns the catalog in its original source order. Enum fields are
// re-validated at the boundary so a hand-edited table cannot smuggle values
// past the closed vocabularies.
func (r *MenuRecordRepository) GetAll(ctx context.Context) ([]models.MenuRecord, error) {
	query := `
        SELECT name, main_genre, carb
        FROM menu_records
        ORDER BY position
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.MenuRecord{}
	for rows.Next() {
		var name, genreStr, carbStr string
		if err := rows.Scan(&name, &genreStr, &carbStr); err != nil {
			return nil, err
		}
		genre, err := models.ParseGenre(genreStr)
		if err != nil {
			return nil, fmt.Errorf("stored record %q: %w", name, err)
		}
		carb, err := models.ParseCarb(carbStr)
		if err != nil {
			return nil, fmt.Errorf("stored record %q: %w", name, err)
		}
		records = append(records, models.NewMenuRecord(name, genre, carb))
	}
	return records, rows.Err()
}

func (r *MenuRecordRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_records").Scan(&count)
	return count, err
}

func (r *MenuRecordRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_records")
	return err
}
