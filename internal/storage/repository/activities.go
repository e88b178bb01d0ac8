package repository

import (
	"context"
	"fmt"

	"github.com/pricexhq/pricex/internal/models"
)

// CreateActivity вставляет новую запись истории и возвращает её ID.
func (s *Storage) CreateActivity(ctx context.Context, rec models.ActivityRecord) (int64, error) {
	const op = "repository.CreateActivity"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO activities (username, occurred_at, product, kind,
			      result_summary, notes)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		rec.Username, rec.OccurredAt, rec.Product, rec.Kind,
		rec.ResultSummary, rec.Notes).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListActivities возвращает записи истории пользователя, новые раньше старых.
// Фильтрация по виду активности и подстроке в названии продукта опциональна.
func (s *Storage) ListActivities(ctx context.Context, username string, filter models.ActivityFilter) ([]*models.ActivityRecord, error) {
	const op = "repository.ListActivities"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, occurred_at, product, kind, result_summary, notes
			  FROM activities
			  WHERE username = $1
			    AND ($2 = '' OR kind = $2)
			    AND ($3 = '' OR product ILIKE '%' || $3 || '%')
			  ORDER BY occurred_at DESC
			  LIMIT $4 OFFSET $5`
	rows, err := s.DB.QueryContext(ctx, query,
		username, filter.Kind, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.ActivityRecord
	for rows.Next() {
		rec := &models.ActivityRecord{}
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.OccurredAt, &rec.Product,
			&rec.Kind, &rec.ResultSummary, &rec.Notes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveActivity удаляет запись истории пользователя по ID
// и возвращает количество удалённых записей.
func (s *Storage) RemoveActivity(ctx context.Context, username string, id int64) (int64, error) {
	const op = "repository.RemoveActivity"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM activities WHERE id = $1 AND username = $2`
	res, err := s.DB.ExecContext(ctx, query, id, username)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}
