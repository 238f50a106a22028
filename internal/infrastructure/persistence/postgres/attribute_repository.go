package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

// AttributeRepository is a key/value store scoped by entity group and id.
type AttributeRepository struct {
	q Executor
}

func NewAttributeRepository(db *DB) *AttributeRepository {
	return &AttributeRepository{q: db.Pool}
}

// GetAttribute returns "" for an absent key.
func (r *AttributeRepository) GetAttribute(ctx context.Context, ref domain.EntityRef, key string) (string, error) {
	query := `
		SELECT value FROM generic_attributes
		WHERE key_group = $1 AND entity_id = $2 AND key = $3
	`

	var value string
	err := r.q.QueryRow(ctx, query, ref.Group, ref.ID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get attribute %s: %w", key, err)
	}
	return value, nil
}

// SetAttribute upserts the value. An empty value removes the key.
func (r *AttributeRepository) SetAttribute(ctx context.Context, ref domain.EntityRef, key, value string) error {
	if value == "" {
		_, err := r.q.Exec(ctx, `
			DELETE FROM generic_attributes
			WHERE key_group = $1 AND entity_id = $2 AND key = $3
		`, ref.Group, ref.ID, key)
		if err != nil {
			return fmt.Errorf("delete attribute %s: %w", key, err)
		}
		return nil
	}

	query := `
		INSERT INTO generic_attributes (key_group, entity_id, key, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key_group, entity_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.q.Exec(ctx, query, ref.Group, ref.ID, key, value); err != nil {
		return fmt.Errorf("set attribute %s: %w", key, err)
	}
	return nil
}

// FindEntityIDsWithAttribute pages through entity ids in ascending order that carry key.
func (r *AttributeRepository) FindEntityIDsWithAttribute(ctx context.Context, group, key string, afterID int64, limit int) ([]int64, error) {
	query := `
		SELECT entity_id FROM generic_attributes
		WHERE key_group = $1 AND key = $2 AND entity_id > $3
		ORDER BY entity_id
		LIMIT $4
	`

	rows, err := r.q.Query(ctx, query, group, key, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("query entities with attribute %s: %w", key, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("collect entity ids: %w", err)
	}
	return ids, nil
}
