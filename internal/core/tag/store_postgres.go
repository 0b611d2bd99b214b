package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lingohq/lingo/internal/platform/database/schema"
	"github.com/lingohq/lingo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreate relies on the unique index on name: the DO UPDATE arm turns a
// conflicting insert into a no-op write so RETURNING always yields the row,
// whichever concurrent caller created it.
func (repository *PostgresRepository) GetOrCreate(context context.Context, name string) (*Tag, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s, %s, %s
	`,
		schema.Tag.Table, schema.Tag.Name,
		schema.Tag.Name, schema.Tag.Name, schema.Tag.Name,
		schema.Tag.ID, schema.Tag.Name, schema.Tag.CreatedAt,
	)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, name).Scan(&t.ID, &t.Name, &t.CreatedAt)
	return t, dberr.Wrap(err, "get_or_create_tag")
}

func (repository *PostgresRepository) GetByName(context context.Context, name string) (*Tag, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Tag.ID, schema.Tag.Name, schema.Tag.CreatedAt,
		schema.Tag.Table, schema.Tag.Name,
	)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, name).Scan(&t.ID, &t.Name, &t.CreatedAt)
	return t, dberr.Wrap(err, "get_tag")
}

func (repository *PostgresRepository) ListTags(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Tag.ID, schema.Tag.Name, schema.Tag.CreatedAt,
		schema.Tag.Table, schema.Tag.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, nil
}
