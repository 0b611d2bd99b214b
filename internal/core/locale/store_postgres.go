package locale

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

// GetOrCreate relies on the unique index on code: the DO UPDATE arm turns a
// conflicting insert into a no-op write so RETURNING always yields the row,
// whichever concurrent caller created it.
func (repository *PostgresRepository) GetOrCreate(context context.Context, code string) (*Locale, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s, %s, %s
	`,
		schema.Locale.Table, schema.Locale.Code,
		schema.Locale.Code, schema.Locale.Code, schema.Locale.Code,
		schema.Locale.ID, schema.Locale.Code, schema.Locale.CreatedAt,
	)

	l := &Locale{}
	err := repository.db.QueryRow(context, query, code).Scan(&l.ID, &l.Code, &l.CreatedAt)
	return l, dberr.Wrap(err, "get_or_create_locale")
}

func (repository *PostgresRepository) GetByCode(context context.Context, code string) (*Locale, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Locale.ID, schema.Locale.Code, schema.Locale.CreatedAt,
		schema.Locale.Table, schema.Locale.Code,
	)

	l := &Locale{}
	err := repository.db.QueryRow(context, query, code).Scan(&l.ID, &l.Code, &l.CreatedAt)
	return l, dberr.Wrap(err, "get_locale")
}

func (repository *PostgresRepository) ListLocales(context context.Context) ([]*Locale, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Locale.ID, schema.Locale.Code, schema.Locale.CreatedAt,
		schema.Locale.Table, schema.Locale.Code,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_locales")
	}
	defer rows.Close()

	locales := make([]*Locale, 0)
	for rows.Next() {
		l := &Locale{}
		if err := rows.Scan(&l.ID, &l.Code, &l.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_locale")
		}
		locales = append(locales, l)
	}

	return locales, nil
}
