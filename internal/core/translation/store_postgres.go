package translation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
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

// selectColumns is the projection shared by List, GetByID, and Search: the
// translation row joined with its locale code and aggregated tag names, so
// callers never need a second fetch round trip.
func selectColumns() string {
	return fmt.Sprintf(`
		SELECT tr.%s, tr.%s, tr.%s, tr.%s, l.%s, tr.%s, tr.%s,
		       COALESCE(array_agg(tg.%s ORDER BY tg.%s) FILTER (WHERE tg.%s IS NOT NULL), '{}')
		FROM %s tr
		JOIN %s l ON l.%s = tr.%s
		LEFT JOIN %s tt ON tt.%s = tr.%s
		LEFT JOIN %s tg ON tg.%s = tt.%s
	`,
		schema.Translation.ID, schema.Translation.Key, schema.Translation.Content,
		schema.Translation.LocaleID, schema.Locale.Code,
		schema.Translation.CreatedAt, schema.Translation.UpdatedAt,
		schema.Tag.Name, schema.Tag.Name, schema.Tag.Name,
		schema.Translation.Table,
		schema.Locale.Table, schema.Locale.ID, schema.Translation.LocaleID,
		schema.TagTranslation.Table, schema.TagTranslation.TranslationID, schema.Translation.ID,
		schema.Tag.Table, schema.Tag.ID, schema.TagTranslation.TagID,
	)
}

func groupByClause() string {
	return fmt.Sprintf(" GROUP BY tr.%s, l.%s", schema.Translation.ID, schema.Locale.Code)
}

func scanTranslation(row pgx.Row) (*Translation, error) {
	t := &Translation{}
	err := row.Scan(&t.ID, &t.Key, &t.Content, &t.LocaleID, &t.Locale, &t.CreatedAt, &t.UpdatedAt, &t.Tags)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// buildConditions composes the filter predicates into WHERE fragments.
//
// Ordering is most-selective first: the locale and key equality predicates
// are index-backed ((locale_id, key) composite), the tag membership test
// runs against the indexed association table, and the content substring
// scan comes last. The composition order has no effect on correctness.
func buildConditions(f Filter) (conditions []string, args []any) {
	next := func() string { return "$" + strconv.Itoa(len(args)+1) }

	if f.Locale != "" {
		conditions = append(conditions, fmt.Sprintf("l.%s = %s", schema.Locale.Code, next()))
		args = append(args, f.Locale)
	}
	if f.Key != "" {
		conditions = append(conditions, fmt.Sprintf("tr.%s = %s", schema.Translation.Key, next()))
		args = append(args, f.Key)
	}
	if f.Tag != "" {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s x JOIN %s t2 ON t2.%s = x.%s WHERE x.%s = tr.%s AND t2.%s = %s)`,
			schema.TagTranslation.Table, schema.Tag.Table,
			schema.Tag.ID, schema.TagTranslation.TagID,
			schema.TagTranslation.TranslationID, schema.Translation.ID,
			schema.Tag.Name, next(),
		))
		args = append(args, f.Tag)
	}
	if f.Content != "" {
		// ILIKE: the substring match is case-insensitive regardless of the
		// database collation.
		conditions = append(conditions, fmt.Sprintf("tr.%s ILIKE %s", schema.Translation.Content, next()))
		args = append(args, "%"+f.Content+"%")
	}

	return conditions, args
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Translation, int, error) {
	conditions, args := buildConditions(filter)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	// The count query skips the tag LEFT JOINs entirely; the tag predicate
	// is an EXISTS subquery, so a plain count over the locale join suffices.
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s tr JOIN %s l ON l.%s = tr.%s`,
		schema.Translation.Table, schema.Locale.Table, schema.Locale.ID, schema.Translation.LocaleID,
	) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_translations")
	}

	query := selectColumns() + where + groupByClause() +
		fmt.Sprintf(" ORDER BY tr.%s ASC LIMIT $%d OFFSET $%d", schema.Translation.ID, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_translations")
	}
	defer rows.Close()

	translations := make([]*Translation, 0)
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_translation")
		}
		translations = append(translations, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_translations")
	}

	return translations, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Translation, error) {
	query := selectColumns() + fmt.Sprintf(" WHERE tr.%s = $1", schema.Translation.ID) + groupByClause()

	t, err := scanTranslation(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_translation")
	}
	return t, nil
}

func (repository *PostgresRepository) Create(context context.Context, t *Translation, tagID int64) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_translation")
	}
	defer func() { _ = tx.Rollback(context) }()

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Translation.Table, schema.Translation.Key, schema.Translation.LocaleID,
		schema.Translation.Content, schema.Translation.CreatedAt, schema.Translation.UpdatedAt,
		schema.Translation.ID, schema.Translation.CreatedAt, schema.Translation.UpdatedAt,
	)

	err = tx.QueryRow(context, insertQuery, t.Key, t.LocaleID, t.Content).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_translation")
	}

	if err := syncTag(context, tx, t.ID, tagID); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_create_translation")
}

func (repository *PostgresRepository) Update(context context.Context, t *Translation, tagID int64) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_translation")
	}
	defer func() { _ = tx.Rollback(context) }()

	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.Translation.Table,
		schema.Translation.Key, schema.Translation.LocaleID, schema.Translation.Content,
		schema.Translation.UpdatedAt, schema.Translation.ID,
		schema.Translation.CreatedAt, schema.Translation.UpdatedAt,
	)

	err = tx.QueryRow(context, updateQuery, t.ID, t.Key, t.LocaleID, t.Content).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_translation")
	}

	if err := syncTag(context, tx, t.ID, tagID); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(context), "commit_update_translation")
}

// syncTag replaces the full tag association set with the single given tag.
func syncTag(context context.Context, tx pgx.Tx, translationID, tagID int64) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s <> $2`,
		schema.TagTranslation.Table, schema.TagTranslation.TranslationID, schema.TagTranslation.TagID,
	)
	if _, err := tx.Exec(context, deleteQuery, translationID, tagID); err != nil {
		return dberr.Wrap(err, "clear_translation_tags")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`,
		schema.TagTranslation.Table, schema.TagTranslation.TranslationID, schema.TagTranslation.TagID,
	)
	if _, err := tx.Exec(context, insertQuery, translationID, tagID); err != nil {
		return dberr.Wrap(err, "sync_translation_tag")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	// Association rows go with the translation via ON DELETE CASCADE.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Translation.Table, schema.Translation.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_translation")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Search(context context.Context, term string) ([]*Translation, error) {
	// Case-insensitive substring match over key OR content. Unpaginated by
	// contract; callers bound their own query volume.
	query := selectColumns() +
		fmt.Sprintf(" WHERE tr.%s ILIKE $1 OR tr.%s ILIKE $1", schema.Translation.Key, schema.Translation.Content) +
		groupByClause() +
		fmt.Sprintf(" ORDER BY tr.%s ASC", schema.Translation.ID)

	rows, err := repository.db.Query(context, query, "%"+term+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "search_translations")
	}
	defer rows.Close()

	translations := make([]*Translation, 0)
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_translation")
		}
		translations = append(translations, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "search_translations")
	}

	return translations, nil
}

// ExportBatches walks the locale's translations in keyset order (seek by
// last-seen id) so each read is a bounded index scan: no batch ever exceeds
// batchSize rows and no offset cost accumulates across the table.
func (repository *PostgresRepository) ExportBatches(context context.Context, localeID int64, tagID *int64, batchSize int, emit func(ExportRow) error) error {
	lastID := int64(0)

	for {
		// Stop issuing reads promptly once the caller has gone away.
		if err := context.Err(); err != nil {
			return dberr.Wrap(err, "export_cancelled")
		}

		args := []any{localeID, lastID}
		tagCondition := ""
		if tagID != nil {
			tagCondition = fmt.Sprintf(
				" AND EXISTS (SELECT 1 FROM %s x WHERE x.%s = tr.%s AND x.%s = $3)",
				schema.TagTranslation.Table, schema.TagTranslation.TranslationID,
				schema.Translation.ID, schema.TagTranslation.TagID,
			)
			args = append(args, *tagID)
		}

		query := fmt.Sprintf(`
			SELECT tr.%s, tr.%s, tr.%s
			FROM %s tr
			WHERE tr.%s = $1 AND tr.%s > $2%s
			ORDER BY tr.%s ASC
			LIMIT %d
		`,
			schema.Translation.ID, schema.Translation.Key, schema.Translation.Content,
			schema.Translation.Table,
			schema.Translation.LocaleID, schema.Translation.ID, tagCondition,
			schema.Translation.ID, batchSize,
		)

		rows, err := repository.db.Query(context, query, args...)
		if err != nil {
			return dberr.Wrap(err, "export_translations")
		}

		scanned := 0
		for rows.Next() {
			row := ExportRow{}
			if err := rows.Scan(&lastID, &row.Key, &row.Content); err != nil {
				rows.Close()
				return dberr.Wrap(err, "scan_export_row")
			}
			scanned++

			// Emit immediately: nothing is buffered across rows.
			if err := emit(row); err != nil {
				rows.Close()
				return err
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return dberr.Wrap(err, "export_translations")
		}

		// A short batch means the table is exhausted.
		if scanned < batchSize {
			return nil
		}
	}
}
