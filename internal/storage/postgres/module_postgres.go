package postgres

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const moduleColumns = `module_id, course_id, title, description, position`

type ModulePostgres struct {
	db DB
}

func NewModulePostgres(db DB) *ModulePostgres {
	return &ModulePostgres{db: db}
}

func scanModule(row pgx.Row) (models.Module, error) {
	var m models.Module
	err := row.Scan(&m.ID, &m.CourseID, &m.Title, &m.Description, &m.Position)
	return m, err
}

func (r *ModulePostgres) ModuleByID(ctx context.Context, id int64) (*models.Module, error) {
	query := `SELECT ` + moduleColumns + ` FROM modules WHERE module_id = $1`
	module, err := scanModule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readErr(err, app_errors.ErrModuleNotFound)
	}
	return &module, nil
}

func (r *ModulePostgres) ModulesByCourse(ctx context.Context, courseID int64) ([]models.Module, error) {
	query := `
		SELECT ` + moduleColumns + `
		  FROM modules
		 WHERE course_id = $1
		 ORDER BY position NULLS LAST, module_id`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	modules := []models.Module{}
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *ModulePostgres) CreateModule(ctx context.Context, module models.Module) (*models.Module, error) {
	var created models.Module
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO modules (course_id, title, description, position)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + moduleColumns
		var err error
		created, err = scanModule(tx.QueryRow(ctx, query, module.CourseID, module.Title, module.Description, module.Position))
		return err
	})
	if err != nil {
		return nil, writeErr("creating module", err)
	}
	return &created, nil
}

func (r *ModulePostgres) UpdateModule(ctx context.Context, id int64, upd models.ModuleUpdate) (*models.Module, error) {
	changes := map[string]any{}
	setNullable(changes, "title", upd.Title)
	setNullable(changes, "description", upd.Description)
	setNullable(changes, "position", upd.Position)
	if len(changes) == 0 {
		return r.ModuleByID(ctx, id)
	}

	query, args, err := psql.Update("modules").
		SetMap(changes).
		Where(sq.Eq{"module_id": id}).
		Suffix("RETURNING " + moduleColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build module update: %w", err)
	}

	var module models.Module
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		module, err = scanModule(tx.QueryRow(ctx, query, args...))
		return readErr(err, app_errors.ErrModuleNotFound)
	})
	if err != nil {
		return nil, writeErr("updating module", err)
	}
	return &module, nil
}

// DeleteModule removes quiz questions, quizzes, progress references and
// lessons of the module before the module itself.
func (r *ModulePostgres) DeleteModule(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := detachLessons(ctx, tx, lessonsOfModule, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM lessons WHERE module_id = $1`, id); err != nil {
			return err
		}
		return deleteOne(ctx, tx, `DELETE FROM modules WHERE module_id = $1`, id, app_errors.ErrModuleNotFound)
	})
	return writeErr("deleting module", err)
}
