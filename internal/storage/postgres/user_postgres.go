package postgres

import (
	"MiniLearn/internal/app_errors"
	"MiniLearn/internal/models"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, username, firstname, registration_date, tokens_balance, experience_points, level`

type UserPostgres struct {
	db DB
}

func NewUserPostgres(db DB) *UserPostgres {
	return &UserPostgres{db: db}
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Firstname, &u.RegistrationDate, &u.TokensBalance, &u.ExperiencePoints, &u.Level)
	return u, err
}

func (r *UserPostgres) UserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readErr(err, app_errors.ErrUserNotFound)
	}
	return &user, nil
}

// CreateUser inserts only the identity columns; balances, level and
// registration date come from the column defaults and are read back.
func (r *UserPostgres) CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error) {
	var user models.User
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO users (user_id, username, firstname)
			VALUES ($1, $2, $3)
			RETURNING ` + userColumns
		var err error
		user, err = scanUser(tx.QueryRow(ctx, query, in.ID, in.Username, in.Firstname))
		return err
	})
	if err != nil {
		return nil, writeErr("creating user", err)
	}
	return &user, nil
}

func (r *UserPostgres) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	changes := map[string]any{}
	setNullable(changes, "username", upd.Username)
	setNullable(changes, "firstname", upd.Firstname)
	setNullable(changes, "tokens_balance", upd.TokensBalance)
	setNullable(changes, "experience_points", upd.ExperiencePoints)
	setNullable(changes, "level", upd.Level)
	if len(changes) == 0 {
		return r.UserByID(ctx, id)
	}

	query, args, err := psql.Update("users").
		SetMap(changes).
		Where(sq.Eq{"user_id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var user models.User
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		user, err = scanUser(tx.QueryRow(ctx, query, args...))
		return readErr(err, app_errors.ErrUserNotFound)
	})
	if err != nil {
		return nil, writeErr("updating user", err)
	}
	return &user, nil
}

// DeleteUser removes the user's enrollments and progress, detaches the
// courses they created and then deletes the user row.
func (r *UserPostgres) DeleteUser(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		steps := []string{
			`DELETE FROM course_enrollments WHERE user_id = $1`,
			`DELETE FROM user_progress WHERE user_id = $1`,
			`UPDATE courses SET user_id = NULL WHERE user_id = $1`,
		}
		for _, q := range steps {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return err
			}
		}
		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return app_errors.ErrUserNotFound
		}
		return nil
	})
	return writeErr("deleting user", err)
}
