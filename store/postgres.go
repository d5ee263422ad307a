package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"webepex/models"
)

// PostgresStore is the durable UserStore. Email uniqueness is enforced by a
// unique index over lower(email), so the duplicate check is atomic without
// application-side locking.
type PostgresStore struct {
	db *sql.DB
}

func OpenPostgres(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

// Migrate applies the schema. Statements are idempotent (CREATE ... IF NOT
// EXISTS), so this runs on every boot.
func (s *PostgresStore) Migrate(schema string) error {
	_, err := s.db.Exec(schema)
	return err
}

func (s *PostgresStore) Create(ctx context.Context, email, fullName, passwordHash string) (*models.User, error) {
	user := &models.User{
		Email:    NormalizeEmail(email),
		FullName: fullName,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, full_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, is_premium, is_vip, created_at
	`, user.Email, fullName, passwordHash).Scan(&user.ID, &user.IsPremium, &user.IsVip, &user.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	user.PasswordHash = passwordHash
	return user, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, password_hash, is_premium, is_vip, created_at
		FROM users WHERE email = $1
	`, NormalizeEmail(email)))
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, password_hash, is_premium, is_vip, created_at
		FROM users WHERE id = $1
	`, id))
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, update models.StatusUpdate) (*models.User, error) {
	// COALESCE keeps the stored value for fields the caller did not supply.
	return s.scanOne(s.db.QueryRowContext(ctx, `
		UPDATE users
		SET is_vip = COALESCE($2, is_vip), is_premium = COALESCE($3, is_premium)
		WHERE id = $1
		RETURNING id, email, full_name, password_hash, is_premium, is_vip, created_at
	`, id, nullableBool(update.IsVip), nullableBool(update.IsPremium)))
}

func (s *PostgresStore) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.IsPremium, &u.IsVip, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func nullableBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
