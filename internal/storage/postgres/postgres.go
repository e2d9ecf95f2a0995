package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"webinarBooker/internal/config"
	"webinarBooker/internal/models"
	"webinarBooker/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id       TEXT PRIMARY KEY,
			email    TEXT NOT NULL,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS webinars (
			id           TEXT PRIMARY KEY,
			organizer_id TEXT NOT NULL,
			title        TEXT NOT NULL,
			start_date   TIMESTAMPTZ NOT NULL,
			end_date     TIMESTAMPTZ NOT NULL,
			seats        INT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS participations (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			webinar_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	_, err := s.DB.Exec(schema)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateWebinar(ctx context.Context, webinar models.Webinar) error {
	query := `
		INSERT INTO webinars (id, organizer_id, title, start_date, end_date, seats)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.ExecContext(ctx, query,
		webinar.ID,
		webinar.OrganizerID,
		webinar.Title,
		webinar.StartDate,
		webinar.EndDate,
		webinar.Seats,
	)
	if err != nil {
		return fmt.Errorf("failed to create webinar: %w", err)
	}

	return nil
}

func (s *Storage) WebinarByID(ctx context.Context, id string) (*models.Webinar, error) {
	query := `
		SELECT id, organizer_id, title, start_date, end_date, seats
		FROM webinars
		WHERE id = $1`

	var webinar models.Webinar
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&webinar.ID,
		&webinar.OrganizerID,
		&webinar.Title,
		&webinar.StartDate,
		&webinar.EndDate,
		&webinar.Seats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrWebinarNotFound
		}
		return nil, fmt.Errorf("failed to get webinar: %w", err)
	}

	return &webinar, nil
}

func (s *Storage) UserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, password
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) ParticipationsByWebinarID(ctx context.Context, webinarID string) ([]models.Participation, error) {
	query := `
		SELECT id, user_id, webinar_id, created_at
		FROM participations
		WHERE webinar_id = $1
		ORDER BY created_at, id`

	rows, err := s.DB.QueryContext(ctx, query, webinarID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participations: %w", err)
	}
	defer rows.Close()

	var participations []models.Participation
	for rows.Next() {
		var participation models.Participation
		err = rows.Scan(
			&participation.ID,
			&participation.UserID,
			&participation.WebinarID,
			&participation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participations = append(participations, participation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participations: %w", err)
	}

	return participations, nil
}

func (s *Storage) SaveParticipation(ctx context.Context, participation models.Participation) error {
	query := `
		INSERT INTO participations (id, user_id, webinar_id, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := s.DB.ExecContext(ctx, query,
		participation.ID,
		participation.UserID,
		participation.WebinarID,
		participation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save participation: %w", err)
	}

	return nil
}

func (s *Storage) WebinarWithParticipations(ctx context.Context, id string) (*models.Webinar, []models.Participation, error) {
	webinar, err := s.WebinarByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	participations, err := s.ParticipationsByWebinarID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return webinar, participations, nil
}

func (s *Storage) GetAllWebinars(ctx context.Context) ([]models.Webinar, error) {
	query := `
		SELECT id, organizer_id, title, start_date, end_date, seats
		FROM webinars
		ORDER BY start_date ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get webinars: %w", err)
	}
	defer rows.Close()

	var webinars []models.Webinar
	for rows.Next() {
		var webinar models.Webinar
		err = rows.Scan(
			&webinar.ID,
			&webinar.OrganizerID,
			&webinar.Title,
			&webinar.StartDate,
			&webinar.EndDate,
			&webinar.Seats,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan webinar: %w", err)
		}
		webinars = append(webinars, webinar)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating webinars: %w", err)
	}

	return webinars, nil
}
