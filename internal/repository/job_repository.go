package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"resume-screen/internal/database"
	"resume-screen/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	skills, err := marshalStrings(j.RequiredSkills)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO job_descriptions (id, title, company, description, required_skills, experience_level, location, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		j.ID, j.Title, j.Company, j.Description, skills, j.ExperienceLevel, j.Location, j.UserID,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, title, company, description, required_skills, experience_level, location, user_id, created_at
		 FROM job_descriptions WHERE id = $1`,
		id,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, company, description, required_skills, experience_level, location, user_id, created_at
		 FROM job_descriptions WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var skills []byte
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &skills, &j.ExperienceLevel, &j.Location, &j.UserID, &j.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	if j.RequiredSkills, err = unmarshalStrings(skills); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func marshalStrings(xs []string) ([]byte, error) {
	if xs == nil {
		xs = []string{}
	}
	return json.Marshal(xs)
}

func unmarshalStrings(b []byte) ([]string, error) {
	if len(b) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
