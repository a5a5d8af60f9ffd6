package repository

import (
	"context"
	"database/sql"
	"errors"

	"resume-screen/internal/database"
	"resume-screen/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, res resume.Resume) error {
	skills, err := marshalStrings(res.Skills)
	if err != nil {
		return err
	}
	experience, err := marshalStrings(res.Experience)
	if err != nil {
		return err
	}
	education, err := marshalStrings(res.Education)
	if err != nil {
		return err
	}
	matched, err := marshalStrings(res.MatchedSkills)
	if err != nil {
		return err
	}
	gaps, err := marshalStrings(res.SkillGaps)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO resumes (id, filename, name, email, phone, skills, experience, education, raw_text,
		                      match_score, semantic_score, matched_skills, skill_gaps, job_id, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		res.ID, res.Filename, res.Name, res.Email, res.Phone, skills, experience, education, res.RawText,
		res.MatchScore, res.SemanticScore, matched, gaps, res.JobID, res.UserID,
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx, selectResume+` WHERE id = $1`, id)
	return scanResume(row)
}

func (r *PostgresResumeRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx, selectResume+` WHERE job_id = $1 ORDER BY match_score DESC, created_at ASC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const selectResume = `SELECT id, filename, name, email, phone, skills, experience, education, raw_text,
       match_score, semantic_score, matched_skills, skill_gaps, job_id, user_id, created_at
  FROM resumes`

func scanResume(row database.Row) (resume.Resume, error) {
	var res resume.Resume
	var skills, experience, education, matched, gaps []byte
	var jobID *uuid.UUID
	err := row.Scan(
		&res.ID, &res.Filename, &res.Name, &res.Email, &res.Phone,
		&skills, &experience, &education, &res.RawText,
		&res.MatchScore, &res.SemanticScore, &matched, &gaps,
		&jobID, &res.UserID, &res.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	if jobID != nil {
		res.JobID = *jobID
	}

	if res.Skills, err = unmarshalStrings(skills); err != nil {
		return resume.Resume{}, err
	}
	if res.Experience, err = unmarshalStrings(experience); err != nil {
		return resume.Resume{}, err
	}
	if res.Education, err = unmarshalStrings(education); err != nil {
		return resume.Resume{}, err
	}
	if res.MatchedSkills, err = unmarshalStrings(matched); err != nil {
		return resume.Resume{}, err
	}
	if res.SkillGaps, err = unmarshalStrings(gaps); err != nil {
		return resume.Resume{}, err
	}
	return res, nil
}
