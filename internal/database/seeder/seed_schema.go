package seeder

import (
	"context"
	"fmt"

	"resume-screen/internal/database"
)

// SchemaSeeder creates the application tables when they do not exist
// yet. It runs before every other seeder.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(80) UNIQUE NOT NULL,
			email VARCHAR(120) UNIQUE NOT NULL,
			password_hash VARCHAR(120) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'hr',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS job_descriptions (
			id UUID PRIMARY KEY,
			title VARCHAR(200) NOT NULL,
			company VARCHAR(200) NOT NULL,
			description TEXT NOT NULL,
			required_skills JSONB NOT NULL DEFAULT '[]',
			experience_level VARCHAR(50) NOT NULL,
			location VARCHAR(200) NOT NULL DEFAULT '',
			user_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			filename VARCHAR(200) NOT NULL,
			name VARCHAR(200) NOT NULL DEFAULT '',
			email VARCHAR(200) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			skills JSONB NOT NULL DEFAULT '[]',
			experience JSONB NOT NULL DEFAULT '[]',
			education JSONB NOT NULL DEFAULT '[]',
			raw_text TEXT NOT NULL DEFAULT '',
			match_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			semantic_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			matched_skills JSONB NOT NULL DEFAULT '[]',
			skill_gaps JSONB NOT NULL DEFAULT '[]',
			job_id UUID REFERENCES job_descriptions(id),
			user_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_job_id ON resumes(job_id)`,
		`CREATE INDEX IF NOT EXISTS idx_job_descriptions_user_id ON job_descriptions(user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
