package database

import "context"

// Migrate creates the application tables when they do not exist yet.
// Safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			company_id   UUID PRIMARY KEY,
			company_name VARCHAR(100) NOT NULL UNIQUE,
			is_active    BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			email            VARCHAR(255) PRIMARY KEY,
			first_name       VARCHAR(50) NOT NULL,
			last_name        VARCHAR(50) NOT NULL,
			mobile_phone     VARCHAR(30),
			company_id       UUID NOT NULL REFERENCES companies(company_id),
			role             VARCHAR(50),
			permission       INT NOT NULL,
			pass_hash        VARCHAR(255) NOT NULL,
			is_active        BOOLEAN NOT NULL DEFAULT TRUE,
			salary           NUMERIC(10,2) NOT NULL DEFAULT 0,
			work_capacity    NUMERIC(4,2) NOT NULL DEFAULT 0,
			employment_start TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			employment_end   TIMESTAMPTZ,
			weekend_choice   VARCHAR(64)
		)`,
		`CREATE TABLE IF NOT EXISTS time_stamps (
			uuid               UUID PRIMARY KEY,
			user_email         VARCHAR(255) NOT NULL REFERENCES users(email),
			entered_by         VARCHAR(255) NOT NULL REFERENCES users(email),
			punch_type         INT NOT NULL DEFAULT 0,
			punch_in_timestamp TIMESTAMPTZ NOT NULL,
			punch_out_timestamp TIMESTAMPTZ,
			reporting_type     VARCHAR(20) NOT NULL DEFAULT 'work',
			detail             TEXT,
			last_update        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_time_stamps_user_punch_in
			ON time_stamps (user_email, punch_in_timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_users_company ON users (company_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
