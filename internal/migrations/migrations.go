package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const advocatesTable = `
CREATE TABLE IF NOT EXISTS advocates (
    id BIGSERIAL PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    city TEXT NOT NULL,
    degree TEXT NOT NULL,
    specialties JSONB NOT NULL DEFAULT '[]'::jsonb,
    years_of_experience INT NOT NULL DEFAULT 0 CHECK (years_of_experience >= 0),
    phone_number BIGINT NOT NULL UNIQUE CHECK (phone_number > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const specialtiesIndex = `
CREATE INDEX IF NOT EXISTS idx_advocates_specialties ON advocates USING GIN (specialties)`

// EnsureSchema creates the advocates table and supporting indexes when
// absent. The UNIQUE phone_number constraint is what turns a repeated
// seed run into a conflict instead of duplicated rows.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range []string{advocatesTable, specialtiesIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure advocates schema: %w", err)
		}
	}
	return nil
}
