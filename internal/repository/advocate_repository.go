package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/careloop/advocates-api/internal/models"
)

const advocateColumns = "id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number, created_at"

// AdvocateRepository manages persistence for advocate directory records.
type AdvocateRepository struct {
	db *sqlx.DB
}

// NewAdvocateRepository constructs an AdvocateRepository.
func NewAdvocateRepository(db *sqlx.DB) *AdvocateRepository {
	return &AdvocateRepository{db: db}
}

// buildConditions translates a filter into SQL predicates. A non-empty
// Search supersedes the City and Degree filters; Specialty and
// MinYearsOfExperience always apply. The same predicate list feeds both
// the page query and the count query so hasMore stays consistent.
func buildConditions(filter models.AdvocateFilter) ([]string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(first_name) LIKE $%d OR LOWER(last_name) LIKE $%d OR LOWER(city) LIKE $%d OR LOWER(degree) LIKE $%d OR LOWER(specialties::text) LIKE $%d)",
			idx, idx, idx, idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	} else {
		if filter.City != "" {
			conditions = append(conditions, fmt.Sprintf("LOWER(city) LIKE $%d", len(args)+1))
			args = append(args, "%"+strings.ToLower(filter.City)+"%")
		}
		if filter.Degree != "" {
			conditions = append(conditions, fmt.Sprintf("degree = $%d", len(args)+1))
			args = append(args, filter.Degree)
		}
	}

	if filter.Specialty != "" {
		// JSONB containment against a one-element array gives exact
		// element equality, not substring matching.
		payload, _ := json.Marshal([]string{filter.Specialty})
		conditions = append(conditions, fmt.Sprintf("specialties @> $%d::jsonb", len(args)+1))
		args = append(args, string(payload))
	}
	if filter.MinYearsOfExperience > 0 {
		conditions = append(conditions, fmt.Sprintf("years_of_experience >= $%d", len(args)+1))
		args = append(args, filter.MinYearsOfExperience)
	}

	return conditions, args
}

// List returns one page of advocates matching the filter plus the total
// count of matches with no window applied.
func (r *AdvocateRepository) List(ctx context.Context, filter models.AdvocateFilter) ([]models.Advocate, int, error) {
	conditions, args := buildConditions(filter)
	base := fmt.Sprintf("FROM advocates WHERE %s", strings.Join(conditions, " AND "))

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY id ASC LIMIT %d OFFSET %d", advocateColumns, base, limit, offset)

	var advocates []models.Advocate
	if err := r.db.SelectContext(ctx, &advocates, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list advocates: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count advocates: %w", err)
	}

	return advocates, total, nil
}

// ListAll returns every advocate matching the filter with no window
// applied, ordered by id. Exports use it to render the full filtered
// directory.
func (r *AdvocateRepository) ListAll(ctx context.Context, filter models.AdvocateFilter) ([]models.Advocate, error) {
	conditions, args := buildConditions(filter)
	query := fmt.Sprintf("SELECT %s FROM advocates WHERE %s ORDER BY id ASC", advocateColumns, strings.Join(conditions, " AND "))
	var advocates []models.Advocate
	if err := r.db.SelectContext(ctx, &advocates, query, args...); err != nil {
		return nil, fmt.Errorf("list all advocates: %w", err)
	}
	return advocates, nil
}

// FindByID fetches an advocate by ID. Callers observe sql.ErrNoRows
// unwrapped when the record does not exist.
func (r *AdvocateRepository) FindByID(ctx context.Context, id int64) (*models.Advocate, error) {
	query := fmt.Sprintf("SELECT %s FROM advocates WHERE id = $1", advocateColumns)
	var advocate models.Advocate
	if err := r.db.GetContext(ctx, &advocate, query, id); err != nil {
		return nil, err
	}
	return &advocate, nil
}

// InsertBatch inserts the provided advocates inside one transaction and
// returns them with storage-assigned ids and timestamps. Any constraint
// violation rolls back the whole batch.
func (r *AdvocateRepository) InsertBatch(ctx context.Context, advocates []models.Advocate) ([]models.Advocate, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert advocates: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `INSERT INTO advocates (first_name, last_name, city, degree, specialties, years_of_experience, phone_number)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	inserted := make([]models.Advocate, 0, len(advocates))
	for _, advocate := range advocates {
		row := tx.QueryRowContext(ctx, query,
			advocate.FirstName,
			advocate.LastName,
			advocate.City,
			advocate.Degree,
			advocate.Specialties,
			advocate.YearsOfExperience,
			advocate.PhoneNumber,
		)
		if err := row.Scan(&advocate.ID, &advocate.CreatedAt); err != nil {
			return nil, fmt.Errorf("insert advocate: %w", err)
		}
		inserted = append(inserted, advocate)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert advocates: %w", err)
	}

	return inserted, nil
}

// Ping verifies storage connectivity for readiness probes.
func (r *AdvocateRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
