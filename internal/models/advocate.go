package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Advocate represents a searchable member of the advocate directory.
type Advocate struct {
	ID                int64         `db:"id" json:"id"`
	FirstName         string        `db:"first_name" json:"firstName"`
	LastName          string        `db:"last_name" json:"lastName"`
	City              string        `db:"city" json:"city"`
	Degree            string        `db:"degree" json:"degree"`
	Specialties       SpecialtyList `db:"specialties" json:"specialties"`
	YearsOfExperience int           `db:"years_of_experience" json:"yearsOfExperience"`
	PhoneNumber       int64         `db:"phone_number" json:"phoneNumber"`
	CreatedAt         time.Time     `db:"created_at" json:"createdAt"`
}

// SpecialtyList stores advocate specialties as a JSONB array.
type SpecialtyList []string

// Value marshals the list to JSON for persistence.
func (s SpecialtyList) Value() (driver.Value, error) {
	if s == nil {
		s = SpecialtyList{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal specialties: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB payload into the list. Values that are not a
// JSON array of strings are coerced to an empty list, never nil.
func (s *SpecialtyList) Scan(value interface{}) error {
	if value == nil {
		*s = SpecialtyList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for SpecialtyList", value)
	}
	if len(data) == 0 {
		*s = SpecialtyList{}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		*s = SpecialtyList{}
		return nil
	}
	if list == nil {
		list = []string{}
	}
	*s = list
	return nil
}

// AdvocateFilter encapsulates allowed search parameters for listing advocates.
// When Search is non-empty it supersedes the City and Degree filters;
// Specialty and MinYearsOfExperience apply regardless.
type AdvocateFilter struct {
	Search               string
	City                 string
	Degree               string
	Specialty            string
	MinYearsOfExperience int
	Limit                int
	Offset               int
}

// Pagination describes the window a listing returned.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// NewPagination derives pagination metadata for a result window. HasMore
// reports whether rows beyond the returned window match the same filter.
func NewPagination(limit, offset, returned, total int) *Pagination {
	return &Pagination{
		Limit:   limit,
		Offset:  offset,
		Total:   total,
		HasMore: offset+returned < total,
	}
}

// CacheKey returns a canonical encoding of the filter. Filters with the
// same values always produce the same key.
func (f AdvocateFilter) CacheKey() string {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.Degree != "" {
		v.Set("degree", f.Degree)
	}
	if f.Specialty != "" {
		v.Set("specialty", f.Specialty)
	}
	if f.MinYearsOfExperience > 0 {
		v.Set("minYearsOfExperience", strconv.Itoa(f.MinYearsOfExperience))
	}
	v.Set("limit", strconv.Itoa(f.Limit))
	v.Set("offset", strconv.Itoa(f.Offset))
	return v.Encode()
}
