package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/careloop/advocates-api/internal/models"
)

const (
	// DefaultLimit is applied when the limit parameter is absent.
	DefaultLimit = 10
	// MaxLimit bounds a single page so one request cannot dump the table.
	MaxLimit = 100
)

// AdvocateResponse is the wire representation of a directory advocate.
// The validate tags double as an outgoing contract check: handlers verify
// each transformed row so a transform bug cannot corrupt the response.
type AdvocateResponse struct {
	ID                int64     `json:"id" validate:"required,gt=0"`
	FirstName         string    `json:"firstName" validate:"required"`
	LastName          string    `json:"lastName" validate:"required"`
	City              string    `json:"city" validate:"required"`
	Degree            string    `json:"degree" validate:"required"`
	Specialties       []string  `json:"specialties" validate:"required,dive,required"`
	YearsOfExperience int       `json:"yearsOfExperience" validate:"gte=0"`
	PhoneNumber       int64     `json:"phoneNumber" validate:"required,gt=0"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewAdvocateResponse maps a stored advocate onto the wire shape.
func NewAdvocateResponse(advocate models.Advocate) AdvocateResponse {
	specialties := []string(advocate.Specialties)
	if specialties == nil {
		specialties = []string{}
	}
	return AdvocateResponse{
		ID:                advocate.ID,
		FirstName:         advocate.FirstName,
		LastName:          advocate.LastName,
		City:              advocate.City,
		Degree:            advocate.Degree,
		Specialties:       specialties,
		YearsOfExperience: advocate.YearsOfExperience,
		PhoneNumber:       advocate.PhoneNumber,
		CreatedAt:         advocate.CreatedAt,
	}
}

// SeedResponse reports the outcome of the one-time dataset seed.
type SeedResponse struct {
	Message   string             `json:"message"`
	Count     int                `json:"count"`
	Advocates []AdvocateResponse `json:"advocates"`
}

// ParseAdvocateQuery validates raw query parameters into a filter. Empty
// parameter values count as absent. The returned details enumerate every
// offending field as "<field>: <message>"; an empty slice means success.
func ParseAdvocateQuery(values url.Values) (models.AdvocateFilter, []string) {
	filter := models.AdvocateFilter{Limit: DefaultLimit}
	var details []string

	filter.Search = strings.TrimSpace(values.Get("search"))
	filter.City = strings.TrimSpace(values.Get("city"))
	filter.Degree = strings.TrimSpace(values.Get("degree"))
	filter.Specialty = strings.TrimSpace(values.Get("specialty"))

	if raw := strings.TrimSpace(values.Get("minYearsOfExperience")); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil || years < 0 {
			details = append(details, "minYearsOfExperience: must be a non-negative integer")
		} else {
			filter.MinYearsOfExperience = years
		}
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			details = append(details, fmt.Sprintf("limit: must be an integer between 1 and %d", MaxLimit))
		} else {
			filter.Limit = limit
		}
	}

	if raw := strings.TrimSpace(values.Get("offset")); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			details = append(details, "offset: must be a non-negative integer")
		} else {
			filter.Offset = offset
		}
	}

	return filter, details
}

// ParseAdvocateID validates a path segment into a positive advocate id.
func ParseAdvocateID(raw string) (int64, []string) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, []string{"id: must be a positive integer"}
	}
	return id, nil
}
