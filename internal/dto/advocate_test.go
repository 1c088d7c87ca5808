package dto

import (
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/advocates-api/internal/models"
)

func TestParseAdvocateQueryDefaults(t *testing.T) {
	filter, details := ParseAdvocateQuery(url.Values{})

	require.Empty(t, details)
	assert.Equal(t, models.AdvocateFilter{Limit: DefaultLimit}, filter)
}

func TestParseAdvocateQueryEmptyValuesAreAbsent(t *testing.T) {
	values, err := url.ParseQuery("search=&city=&degree=&specialty=&minYearsOfExperience=&limit=&offset=")
	require.NoError(t, err)

	filter, details := ParseAdvocateQuery(values)

	require.Empty(t, details)
	assert.Equal(t, models.AdvocateFilter{Limit: DefaultLimit}, filter)
}

func TestParseAdvocateQueryFullFilter(t *testing.T) {
	values := url.Values{}
	values.Set("search", " desai ")
	values.Set("city", "Denver")
	values.Set("degree", "PhD")
	values.Set("specialty", "Bipolar")
	values.Set("minYearsOfExperience", "5")
	values.Set("limit", "25")
	values.Set("offset", "50")

	filter, details := ParseAdvocateQuery(values)

	require.Empty(t, details)
	assert.Equal(t, models.AdvocateFilter{
		Search:               "desai",
		City:                 "Denver",
		Degree:               "PhD",
		Specialty:            "Bipolar",
		MinYearsOfExperience: 5,
		Limit:                25,
		Offset:               50,
	}, filter)
}

func TestParseAdvocateQueryEnumeratesEveryInvalidField(t *testing.T) {
	values := url.Values{}
	values.Set("minYearsOfExperience", "-3")
	values.Set("limit", "0")
	values.Set("offset", "abc")

	_, details := ParseAdvocateQuery(values)

	assert.Equal(t, []string{
		"minYearsOfExperience: must be a non-negative integer",
		"limit: must be an integer between 1 and 100",
		"offset: must be a non-negative integer",
	}, details)
}

func TestParseAdvocateQueryRejects(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"zero limit", "limit", "0"},
		{"negative limit", "limit", "-1"},
		{"oversized limit", "limit", "101"},
		{"non numeric limit", "limit", "ten"},
		{"float limit", "limit", "2.5"},
		{"negative offset", "offset", "-1"},
		{"non numeric min years", "minYearsOfExperience", "two"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := url.Values{}
			values.Set(tc.key, tc.value)
			_, details := ParseAdvocateQuery(values)
			require.Len(t, details, 1)
			assert.Contains(t, details[0], tc.key+":")
		})
	}
}

func TestParseAdvocateQueryMinYearsZeroIsValid(t *testing.T) {
	values := url.Values{}
	values.Set("minYearsOfExperience", "0")

	filter, details := ParseAdvocateQuery(values)

	require.Empty(t, details)
	assert.Equal(t, 0, filter.MinYearsOfExperience)
}

func TestParseAdvocateID(t *testing.T) {
	id, details := ParseAdvocateID("42")
	require.Empty(t, details)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "-1", "0", "1.5", ""} {
		_, details := ParseAdvocateID(raw)
		require.Len(t, details, 1, "raw=%q", raw)
		assert.Equal(t, "id: must be a positive integer", details[0])
	}
}

func TestNewAdvocateResponseNormalizesSpecialties(t *testing.T) {
	resp := NewAdvocateResponse(models.Advocate{ID: 1, FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", PhoneNumber: 5551234567})

	require.NotNil(t, resp.Specialties)
	assert.Empty(t, resp.Specialties)
}

func TestAdvocateResponseContractCheck(t *testing.T) {
	validate := validator.New()

	valid := NewAdvocateResponse(models.Advocate{
		ID:                1,
		FirstName:         "Priya",
		LastName:          "Desai",
		City:              "Denver",
		Degree:            "PhD",
		Specialties:       models.SpecialtyList{"Bipolar"},
		YearsOfExperience: 12,
		PhoneNumber:       5559876543,
	})
	assert.NoError(t, validate.Struct(valid))

	missingName := valid
	missingName.FirstName = ""
	assert.Error(t, validate.Struct(missingName))

	badPhone := valid
	badPhone.PhoneNumber = 0
	assert.Error(t, validate.Struct(badPhone))

	negativeYears := valid
	negativeYears.YearsOfExperience = -1
	assert.Error(t, validate.Struct(negativeYears))
}
