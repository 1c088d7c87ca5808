package seed

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/advocates-api/internal/dto"
)

func TestAdvocatesDataset(t *testing.T) {
	advocates := Advocates()
	require.Len(t, advocates, 15)

	phones := make(map[int64]struct{}, len(advocates))
	validate := validator.New()
	var hasDesai bool

	for _, advocate := range advocates {
		_, dup := phones[advocate.PhoneNumber]
		require.False(t, dup, "duplicate phone %d", advocate.PhoneNumber)
		phones[advocate.PhoneNumber] = struct{}{}

		resp := dto.NewAdvocateResponse(advocate)
		resp.ID = int64(len(phones)) // ids are assigned by storage
		assert.NoError(t, validate.Struct(resp), "advocate %s %s", advocate.FirstName, advocate.LastName)

		if advocate.LastName == "Desai" {
			hasDesai = true
			assert.Contains(t, []string(advocate.Specialties), "Bipolar")
		}
	}

	assert.True(t, hasDesai)
}

func TestAdvocatesReturnsFreshCopies(t *testing.T) {
	first := Advocates()
	first[0].FirstName = "mutated"

	second := Advocates()
	assert.NotEqual(t, "mutated", second[0].FirstName)
}
