package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeatCount(t *testing.T) {
	assert.NoError(t, ValidateSeatCount(nil))
	assert.NoError(t, ValidateSeatCount(make([]string, MaxSelectableSeats)))
	assert.Error(t, ValidateSeatCount(make([]string, MaxSelectableSeats+1)))
}

func TestValidateRequestOrder(t *testing.T) {
	// Multiple problems report the first one in form order
	req := Request{UnitID: "bus-1"}

	verr := validateRequest(req, nil)
	require.NotNil(t, verr)
	assert.Equal(t, "seats", verr.Field)

	verr = validateRequest(req, []string{"A1"})
	require.NotNil(t, verr)
	assert.Equal(t, "passenger_name", verr.Field)

	req.PassengerName = "Ram"
	verr = validateRequest(req, []string{"A1"})
	require.NotNil(t, verr)
	assert.Equal(t, "email", verr.Field)

	req.Email = "ram@example.com"
	verr = validateRequest(req, []string{"A1"})
	require.NotNil(t, verr)
	assert.Equal(t, "contact", verr.Field)

	req.Contact = "9812345"
	assert.Nil(t, validateRequest(req, []string{"A1"}))
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 0, countDigits("abc"))
	assert.Equal(t, 7, countDigits("984-12-34"))
	assert.Equal(t, 10, countDigits("9841234567"))
}

func TestGenerateTransactionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := generateTransactionID()
		require.NoError(t, err)
		assert.Len(t, id, 10)
		assert.Equal(t, "", strings.Trim(id, "0123456789"), "id must be all digits")
		seen[id] = true
	}
	// Not a uniqueness guarantee, but 50 collisions would mean a broken generator
	assert.Greater(t, len(seen), 1)
}
