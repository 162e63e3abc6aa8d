package repository

import (
	"testing"

	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassColumns(t *testing.T) {
	testCases := []struct {
		class     domain.SeatClass
		available string
		total     string
	}{
		{domain.SeatClassEconomy, "economy_available", "economy_total"},
		{domain.SeatClassBusiness, "business_available", "business_total"},
		{domain.SeatClassFirstClass, "first_class_available", "first_class_total"},
	}

	for _, tc := range testCases {
		cols, err := classColumns(tc.class)
		assert.NoError(t, err)
		assert.Equal(t, tc.available, cols.available)
		assert.Equal(t, tc.total, cols.total)
	}
}

func TestClassColumns_RejectsUnknownClass(t *testing.T) {
	_, err := classColumns(domain.SeatClass("PREMIUM"))
	assert.ErrorIs(t, err, domain.ErrInvalidSeatClass)

	// Caller-supplied text never reaches SQL assembly.
	_, err = classColumns(domain.SeatClass("economy_available; DROP TABLE flights"))
	assert.ErrorIs(t, err, domain.ErrInvalidSeatClass)
}
