package filter

import (
	"testing"
	"time"

	"github.com/shenikar/city_incidents/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCriteria_EmptyIsUnconstrained(t *testing.T) {
	c, err := NewCriteria(RawCriteria{Categories: []string{"", "  "}, Severity: "0", DateFrom: " ", DateTo: ""})
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "none", c.String())
}

func TestNewCriteria_AllFields(t *testing.T) {
	c, err := NewCriteria(RawCriteria{
		Categories: []string{"Fire", " Flooding "},
		Severity:   "4",
		DateFrom:   "2024-01-15",
		DateTo:     "2024-02-28T10:00:00Z",
		Search:     " leak ",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Fire", "Flooding"}, c.Categories)
	assert.Equal(t, models.SeverityHigh, c.Severity)
	require.NotNil(t, c.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *c.DateFrom)
	require.NotNil(t, c.DateTo)
	assert.Equal(t, time.Date(2024, 2, 28, 10, 0, 0, 0, time.UTC), *c.DateTo)
	assert.Equal(t, "leak", c.Search)
	assert.False(t, c.IsEmpty())
}

func TestNewCriteria_Invalid(t *testing.T) {
	tests := map[string]RawCriteria{
		"severity not a number": {Severity: "high"},
		"severity out of range": {Severity: "6"},
		"negative severity":     {Severity: "-1"},
		"bad dateFrom":          {DateFrom: "15.01.2024"},
		"bad dateTo":            {DateTo: "tomorrow"},
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewCriteria(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCriteria)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2024-02-01T12:30:00")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC), *d)
}
