package stay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/shared/stay"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "four nights", start: "2025-06-01", end: "2025-06-05", want: 4},
		{name: "single night", start: "2025-06-01", end: "2025-06-02", want: 1},
		{name: "across month boundary", start: "2025-06-28", end: "2025-07-02", want: 4},
		{name: "across year boundary", start: "2025-12-30", end: "2026-01-02", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.Nights(date(tt.start), date(tt.end)))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	// price $200/night, 2025-06-01 to 2025-06-05 => 4 nights => $800
	got := stay.TotalPrice(200, date("2025-06-01"), date("2025-06-05"))
	assert.InDelta(t, 800.0, got, 0.001)

	got = stay.TotalPrice(149.50, date("2025-06-01"), date("2025-06-03"))
	assert.InDelta(t, 299.0, got, 0.001)
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, stay.ValidateRange(date("2025-06-01"), date("2025-06-02")))
	assert.Error(t, stay.ValidateRange(date("2025-06-01"), date("2025-06-01")), "zero-night stay")
	assert.Error(t, stay.ValidateRange(date("2025-06-02"), date("2025-06-01")), "inverted range")
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{name: "fully inside", aStart: "2025-07-02", aEnd: "2025-07-04", bStart: "2025-07-01", bEnd: "2025-07-10", want: true},
		{name: "fully covering", aStart: "2025-07-01", aEnd: "2025-07-10", bStart: "2025-07-02", bEnd: "2025-07-04", want: true},
		{name: "partial front", aStart: "2025-06-28", aEnd: "2025-07-03", bStart: "2025-07-01", bEnd: "2025-07-10", want: true},
		{name: "partial back", aStart: "2025-07-08", aEnd: "2025-07-15", bStart: "2025-07-01", bEnd: "2025-07-10", want: true},
		{name: "shared boundary counts", aStart: "2025-07-10", aEnd: "2025-07-12", bStart: "2025-07-01", bEnd: "2025-07-10", want: true},
		{name: "shared boundary other side", aStart: "2025-06-28", aEnd: "2025-07-01", bStart: "2025-07-01", bEnd: "2025-07-10", want: true},
		{name: "disjoint before", aStart: "2025-06-01", aEnd: "2025-06-05", bStart: "2025-07-01", bEnd: "2025-07-10", want: false},
		{name: "disjoint after", aStart: "2025-07-11", aEnd: "2025-07-15", bStart: "2025-07-01", bEnd: "2025-07-10", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stay.Overlaps(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// symmetric
			got = stay.Overlaps(date(tt.bStart), date(tt.bEnd), date(tt.aStart), date(tt.aEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := stay.ParseDate("2025-07-10")
	assert.NoError(t, err)
	assert.Equal(t, date("2025-07-10"), parsed)

	_, err = stay.ParseDate("10/07/2025")
	assert.Error(t, err)
}
