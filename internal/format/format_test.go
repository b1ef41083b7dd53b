package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{85_000_000, "$85.0M"},
		{1_200_000, "$1.2M"},
		{1_000_000, "$1.0M"},
		{999_999, "$1000K"},
		{340_000, "$340K"},
		{1_000, "$1K"},
		{950, "$950"},
		{1234567, "$1.2M"},
		{0, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.value))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "15 Jun 1992", Date(date(1992, 6, 15)))
	assert.Equal(t, "01 Jan 2026", Date(date(2026, 1, 1)))
}

func TestAge(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday not yet reached this year", date(1992, 6, 15), 32},
		{"birthday today", date(1992, 6, 1), 33},
		{"birthday already passed", date(1987, 12, 19), 37},
		{"zero date", time.Time{}, 0},
		{"born after now", date(2030, 1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.dob, testNow))
		})
	}
}

func TestExpiringWithin(t *testing.T) {
	tests := []struct {
		name   string
		end    time.Time
		months int
		want   bool
	}{
		{"inside window", testNow.AddDate(0, 3, 0), 6, true},
		{"exactly at boundary", testNow.AddDate(0, 6, 0), 6, true},
		{"one day past boundary", testNow.AddDate(0, 6, 1), 6, false},
		{"ends now", testNow, 6, true},
		{"already expired", testNow.AddDate(0, -1, 0), 6, false},
		{"zero end date", time.Time{}, 6, false},
		{"non-positive window falls back to default", testNow.AddDate(0, 5, 0), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpiringWithin(tt.end, testNow, tt.months))
		})
	}
}

func TestExpiringSoon(t *testing.T) {
	assert.True(t, ExpiringSoon(testNow.AddDate(0, 2, 0), testNow))
	assert.False(t, ExpiringSoon(testNow.AddDate(0, 7, 0), testNow))
}
