package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMealTypeForHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, MealTypeBreakfast},
		{10, MealTypeBreakfast},
		{11, MealTypeLunch},
		{15, MealTypeLunch},
		{16, MealTypeSnacks},
		{18, MealTypeSnacks},
		{19, MealTypeDinner},
		{23, MealTypeDinner},
		{0, MealTypeDinner},
		{5, MealTypeDinner},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MealTypeForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestDayTypeFor(t *testing.T) {
	assert.Equal(t, DayTypeWeekday, DayTypeFor(time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC))) // Wednesday
	assert.Equal(t, DayTypeWeekend, DayTypeFor(time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC))) // Saturday
	assert.Equal(t, DayTypeWeekend, DayTypeFor(time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC))) // Sunday
	assert.Equal(t, DayTypeWeekday, DayTypeFor(time.Date(2024, 3, 18, 12, 0, 0, 0, time.UTC))) // Monday
}

func TestIsPeakHour(t *testing.T) {
	peak := map[int]bool{13: true, 14: true, 20: true, 21: true}
	for hour := 0; hour < 24; hour++ {
		assert.Equal(t, peak[hour], IsPeakHour(hour), "hour %d", hour)
	}
}

func TestIsNight(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour >= 22 || hour <= 6
		assert.Equal(t, want, IsNight(hour), "hour %d", hour)
	}
}
