package age

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestYears_DayBeforeBirthday(t *testing.T) {
	if got := Years(d(1990, 6, 15), d(2024, 6, 14)); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
}

func TestYears_OnBirthday(t *testing.T) {
	if got := Years(d(1990, 6, 15), d(2024, 6, 15)); got != 34 {
		t.Errorf("expected 34, got %d", got)
	}
}

func TestYears_AfterBirthday(t *testing.T) {
	if got := Years(d(1990, 6, 15), d(2024, 12, 31)); got != 34 {
		t.Errorf("expected 34, got %d", got)
	}
}

func TestYears_MonthBeforeBirthMonth(t *testing.T) {
	if got := Years(d(1990, 6, 15), d(2024, 5, 20)); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
}

func TestYears_SameYear(t *testing.T) {
	if got := Years(d(2024, 1, 10), d(2024, 11, 1)); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestYears_NaiveMinusOneExactlyWhenLexicographicallyBefore(t *testing.T) {
	birth := d(1980, 3, 10)
	for _, tc := range []struct {
		now  time.Time
		want int
	}{
		{d(2020, 3, 9), 39},
		{d(2020, 3, 10), 40},
		{d(2020, 3, 11), 40},
		{d(2020, 2, 28), 39},
		{d(2020, 4, 1), 40},
	} {
		if got := Years(birth, tc.now); got != tc.want {
			t.Errorf("Years(%v, %v) = %d, want %d", birth, tc.now, got, tc.want)
		}
	}
}
