// Package age computes whole-year ages from birth dates.
package age

import "time"

// Years returns the number of whole calendar years between birth and now.
// The naive year difference is reduced by one when now's month/day falls
// before birth's month/day, so a birthday that has not yet occurred this
// year does not count.
func Years(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// YearsAt is a convenience wrapper using the current wall clock.
func YearsAt(birth time.Time) int {
	return Years(birth, time.Now())
}
