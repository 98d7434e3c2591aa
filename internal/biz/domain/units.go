package domain

import "math"

// GlassMilliliters is the assumed volume of one glass
const GlassMilliliters = 250

// HoursToMinutes converts a duration in whole hours to minutes
func HoursToMinutes(hours int) int {
	return hours * 60
}

// LitersToMilliliters converts liters to whole milliliters
func LitersToMilliliters(liters float64) int {
	return int(math.Round(liters * 1000))
}

// GlassesToMilliliters converts a glass count to milliliters
func GlassesToMilliliters(glasses int) int {
	return glasses * GlassMilliliters
}
