// Package model defines the core domain records used throughout the application.
package model

// Country is an immutable reference record for one economy.
// PPPFactor is relative to the US baseline of 1.0 and is strictly positive.
// Wages are annual USD figures.
type Country struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	PPPFactor        float64 `json:"pppFactor"`
	ProfessionalWage float64 `json:"professionalWage"`
	MinimumWage      float64 `json:"minimumWage"`
}

// Location is a point in (lat, lng) space used to resolve the user's
// reference country.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
