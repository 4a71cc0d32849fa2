package models

// Service is a bookable salon service. Loaded once at startup, never
// mutated afterwards; bookings snapshot price and duration at creation.
type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // in minutes
	Price    float64 `json:"price"`
}

// Stylist is a member of staff with a set of service specialties.
type Stylist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"` // service ids
}

// DayHours is the opening interval for one weekday, in minutes since
// midnight. A closed day has Closed set and the interval zeroed.
type DayHours struct {
	Open   int  `json:"open"`
	Close  int  `json:"close"`
	Closed bool `json:"closed"`
}

// BusinessHours maps lowercase weekday names ("monday"...) to hours.
type BusinessHours map[string]DayHours
