package ttp

// Location represents an enrollment center returned by the locations endpoint.
type Location struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	City        string `json:"city"`
	State       string `json:"state"`
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
	TzData      string `json:"tzData"`
}

// Slot represents one open appointment window at a location. Timestamps are
// epoch milliseconds.
type Slot struct {
	LocationID     int   `json:"locationId"`
	StartTimestamp int64 `json:"startTimestamp"`
	EndTimestamp   int64 `json:"endTimestamp"`
	Active         bool  `json:"active"`
	Duration       int   `json:"duration"`
	RemoteInd      bool  `json:"remoteInd"`
}
