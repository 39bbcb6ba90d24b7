package domain

import "time"

// A place candidate resolved from a free-text query.
// Produced once per search and consumed immediately; never persisted.
type ResolvedPlace struct {
	Coordinate Coordinate
	Name       string
}

// Korean legal-district code pair as required by the open-data provider.
// District always begins with Province (first 2 of 5 digits).
type RegionCode struct {
	Province string // 시도, 2 digits
	District string // 시군구, 5 digits
}

// Raw charger record as returned by the open-data provider, one per
// response item. Coordinates stay strings until the ranking step because
// the provider sends "N/A" for chargers without a fix.
type ChargerRecord struct {
	StationID     string
	Name          string
	Address       string
	AddressDetail string
	Location      string
	Lat           string
	Lng           string
	UseTime       string
	OperatorName  string
	Output        string
	ChargerType   string // raw connector-type code, e.g. "04"
	Status        string // raw status code, e.g. "1"
}

// A charger record decoded and annotated with the distance from the
// search anchor. Built per search; the ordered result list holds only
// stations within the configured radius.
type Station struct {
	ID             string
	Name           string
	Address        string
	ChargerTypes   []string
	OperatingHours string
	Lat            float64
	Lng            float64
	DistanceKm     float64
	Status         string
	OperatorName   string
}

// A station bookmarked by the user.
type Favorite struct {
	StationID string
	Name      string
	Address   string
	CreatedAt time.Time
}

// A user review for a station. Rating is 1..5.
type Review struct {
	ID         int64
	StationID  string
	Rating     int
	Comment    string
	AuthorName string
	CreatedAt  time.Time
}
