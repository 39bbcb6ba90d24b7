package dto

type SearchRequest struct {
	Location    string   `json:"location,omitempty"`
	UseGPS      bool     `json:"use_gps"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ChargerType string   `json:"charger_type,omitempty"`
	ClientID    string   `json:"client_id,omitempty"`
}

type StationResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	ChargerTypes   []string `json:"charger_types"`
	OperatingHours string   `json:"operating_hours"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	DistanceKm     float64  `json:"distance_km"`
	Status         string   `json:"status"`
	OperatorName   string   `json:"operator_name"`
}

type SearchResponse struct {
	Stations []StationResponse `json:"stations"`
}
