package domain

import (
	"math"
	"testing"
)

func TestDistanceKmIdenticalPoints(t *testing.T) {
	points := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 37.5665, Lng: 126.9780},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 89.9, Lng: -179.9},
	}

	for _, p := range points {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("DistanceKm(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Lat: 37.5665, Lng: 126.9780}, {Lat: 37.4979, Lng: 127.0276}},
		{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}},
		{{Lat: -45, Lng: 170}, {Lat: 45, Lng: -170}},
	}

	for _, pair := range pairs {
		ab := DistanceKm(pair[0], pair[1])
		ba := DistanceKm(pair[1], pair[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("DistanceKm not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKmOneDegreeLatitudeAtEquator(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 1, Lng: 0}

	got := DistanceKm(a, b)

	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	want := earthRadiusKm * math.Pi / 180
	if math.Abs(got-want)/want > 0.01 {
		t.Errorf("DistanceKm = %v, want %v within 1%%", got, want)
	}
}

func TestDistanceKmSeoulCityHallToGangnam(t *testing.T) {
	cityHall := Coordinate{Lat: 37.5665, Lng: 126.9780}
	gangnam := Coordinate{Lat: 37.4979, Lng: 127.0276}

	got := DistanceKm(cityHall, gangnam)

	// Roughly 8.7 km apart.
	if got < 8 || got > 10 {
		t.Errorf("DistanceKm = %v, want between 8 and 10", got)
	}
}

func TestCoordinateValid(t *testing.T) {
	valid := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 90, Lng: 180},
		{Lat: -90, Lng: -180},
	}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("Coordinate %v should be valid", c)
		}
	}

	invalid := []Coordinate{
		{Lat: 90.1, Lng: 0},
		{Lat: 0, Lng: 180.1},
		{Lat: -91, Lng: 0},
		{Lat: 0, Lng: -181},
	}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("Coordinate %v should be invalid", c)
		}
	}
}
