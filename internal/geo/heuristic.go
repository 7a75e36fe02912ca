package geo

import (
	"math"

	"railplan.onerail.org/internal/models"
)

const earthRadiusKm = 6371.0

// DefaultAvgSpeedKmph is the assumed network-scale average speed used to turn
// great-circle distance into a remaining-time lower bound. No train in the
// network averages more than this over a leg, which keeps the bound admissible.
const DefaultAvgSpeedKmph = 80.0

// HaversineKm returns the great-circle distance between two coordinates in
// kilometres.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Heuristic estimates a lower bound on remaining travel time between two
// stations. The estimate never exceeds the true minimum travel time, which
// the best-first search relies on for optimality.
type Heuristic struct {
	speedKmph float64
}

func NewHeuristic(speedKmph float64) Heuristic {
	if speedKmph <= 0 {
		speedKmph = DefaultAvgSpeedKmph
	}
	return Heuristic{speedKmph: speedKmph}
}

// EstimateMinutes returns the estimated minimum remaining minutes from one
// station to another. When either station lacks coordinates it returns 0 and
// the search degrades to uninformed ordering for that station.
func (h Heuristic) EstimateMinutes(from, to *models.Station) float64 {
	if !from.HasCoordinates() || !to.HasCoordinates() {
		return 0
	}
	km := HaversineKm(*from.Lat, *from.Lon, *to.Lat, *to.Lon)
	return km / h.speedKmph * 60
}
