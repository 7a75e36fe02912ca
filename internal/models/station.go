package models

// Station is immutable railway reference data. A small fraction of stations
// in the source data carry no coordinates, so Lat/Lon are pointers to keep
// "unknown" distinguishable from (0, 0).
type Station struct {
	Code  string
	Name  string
	Lat   *float64
	Lon   *float64
	Zone  string
	State string
}

func NewStation(code, name string, lat, lon *float64) Station {
	return Station{
		Code: code,
		Name: name,
		Lat:  lat,
		Lon:  lon,
	}
}

func (s *Station) HasCoordinates() bool {
	return s != nil && s.Lat != nil && s.Lon != nil
}
