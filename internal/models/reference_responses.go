package models

// StationResponse is the JSON shape of a station reference lookup.
type StationResponse struct {
	Code  string   `json:"code"`
	Name  string   `json:"name"`
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
	Zone  string   `json:"zone,omitempty"`
	State string   `json:"state,omitempty"`
}

func NewStationResponse(s *Station) StationResponse {
	return StationResponse{
		Code:  s.Code,
		Name:  s.Name,
		Lat:   s.Lat,
		Lon:   s.Lon,
		Zone:  s.Zone,
		State: s.State,
	}
}

// StopResponse is one timetable row of a train detail lookup. Clock times are
// "HH:MM" strings, empty where the timetable lists none.
type StopResponse struct {
	Seq         int    `json:"seq"`
	StationCode string `json:"stationCode"`
	Arrival     string `json:"arrival,omitempty"`
	Departure   string `json:"departure,omitempty"`
	DayOffset   int    `json:"dayOffset"`
	DistanceKm  int    `json:"distanceKm"`
	HaltMinutes int    `json:"haltMinutes,omitempty"`
	Platform    string `json:"platform,omitempty"`
}

// TrainResponse is the JSON shape of a train reference lookup.
type TrainResponse struct {
	Number         string         `json:"number"`
	Name           string         `json:"name"`
	Type           string         `json:"type,omitempty"`
	Classes        []string       `json:"classes,omitempty"`
	FarePaisePerKm int64          `json:"farePaisePerKm,omitempty"`
	Stops          []StopResponse `json:"stops"`
}

func NewTrainResponse(t *Train) TrainResponse {
	stops := make([]StopResponse, 0, len(t.Stops))
	for _, stop := range t.Stops {
		stops = append(stops, StopResponse{
			Seq:         stop.Seq,
			StationCode: stop.StationCode,
			Arrival:     stop.Arrival.String(),
			Departure:   stop.Departure.String(),
			DayOffset:   stop.DayOffset,
			DistanceKm:  stop.DistanceKm,
			HaltMinutes: stop.HaltMinutes,
			Platform:    stop.Platform,
		})
	}
	return TrainResponse{
		Number:         t.Number,
		Name:           t.Name,
		Type:           t.Type,
		Classes:        t.Classes,
		FarePaisePerKm: t.FarePaisePerKm,
		Stops:          stops,
	}
}
