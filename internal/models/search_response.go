package models

import "time"

// SegmentResponse is the JSON shape of one itinerary segment.
type SegmentResponse struct {
	TrainNumber     string   `json:"trainNumber"`
	TrainName       string   `json:"trainName"`
	FromStation     string   `json:"fromStation"`
	FromStationName string   `json:"fromStationName"`
	ToStation       string   `json:"toStation"`
	ToStationName   string   `json:"toStationName"`
	Departure       string   `json:"departure"`
	Arrival         string   `json:"arrival"`
	DayOffset       int      `json:"dayOffset"`
	DistanceKm      int      `json:"distanceKm"`
	DurationMinutes int      `json:"durationMinutes"`
	SeatClasses     []string `json:"seatClasses,omitempty"`
	FarePaise       *int64   `json:"farePaise,omitempty"`
}

// ItineraryResponse is the JSON shape of one ranked itinerary.
type ItineraryResponse struct {
	Segments        []SegmentResponse `json:"segments"`
	Departure       string            `json:"departure"`
	Arrival         string            `json:"arrival"`
	DurationMinutes int               `json:"durationMinutes"`
	DistanceKm      int               `json:"distanceKm"`
	Transfers       int               `json:"transfers"`
	TotalFarePaise  *int64            `json:"totalFarePaise,omitempty"`
}

func NewSegmentResponse(seg Segment) SegmentResponse {
	resp := SegmentResponse{
		TrainNumber:     seg.TrainNumber,
		TrainName:       seg.TrainName,
		FromStation:     seg.FromStation,
		FromStationName: seg.FromStationName,
		ToStation:       seg.ToStation,
		ToStationName:   seg.ToStationName,
		Departure:       seg.Departure.Format(time.RFC3339),
		Arrival:         seg.Arrival.Format(time.RFC3339),
		DayOffset:       seg.DayOffset,
		DistanceKm:      seg.DistanceKm,
		DurationMinutes: int(seg.Duration().Minutes()),
		SeatClasses:     seg.SeatClasses,
	}
	if seg.FareKnown {
		fare := seg.FarePaise
		resp.FarePaise = &fare
	}
	return resp
}

func NewItineraryResponse(it Itinerary) ItineraryResponse {
	segments := make([]SegmentResponse, 0, len(it.Segments))
	for _, seg := range it.Segments {
		segments = append(segments, NewSegmentResponse(seg))
	}

	resp := ItineraryResponse{
		Segments:        segments,
		Departure:       it.Departure().Format(time.RFC3339),
		Arrival:         it.Arrival().Format(time.RFC3339),
		DurationMinutes: int(it.Duration().Minutes()),
		DistanceKm:      it.DistanceKm(),
		Transfers:       it.Transfers,
	}
	if fare, ok := it.Fare(); ok {
		resp.TotalFarePaise = &fare
	}
	return resp
}
