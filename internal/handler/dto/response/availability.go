package response

import (
	"venue-booking/internal/domain/availability"
	"venue-booking/internal/domain/venue"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
	Total     int    `json:"total"`
	Passed    bool   `json:"passed"`
}

type AvailabilityResponse struct {
	Date    string         `json:"date"`
	Station string         `json:"station"`
	Slots   []SlotResponse `json:"slots"`
	Demo    bool           `json:"demo,omitempty"`
}

func FromAvailabilityDay(d *availability.Day) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(d.Hours))
	_ = copier.Copy(&slots, &d.Hours)
	return &AvailabilityResponse{
		Date:    d.Date.Format(venue.DateLayout),
		Station: d.Station.String(),
		Slots:   slots,
		Demo:    d.Demo,
	}
}
