package response

import (
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Hours            int             `json:"hours"`
	Station          string          `json:"station"`
	Drivers          int             `json:"drivers"`
	Contact          ContactResponse `json:"contact"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference *string         `json:"payment_reference,omitempty"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
	CreditsConsumed  int             `json:"credits_consumed"`
	CreatedAt        int64           `json:"created_at"`
	UpdatedAt        int64           `json:"updated_at"`
	CancelledAt      *int64          `json:"cancelled_at,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.CopyWithOption(&res, v, copier.Option{IgnoreEmpty: true})
	res.ID = v.ID.String()
	res.UserID = v.UserID.String()
	res.Contact = ContactResponse{Name: v.ContactName, Email: v.ContactEmail, Phone: v.ContactPhone}
	res.CreatedAt = v.CreatedAt.Unix()
	res.UpdatedAt = v.UpdatedAt.Unix()
	res.CancelledAt = nil
	if v.CancelledAt != nil {
		at := v.CancelledAt.Unix()
		res.CancelledAt = &at
	}
	return &res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type CancelBookingResponse struct {
	BookingID string         `json:"booking_id"`
	Status    string         `json:"status"`
	Policy    string         `json:"refund_policy"`
	Credits   map[string]int `json:"credits_refunded,omitempty"`
}

func FromCancelResult(r *commands.CancelBookingResult) *CancelBookingResponse {
	credits := make(map[string]int, len(r.Credits))
	for t, n := range r.Credits {
		credits[t.String()] = n
	}
	return &CancelBookingResponse{
		BookingID: r.BookingID.String(),
		Status:    "cancelled",
		Policy:    string(r.Policy),
		Credits:   credits,
	}
}
