package response

import (
	"venue-booking/internal/domain/credit"
	"venue-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreditsResponse struct {
	Credits map[string]int `json:"credits"`
}

func FromBalances(b credit.Balances) *CreditsResponse {
	out := make(map[string]int, len(b))
	for t, n := range b {
		out[t.String()] = n
	}
	return &CreditsResponse{Credits: out}
}

type CreditHistoryResponse struct {
	Type         string `json:"type"`
	Amount       int    `json:"amount"`
	Kind         string `json:"kind"`
	BalanceAfter int    `json:"balance_after"`
	Source       string `json:"source"`
	CreatedAt    int64  `json:"created_at"`
}

func FromCreditHistory(items []*queries.CreditHistoryItem) []*CreditHistoryResponse {
	res := make([]*CreditHistoryResponse, len(items))
	for i, it := range items {
		r := &CreditHistoryResponse{}
		_ = copier.Copy(r, it)
		r.CreatedAt = it.CreatedAt.Unix()
		res[i] = r
	}
	return res
}

type MembershipResponse struct {
	Type            string `json:"type"`
	TierID          string `json:"tier_id"`
	Active          bool   `json:"active"`
	NextBillingDate int64  `json:"next_billing_date"`
	UpdatedAt       int64  `json:"updated_at"`
}

// FromMemberships drops the processor subscription reference; clients never need it.
func FromMemberships(items []*queries.MembershipView) []*MembershipResponse {
	res := make([]*MembershipResponse, len(items))
	for i, m := range items {
		res[i] = &MembershipResponse{
			Type:            m.Type,
			TierID:          m.TierID,
			Active:          m.Active,
			NextBillingDate: m.NextBillingDate.Unix(),
			UpdatedAt:       m.UpdatedAt.Unix(),
		}
	}
	return res
}

type AdjustCreditsResponse struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Mode    string `json:"mode"`
	Balance int    `json:"balance"`
}
