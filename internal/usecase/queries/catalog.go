package queries

import (
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/pkg/config"
)

type TierView struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Credits     int      `json:"credits"`
	PriceCents  int      `json:"price_cents"`
	DisplayName string   `json:"display_name"`
	Perks       []string `json:"perks"`
	PriceID     string   `json:"price_id,omitempty"`
}

type StripeClientConfig struct {
	PublishableKey string            `json:"publishableKey"`
	Prices         map[string]string `json:"prices"`
}

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

type CatalogQueries interface {
	ListTiers() []TierView
	StripeConfig() StripeClientConfig
}

type catalogQueriesImpl struct {
	stripe config.StripeConfig
}

func NewCatalogQueries(cfg config.StripeConfig) CatalogQueries {
	return &catalogQueriesImpl{stripe: cfg}
}

func (q *catalogQueriesImpl) ListTiers() []TierView {
	tiers := membership.Tiers()
	out := make([]TierView, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, TierView{
			ID:          string(t.ID),
			Type:        t.Type.String(),
			Credits:     t.Credits,
			PriceCents:  t.PriceCents,
			DisplayName: t.DisplayName,
			Perks:       t.Perks,
			PriceID:     q.stripe.PriceIDs[string(t.ID)],
		})
	}
	return out
}

func (q *catalogQueriesImpl) StripeConfig() StripeClientConfig {
	prices := make(map[string]string, len(q.stripe.PriceIDs))
	for k, v := range q.stripe.PriceIDs {
		prices[k] = v
	}
	return StripeClientConfig{PublishableKey: q.stripe.PublishableKey, Prices: prices}
}
