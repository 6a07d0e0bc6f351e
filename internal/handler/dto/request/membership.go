package request

// ActivateMembershipRequest is a manual grant by staff. SubscriptionRef records
// where the grant came from. Without PeriodEnd the membership runs one billing period from now.
type ActivateMembershipRequest struct {
	TierID          string `json:"tier_id" binding:"required,max=64"`
	SubscriptionRef string `json:"subscription_ref" binding:"required,max=255"`
	PeriodEnd       string `json:"period_end" binding:"omitempty,datetime=2006-01-02"`
}
