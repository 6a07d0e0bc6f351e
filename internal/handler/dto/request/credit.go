package request

const (
	CreditModeAdd = "add"
	CreditModeSet = "set"
)

type AdjustCreditsRequest struct {
	Type   string `json:"type" binding:"required,equipment_type"`
	Amount int    `json:"amount" binding:"min=0,max=1000"`
	Mode   string `json:"mode" binding:"required,oneof=add set"`
}
