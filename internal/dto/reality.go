package dto

import (
	"github.com/agencypulse/backend/internal/core/views"
	"github.com/shopspring/decimal"
)

// SubScoreResponse is one scored dimension with its ceiling.
type SubScoreResponse struct {
	Points int `json:"points"`
	Max    int `json:"max"`
}

// ScoreBreakdownResponse exposes every sub-score of the composite.
type ScoreBreakdownResponse struct {
	RetainerSafety      SubScoreResponse `json:"retainer_safety"`
	Runway              SubScoreResponse `json:"runway"`
	ClientConcentration SubScoreResponse `json:"client_concentration"`
	Profitability       SubScoreResponse `json:"profitability"`
	CapacityPressure    SubScoreResponse `json:"capacity_pressure"`
}

// RealityScoreResponse is the composite health check: the 0-100 score,
// its status tier, the dimension dragging it down the most, and the
// headline cash figures shown next to it.
type RealityScoreResponse struct {
	Score              int                    `json:"score"`
	Status             string                 `json:"status"`
	PrimaryRisk        string                 `json:"primary_risk"`
	Breakdown          ScoreBreakdownResponse `json:"breakdown"`
	CashOnHand         decimal.Decimal        `json:"cash_on_hand"`
	CommittedRetainers decimal.Decimal        `json:"committed_retainers"`
}

// ToRealityScoreResponse converts a views.RealityScoreView to RealityScoreResponse DTO
func ToRealityScoreResponse(v *views.RealityScoreView) RealityScoreResponse {
	b := v.Score.Breakdown
	return RealityScoreResponse{
		Score:       v.Score.Score,
		Status:      v.Score.Status,
		PrimaryRisk: v.Score.PrimaryRisk,
		Breakdown: ScoreBreakdownResponse{
			RetainerSafety:      SubScoreResponse{b.RetainerSafety.Points, b.RetainerSafety.Max},
			Runway:              SubScoreResponse{b.Runway.Points, b.Runway.Max},
			ClientConcentration: SubScoreResponse{b.ClientConcentration.Points, b.ClientConcentration.Max},
			Profitability:       SubScoreResponse{b.Profitability.Points, b.Profitability.Max},
			CapacityPressure:    SubScoreResponse{b.CapacityPressure.Points, b.CapacityPressure.Max},
		},
		CashOnHand:         v.CashOnHand,
		CommittedRetainers: v.CommittedRetainers,
	}
}
