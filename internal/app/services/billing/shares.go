package billing

import (
	"math"

	"medibill-service/internal/pkg/exceptions"
)

// ShareInput carries the configured split percentages together with the
// bill subtotal. HasBroker reflects whether the bill references a broker,
// not whether the configured broker percentage is zero.
type ShareInput struct {
	Subtotal    float64
	HospitalPct float64
	DoctorPct   float64
	BrokerPct   float64
	HasBroker   bool
}

// ShareResult holds the three computed shares plus the bill total. Each
// share is rounded independently, so the sum may drift from TotalAmount
// by at most a cent per share.
type ShareResult struct {
	HospitalShare float64
	DoctorShare   float64
	BrokerShare   float64
	TotalAmount   float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateShares splits a bill subtotal between hospital, doctor and
// broker. When the bill has no broker, the broker percentage folds into
// the hospital's before any share is computed, so the full subtotal is
// still distributed.
func CalculateShares(in ShareInput) (ShareResult, error) {
	if in.Subtotal < 0 || math.IsNaN(in.Subtotal) || math.IsInf(in.Subtotal, 0) {
		return ShareResult{}, exceptions.ErrInvalidSubtotal(nil)
	}

	hospitalPct := in.HospitalPct
	brokerPct := in.BrokerPct
	if !in.HasBroker {
		hospitalPct += brokerPct
		brokerPct = 0
	}

	return ShareResult{
		HospitalShare: round2(in.Subtotal * hospitalPct / 100),
		DoctorShare:   round2(in.Subtotal * in.DoctorPct / 100),
		BrokerShare:   round2(in.Subtotal * brokerPct / 100),
		TotalAmount:   round2(in.Subtotal),
	}, nil
}
