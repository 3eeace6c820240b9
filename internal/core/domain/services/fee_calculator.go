package services

import (
	"depot/internal/core/domain/model/parcel"
)

const (
	// SurchargeDaysDivisor turns days in depot into the surcharge fraction: days/100.
	SurchargeDaysDivisor = 100

	// DiscountFactor is applied to parcels whose identifier starts with C.
	DiscountFactor = 0.8
)

// FeeCalculator prices the release of a parcel.
//
// Fee rules:
//   - base = length * width * height * weight
//   - each day in depot adds 1% of base, linearly and uncapped
//   - identifiers starting with C get 20% off the day-adjusted fee
//
// The calculation is total: it accepts zero and negative inputs unchanged.
//
// Example:
//
//	p, _ := parcel.NewParcel(kernel.MustNewParcelID("C200"), 2, 3, 4, 5, 10)
//	fee := services.NewFeeCalculator().CalculateFee(p) // 105.6
type FeeCalculator struct{}

// NewFeeCalculator returns the depot's fee calculator.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// CalculateFee returns the collection fee for p.
func (FeeCalculator) CalculateFee(p *parcel.Parcel) float64 {
	base := p.Length() * p.Width() * p.Height() * p.Weight()
	fee := base * (1 + float64(p.DaysInDepot())/SurchargeDaysDivisor)

	if p.ID().IsDiscounted() {
		fee *= DiscountFactor
	}
	return fee
}
