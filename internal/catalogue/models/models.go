package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

// AvailablePolicy is a catalogue entry customers can request. ValidityPeriod
// is in whole months (12, 24, 36...) and decides the expiry of issued
// policies.
type AvailablePolicy struct {
	ID              domain.AvailablePolicyID `json:"id"`
	Name            string                   `json:"name"`
	CoverageDetails string                   `json:"coverageDetails"`
	BasePremium     decimal.Decimal          `json:"basePremium"`
	ValidityPeriod  int                      `json:"validityPeriod"`
}

// AvailablePolicyInput creates or replaces a catalogue entry.
type AvailablePolicyInput struct {
	Name            string          `json:"name"`
	CoverageDetails string          `json:"coverageDetails"`
	BasePremium     decimal.Decimal `json:"basePremium"`
	ValidityPeriod  int             `json:"validityPeriod"`
}

// MaxValidityMonths bounds the expiry date arithmetic.
const MaxValidityMonths = 1200

func (in *AvailablePolicyInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.CoverageDetails = strings.TrimSpace(in.CoverageDetails)
	in.BasePremium = in.BasePremium.Round(2)
}

func (in *AvailablePolicyInput) Validate() error {
	if in.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if !in.BasePremium.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "base premium must be positive")
	}
	if in.ValidityPeriod < 1 || in.ValidityPeriod > MaxValidityMonths {
		return dErrors.New(dErrors.CodeValidation, "validity period must be between 1 and 1200 months")
	}
	return nil
}

func (in AvailablePolicyInput) ToPolicy(id domain.AvailablePolicyID) *AvailablePolicy {
	return &AvailablePolicy{
		ID:              id,
		Name:            in.Name,
		CoverageDetails: in.CoverageDetails,
		BasePremium:     in.BasePremium,
		ValidityPeriod:  in.ValidityPeriod,
	}
}
