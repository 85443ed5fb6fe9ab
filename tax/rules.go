// Package tax implements the Nigeria Tax Act 2025 computation engine:
// progressive personal income tax, company income tax with size
// classification and sector incentives, capital-gains and compensation
// exemptions, and advisory recommendations. Every calculator is a pure
// function of a Rules value and its input; nothing in this package performs
// I/O or keeps mutable state.
package tax

import (
	"errors"
	"fmt"
)

// UnboundedBandMax marks a band with no upper limit.
const UnboundedBandMax = -1

// Band is one progressive tax band. Max is the inclusive upper bound of the
// band, or UnboundedBandMax for the top band.
type Band struct {
	Rate float64 `json:"rate"`
	Max  float64 `json:"max"`
}

// CompanySize classifies a company for corporate income tax purposes.
type CompanySize string

const (
	CompanySizeSmall CompanySize = "small"
	CompanySizeBig   CompanySize = "big"
	CompanySizeLarge CompanySize = "large"
)

// BusinessSector is a closed tag set. Unrecognized tags map to SectorOther,
// which belongs to no incentive-eligible set, so a typo can never be
// mistaken for an eligible sector.
type BusinessSector string

const (
	SectorGeneral         BusinessSector = "general"
	SectorAgriculture     BusinessSector = "agriculture"
	SectorMining          BusinessSector = "mining"
	SectorManufacturing   BusinessSector = "manufacturing"
	SectorGasUtilization  BusinessSector = "gas_utilization"
	SectorExportOriented  BusinessSector = "export_oriented"
	SectorRenewableEnergy BusinessSector = "renewable_energy"
	SectorHealthcare      BusinessSector = "healthcare"
	SectorOther           BusinessSector = "other"
)

var knownSectors = map[BusinessSector]bool{
	SectorGeneral:         true,
	SectorAgriculture:     true,
	SectorMining:          true,
	SectorManufacturing:   true,
	SectorGasUtilization:  true,
	SectorExportOriented:  true,
	SectorRenewableEnergy: true,
	SectorHealthcare:      true,
	SectorOther:           true,
}

// ParseBusinessSector normalizes a raw sector tag. An empty tag is the
// neutral SectorGeneral; anything outside the known set is SectorOther.
func ParseBusinessSector(raw string) BusinessSector {
	if raw == "" {
		return SectorGeneral
	}
	s := BusinessSector(raw)
	if !knownSectors[s] {
		return SectorOther
	}
	return s
}

// Rules is one tax year's complete ruleset. Calculators are methods on a
// Rules value, so swapping in a hypothetical future ruleset never touches
// calculation code.
type Rules struct {
	Year int `json:"year"`

	// Personal income tax.
	PersonalBands  []Band  `json:"personalBands"`
	PensionRate    float64 `json:"pensionRate"`
	NHFRate        float64 `json:"nhfRate"`
	RentReliefRate float64 `json:"rentReliefRate"`
	RentReliefCap  float64 `json:"rentReliefCap"`

	// Company classification and corporate income tax.
	SmallCompanyTurnoverMax float64 `json:"smallCompanyTurnoverMax"` // inclusive
	SmallCompanyAssetsMax   float64 `json:"smallCompanyAssetsMax"`   // exclusive
	LargeCompanyTurnoverMin float64 `json:"largeCompanyTurnoverMin"` // exclusive
	CITRate                 float64 `json:"citRate"`
	DevelopmentLevyRate     float64 `json:"developmentLevyRate"`
	MinimumETR              float64 `json:"minimumETR"`
	EDICreditRate           float64 `json:"ediCreditRate"`

	// Exemptions.
	ShareProceedsExemptionMax float64 `json:"shareProceedsExemptionMax"`
	ShareGainExemptionCap     float64 `json:"shareGainExemptionCap"`
	CGTRate                   float64 `json:"cgtRate"`
	CompensationExemptionCap  float64 `json:"compensationExemptionCap"`

	// Sector incentive eligibility.
	TaxHolidaySectors []BusinessSector `json:"taxHolidaySectors"`
	EDISectors        []BusinessSector `json:"ediSectors"`
}

// NTA2025Rules returns the ruleset enacted by the Nigeria Tax Act 2025.
func NTA2025Rules() Rules {
	return Rules{
		Year: 2025,
		PersonalBands: []Band{
			{Rate: 0, Max: 800_000},
			{Rate: 0.15, Max: 3_000_000},
			{Rate: 0.18, Max: 12_000_000},
			{Rate: 0.21, Max: 25_000_000},
			{Rate: 0.23, Max: 50_000_000},
			{Rate: 0.25, Max: UnboundedBandMax},
		},
		PensionRate:    0.08,
		NHFRate:        0.025,
		RentReliefRate: 0.20,
		RentReliefCap:  500_000,

		SmallCompanyTurnoverMax: 100_000_000,
		SmallCompanyAssetsMax:   250_000_000,
		LargeCompanyTurnoverMin: 50_000_000_000,
		CITRate:                 0.30,
		DevelopmentLevyRate:     0.04,
		MinimumETR:              0.15,
		EDICreditRate:           0.05,

		ShareProceedsExemptionMax: 150_000_000,
		ShareGainExemptionCap:     10_000_000,
		CGTRate:                   0.10,
		CompensationExemptionCap:  50_000_000,

		TaxHolidaySectors: []BusinessSector{
			SectorAgriculture,
			SectorMining,
			SectorGasUtilization,
			SectorExportOriented,
		},
		EDISectors: []BusinessSector{
			SectorAgriculture,
			SectorMining,
			SectorManufacturing,
			SectorRenewableEnergy,
			SectorHealthcare,
		},
	}
}

// Validate reports whether the ruleset is structurally usable. It guards
// configuration loading; calculators assume a valid ruleset.
func (r Rules) Validate() error {
	if len(r.PersonalBands) == 0 {
		return errors.New("personalBands cannot be empty")
	}

	for i, b := range r.PersonalBands {
		last := i == len(r.PersonalBands)-1

		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("personalBands[%d]: rate %v outside [0,1]", i, b.Rate)
		}

		if last {
			if b.Max != UnboundedBandMax {
				return errors.New("personalBands: top band must be unbounded")
			}
			continue
		}

		if b.Max <= 0 {
			return fmt.Errorf("personalBands[%d]: max must be positive", i)
		}

		if i > 0 && b.Max <= r.PersonalBands[i-1].Max {
			return fmt.Errorf("personalBands[%d]: max %v does not ascend", i, b.Max)
		}
	}

	rates := map[string]float64{
		"pensionRate":         r.PensionRate,
		"nhfRate":             r.NHFRate,
		"rentReliefRate":      r.RentReliefRate,
		"citRate":             r.CITRate,
		"developmentLevyRate": r.DevelopmentLevyRate,
		"minimumETR":          r.MinimumETR,
		"ediCreditRate":       r.EDICreditRate,
		"cgtRate":             r.CGTRate,
	}

	for name, rate := range rates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s: %v outside [0,1]", name, rate)
		}
	}

	caps := map[string]float64{
		"rentReliefCap":             r.RentReliefCap,
		"smallCompanyTurnoverMax":   r.SmallCompanyTurnoverMax,
		"smallCompanyAssetsMax":     r.SmallCompanyAssetsMax,
		"largeCompanyTurnoverMin":   r.LargeCompanyTurnoverMin,
		"shareProceedsExemptionMax": r.ShareProceedsExemptionMax,
		"shareGainExemptionCap":     r.ShareGainExemptionCap,
		"compensationExemptionCap":  r.CompensationExemptionCap,
	}

	for name, amount := range caps {
		if amount < 0 {
			return fmt.Errorf("%s: negative amount %v", name, amount)
		}
	}

	for _, s := range r.TaxHolidaySectors {
		if !knownSectors[s] {
			return fmt.Errorf("taxHolidaySectors: unknown sector %q", s)
		}
	}

	for _, s := range r.EDISectors {
		if !knownSectors[s] {
			return fmt.Errorf("ediSectors: unknown sector %q", s)
		}
	}

	return nil
}
