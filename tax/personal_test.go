package tax

import "testing"

func TestCalculatePersonalTax(t *testing.T) {
	type TC struct {
		name            string
		input           PersonalTaxInput
		expectedTaxable float64
		expectedTax     float64
		expectedNet     float64
	}

	tcs := []TC{
		{
			name:            "salary with no deductions",
			input:           PersonalTaxInput{AnnualIncome: 3_000_000},
			expectedTaxable: 3_000_000,
			expectedTax:     330_000,
			expectedNet:     2_670_000,
		},
		{
			name: "pension, NHF and rent relief together",
			input: PersonalTaxInput{
				AnnualIncome: 5_000_000,
				ApplyPension: true,
				ApplyNHF:     true,
				AnnualRent:   1_200_000,
			},
			expectedTaxable: 4_235_000,
			expectedTax:     552_300,
			expectedNet:     3_682_700,
		},
		{
			name:            "zero income",
			input:           PersonalTaxInput{AnnualIncome: 0},
			expectedTaxable: 0,
			expectedTax:     0,
			expectedNet:     0,
		},
		{
			name:            "income below the tax-free threshold",
			input:           PersonalTaxInput{AnnualIncome: 700_000},
			expectedTaxable: 700_000,
			expectedTax:     0,
			expectedNet:     700_000,
		},
		{
			name: "deductions above income floor taxable at zero",
			input: PersonalTaxInput{
				AnnualIncome: 1_000_000,
				AdditionalDeductions: []Deduction{
					{ID: "d1", Description: "equipment", Amount: 1_500_000},
				},
			},
			expectedTaxable: 0,
			expectedTax:     0,
			expectedNet:     -500_000,
		},
		{
			name: "rent relief is capped",
			input: PersonalTaxInput{
				AnnualIncome: 10_000_000,
				AnnualRent:   5_000_000,
			},
			expectedTaxable: 9_500_000,
			expectedTax:     1_500_000,
			expectedNet:     8_000_000,
		},
		{
			name: "additional deduction lines are summed",
			input: PersonalTaxInput{
				AnnualIncome: 2_000_000,
				AdditionalDeductions: []Deduction{
					{ID: "d1", Description: "professional dues", Amount: 100_000},
					{ID: "d2", Description: "training", Amount: 50_000},
				},
			},
			expectedTaxable: 1_850_000,
			expectedTax:     157_500,
			expectedNet:     1_692_500,
		},
		{
			name: "scanned receipt deductions reduce taxable income",
			input: PersonalTaxInput{
				AnnualIncome:  2_000_000,
				OCRDeductions: 200_000,
			},
			expectedTaxable: 1_800_000,
			expectedTax:     150_000,
			expectedNet:     1_650_000,
		},
		{
			name:            "contributions are not deducted unless opted in",
			input:           PersonalTaxInput{AnnualIncome: 3_000_000, ApplyPension: false, ApplyNHF: false},
			expectedTaxable: 3_000_000,
			expectedTax:     330_000,
			expectedNet:     2_670_000,
		},
	}

	rules := NTA2025Rules()

	t.Parallel()

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := rules.CalculatePersonalTax(tc.input)

			if got.TaxableIncome != tc.expectedTaxable {
				t.Errorf("Wrong taxable income expected %v, but got %v", tc.expectedTaxable, got.TaxableIncome)
			}

			if got.TotalTax != tc.expectedTax {
				t.Errorf("Wrong result expected %v, but got %v", tc.expectedTax, got.TotalTax)
			}

			if got.NetIncome != tc.expectedNet {
				t.Errorf("Wrong net income expected %v, but got %v", tc.expectedNet, got.NetIncome)
			}
		})
	}
}

func TestCalculatePersonalTaxItemisesDeductions(t *testing.T) {
	rules := NTA2025Rules()

	got := rules.CalculatePersonalTax(PersonalTaxInput{
		AnnualIncome: 5_000_000,
		ApplyPension: true,
		ApplyNHF:     true,
		AnnualRent:   1_200_000,
	})

	if got.PensionDeduction != 400_000 {
		t.Errorf("Wrong pension deduction expected %v, but got %v", 400_000, got.PensionDeduction)
	}

	if got.NHFDeduction != 125_000 {
		t.Errorf("Wrong NHF deduction expected %v, but got %v", 125_000, got.NHFDeduction)
	}

	if got.RentRelief != 240_000 {
		t.Errorf("Wrong rent relief expected %v, but got %v", 240_000, got.RentRelief)
	}

	if got.TotalDeductions != 765_000 {
		t.Errorf("Wrong total deductions expected %v, but got %v", 765_000, got.TotalDeductions)
	}

	if got.GrossIncome != 5_000_000 {
		t.Errorf("Wrong gross income expected %v, but got %v", 5_000_000, got.GrossIncome)
	}
}

func TestCalculatePersonalTaxEffectiveRate(t *testing.T) {
	rules := NTA2025Rules()

	got := rules.CalculatePersonalTax(PersonalTaxInput{AnnualIncome: 3_000_000})

	if got.EffectiveRate != 11 {
		t.Errorf("Wrong effective rate expected %v, but got %v", 11, got.EffectiveRate)
	}

	zero := rules.CalculatePersonalTax(PersonalTaxInput{AnnualIncome: 0})

	if zero.EffectiveRate != 0 {
		t.Errorf("Wrong effective rate expected %v, but got %v", 0, zero.EffectiveRate)
	}
}
