package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nairacalc/nta-engine/tax"
)

func TestCalculateShareTransfer(t *testing.T) {
	type TC struct {
		reqbody map[string]interface{}
		want    *tax.ShareTransferResult
		errresp *ResponseMsg
	}

	tcs := []TC{
		{
			reqbody: map[string]interface{}{
				"disposalProceeds": float64(100_000_000),
				"costBasis":        float64(40_000_000),
			},
			want: &tax.ShareTransferResult{
				DisposalProceeds: 100_000_000,
				CostBasis:        40_000_000,
				CapitalGain:      60_000_000,
				Eligible:         true,
				ExemptAmount:     10_000_000,
				TaxableGain:      50_000_000,
				Tax:              5_000_000,
			},
			errresp: nil,
		},
		{
			reqbody: map[string]interface{}{
				"disposalProceeds":   float64(120_000_000),
				"costBasis":          float64(90_000_000),
				"reinvestmentAmount": float64(15_000_000),
			},
			want: &tax.ShareTransferResult{
				DisposalProceeds:   120_000_000,
				CostBasis:          90_000_000,
				ReinvestmentAmount: 15_000_000,
				CapitalGain:        30_000_000,
				Eligible:           true,
				ExemptAmount:       25_000_000,
				TaxableGain:        5_000_000,
				Tax:                500_000,
			},
			errresp: nil,
		},
		{
			reqbody: map[string]interface{}{
				"disposalProceeds": float64(200_000_000),
				"costBasis":        float64(120_000_000),
			},
			want: &tax.ShareTransferResult{
				DisposalProceeds: 200_000_000,
				CostBasis:        120_000_000,
				CapitalGain:      80_000_000,
				Eligible:         false,
				TaxableGain:      80_000_000,
				Tax:              8_000_000,
			},
			errresp: nil,
		},
		{
			reqbody: map[string]interface{}{
				"disposalProceeds": "wrong_input",
			},
			want: nil,
			errresp: &ResponseMsg{
				Message: "Bad request",
			},
		},
		{
			reqbody: map[string]interface{}{
				"disposalProceeds": float64(100_000_000),
				"costBasis":        float64(-1),
			},
			want: nil,
			errresp: &ResponseMsg{
				Message: "Bad request",
			},
		},
	}

	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			h := NewTaxHandler(validator.New(), rulesStub{}, new(DBMock), nil)

			val, _ := json.Marshal(tc.reqbody)

			req := httptest.NewRequest(http.MethodPost, "/tax/exemptions/share-transfer", strings.NewReader(string(val)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			e := echo.New()

			goterr := h.CalculateShareTransfer(e.NewContext(req, rec))

			assert.NoError(t, goterr)

			if tc.errresp != nil {
				var errresp ResponseMsg

				err := json.Unmarshal([]byte(rec.Body.String()), &errresp)
				assert.NoError(t, err)

				assert.NotEqual(t, http.StatusOK, rec.Code)

				equal := reflect.DeepEqual(*tc.errresp, errresp)

				if !equal {
					assert.Fail(t, fmt.Sprintf("expected %v, \nbut got %v", *tc.errresp, errresp))
				}

				return
			}

			var got tax.ShareTransferResult

			err := json.Unmarshal([]byte(rec.Body.String()), &got)
			assert.NoError(t, err)

			assert.Equal(t, http.StatusOK, rec.Code)

			equal := reflect.DeepEqual(*tc.want, got)

			if !equal {
				assert.Fail(t, fmt.Sprintf("expected %#v, \nbut got %#v", *tc.want, got))
			}
		})
	}
}

func TestCalculateCompensation(t *testing.T) {
	type TC struct {
		reqbody map[string]interface{}
		want    *tax.CompensationResult
		errresp *ResponseMsg
	}

	tcs := []TC{
		{
			reqbody: map[string]interface{}{
				"totalCompensation": float64(80_000_000),
			},
			want: &tax.CompensationResult{
				TotalCompensation: 80_000_000,
				ExemptPortion:     50_000_000,
				TaxablePortion:    30_000_000,
				Tax:               5_830_000,
				Breakdown: []tax.BandTax{
					{Band: "₦0 - ₦800,000", Income: 800_000, Rate: 0, Tax: 0},
					{Band: "₦800,001 - ₦3,000,000", Income: 2_200_000, Rate: 15, Tax: 330_000},
					{Band: "₦3,000,001 - ₦12,000,000", Income: 9_000_000, Rate: 18, Tax: 1_620_000},
					{Band: "₦12,000,001 - ₦25,000,000", Income: 13_000_000, Rate: 21, Tax: 2_730_000},
					{Band: "₦25,000,001 - ₦50,000,000", Income: 5_000_000, Rate: 23, Tax: 1_150_000},
				},
			},
			errresp: nil,
		},
		{
			reqbody: map[string]interface{}{
				"totalCompensation": float64(30_000_000),
			},
			want: &tax.CompensationResult{
				TotalCompensation: 30_000_000,
				ExemptPortion:     30_000_000,
			},
			errresp: nil,
		},
		{
			reqbody: map[string]interface{}{
				"totalCompensation": "wrong_input",
			},
			want: nil,
			errresp: &ResponseMsg{
				Message: "Bad request",
			},
		},
		{
			reqbody: map[string]interface{}{
				"totalCompensation": float64(-1),
			},
			want: nil,
			errresp: &ResponseMsg{
				Message: "Bad request",
			},
		},
	}

	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			h := NewTaxHandler(validator.New(), rulesStub{}, new(DBMock), nil)

			val, _ := json.Marshal(tc.reqbody)

			req := httptest.NewRequest(http.MethodPost, "/tax/exemptions/compensation", strings.NewReader(string(val)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			e := echo.New()

			goterr := h.CalculateCompensation(e.NewContext(req, rec))

			assert.NoError(t, goterr)

			if tc.errresp != nil {
				var errresp ResponseMsg

				err := json.Unmarshal([]byte(rec.Body.String()), &errresp)
				assert.NoError(t, err)

				assert.NotEqual(t, http.StatusOK, rec.Code)

				equal := reflect.DeepEqual(*tc.errresp, errresp)

				if !equal {
					assert.Fail(t, fmt.Sprintf("expected %v, \nbut got %v", *tc.errresp, errresp))
				}

				return
			}

			var got tax.CompensationResult

			err := json.Unmarshal([]byte(rec.Body.String()), &got)
			assert.NoError(t, err)

			assert.Equal(t, http.StatusOK, rec.Code)

			equal := reflect.DeepEqual(*tc.want, got)

			if !equal {
				assert.Fail(t, fmt.Sprintf("expected %#v, \nbut got %#v", *tc.want, got))
			}
		})
	}
}
