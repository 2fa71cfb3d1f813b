package document_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
)

func TestDocument_Totals(t *testing.T) {
	d := &document.Document{
		DocType: document.DocTypeEstimate,
		LineItems: []document.LineItem{
			{ID: uuid.New(), Name: "Labor", Qty: 2, Rate: 50},
			{ID: uuid.New(), Name: "Materials", Qty: 1, Rate: 30},
		},
	}

	assert.Equal(t, document.Amount(130), d.Subtotal())
	assert.Equal(t, document.Amount(130), d.Total())

	override := document.Amount(200)
	d.Pricing.TotalCost = &override

	assert.Equal(t, document.Amount(200), d.Total())
	assert.Equal(t, document.Amount(130), d.Subtotal(), "raw line-item sum is unchanged by the override")
}

func TestDocument_TotalsRounding(t *testing.T) {
	d := &document.Document{
		LineItems: []document.LineItem{
			{Qty: 3, Rate: 0.1},
			{Qty: 1, Rate: 0.045},
		},
	}

	assert.InDelta(t, 0.35, d.Subtotal().Float64(), 1e-9)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "E-0001", document.FormatNumber(document.DocTypeEstimate, 1))
	assert.Equal(t, "I-0042", document.FormatNumber(document.DocTypeInvoice, 42))
	assert.Equal(t, "E-12345", document.FormatNumber(document.DocTypeEstimate, 12345))
}

func TestCounters_Next(t *testing.T) {
	var c document.Counters

	assert.Equal(t, 1, c.Next(document.DocTypeEstimate))
	assert.Equal(t, 2, c.Next(document.DocTypeEstimate))
	assert.Equal(t, 1, c.Next(document.DocTypeInvoice))
	assert.Equal(t, 3, c.Next(document.DocTypeEstimate))
}

func TestCounters_Merge(t *testing.T) {
	local := document.Counters{Estimate: 5, Invoice: 1}
	local.Merge(document.Counters{Estimate: 2, Invoice: 4})

	assert.Equal(t, document.Counters{Estimate: 5, Invoice: 4}, local)
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    document.Amount
		wantErr bool
	}

	tests := []testCase{
		{name: "Number", input: `12.5`, want: 12.5},
		{name: "NumericString", input: `"7"`, want: 7},
		{name: "EmptyString", input: `""`, want: 0},
		{name: "Null", input: `null`, want: 0},
		{name: "NonNumericString", input: `"abc"`, wantErr: true},
		{name: "NaNString", input: `"NaN"`, wantErr: true},
		{name: "InfString", input: `"+Inf"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a document.Amount
			err := json.Unmarshal([]byte(tt.input), &a)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestPatch_Apply_NestedMerge(t *testing.T) {
	d := &document.Document{
		Title: "Estimate #E-0001",
		Client: document.Client{
			Name:  "Acme",
			Phone: "555-0100",
		},
		Meta: document.Meta{
			EstimateNumber: "E-0001",
			PageNo:         "1",
			PageCount:      "1",
		},
	}

	email := "billing@acme.test"
	pageNo := "2"
	patch := document.Patch{
		Client: &document.ClientPatch{Email: &email},
		Meta:   &document.MetaPatch{PageNo: &pageNo},
	}
	patch.Apply(d)

	assert.Equal(t, "Acme", d.Client.Name, "untouched nested fields survive")
	assert.Equal(t, "555-0100", d.Client.Phone)
	assert.Equal(t, "billing@acme.test", d.Client.Email)
	assert.Equal(t, "2", d.Meta.PageNo)
	assert.Equal(t, "E-0001", d.Meta.EstimateNumber)
}

func TestPricingPatch_UnmarshalJSON(t *testing.T) {
	var set document.PricingPatch
	require.NoError(t, json.Unmarshal([]byte(`{"totalCost":"200"}`), &set))
	require.NotNil(t, set.TotalCost)
	assert.Equal(t, document.Amount(200), *set.TotalCost)
	assert.False(t, set.Clear)

	var clear document.PricingPatch
	require.NoError(t, json.Unmarshal([]byte(`{"totalCost":""}`), &clear))
	assert.Nil(t, clear.TotalCost)
	assert.True(t, clear.Clear)

	var absent document.PricingPatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.Nil(t, absent.TotalCost)
	assert.False(t, absent.Clear)
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	override := document.Amount(99.5)
	d := &document.Document{
		ID:       uuid.New(),
		Industry: "construction",
		DocType:  document.DocTypeEstimate,
		Status:   document.StatusDraft,
		Title:    "Estimate #E-0003",
		Meta:     document.Meta{EstimateNumber: "E-0003", IssueDate: "2026-08-28"},
		LineItems: []document.LineItem{
			{ID: uuid.New(), Name: "Labor", Qty: 1, Rate: 0},
		},
		Pricing: document.Pricing{TotalCost: &override},
	}

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "deletedAt", "live documents omit deletedAt")

	var got document.Document
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, d.Meta, got.Meta)
	require.NotNil(t, got.Pricing.TotalCost)
	assert.Equal(t, override, *got.Pricing.TotalCost)
}
