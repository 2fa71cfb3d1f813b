package document

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Patch is a partial update of a document. Nil fields are left untouched.
// Known nested sub-objects merge field-wise, so callers never have to read
// and pre-merge the current value before patching a single nested field.
// LineItems replace wholesale; the items form an ordered sequence.
type Patch struct {
	Title       *string       `json:"title,omitempty"`
	Status      *Status       `json:"status,omitempty"`
	Meta        *MetaPatch    `json:"meta,omitempty"`
	Show        *ShowPatch    `json:"show,omitempty"`
	Client      *ClientPatch  `json:"client,omitempty"`
	Job         *JobPatch     `json:"job,omitempty"`
	Company     *CompanyPatch `json:"company,omitempty"`
	Pricing     *PricingPatch `json:"pricing,omitempty"`
	LineItems   *[]LineItem   `json:"lineItems,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
	Terms       *string       `json:"terms,omitempty"`
	Description *string       `json:"description,omitempty"`
}

type MetaPatch struct {
	EstimateNumber *string `json:"estimateNumber,omitempty"`
	InvoiceNumber  *string `json:"invoiceNumber,omitempty"`
	IssueDate      *string `json:"issueDate,omitempty"`
	DueDate        *string `json:"dueDate,omitempty"`
	PageNo         *string `json:"pageNo,omitempty"`
	PageCount      *string `json:"pageCount,omitempty"`
}

type ShowPatch struct {
	EstimateNumber *bool `json:"estimateNumber,omitempty"`
	InvoiceNumber  *bool `json:"invoiceNumber,omitempty"`
	IssueDate      *bool `json:"issueDate,omitempty"`
	DueDate        *bool `json:"dueDate,omitempty"`
}

type ClientPatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

type JobPatch struct {
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CompanyPatch struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	LogoDataURL *string `json:"logoDataUrl,omitempty"`
}

// PricingPatch sets or clears the manual total override. In JSON, a null or
// empty-string totalCost clears the override; a numeric value sets it.
type PricingPatch struct {
	TotalCost *Amount
	Clear     bool
}

func (p *PricingPatch) UnmarshalJSON(b []byte) error {
	var raw struct {
		TotalCost json.RawMessage `json:"totalCost"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decoding pricing patch: %w", err)
	}

	if raw.TotalCost == nil {
		return nil
	}

	s := strings.TrimSpace(string(raw.TotalCost))
	if s == "null" || s == `""` {
		p.Clear = true
		return nil
	}

	var a Amount
	if err := json.Unmarshal(raw.TotalCost, &a); err != nil {
		return err
	}

	p.TotalCost = &a

	return nil
}

// Apply merges the patch into the document. Timestamps are not touched here;
// the store stamps lastEditedAt on every mutation.
func (p Patch) Apply(d *Document) {
	setIf(&d.Title, p.Title)
	setIf(&d.Status, p.Status)
	setIf(&d.Notes, p.Notes)
	setIf(&d.Terms, p.Terms)
	setIf(&d.Description, p.Description)

	if p.Meta != nil {
		setIf(&d.Meta.EstimateNumber, p.Meta.EstimateNumber)
		setIf(&d.Meta.InvoiceNumber, p.Meta.InvoiceNumber)
		setIf(&d.Meta.IssueDate, p.Meta.IssueDate)
		setIf(&d.Meta.DueDate, p.Meta.DueDate)
		setIf(&d.Meta.PageNo, p.Meta.PageNo)
		setIf(&d.Meta.PageCount, p.Meta.PageCount)
	}

	if p.Show != nil {
		setIf(&d.Show.EstimateNumber, p.Show.EstimateNumber)
		setIf(&d.Show.InvoiceNumber, p.Show.InvoiceNumber)
		setIf(&d.Show.IssueDate, p.Show.IssueDate)
		setIf(&d.Show.DueDate, p.Show.DueDate)
	}

	if p.Client != nil {
		setIf(&d.Client.Name, p.Client.Name)
		setIf(&d.Client.Phone, p.Client.Phone)
		setIf(&d.Client.Email, p.Client.Email)
		setIf(&d.Client.Address, p.Client.Address)
	}

	if p.Job != nil {
		setIf(&d.Job.Address, p.Job.Address)
		setIf(&d.Job.Description, p.Job.Description)
	}

	if p.Company != nil {
		setIf(&d.Company.Name, p.Company.Name)
		setIf(&d.Company.Phone, p.Company.Phone)
		setIf(&d.Company.Email, p.Company.Email)
		setIf(&d.Company.LogoDataURL, p.Company.LogoDataURL)
	}

	if p.Pricing != nil {
		switch {
		case p.Pricing.Clear:
			d.Pricing.TotalCost = nil
		case p.Pricing.TotalCost != nil:
			a := *p.Pricing.TotalCost
			d.Pricing.TotalCost = &a
		}
	}

	if p.LineItems != nil {
		d.LineItems = make([]LineItem, len(*p.LineItems))
		copy(d.LineItems, *p.LineItems)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
