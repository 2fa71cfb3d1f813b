package document

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DocType selects the numbering sequence and default field set of a document.
type DocType string

const (
	DocTypeEstimate DocType = "estimate"
	DocTypeInvoice  DocType = "invoice"
)

// Status represents the lifecycle state of a document.
// Only drafts are produced today; the field is reserved for future states.
type Status string

const StatusDraft Status = "draft"

// Meta holds doc-type-specific numbering and print-layout fields.
// Exactly one of EstimateNumber/InvoiceNumber is non-empty, matching the
// document's DocType.
type Meta struct {
	EstimateNumber string `json:"estimateNumber"`
	InvoiceNumber  string `json:"invoiceNumber"`
	IssueDate      string `json:"issueDate"`
	DueDate        string `json:"dueDate"`
	PageNo         string `json:"pageNo"`
	PageCount      string `json:"pageCount"`
}

// Show is the set of display toggles copied from the template.
type Show struct {
	EstimateNumber bool `json:"estimateNumber"`
	InvoiceNumber  bool `json:"invoiceNumber"`
	IssueDate      bool `json:"issueDate"`
	DueDate        bool `json:"dueDate"`
}

type Client struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Job struct {
	Address     string `json:"address"`
	Description string `json:"description"`
}

// Company is the user's business identity, persisted per document.
// LogoDataURL carries a base64 data URL of the uploaded logo image.
type Company struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LogoDataURL string `json:"logoDataUrl"`
}

// LineItem is a single billable row. The line amount is always computed from
// Qty and Rate, never stored.
type LineItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Qty  Amount    `json:"qty"`
	Rate Amount    `json:"rate"`
}

// Amount returns the extended line amount, rounded to two decimals.
func (li LineItem) Amount() Amount {
	return round2(li.Qty * li.Rate)
}

// Pricing holds the optional manual total override used on estimates.
// When TotalCost is nil the computed line-item sum is authoritative.
type Pricing struct {
	TotalCost *Amount `json:"totalCost,omitempty"`
}

// Document is a single estimate or invoice with all editable content.
type Document struct {
	ID         uuid.UUID `json:"id"`
	Industry   string    `json:"industry"`
	TemplateID string    `json:"templateId"`
	Language   string    `json:"language"`
	DocType    DocType   `json:"docType"`
	Status     Status    `json:"status"`
	Title      string    `json:"title"`

	Meta      Meta       `json:"meta"`
	Show      Show       `json:"show"`
	Client    Client     `json:"client"`
	Job       Job        `json:"job"`
	Company   Company    `json:"company"`
	LineItems []LineItem `json:"lineItems"`
	Pricing   Pricing    `json:"pricing"`

	Notes       string `json:"notes"`
	Terms       string `json:"terms"`
	Description string `json:"description"`

	CreatedAt    time.Time  `json:"createdAt"`
	LastEditedAt time.Time  `json:"lastEditedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

// Deleted reports whether the document is in the trash.
// DeletedAt is the sole discriminant between live and trashed documents.
func (d *Document) Deleted() bool {
	return d.DeletedAt != nil
}

// Number returns the minted document number for the document's type.
func (d *Document) Number() string {
	if d.DocType == DocTypeInvoice {
		return d.Meta.InvoiceNumber
	}

	return d.Meta.EstimateNumber
}

// Subtotal is the sum of all line amounts, rounded to two decimals.
func (d *Document) Subtotal() Amount {
	var sum Amount
	for _, li := range d.LineItems {
		sum += li.Qty * li.Rate
	}

	return round2(sum)
}

// Total is the effective document total: the manual pricing override when
// present, otherwise the computed subtotal.
func (d *Document) Total() Amount {
	if d.Pricing.TotalCost != nil {
		return round2(*d.Pricing.TotalCost)
	}

	return d.Subtotal()
}

// Clone returns a deep copy, safe to hand to callers or to snapshot for a
// remote sync without racing later mutations.
func (d *Document) Clone() *Document {
	c := *d
	c.LineItems = slices.Clone(d.LineItems)

	if d.DeletedAt != nil {
		t := *d.DeletedAt
		c.DeletedAt = &t
	}

	if d.Pricing.TotalCost != nil {
		a := *d.Pricing.TotalCost
		c.Pricing.TotalCost = &a
	}

	return &c
}

// Counters are the per-type numbering sequences for a user's store.
// They only ever move forward; numbers are never reused, even after the
// document that consumed one is deleted.
type Counters struct {
	Estimate int `json:"estimate"`
	Invoice  int `json:"invoice"`
}

// Next increments and returns the counter for the given doc type.
func (c *Counters) Next(t DocType) int {
	if t == DocTypeInvoice {
		c.Invoice++
		return c.Invoice
	}

	c.Estimate++

	return c.Estimate
}

// Merge raises each counter to the maximum of the two sides. Used when
// reconciling local and remote counters at session init so a counter can
// never regress and reuse a number minted on another device.
func (c *Counters) Merge(other Counters) {
	c.Estimate = max(c.Estimate, other.Estimate)
	c.Invoice = max(c.Invoice, other.Invoice)
}

// FormatNumber renders a sequence value as a display code, e.g. "E-0001".
func FormatNumber(t DocType, n int) string {
	prefix := "E"
	if t == DocTypeInvoice {
		prefix = "I"
	}

	return fmt.Sprintf("%s-%04d", prefix, n)
}

func round2(a Amount) Amount {
	return Amount(math.Round(float64(a)*100) / 100)
}
