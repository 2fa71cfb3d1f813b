// Package template is the static, read-only registry of industry document
// templates with localized defaults. Lookups are pure functions over the
// built-in table; nothing here has state or side effects.
package template

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
)

var ErrNotFound = errors.New("template not found")

// DefaultLanguage is the fallback variant when a requested language has no
// translation.
const DefaultLanguage = "en"

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Localized maps a language code ("en", "es") to a translated string.
type Localized map[string]string

// ForLanguage returns the variant for lang, falling back through BCP 47
// matching (so "es-MX" resolves to "es") and finally to English.
func (l Localized) ForLanguage(lang string) string {
	if v, ok := l[lang]; ok {
		return v
	}

	tag, _ := language.Parse(lang)
	if _, idx, conf := matcher.Match(tag); conf > language.No {
		base, _ := supported[idx].Base()
		if v, ok := l[base.String()]; ok {
			return v
		}
	}

	return l[DefaultLanguage]
}

// Template is an immutable catalog entry describing the default content for a
// given industry + document type.
type Template struct {
	ID          string
	Industry    string
	DocType     document.DocType
	Name        Localized
	Description Localized
	Defaults    Defaults
}

// Defaults is the content copied into a new document at instantiation.
type Defaults struct {
	Title     Localized
	Show      document.Show
	Notes     Localized
	Terms     Localized
	LineItems []LineItemDefault
}

type LineItemDefault struct {
	Name Localized
	Qty  document.Amount
	Rate document.Amount
}

type Industry struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Catalog indexes the built-in template table.
type Catalog struct {
	templates []Template
	byID      map[string]Template
}

func NewCatalog() *Catalog {
	c := &Catalog{
		templates: builtinTemplates,
		byID:      make(map[string]Template, len(builtinTemplates)),
	}
	for _, t := range builtinTemplates {
		c.byID[t.ID] = t
	}

	return c
}

// Industries lists the supported industries in display order.
func (c *Catalog) Industries() []Industry {
	return builtinIndustries
}

// TemplatesByIndustry returns all templates for an industry slug.
// Unknown industries yield an empty slice.
func (c *Catalog) TemplatesByIndustry(industry string) []Template {
	var out []Template
	for _, t := range c.templates {
		if t.Industry == industry {
			out = append(out, t)
		}
	}

	return out
}

// TemplateByID resolves a template id, or ErrNotFound.
func (c *Catalog) TemplateByID(id string) (Template, error) {
	t, ok := c.byID[id]
	if !ok {
		return Template{}, ErrNotFound
	}

	return t, nil
}
