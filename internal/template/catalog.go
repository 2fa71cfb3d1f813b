package template

import "github.com/MrJamesThe3rd/jobdocs/internal/document"

var builtinIndustries = []Industry{
	{Slug: "construction", Name: "Construction"},
	{Slug: "house-cleaning", Name: "House Cleaning"},
	{Slug: "painting", Name: "Painting"},
	{Slug: "pest-control", Name: "Pest Control"},
}

var estimateShow = document.Show{
	EstimateNumber: true,
	IssueDate:      true,
}

var invoiceShow = document.Show{
	InvoiceNumber: true,
	IssueDate:     true,
	DueDate:       true,
}

var laborMaterials = []LineItemDefault{
	{Name: Localized{"en": "Labor", "es": "Mano de obra"}, Qty: 1, Rate: 0},
	{Name: Localized{"en": "Materials", "es": "Materiales"}, Qty: 1, Rate: 0},
}

var invoiceTerms = Localized{
	"en": "Payment due within 15 days. Late payments may be subject to a fee.",
	"es": "Pago debido dentro de 15 días. Pagos atrasados pueden estar sujetos a un cargo.",
}

var invoiceNotes = Localized{
	"en": "Thank you for your business.",
	"es": "Gracias por su preferencia.",
}

var builtinTemplates = []Template{
	{
		ID:       "construction-estimate-v1",
		Industry: "construction",
		DocType:  document.DocTypeEstimate,
		Name:     Localized{"en": "Construction — Estimate", "es": "Construcción — Estimado"},
		Description: Localized{
			"en": "Scope + line items + totals + terms (great for quotes).",
			"es": "Alcance + partidas + totales + términos (ideal para cotizaciones).",
		},
		Defaults: Defaults{
			Title: Localized{"en": "Estimate", "es": "Estimado"},
			Show:  estimateShow,
			Notes: Localized{
				"en": "Thank you for the opportunity. Please review the scope and let us know if you have any questions.",
				"es": "Gracias por la oportunidad. Revise el alcance y avísenos si tiene alguna pregunta.",
			},
			Terms: Localized{
				"en": "This estimate is valid for 30 days. Materials subject to availability and price changes.",
				"es": "Este estimado es válido por 30 días. Materiales sujetos a disponibilidad y cambios de precio.",
			},
			LineItems: laborMaterials,
		},
	},
	{
		ID:       "construction-invoice-v1",
		Industry: "construction",
		DocType:  document.DocTypeInvoice,
		Name:     Localized{"en": "Construction — Invoice", "es": "Construcción — Factura"},
		Description: Localized{
			"en": "Invoice format with due date + payment terms.",
			"es": "Formato de factura con fecha de vencimiento + términos de pago.",
		},
		Defaults: Defaults{
			Title:     Localized{"en": "Invoice", "es": "Factura"},
			Show:      invoiceShow,
			Notes:     invoiceNotes,
			Terms:     invoiceTerms,
			LineItems: laborMaterials,
		},
	},
	{
		ID:       "house-cleaning-estimate-v1",
		Industry: "house-cleaning",
		DocType:  document.DocTypeEstimate,
		Name:     Localized{"en": "House Cleaning — Estimate", "es": "Limpieza del Hogar — Estimado"},
		Description: Localized{
			"en": "Per-room or per-visit pricing with service notes.",
			"es": "Precios por habitación o por visita con notas de servicio.",
		},
		Defaults: Defaults{
			Title: Localized{"en": "Estimate", "es": "Estimado"},
			Show:  estimateShow,
			Notes: Localized{
				"en": "Thank you for considering us. Supplies are included unless noted otherwise.",
				"es": "Gracias por considerarnos. Los suministros están incluidos salvo que se indique lo contrario.",
			},
			Terms: Localized{
				"en": "This estimate is valid for 30 days.",
				"es": "Este estimado es válido por 30 días.",
			},
			LineItems: []LineItemDefault{
				{Name: Localized{"en": "Deep cleaning", "es": "Limpieza profunda"}, Qty: 1, Rate: 0},
				{Name: Localized{"en": "Supplies", "es": "Suministros"}, Qty: 1, Rate: 0},
			},
		},
	},
	{
		ID:       "house-cleaning-invoice-v1",
		Industry: "house-cleaning",
		DocType:  document.DocTypeInvoice,
		Name:     Localized{"en": "House Cleaning — Invoice", "es": "Limpieza del Hogar — Factura"},
		Description: Localized{
			"en": "Invoice format with due date + payment terms.",
			"es": "Formato de factura con fecha de vencimiento + términos de pago.",
		},
		Defaults: Defaults{
			Title: Localized{"en": "Invoice", "es": "Factura"},
			Show:  invoiceShow,
			Notes: invoiceNotes,
			Terms: invoiceTerms,
			LineItems: []LineItemDefault{
				{Name: Localized{"en": "Cleaning service", "es": "Servicio de limpieza"}, Qty: 1, Rate: 0},
			},
		},
	},
	{
		ID:       "painting-estimate-v1",
		Industry: "painting",
		DocType:  document.DocTypeEstimate,
		Name:     Localized{"en": "Painting — Estimate", "es": "Pintura — Estimado"},
		Description: Localized{
			"en": "Prep + paint + materials breakdown for interior or exterior work.",
			"es": "Preparación + pintura + materiales para trabajo interior o exterior.",
		},
		Defaults: Defaults{
			Title: Localized{"en": "Estimate", "es": "Estimado"},
			Show:  estimateShow,
			Notes: Localized{
				"en": "Thank you for the opportunity. Color selections can be finalized before work begins.",
				"es": "Gracias por la oportunidad. Los colores pueden confirmarse antes de comenzar el trabajo.",
			},
			Terms: Localized{
				"en": "This estimate is valid for 30 days. Paint and materials subject to price changes.",
				"es": "Este estimado es válido por 30 días. Pintura y materiales sujetos a cambios de precio.",
			},
			LineItems: []LineItemDefault{
				{Name: Localized{"en": "Surface prep", "es": "Preparación de superficie"}, Qty: 1, Rate: 0},
				{Name: Localized{"en": "Painting labor", "es": "Mano de obra de pintura"}, Qty: 1, Rate: 0},
				{Name: Localized{"en": "Paint & materials", "es": "Pintura y materiales"}, Qty: 1, Rate: 0},
			},
		},
	},
	{
		ID:       "painting-invoice-v1",
		Industry: "painting",
		DocType:  document.DocTypeInvoice,
		Name:     Localized{"en": "Painting — Invoice", "es": "Pintura — Factura"},
		Description: Localized{
			"en": "Invoice format with due date + payment terms.",
			"es": "Formato de factura con fecha de vencimiento + términos de pago.",
		},
		Defaults: Defaults{
			Title:     Localized{"en": "Invoice", "es": "Factura"},
			Show:      invoiceShow,
			Notes:     invoiceNotes,
			Terms:     invoiceTerms,
			LineItems: laborMaterials,
		},
	},
	{
		ID:       "pest-control-estimate-v1",
		Industry: "pest-control",
		DocType:  document.DocTypeEstimate,
		Name:     Localized{"en": "Pest Control — Estimate", "es": "Control de Plagas — Estimado"},
		Description: Localized{
			"en": "Inspection + treatment plan pricing.",
			"es": "Inspección + plan de tratamiento con precios.",
		},
		Defaults: Defaults{
			Title: Localized{"en": "Estimate", "es": "Estimado"},
			Show:  estimateShow,
			Notes: Localized{
				"en": "Thank you for the opportunity. Treatment plan may be adjusted after inspection.",
				"es": "Gracias por la oportunidad. El plan de tratamiento puede ajustarse tras la inspección.",
			},
			Terms: Localized{
				"en": "This estimate is valid for 30 days.",
				"es": "Este estimado es válido por 30 días.",
			},
			LineItems: []LineItemDefault{
				{Name: Localized{"en": "Inspection", "es": "Inspección"}, Qty: 1, Rate: 0},
				{Name: Localized{"en": "Treatment", "es": "Tratamiento"}, Qty: 1, Rate: 0},
			},
		},
	},
	{
		ID:       "pest-control-invoice-v1",
		Industry: "pest-control",
		DocType:  document.DocTypeInvoice,
		Name:     Localized{"en": "Pest Control — Invoice", "es": "Control de Plagas — Factura"},
		Description: Localized{
			"en": "Invoice format with due date + payment terms.",
			"es": "Formato de factura con fecha de vencimiento + términos de pago.",
		},
		Defaults: Defaults{
			Title: Localized{"en": "Invoice", "es": "Factura"},
			Show:  invoiceShow,
			Notes: invoiceNotes,
			Terms: invoiceTerms,
			LineItems: []LineItemDefault{
				{Name: Localized{"en": "Treatment service", "es": "Servicio de tratamiento"}, Qty: 1, Rate: 0},
			},
		},
	},
}
