package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/jobdocs/internal/docstore"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

// CreateModel walks the user through picking a template and mints a new
// document from it.
type CreateModel struct {
	CommonModel
	session *docstore.Session
	catalog *template.Catalog

	form *huh.Form

	formTemplate string
	formLanguage string

	status string
	err    error
}

func NewCreateModel(session *docstore.Session, catalog *template.Catalog) CreateModel {
	m := CreateModel{
		session:      session,
		catalog:      catalog,
		formLanguage: template.DefaultLanguage,
	}
	m.form = m.newForm()

	return m
}

func (m CreateModel) newForm() *huh.Form {
	var templateOptions []huh.Option[string]
	for _, industry := range m.catalog.Industries() {
		for _, t := range m.catalog.TemplatesByIndustry(industry.Slug) {
			label := fmt.Sprintf("%s — %s", industry.Name, t.Name.ForLanguage(m.formLanguage))
			templateOptions = append(templateOptions, huh.NewOption(label, t.ID))
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("template").
				Title("Template").
				Options(templateOptions...).
				Value(&m.formTemplate),

			huh.NewSelect[string]().
				Key("language").
				Title("Language").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("Español", "es"),
				).
				Value(&m.formLanguage),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m CreateModel) Title() string { return "New Document" }
func (m CreateModel) ShortHelp() string {
	return "Navigate form | Esc: back"
}

func (m CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.status = fmt.Sprintf("Created %s", msg.title)
		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createCmd()
}

func (m CreateModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

type createDoneMsg struct {
	title string
	err   error
}

func (m CreateModel) createCmd() tea.Cmd {
	templateID := m.form.GetString("template")
	lang := m.form.GetString("language")

	return func() tea.Msg {
		doc, err := m.session.CreateFromTemplate(docstore.CreateParams{
			TemplateID: templateID,
			Language:   lang,
		})
		if err != nil {
			return createDoneMsg{err: err}
		}

		return createDoneMsg{title: doc.Title}
	}
}
