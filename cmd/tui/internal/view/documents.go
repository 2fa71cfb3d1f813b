package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/jobdocs/internal/docstore"
	"github.com/MrJamesThe3rd/jobdocs/internal/document"
)

type documentsState int

const (
	documentsStateBrowse documentsState = iota
	documentsStateRename
	documentsStateConfirmDelete
)

// DocumentsModel browses the live documents and the trash.
type DocumentsModel struct {
	CommonModel
	session *docstore.Session

	state documentsState
	table table.Model
	docs  []*document.Document
	form  *huh.Form

	showTrash bool
	status    string

	formTitle   string
	formConfirm bool
}

func NewDocumentsModel(session *docstore.Session) DocumentsModel {
	columns := []table.Column{
		{Title: "Title", Width: 32},
		{Title: "Type", Width: 10},
		{Title: "Number", Width: 10},
		{Title: "Total", Width: 10},
		{Title: "Last Edited", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DocumentsModel{
		session: session,
		table:   t,
	}
}

func (m DocumentsModel) Title() string { return "Documents" }
func (m DocumentsModel) ShortHelp() string {
	switch m.state {
	case documentsStateRename:
		return "Enter: save | Esc: cancel"
	case documentsStateConfirmDelete:
		return "Confirm deletion"
	}

	if m.showTrash {
		return "Esc: back | t: live documents | u: restore | x: delete forever | r: refresh"
	}

	return "Esc: back | t: trash | e: rename | d: move to trash | r: refresh"
}

func (m DocumentsModel) Init() tea.Cmd {
	return m.loadDocsCmd()
}

func (m DocumentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDocsMsg:
		m.docs = msg.docs
		m.refreshTable()
		return m, nil

	case documentsDoneMsg:
		m.status = msg.status
		m.state = documentsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadDocsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case documentsStateBrowse:
		return m.updateBrowse(msg)
	case documentsStateRename, documentsStateConfirmDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m DocumentsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadDocsCmd()
		case "t":
			m.showTrash = !m.showTrash
			m.status = ""
			return m, m.loadDocsCmd()
		case "e":
			if !m.showTrash {
				return m.enterRenameMode()
			}
		case "d":
			if !m.showTrash {
				return m, m.trashCmd()
			}
		case "u":
			if m.showTrash {
				return m, m.restoreCmd()
			}
		case "x":
			if m.showTrash {
				return m.enterConfirmDeleteMode()
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DocumentsModel) enterRenameMode() (tea.Model, tea.Cmd) {
	doc := m.selected()
	if doc == nil {
		return m, nil
	}

	m.formTitle = doc.Title

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = documentsStateRename
	m.table.Blur()
	return m, m.form.Init()
}

func (m DocumentsModel) enterConfirmDeleteMode() (tea.Model, tea.Cmd) {
	doc := m.selected()
	if doc == nil {
		return m, nil
	}

	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %q forever?", doc.Title)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.formConfirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = documentsStateConfirmDelete
	m.table.Blur()
	return m, m.form.Init()
}

func (m DocumentsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = documentsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case documentsStateRename:
		return m, m.renameCmd()
	case documentsStateConfirmDelete:
		return m, m.deleteForeverCmd()
	}

	return m, nil
}

func (m DocumentsModel) View() string {
	header := "Documents"
	if m.showTrash {
		header = "Trash"
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Bold(true).Render(header),
		tableView,
	)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(52).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DocumentsModel) selected() *document.Document {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.docs) {
		return nil
	}

	return m.docs[idx]
}

func (m *DocumentsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.docs))
	for _, doc := range m.docs {
		rows = append(rows, table.Row{
			doc.Title,
			string(doc.DocType),
			doc.Number(),
			FormatAmount(doc.Total()),
			FormatDate(doc.LastEditedAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadDocsMsg struct {
	docs []*document.Document
}

func (m DocumentsModel) loadDocsCmd() tea.Cmd {
	return func() tea.Msg {
		if m.showTrash {
			return loadDocsMsg{docs: m.session.ListDeleted()}
		}

		return loadDocsMsg{docs: m.session.List(docstore.ListFilter{})}
	}
}

type documentsDoneMsg struct {
	status string
}

func (m DocumentsModel) trashCmd() tea.Cmd {
	doc := m.selected()
	if doc == nil {
		return nil
	}

	return func() tea.Msg {
		m.session.SoftDelete(doc.ID)
		return documentsDoneMsg{status: fmt.Sprintf("Moved %q to trash", doc.Title)}
	}
}

func (m DocumentsModel) restoreCmd() tea.Cmd {
	doc := m.selected()
	if doc == nil {
		return nil
	}

	return func() tea.Msg {
		m.session.Restore(doc.ID)
		return documentsDoneMsg{status: fmt.Sprintf("Restored %q", doc.Title)}
	}
}

func (m DocumentsModel) renameCmd() tea.Cmd {
	doc := m.selected()
	if doc == nil {
		return nil
	}

	title := m.form.GetString("title")

	return func() tea.Msg {
		m.session.Patch(doc.ID, document.Patch{Title: &title})
		return documentsDoneMsg{status: fmt.Sprintf("Renamed to %q", title)}
	}
}

func (m DocumentsModel) deleteForeverCmd() tea.Cmd {
	doc := m.selected()
	if doc == nil {
		return nil
	}

	confirmed := m.form.GetBool("confirm")

	return func() tea.Msg {
		if !confirmed {
			return documentsDoneMsg{}
		}

		m.session.HardDelete(doc.ID)
		return documentsDoneMsg{status: fmt.Sprintf("Deleted %q forever", doc.Title)}
	}
}
