package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/jobdocs/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/jobdocs/internal/config"
	"github.com/MrJamesThe3rd/jobdocs/internal/database"
	"github.com/MrJamesThe3rd/jobdocs/internal/docstore"
	localStore "github.com/MrJamesThe3rd/jobdocs/internal/docstore/local"
	remoteStore "github.com/MrJamesThe3rd/jobdocs/internal/docstore/store"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

type model struct {
	service *docstore.Service
	session *docstore.Session

	currentView View

	createView    view.CreateModel
	documentsView view.DocumentsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewCreate    View = 1
	ViewDocuments View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Remote is opened without a ping so the TUI works offline.
	db, err := database.Open(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to open remote database", "error", err)
		os.Exit(1)
	}

	localDB, err := database.OpenLocal(cfg.Local.Path)
	if err != nil {
		slog.Error("failed to open local database", "error", err)
		os.Exit(1)
	}

	local, err := localStore.New(localDB)
	if err != nil {
		slog.Error("failed to prepare local store", "error", err)
		os.Exit(1)
	}

	catalog := template.NewCatalog()
	svc := docstore.NewService(catalog, local, remoteStore.New(db), slog.Default())
	sess := svc.InitSession(context.Background(), cfg.App.User)

	return model{
		service:       svc,
		session:       sess,
		currentView:   ViewMenu,
		createView:    view.NewCreateModel(sess, catalog),
		documentsView: view.NewDocumentsModel(sess),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				m.service.Close()
				return m, tea.Quit
			case "1":
				m.currentView = ViewCreate
				return m, m.createView.Init()
			case "2":
				m.currentView = ViewDocuments
				m.documentsView = view.NewDocumentsModel(m.session)

				return m, m.documentsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCreate:
		var newModel tea.Model
		newModel, cmd = m.createView.Update(msg)
		m.createView = newModel.(view.CreateModel)
	case ViewDocuments:
		var newModel tea.Model
		newModel, cmd = m.documentsView.Update(msg)
		m.documentsView = newModel.(view.DocumentsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"JobDocs TUI\n\n" +
				"1. New Document\n" +
				"2. Browse Documents\n\n" +
				"q. Quit",
		)
	case ViewCreate:
		return m.createView.View()
	case ViewDocuments:
		return m.documentsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
