package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/jobdocs/internal/auth"
	"github.com/MrJamesThe3rd/jobdocs/internal/config"
	"github.com/MrJamesThe3rd/jobdocs/internal/database"
	"github.com/MrJamesThe3rd/jobdocs/internal/docstore"
	localStore "github.com/MrJamesThe3rd/jobdocs/internal/docstore/local"
	remoteStore "github.com/MrJamesThe3rd/jobdocs/internal/docstore/store"
	jobdocsHttp "github.com/MrJamesThe3rd/jobdocs/internal/http"
	documentHandler "github.com/MrJamesThe3rd/jobdocs/internal/http/document"
	templateHandler "github.com/MrJamesThe3rd/jobdocs/internal/http/template"
	"github.com/MrJamesThe3rd/jobdocs/internal/template"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The remote is best-effort, so startup doesn't ping it.
	db, err := database.Open(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to open remote database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	localDB, err := database.OpenLocal(cfg.Local.Path)
	if err != nil {
		slog.Error("failed to open local database", "error", err)
		os.Exit(1)
	}
	defer localDB.Close()

	local, err := localStore.New(localDB)
	if err != nil {
		slog.Error("failed to prepare local store", "error", err)
		os.Exit(1)
	}

	catalog := template.NewCatalog()

	svc := docstore.NewService(catalog, local, remoteStore.New(db), slog.Default())
	defer svc.Close()

	router := jobdocsHttp.New(
		documentHandler.NewHandler(svc),
		templateHandler.NewHandler(catalog),
		jobdocsHttp.Authenticate(auth.NewManager(cfg.Auth.Secret)),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
