package main

import (
	"log/slog"
	"net/http"
	"os"

	"picstash/config"
	"picstash/controllers"
	"picstash/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	props, err := config.ReadProperties()
	if err != nil {
		slog.Error("Failed to read config", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(props.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", props.DBPath, "error", err)
		os.Exit(1)
	}

	handler := controllers.SetupRouter(props, db)

	slog.Info("Server starting", "port", props.Port)
	if err := http.ListenAndServe(":"+props.Port, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
