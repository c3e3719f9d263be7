package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"EpicBackend/config"
	"EpicBackend/internal/router"
	"EpicBackend/scripts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	r, err := router.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize storage")
	}

	// Backfill thumbnails for images uploaded before thumbnailing existed.
	scripts.RefreshThumbnails(cfg)

	h := cors.AllowAll().Handler(r)

	logrus.WithField("port", cfg.Port).Info("server started")
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
