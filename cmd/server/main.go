package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web-kit/internal/adapter"
	"github.com/MKhiriev/go-web-kit/internal/config"
	httpHandler "github.com/MKhiriev/go-web-kit/internal/handler/http"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/server"
	"github.com/MKhiriev/go-web-kit/internal/service"
	"github.com/MKhiriev/go-web-kit/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("web-kit-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	proxy := adapter.NewProxyClient(cfg.Proxy)
	handler := httpHandler.NewHandler(services, proxy, log)

	srv, err := server.NewServer(handler.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
