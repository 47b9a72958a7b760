package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-r2base/internal/app"
	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/service"
	"github.com/MKhiriev/go-r2base/internal/store"
	"github.com/MKhiriev/go-r2base/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("r2base-server")

	a, err := app.New(app.Options{Args: os.Args[1:], Logger: log}).Start()
	if err != nil {
		log.Fatal().Err(err).Msg("error starting app")
	}

	if a.Settings().Redis.Addr != "" {
		a.Serve(store.RedisServiceName, store.NewRedisService, nil)
	}

	a.Serve(service.AuthServiceName, service.AuthServiceFactory, nil).
		Load(controllers(info)...)

	if err = a.Listen(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
