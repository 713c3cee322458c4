// Command fakeapi runs the in-memory Zoomies backend for local development.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xride-labs/zoomies-web-sub000/internal/fakeapi"
)

var cli = struct {
	Port    int  `name:"port" env:"PORT" default:"8080"`
	Metrics bool `name:"metrics" env:"METRICS" default:"true" help:"Expose Prometheus metrics on /metrics."`
}{}

func main() {
	if err := run(); err != nil {
		log.Fatalf("unexpected error: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	kong.Parse(&cli)

	var reg *prometheus.Registry
	if cli.Metrics {
		reg = prometheus.NewRegistry()
	}

	server := fakeapi.NewServer(fakeapi.NewState())
	root := chi.NewRouter()
	root.Mount("/", server.Router(reg))
	if reg != nil {
		root.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	serv := http.Server{
		Addr:    fmt.Sprintf(":%d", cli.Port),
		Handler: root,
	}

	go func() {
		log.Printf("[FakeAPI] listening on :%d", cli.Port)
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return serv.Shutdown(ctx)
}
