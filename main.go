package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"Rebar/internal/api"
	aggregatecalc "Rebar/internal/calc/aggregate"
	barcalc "Rebar/internal/calc/bar"
	batchcalc "Rebar/internal/calc/batch"
	confidencecalc "Rebar/internal/calc/confidence"
	exportcalc "Rebar/internal/calc/export"
	importercalc "Rebar/internal/calc/importer"
	reportcalc "Rebar/internal/calc/report"
	profile "Rebar/internal/profile"
)

var wg sync.WaitGroup

func HandleList(mux *mux.Router) {
	limiter := api.NewIPRateLimiter(rate.Limit(5), 10)

	apiRouter := mux.PathPrefix("/api").Subrouter()
	apiRouter.Use(limiter.LimitMiddleware)

	profileH := &profile.Handler{}
	apiRouter.HandleFunc("/profiles", profileH.List).Methods("GET")
	apiRouter.HandleFunc("/profiles/resolve", profileH.Resolve).Methods("POST")

	barH := &barcalc.Handler{}
	batchH := &batchcalc.Handler{}
	aggregateH := &aggregatecalc.Handler{}
	confidenceH := &confidencecalc.Handler{}
	exportH := &exportcalc.Handler{}
	reportH := &reportcalc.Handler{}
	importerH := &importercalc.Handler{}

	apiRouter.HandleFunc("/tools/bar/calc", barH.Calc).Methods("POST")
	apiRouter.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")
	apiRouter.HandleFunc("/tools/project/aggregate", aggregateH.Calc).Methods("POST")
	apiRouter.HandleFunc("/tools/confidence/score", confidenceH.Calc).Methods("POST")
	apiRouter.HandleFunc("/tools/export/xlsx", exportH.Xlsx).Methods("POST")
	apiRouter.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	apiRouter.HandleFunc("/tools/import/xlsx", importerH.Xlsx).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file, using environment")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := mux.NewRouter()
	HandleList(mux)
	handler := api.CORS(mux)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.WithField("addr", server.Addr).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server error")
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("Server shutdown failed")
	}
	log.Info("Server stopped")

	wg.Wait()
}
