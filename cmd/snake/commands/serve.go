package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/arcade/api"
	"github.com/battlesnakeio/arcade/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiListen  = ":3005"
	promEnable = true
	promListen = ":9000"
)

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "run a game and expose it over http",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		store, closeStore, err := openStore()
		if err != nil {
			log.WithError(err).Fatal("unable to open high score store")
		}
		defer closeStore()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s, err := session.New(ctx, session.Config{
			Size:     gridSize,
			Interval: tickRate,
			Store:    store,
			ScoreKey: scoreKey,
		})
		if err != nil {
			log.WithError(err).Fatal("unable to create session")
		}
		server := api.New(apiListen, s)
		s.AddRenderer(server)

		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			log.Info("shutting down")
			cancel()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("api shutdown failed")
			}
		}()
		go func() {
			if err := s.Run(ctx); err != nil && err != context.Canceled {
				log.WithError(err).Error("session stopped")
			}
		}()

		log.WithField("listen", apiListen).Info("api server listening")
		if err := server.WaitForExit(); err != nil {
			log.WithError(err).Fatal("api server exited")
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "address for the api server to listen on")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
