package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/givihq/deliverytime/internal/api"
	"github.com/givihq/deliverytime/internal/geo"
	"github.com/givihq/deliverytime/internal/ml"
	"github.com/givihq/deliverytime/internal/models"
	"github.com/givihq/deliverytime/internal/output"
	"github.com/givihq/deliverytime/internal/predictor"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the prediction API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runServer(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":5000", "Listen address for the API server")
	serveCmd.Flags().String("models-dir", "models", "Directory holding the model artifacts")
	serveCmd.Flags().String("sink", "console", "Prediction record sink (console, kafka, postgres)")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("models.dir", serveCmd.Flags().Lookup("models-dir"))
	viper.BindPFlag("sink.kind", serveCmd.Flags().Lookup("sink"))
}

func runServer(cfg *models.Config) error {
	ctx := context.Background()

	// A missing or corrupt artifact set is not fatal. The geocoding and
	// distance endpoints stay up and /predict answers 503 until the
	// artifacts are fixed and the server restarted.
	arts, err := ml.LoadArtifacts(cfg.Models.Dir)
	if err != nil {
		log.Printf("models unavailable, predictions disabled: %v", err)
		arts = nil
	} else {
		log.Printf("loaded model artifacts from %s (%d features)", cfg.Models.Dir, len(arts.Columns))
	}

	var geocoder geo.Geocoder = geo.NewNominatimGeocoder(cfg.Geocoding)
	if cfg.Geocoding.CacheEnabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Geocoding.RedisAddr})
		geocoder = geo.NewCachedGeocoder(geocoder, rdb, cfg.Geocoding.CacheTTL)
		log.Printf("geocode caching enabled via redis at %s", cfg.Geocoding.RedisAddr)
	}

	resolver := geo.NewResolver(geo.NewOSRMRouter(cfg.Routing))

	sink, err := output.NewSink(ctx, cfg.Sink)
	if err != nil {
		return fmt.Errorf("failed to create %s sink: %w", cfg.Sink.Kind, err)
	}
	defer sink.Close()

	service := predictor.NewService(geocoder, resolver, arts, sink)
	handler := api.NewHandler(service)
	server := api.NewServer(cfg.Server, api.NewRouter(handler))

	log.Printf("prediction API listening on %s", cfg.Server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
