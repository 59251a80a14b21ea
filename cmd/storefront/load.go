package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/analytics"
	"github.com/TemirB/storefront/internal/observability"
)

var (
	loadRate     int
	loadDuration time.Duration
)

// analyticsLoadCmd pushes synthetic storefront events through the same
// publisher the server uses, to size the topic and the worker count.
var analyticsLoadCmd = &cobra.Command{
	Use:   "analytics-load",
	Short: "Publish synthetic analytics events at a fixed rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is not set")
		}
		if loadRate < 1 {
			return fmt.Errorf("--rate must be positive")
		}
		metrics := observability.NewInmem(loadRate)
		pub := analytics.NewKafkaPublisher(analytics.NewKafkaWriter(cfg.Kafka), cfg.Kafka.Workers, cfg.Retry, metrics, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), loadDuration)
		defer cancel()
		sent := runLoad(ctx, pub, loadRate)

		if err := pub.Close(); err != nil {
			logger.Warn("analytics writer close failed", zap.Error(err))
		}
		ok := 0
		for _, o := range metrics.Snapshot().Last {
			if o.OK {
				ok++
			}
		}
		logger.Info("analytics load finished",
			zap.Int64("sent", sent),
			zap.Int("ok_in_last_window", ok),
			zap.Duration("duration", loadDuration),
		)
		return nil
	},
}

func runLoad(ctx context.Context, pub analytics.Publisher, rate int) int64 {
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	var sent int64
	for {
		select {
		case <-ctx.Done():
			return sent
		case <-ticker.C:
			pub.Publish(ctx, fakeEvent())
			sent++
		}
	}
}

var fakeEvents = []string{
	analytics.EventAddToCart,
	analytics.EventRemoveFromCart,
	analytics.EventLogin,
	analytics.EventSignUp,
}

func fakeEvent() analytics.Event {
	return analytics.Event{
		Name:      fakeEvents[rand.Intn(len(fakeEvents))],
		SessionID: uuid.NewString(),
		CartID:    fmt.Sprintf("cart_load_%d", rand.Intn(1000)),
		VariantID: fmt.Sprintf("variant_load_%d", rand.Intn(100)),
		Quantity:  rand.Intn(3) + 1,
		At:        time.Now().UTC(),
	}
}

func init() {
	analyticsLoadCmd.Flags().IntVar(&loadRate, "rate", 50, "events per second")
	analyticsLoadCmd.Flags().DurationVar(&loadDuration, "duration", 30*time.Second, "how long to publish")
}
