package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/analytics"
	"github.com/TemirB/storefront/internal/catalog"
	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/database"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/observability"
)

var (
	topicPartitions  int
	topicReplication int
)

var ensureTopicCmd = &cobra.Command{
	Use:   "ensure-topic",
	Short: "Create the analytics topic when it is missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		return analytics.EnsureTopic(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, topicPartitions, topicReplication, logger)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category tree as the storefront sees it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		provider := commerce.NewProvider(commerce.Options{Medusa: cfg.Medusa, Breaker: cfg.Breaker, Logger: logger})
		st := provider.Store()
		regions := catalog.NewRegionResolver(st, cfg.Medusa.DefaultRegion, catalog.NewRegionCache(), logger)
		svc := catalog.New(st, regions, cfg.CatalogTTL, observability.NewNoop(), logger)

		tree, err := svc.CategoryTree(ctx)
		if err != nil {
			return err
		}
		printTree(cmd, tree, 0)
		return nil
	},
}

func printTree(cmd *cobra.Command, nodes []*domain.CategoryNode, depth int) {
	for _, n := range nodes {
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s (%s)\n", strings.Repeat("  ", depth), n.Name, n.Handle)
		printTree(cmd, n.Children, depth+1)
	}
}

var sweepSessionsCmd = &cobra.Command{
	Use:   "sweep-sessions",
	Short: "Delete expired sessions from the postgres session store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Session.PgDSN == "" {
			return fmt.Errorf("PG_DSN is not set")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		pool, err := database.Connect(ctx, cfg.Session.PgDSN, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
		n, err := database.NewSessionRepo(pool, database.DefaultSessionTable).Sweep(ctx)
		if err != nil {
			return err
		}
		logger.Info("expired sessions removed", zap.Int64("rows", n))
		return nil
	},
}

func init() {
	ensureTopicCmd.Flags().IntVar(&topicPartitions, "partitions", 3, "number of partitions")
	ensureTopicCmd.Flags().IntVar(&topicReplication, "replication", 1, "replication factor")
}
