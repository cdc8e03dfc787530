package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cafeconia/digest/internal/config"
	"github.com/cafeconia/digest/internal/digest"
	"github.com/cafeconia/digest/internal/feed"
	"github.com/cafeconia/digest/internal/mail"
	"github.com/cafeconia/digest/internal/ui"
)

var version = "1.0.0"

func main() {
	logger := logrus.New()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.WithError(err).Error("digest run failed")
		os.Exit(1)
	}
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cafe-digest",
		Short:         "Fetch, rank and send the daily Café con IA top-10 digest",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), logger, false)
		},
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "preview",
		Short: "Render today's digest to the terminal without sending",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), logger, true)
		},
	})
	return rootCmd
}

// run performs one full cycle: aggregate, render, then send or preview.
// Per-feed failures are absorbed inside the aggregator; only configuration,
// rendering-context and delivery errors reach the exit status.
func run(ctx context.Context, logger *logrus.Logger, preview bool) error {
	cfg := config.Load()
	if !preview {
		if err := cfg.ValidateForSend(); err != nil {
			return err
		}
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	aggregator := feed.NewAggregator(feed.NewFetcher().Fetch, logger)
	items := aggregator.Aggregate(ctx, cfg.Feeds, loc)
	logger.WithField("items", len(items)).Info("aggregation complete")

	d := digest.NewDigest(time.Now().In(loc), items)
	htmlBody, textBody := digest.NewRenderer(cfg.TemplatePath, logger).Render(d)

	if preview {
		fmt.Println(ui.Preview(d))
		return nil
	}

	email := mail.NewDigestEmail(cfg.Sender, cfg.Recipients, time.Now(), htmlBody, textBody)
	if err := mail.NewSender(cfg.CredentialsFile).Send(ctx, email); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"recipients": len(cfg.Recipients),
		"subject":    email.Subject,
	}).Info("digest sent")
	return nil
}
