package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/landkit/pkg/archive"
	"github.com/dmitrymomot/landkit/pkg/email"
	"github.com/dmitrymomot/landkit/pkg/httpserver"
	"github.com/dmitrymomot/landkit/pkg/leadstore"
	"github.com/dmitrymomot/landkit/pkg/logger"
	"github.com/dmitrymomot/landkit/pkg/webhook"
	contactsvc "github.com/dmitrymomot/landkit/svc/contact"
	sitesvc "github.com/dmitrymomot/landkit/svc/site"
)

var errNoRecipient = errors.New("no notification recipient for site")

// buildSubmitter assembles the delivery chain. Leads are stored first so a
// failing notification never loses them. The returned func releases
// resources opened here.
func buildSubmitter(ctx context.Context, cfg appConfig, catalog *sitesvc.Catalog, log *slog.Logger, checks map[string]httpserver.CheckFunc) (contactsvc.Submitter, func(), error) {
	var (
		chain   []contactsvc.Submitter
		closers []func()
	)
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Delivery.StoreLeads {
		store, err := leadstore.Open(cfg.LeadStore.Path)
		if err != nil {
			return nil, release, err
		}
		closers = append(closers, func() {
			if err := store.Close(); err != nil {
				log.Error("failed to close lead store", logger.Error(err))
			}
		})
		checks["leadstore"] = store.Healthcheck()
		chain = append(chain, contactsvc.NewStoreSubmitter(store))
	}

	switch cfg.Delivery.Mode {
	case deliverySimulated, "":
		log.Info("using simulated delivery",
			slog.Duration("delay", cfg.Delivery.SimulatedDelay),
			slog.Float64("failure_rate", cfg.Delivery.SimulatedFailureRate),
		)
		chain = append(chain, contactsvc.NewSimulatedSubmitter(
			contactsvc.WithSimulatedDelay(cfg.Delivery.SimulatedDelay),
			contactsvc.WithFailureRate(cfg.Delivery.SimulatedFailureRate),
		))
		return contactsvc.Chain(chain...), release, nil

	case deliveryLive:
	default:
		return nil, release, fmt.Errorf("unknown delivery mode %q", cfg.Delivery.Mode)
	}

	if cfg.Archive.Enabled() {
		arc, err := archive.New(ctx, cfg.Archive)
		if err != nil {
			return nil, release, err
		}
		chain = append(chain, contactsvc.NewArchiveSubmitter(arc))
	}

	sender, err := email.New(cfg.Email)
	if err != nil {
		return nil, release, err
	}
	chain = append(chain, siteEmailSubmitter(sender, catalog, cfg.Delivery.NotifyEmail))

	if cfg.Delivery.WebhookURL != "" {
		breaker := webhook.NewCircuitBreaker(5, 2, 30*time.Second)
		breaker.OnStateChange(func(from, to webhook.CircuitState) {
			log.Warn("webhook circuit changed state",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		})
		opts := []webhook.Option{
			webhook.WithTimeout(cfg.Delivery.WebhookTimeout),
			webhook.WithCircuitBreaker(breaker),
			webhook.WithOnDelivery(func(res webhook.DeliveryResult) {
				if !res.Success() {
					log.Warn("webhook delivery failed",
						slog.String("event_id", res.EventID),
						slog.Int("status", res.StatusCode),
						logger.Duration(res.Duration),
						logger.Error(res.Error),
					)
				}
			}),
		}
		if cfg.Delivery.WebhookSecret != "" {
			opts = append(opts, webhook.WithSignature(cfg.Delivery.WebhookSecret))
		}
		hook, err := webhook.New(cfg.Delivery.WebhookURL, opts...)
		if err != nil {
			return nil, release, err
		}
		chain = append(chain, contactsvc.NewWebhookSubmitter(hook))
	}

	return contactsvc.Chain(chain...), release, nil
}

// siteEmailSubmitter notifies the contact address of the submitting site.
// override, when set, receives every site's leads.
func siteEmailSubmitter(sender email.EmailSender, catalog *sitesvc.Catalog, override string) contactsvc.Submitter {
	bySite := make(map[string]contactsvc.Submitter, catalog.Len())
	for _, slug := range catalog.Slugs() {
		s, err := catalog.Lookup(slug)
		if err != nil {
			continue
		}
		to := override
		if to == "" {
			to = s.ContactEmail
		}
		if to != "" {
			bySite[slug] = contactsvc.NewEmailSubmitter(sender, to)
		}
	}

	return contactsvc.SubmitterFunc(func(ctx context.Context, sub contactsvc.Submission) error {
		s, ok := bySite[sub.Meta.Site]
		if !ok {
			return fmt.Errorf("%w: %q", errNoRecipient, sub.Meta.Site)
		}
		return s.Submit(ctx, sub)
	})
}
