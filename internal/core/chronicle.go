package core

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agenthands/chronicle/internal/config"
	"github.com/agenthands/chronicle/internal/core/dataset"
	"github.com/agenthands/chronicle/internal/core/dedupe"
	"github.com/agenthands/chronicle/internal/core/model"
	"github.com/agenthands/chronicle/internal/driver"
	"github.com/agenthands/chronicle/internal/i18n"
	"github.com/agenthands/chronicle/internal/logger"
)

// Chronicle assembles the historic events of German heads of state from the
// bundled dataset and from the live knowledge graph.
type Chronicle struct {
	Driver       driver.GraphDriver
	Deduplicator *dedupe.Deduplicator
	Catalog      *i18n.Catalog
	Config       *config.Config

	// LoadStatic reads the bundled dataset; replaced in tests.
	LoadStatic func(path string) ([]model.StaticRow, error)
}

func NewChronicle(d driver.GraphDriver, cfg *config.Config) *Chronicle {
	return &Chronicle{
		Driver:       d,
		Deduplicator: dedupe.NewDeduplicator(dedupe.NewScorer(cfg.Scoring.Families, time.Now)),
		Catalog:      cfg.Catalog(),
		Config:       cfg,
		LoadStatic:   dataset.Load,
	}
}

// Language truncates a viewer language tag ("de-AT", "en_GB") to the two
// characters used to pick encyclopedia articles and labels. It does not check
// that the result is a real language code.
func Language(tag string) string {
	if tag == "" {
		return i18n.FallbackLanguage
	}
	if r := []rune(tag); len(r) > 2 {
		return string(r[:2])
	}
	return tag
}

// HistoricEventsAll returns every enabled stream's events: the static dataset
// first, then the live offices in their fixed order. Failures are logged and
// reduce the output; they are never returned.
func (c *Chronicle) HistoricEventsAll(ctx context.Context, languageTag string) []string {
	lang := Language(languageTag)
	log := logger.FromContext(ctx).With(logger.FieldLanguage, lang)

	var events []string
	if c.Config.Sources.UseStaticDataset {
		events = append(events, c.StaticEvents(ctx, lang)...)
	}
	if c.Config.Sources.UseLiveQuery {
		events = append(events, c.LiveEvents(ctx, lang)...)
	}

	log.Infow("Historic events assembled", logger.FieldCount, len(events))
	return events
}

// StaticEvents formats the bundled dataset. Labels follow lang; the article
// links use the dataset's own Wikipedia language.
func (c *Chronicle) StaticEvents(ctx context.Context, lang string) []string {
	log := logger.FromContext(ctx)

	rows, err := c.LoadStatic(c.Config.Dataset.Path)
	if err != nil {
		log.Warnw("Static dataset unavailable", logger.FieldFile, c.Config.Dataset.Path, logger.FieldError, err)
		return nil
	}

	labels := c.Catalog.Lookup(lang)
	wikiLang := c.Config.Dataset.Language
	if wikiLang == "" {
		wikiLang = "de"
	}

	events := make([]string, 0, len(rows))
	for _, row := range rows {
		events = append(events, FormatStaticRow(row, labels, wikiLang))
	}
	return events
}

// LiveEvents runs one query → dedupe → format pipeline per office. Offices
// run concurrently and are joined in their fixed order.
func (c *Chronicle) LiveEvents(ctx context.Context, lang string) []string {
	labels := c.Catalog.Lookup(lang)
	offices := c.Config.OfficeDescriptors(labels)

	perOffice := make([][]string, len(offices))
	g, gctx := errgroup.WithContext(ctx)
	if limit := c.Config.Concurrency.Offices; limit > 0 {
		g.SetLimit(limit)
	}

	for i, office := range offices {
		i, office := i, office
		g.Go(func() error {
			perOffice[i] = c.OfficeEvents(gctx, office, lang, labels)
			return nil
		})
	}
	_ = g.Wait()

	var events []string
	for _, e := range perOffice {
		events = append(events, e...)
	}
	return events
}

// OfficeEvents returns the formatted events of one office, or nothing if the
// query fails. Records with malformed dates are skipped.
func (c *Chronicle) OfficeEvents(ctx context.Context, office model.OfficeDescriptor, lang string, labels i18n.Labels) []string {
	log := logger.FromContext(ctx).With(logger.FieldOffice, string(office.Key))

	start := time.Now()
	records, err := c.Driver.ExecuteQuery(ctx, driver.BuildOfficeHoldersQuery(office, lang))
	if err != nil {
		log.Warnw("Office query failed, skipping office", logger.FieldError, err)
		return nil
	}

	winners := c.Deduplicator.ResolveDuplicates(records)

	events := make([]string, 0, len(winners))
	for _, rec := range winners {
		event, err := FormatOfficeHolder(rec, office, labels)
		if err != nil {
			log.Warnw("Skipping office holder", logger.FieldLabel, rec.OfficeHolderLabel, logger.FieldError, err)
			continue
		}
		events = append(events, event)
	}

	log.Debugw("Office processed",
		logger.FieldCount, len(events),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return events
}
