package ingest

import (
	"context"
	"log"
	"strconv"
	"time"

	"cardapi/internal/card"
	"cardapi/internal/platform/scryfall"
)

type Config struct {
	Source      string // bulk or search
	SearchQuery string
	BatchSize   int
}

// Service fetches raw provider records, normalizes them into the card schema
// and bulk-upserts them keyed by id, tracking each execution as a Run.
type Service struct {
	client   ScryfallClient
	cardRepo card.Repository
	runRepo  Repository
	cfg      Config
}

func NewService(client ScryfallClient, cardRepo card.Repository, runRepo Repository, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	return &Service{
		client:   client,
		cardRepo: cardRepo,
		runRepo:  runRepo,
		cfg:      cfg,
	}
}

func (s *Service) Run(ctx context.Context) (err error) {
	run := &Run{
		Status:      StatusRunning,
		Source:      s.cfg.Source,
		SearchQuery: s.cfg.SearchQuery,
		StartedAt:   time.Now(),
	}
	runID, rErr := s.runRepo.CreateRun(ctx, run)
	if rErr != nil {
		return rErr
	}
	run.ID = runID

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}

		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		if updateErr := s.runRepo.UpdateRun(ctx, run); updateErr != nil {
			log.Printf("Failed to update ingest run %s: %v", run.ID, updateErr)
		}
	}()

	var raw []scryfall.Card
	switch s.cfg.Source {
	case SourceSearch:
		raw, err = s.client.SearchCards(ctx, s.cfg.SearchQuery)
	default:
		var uri string
		uri, err = s.client.OracleBulkURI(ctx)
		if err == nil {
			raw, err = s.client.DownloadBulk(ctx, uri)
		}
	}
	if err != nil {
		return err
	}
	run.CardsFetched = len(raw)
	log.Printf("Fetched %d cards from %s source", len(raw), s.cfg.Source)

	cards := make([]card.Card, 0, len(raw))
	for _, rc := range raw {
		cards = append(cards, Normalize(rc))
	}

	for start := 0; start < len(cards); start += s.cfg.BatchSize {
		end := start + s.cfg.BatchSize
		if end > len(cards) {
			end = len(cards)
		}
		n, upErr := s.cardRepo.BulkUpsert(ctx, cards[start:end])
		run.CardsUpserted += n
		if upErr != nil {
			return upErr
		}
	}

	log.Printf("Upserted %d/%d cards", run.CardsUpserted, run.CardsFetched)
	return nil
}

// Normalize maps a raw provider record onto the card schema. Absent or
// unparsable prices become null, never zero.
func Normalize(raw scryfall.Card) card.Card {
	c := card.Card{
		ID:              raw.ID,
		Name:            raw.Name,
		ReleasedAt:      raw.ReleasedAt,
		SetName:         raw.SetName,
		CollectorNumber: raw.CollectorNumber,
		Rarity:          raw.Rarity,
		TypeLine:        raw.TypeLine,
		USDPrice:        parsePrice(raw.Prices.USD),
		USDFoilPrice:    parsePrice(raw.Prices.USDFoil),
	}
	if raw.ImageURIs != nil && raw.ImageURIs.Normal != "" {
		c.ImageURL = &raw.ImageURIs.Normal
	}
	if raw.ScryfallURI != "" {
		uri := raw.ScryfallURI
		c.ScryfallURI = &uri
	}
	return c
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
