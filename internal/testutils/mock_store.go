package testutils

import (
	"context"
	"fmt"

	"github.com/mediabeam/video-link-bot/internal/models"
)

// StoreStub implements pipeline.RecordStore. Saved collects every persisted
// record; SaveErr, if set, makes every save fail.
type StoreStub struct {
	Saved   []models.DistributionRecord
	SaveErr error
}

func (s *StoreStub) SaveRecord(_ context.Context, record models.DistributionRecord) (string, error) {
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	s.Saved = append(s.Saved, record)
	return fmt.Sprintf("rec-%d", len(s.Saved)), nil
}

// MockShortener implements pipeline.Shortener.
type MockShortener struct {
	Configured bool
	ShortURL   string
	Err        error
	Calls      int
}

func (m *MockShortener) Enabled() bool {
	return m.Configured
}

func (m *MockShortener) Shorten(_ context.Context, _ string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.ShortURL, nil
}
