package testutils

import (
	"context"

	"github.com/mediabeam/video-link-bot/internal/catalog"
)

// MockFetcher implements catalog.Fetcher for testing. ResolveFunc, when set,
// decides the outcome per selector; otherwise every resolution reports
// catalog.ErrNoMatch.
type MockFetcher struct {
	Catalog catalog.Catalog
	ListErr error

	ListCalls    int
	ResolveCalls []catalog.Selector

	ResolveFunc func(sel catalog.Selector) (string, error)
}

func (m *MockFetcher) ListStreams(_ context.Context, _ string) (catalog.Catalog, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return catalog.Catalog{}, m.ListErr
	}
	return m.Catalog, nil
}

func (m *MockFetcher) ResolveStream(_ context.Context, _ string, sel catalog.Selector) (string, error) {
	m.ResolveCalls = append(m.ResolveCalls, sel)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(sel)
	}
	return "", catalog.ErrNoMatch
}
