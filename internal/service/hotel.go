package service

import (
	"context"
	"fmt"

	"github.com/tripfolio/travel-api/internal/model"
)

// AutocompleteHotels matches hotel names against the search index
func (s *Service) AutocompleteHotels(ctx context.Context, name string) ([]string, error) {
	names, err := s.hotelRepo.SearchNames(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to autocomplete hotels: %w", err)
	}
	return names, nil
}

// FilterHotels runs a conjunction of the non-empty criteria over the
// search index. The default window is offset 0, limit 50.
func (s *Service) FilterHotels(ctx context.Context, filter model.HotelFilter, offset, limit int64) ([]model.Hotel, error) {
	limit, offset = clampWindow(limit, offset, defaultFilterLimit)
	hotels, err := s.hotelRepo.Filter(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to filter hotels: %w", err)
	}
	return hotels, nil
}
