package service

import (
	"encoding/json"
	"fmt"
	"log"

	"anoa.com/kosthub/internal/model"
	"github.com/meilisearch/meilisearch-go"
)

const hostelIndex = "hostels"

// SearchService mengindeks listing kost yang sudah disetujui supaya halaman
// browsing bisa full-text search. Hanya listing approved yang masuk indeks.
type SearchService interface {
	IndexHostel(hostel *model.Hostel) error
	DeleteHostel(id string) error
	SearchHostels(query string) ([]string, error)
}

type meiliHostelDoc struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Description   string `json:"description"`
	PricePerMonth int64  `json:"price_per_month"`
}

type meiliSearchService struct {
	client meilisearch.ServiceManager
}

func NewMeiliSearchService(client meilisearch.ServiceManager) SearchService {
	s := &meiliSearchService{client: client}
	s.initIndexes()
	return s
}

func (s *meiliSearchService) initIndexes() {
	filterable := []interface{}{"city"}
	if _, err := s.client.Index(hostelIndex).UpdateFilterableAttributes(&filterable); err != nil {
		log.Printf("Failed to update hostel filterable attributes: %v", err)
	}

	sortable := []string{"price_per_month"}
	if _, err := s.client.Index(hostelIndex).UpdateSortableAttributes(&sortable); err != nil {
		log.Printf("Failed to update hostel sortable attributes: %v", err)
	}
}

func (s *meiliSearchService) IndexHostel(hostel *model.Hostel) error {
	if !hostel.IsApproved {
		// listing yang belum/tidak lagi approved dikeluarkan dari indeks
		return s.DeleteHostel(hostel.ID.String())
	}

	doc := meiliHostelDoc{
		ID:            hostel.ID.String(),
		Name:          hostel.Name,
		Address:       hostel.Address,
		City:          hostel.City,
		PricePerMonth: hostel.PricePerMonth,
	}
	if hostel.Description != nil {
		doc.Description = *hostel.Description
	}

	primaryKey := "id"
	if _, err := s.client.Index(hostelIndex).AddDocuments([]meiliHostelDoc{doc}, &primaryKey); err != nil {
		return fmt.Errorf("failed to index hostel %s: %w", hostel.ID, err)
	}
	return nil
}

func (s *meiliSearchService) DeleteHostel(id string) error {
	_, err := s.client.Index(hostelIndex).DeleteDocument(id)
	return err
}

// SearchHostels returns the IDs of matching approved hostels, most relevant
// first.
func (s *meiliSearchService) SearchHostels(query string) ([]string, error) {
	resp, err := s.client.Index(hostelIndex).Search(query, &meilisearch.SearchRequest{
		Limit: 50,
	})
	if err != nil {
		return nil, fmt.Errorf("hostel search failed: %w", err)
	}

	return hitIDs(resp.Hits), nil
}

// hitIDs mengambil field id dari tiap hit; hit tanpa id valid dilewati.
func hitIDs(hits meilisearch.Hits) []string {
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		raw, ok := hit["id"]
		if !ok {
			continue
		}
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
