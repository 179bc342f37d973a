package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/CyberVigilant/CoopStation-01/pkg/geo"
	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/pkg/pagination"
	"github.com/CyberVigilant/CoopStation-01/pkg/queue"
	"github.com/CyberVigilant/CoopStation-01/pkg/taxonomy"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const listPageWindow = 2

type ListParams struct {
	CategoryIDs []string
	Region      string
	City        string
	Page        int
}

type OpportunityInput struct {
	Company     string
	Title       string
	Description string
	Location    string
	Deadline    *time.Time
	Status      string
	Majors      string
	CategoryID  string
	SourceLink  string
}

// CuratedItem is one entry of a curated opportunities JSON file.
type CuratedItem struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Major       string `json:"major"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	SourceLink  string `json:"source_link"`
	Description string `json:"description"`
}

// ImportStats summarizes a curated import run.
type ImportStats struct {
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Versions int `json:"versions"`
	Skipped  int `json:"skipped"`
}

type OpportunityUseCase interface {
	ListOpportunities(params ListParams) (*entity.ListResult, error)
	GetOpportunity(id string) (*entity.Opportunity, error)
	CreateOpportunity(userID string, sourceType entity.SourceType, input OpportunityInput) (*entity.Opportunity, error)
	UpdateOpportunity(id string, input OpportunityInput) (*entity.Opportunity, error)
	DeleteOpportunity(id string) error
	ListCategories() ([]*entity.Category, error)
	ListVersions(opportunityID string) ([]*entity.OpportunityVersion, error)
	ImportCurated(items []CuratedItem, updateExisting bool) (*ImportStats, error)
}

type opportunityUseCase struct {
	oppRepo     persistent.OpportunityRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewOpportunityUseCase(
	oppRepo persistent.OpportunityRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) OpportunityUseCase {
	return &opportunityUseCase{
		oppRepo:     oppRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *opportunityUseCase) ListOpportunities(params ListParams) (*entity.ListResult, error) {
	region, city := geo.SanitizeFilter(params.Region, params.City)

	selectedIDs := dedupeSorted(params.CategoryIDs)

	filter := persistent.ListFilter{
		CategoryIDs: selectedIDs,
		Region:      region,
		City:        city,
	}

	total, err := uc.oppRepo.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count opportunities: %w", err)
	}

	totalPages := pagination.TotalPages(total, pagination.DefaultPageSize)
	page := pagination.Clamp(params.Page, totalPages)
	offset := (page - 1) * pagination.DefaultPageSize

	opps, err := uc.oppRepo.List(filter, pagination.DefaultPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	categories, err := uc.buildCategoryFacets(filter, selectedIDs)
	if err != nil {
		return nil, err
	}
	uc.attachCategoryNames(opps, categories)

	locationMenu, err := uc.buildLocationMenu(filter)
	if err != nil {
		return nil, err
	}

	return &entity.ListResult{
		Opportunities:       opps,
		Page:                page,
		TotalPages:          totalPages,
		Total:               total,
		PageRange:           pagination.ElidedRange(page, totalPages, listPageWindow),
		Categories:          categories,
		LocationMenu:        locationMenu,
		SelectedCategoryIDs: selectedIDs,
		SelectedRegion:      region,
		SelectedCity:        city,
	}, nil
}

// buildCategoryFacets computes per-category counts against every filter
// except the category selection itself.
func (uc *opportunityUseCase) buildCategoryFacets(filter persistent.ListFilter, selectedIDs []string) ([]entity.CategoryFacet, error) {
	categories, err := uc.oppRepo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	counts, err := uc.oppRepo.CountByCategory(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	facets := make([]entity.CategoryFacet, len(categories))
	for i, cat := range categories {
		facets[i] = entity.CategoryFacet{
			ID:       cat.ID,
			Name:     cat.Name,
			Count:    counts[cat.ID],
			Selected: selected[cat.ID],
		}
	}
	return facets, nil
}

// buildLocationMenu parses stored "Region,City" locations into per-city
// counts, honoring the category filter but not the location filter.
// Locations outside the region catalog are ignored, best effort.
func (uc *opportunityUseCase) buildLocationMenu(filter persistent.ListFilter) (map[string][]entity.CityCount, error) {
	locations, err := uc.oppRepo.ListLocations(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	counts := make(map[string]map[string]int64, len(geo.RegionsAndCities))
	for region, cities := range geo.RegionsAndCities {
		counts[region] = make(map[string]int64, len(cities))
		for _, c := range cities {
			counts[region][c] = 0
		}
	}

	for _, loc := range locations {
		region, city := geo.ParseLocation(loc)
		if region == "" || city == "" {
			continue
		}
		if cityCounts, ok := counts[region]; ok {
			if _, ok := cityCounts[city]; ok {
				cityCounts[city]++
			}
		}
	}

	menu := make(map[string][]entity.CityCount, len(geo.RegionsAndCities))
	for region, cities := range geo.RegionsAndCities {
		entries := make([]entity.CityCount, len(cities))
		for i, c := range cities {
			entries[i] = entity.CityCount{City: c, Count: counts[region][c]}
		}
		menu[region] = entries
	}
	return menu, nil
}

func (uc *opportunityUseCase) attachCategoryNames(opps []*entity.Opportunity, facets []entity.CategoryFacet) {
	names := make(map[string]string, len(facets))
	for _, f := range facets {
		names[f.ID] = f.Name
	}
	for _, opp := range opps {
		opp.CategoryName = names[opp.CategoryID]
	}
}

func (uc *opportunityUseCase) GetOpportunity(id string) (*entity.Opportunity, error) {
	opp, err := uc.oppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat, err := uc.oppRepo.GetCategoryByID(opp.CategoryID); err == nil {
		opp.CategoryName = cat.Name
	}
	return opp, nil
}

func (uc *opportunityUseCase) CreateOpportunity(userID string, sourceType entity.SourceType, input OpportunityInput) (*entity.Opportunity, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	categoryID := input.CategoryID
	if categoryID == "" {
		name := taxonomy.CoerceCategory("", input.Majors, input.Description)
		cat, err := uc.oppRepo.GetOrCreateCategory(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		categoryID = cat.ID
	}

	opp := &entity.Opportunity{
		Company:     strings.TrimSpace(input.Company),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Deadline:    input.Deadline,
		Status:      coerceStatus(input.Status),
		Majors:      strings.TrimSpace(input.Majors),
		CategoryID:  categoryID,
		SourceLink:  strings.TrimSpace(input.SourceLink),
		SourceType:  sourceType,
		CreatedBy:   userID,
	}
	opp.Location = geo.NormalizeLocation(input.Location)
	opp.Region, opp.City = geo.ParseLocation(opp.Location)

	if err := uc.oppRepo.Create(opp); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	uc.cacheOpportunity(opp)
	uc.addToLatestFeed(opp)

	if uc.queueClient != nil {
		go uc.publishNewOpportunity(opp)
	}

	return opp, nil
}

func (uc *opportunityUseCase) UpdateOpportunity(id string, input OpportunityInput) (*entity.Opportunity, error) {
	opp, err := uc.oppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) != "" {
		opp.Title = strings.TrimSpace(input.Title)
	}
	if strings.TrimSpace(input.Company) != "" {
		opp.Company = strings.TrimSpace(input.Company)
	}
	if input.Description != "" {
		opp.Description = input.Description
	}
	if input.Location != "" {
		opp.Location = geo.NormalizeLocation(input.Location)
		opp.Region, opp.City = geo.ParseLocation(opp.Location)
	}
	if input.Deadline != nil {
		opp.Deadline = input.Deadline
	}
	if input.Status != "" {
		opp.Status = coerceStatus(input.Status)
	}
	if input.Majors != "" {
		opp.Majors = strings.TrimSpace(input.Majors)
	}
	if input.CategoryID != "" {
		opp.CategoryID = input.CategoryID
	}
	if input.SourceLink != "" {
		opp.SourceLink = strings.TrimSpace(input.SourceLink)
	}

	if err := uc.oppRepo.Update(opp); err != nil {
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}

	uc.cacheOpportunity(opp)
	return opp, nil
}

func (uc *opportunityUseCase) DeleteOpportunity(id string) error {
	if _, err := uc.oppRepo.GetByID(id); err != nil {
		return err
	}
	if err := uc.oppRepo.Delete(id); err != nil {
		return err
	}
	if uc.redisClient != nil {
		ctx := context.Background()
		uc.redisClient.Del(ctx, fmt.Sprintf("opportunity:%s", id))
		uc.redisClient.LRem(ctx, "opportunities:latest", 0, id)
	}
	return nil
}

func (uc *opportunityUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.oppRepo.ListCategories()
}

// ListVersions returns the import snapshots of an opportunity, newest first.
func (uc *opportunityUseCase) ListVersions(opportunityID string) ([]*entity.OpportunityVersion, error) {
	if _, err := uc.oppRepo.GetByID(opportunityID); err != nil {
		return nil, err
	}
	return uc.oppRepo.ListVersions(opportunityID)
}

// ImportCurated applies a curated opportunities file. Existing rows are
// matched by source link first, then by company+title. With updateExisting
// set, changed rows are updated and get a version snapshot whose changed
// flag compares content hashes.
func (uc *opportunityUseCase) ImportCurated(items []CuratedItem, updateExisting bool) (*ImportStats, error) {
	if err := uc.oppRepo.EnsureCategories(taxonomy.DefaultCategories); err != nil {
		return nil, fmt.Errorf("failed to ensure categories: %w", err)
	}

	stats := &ImportStats{}

	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			stats.Skipped++
			continue
		}

		company := strings.TrimSpace(item.Company)
		majors := strings.TrimSpace(item.Major)
		sourceLink := strings.TrimSpace(item.SourceLink)

		catName := taxonomy.CoerceCategory(item.Category, majors, item.Description)
		category, err := uc.oppRepo.GetOrCreateCategory(catName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category %q: %w", catName, err)
		}

		location := geo.NormalizeLocation(item.Location)
		status := coerceStatus(item.Status)
		deadline := parseDeadline(item.Deadline)
		contentHash := hashContent(item.Description)

		var existing *entity.Opportunity
		if sourceLink != "" {
			existing, _ = uc.oppRepo.GetBySourceLink(sourceLink)
		}
		if existing == nil {
			existing, _ = uc.oppRepo.GetByCompanyTitle(company, title)
		}

		now := time.Now()

		if existing == nil {
			opp := &entity.Opportunity{
				Company:         company,
				Title:           title,
				Description:     item.Description,
				Location:        location,
				Deadline:        deadline,
				Status:          status,
				Majors:          majors,
				CategoryID:      category.ID,
				SourceLink:      sourceLink,
				SourceType:      entity.SourceAI,
				DescriptionHash: contentHash,
				LastCheckedAt:   &now,
			}
			opp.Region, opp.City = geo.ParseLocation(opp.Location)

			if err := uc.oppRepo.Create(opp); err != nil {
				return nil, fmt.Errorf("failed to create opportunity %q: %w", title, err)
			}
			stats.Created++

			if err := uc.oppRepo.CreateVersion(&entity.OpportunityVersion{
				OpportunityID:   opp.ID,
				FetchedAt:       now,
				SourceLink:      sourceLink,
				DescriptionText: item.Description,
				ContentHash:     contentHash,
				Changed:         true,
			}); err == nil {
				stats.Versions++
			}
			continue
		}

		if !updateExisting {
			stats.Skipped++
			continue
		}

		prevHash := existing.DescriptionHash
		changedAny := false

		if existing.Location != location {
			existing.Location = location
			existing.Region, existing.City = geo.ParseLocation(location)
			changedAny = true
		}
		if !sameDeadline(existing.Deadline, deadline) {
			existing.Deadline = deadline
			changedAny = true
		}
		if existing.Status != status {
			existing.Status = status
			changedAny = true
		}
		if existing.Majors != majors {
			existing.Majors = majors
			changedAny = true
		}
		if existing.CategoryID != category.ID {
			existing.CategoryID = category.ID
			changedAny = true
		}
		if existing.SourceLink != sourceLink {
			existing.SourceLink = sourceLink
			changedAny = true
		}
		if existing.DescriptionHash != contentHash {
			existing.Description = item.Description
			existing.DescriptionHash = contentHash
			changedAny = true
		}
		existing.LastCheckedAt = &now

		if !changedAny {
			if err := uc.oppRepo.Update(existing); err != nil {
				return nil, fmt.Errorf("failed to touch opportunity %q: %w", title, err)
			}
			stats.Skipped++
			continue
		}

		if err := uc.oppRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update opportunity %q: %w", title, err)
		}
		stats.Updated++

		if err := uc.oppRepo.CreateVersion(&entity.OpportunityVersion{
			OpportunityID:   existing.ID,
			FetchedAt:       now,
			SourceLink:      sourceLink,
			DescriptionText: item.Description,
			ContentHash:     contentHash,
			Changed:         prevHash != contentHash,
		}); err == nil {
			stats.Versions++
		}
	}

	return stats, nil
}

func (uc *opportunityUseCase) cacheOpportunity(opp *entity.Opportunity) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	key := fmt.Sprintf("opportunity:%s", opp.ID)
	data := map[string]interface{}{
		"id":       opp.ID,
		"company":  opp.Company,
		"title":    opp.Title,
		"location": opp.Location,
		"status":   string(opp.Status),
		"majors":   opp.Majors,
	}
	for k, v := range data {
		uc.redisClient.HSet(ctx, key, k, v)
	}
	uc.redisClient.Expire(ctx, key, 24*time.Hour)
}

func (uc *opportunityUseCase) addToLatestFeed(opp *entity.Opportunity) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	feedKey := "opportunities:latest"
	uc.redisClient.LPush(ctx, feedKey, opp.ID)
	uc.redisClient.LTrim(ctx, feedKey, 0, 999)
	uc.redisClient.Expire(ctx, feedKey, 7*24*time.Hour)
}

func (uc *opportunityUseCase) publishNewOpportunity(opp *entity.Opportunity) {
	task := map[string]interface{}{
		"type":           queue.RoutingKeyNewOpportunity,
		"opportunity_id": opp.ID,
		"company":        opp.Company,
		"title":          opp.Title,
		"category_id":    opp.CategoryID,
		"priority":       5,
	}

	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish new opportunity notification: %v (opportunity_id=%s)", err, opp.ID)
	} else {
		uc.logger.Info("Published new opportunity notification: opportunity_id=%s", opp.ID)
	}
}

func coerceStatus(status string) entity.OpportunityStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case string(entity.StatusClosed):
		return entity.StatusClosed
	default:
		return entity.StatusOpen
	}
}

func parseDeadline(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func sameDeadline(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func hashContent(text string) string {
	if text == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
