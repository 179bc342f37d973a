package entity

import "time"

type OpportunityStatus string

const (
	StatusOpen   OpportunityStatus = "open"
	StatusClosed OpportunityStatus = "closed"
)

type SourceType string

const (
	SourceAI      SourceType = "ai"
	SourceAdmin   SourceType = "admin"
	SourceStudent SourceType = "student"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Opportunity struct {
	ID              string            `json:"id"`
	Company         string            `json:"company"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Location        string            `json:"location"` // "Region,City"
	Region          string            `json:"region"`
	City            string            `json:"city"`
	Deadline        *time.Time        `json:"deadline"`
	Status          OpportunityStatus `json:"status"`
	Majors          string            `json:"majors"`
	CategoryID      string            `json:"category_id"`
	CategoryName    string            `json:"category_name,omitempty"`
	SourceLink      string            `json:"source_link,omitempty"`
	SourceType      SourceType        `json:"source_type"`
	DescriptionHash string            `json:"-"`
	LastCheckedAt   *time.Time        `json:"last_checked_at,omitempty"`
	CreatedBy       string            `json:"created_by,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type OpportunityVersion struct {
	ID              string    `json:"id"`
	OpportunityID   string    `json:"opportunity_id"`
	FetchedAt       time.Time `json:"fetched_at"`
	SourceLink      string    `json:"source_link,omitempty"`
	DescriptionText string    `json:"description_text,omitempty"`
	ContentHash     string    `json:"content_hash,omitempty"`
	Changed         bool      `json:"changed"`
	CreatedAt       time.Time `json:"created_at"`
}

// CategoryFacet is a category entry in the listing sidebar. Count reflects
// every active filter except the category filter itself.
type CategoryFacet struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Count    int64  `json:"count"`
	Selected bool   `json:"selected"`
}

// CityCount is a city entry in the location menu. Count reflects every
// active filter except location.
type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// ListResult is one page of the opportunities listing together with the
// filter facets the UI renders around it.
type ListResult struct {
	Opportunities []*Opportunity `json:"opportunities"`
	Page          int            `json:"page"`
	TotalPages    int            `json:"total_pages"`
	Total         int64          `json:"total"`
	// PageRange is the elided page range; zero entries mark gaps.
	PageRange           []int                  `json:"page_range"`
	Categories          []CategoryFacet        `json:"categories"`
	LocationMenu        map[string][]CityCount `json:"location_menu"`
	SelectedCategoryIDs []string               `json:"selected_category_ids"`
	SelectedRegion      string                 `json:"selected_region,omitempty"`
	SelectedCity        string                 `json:"selected_city,omitempty"`
}
