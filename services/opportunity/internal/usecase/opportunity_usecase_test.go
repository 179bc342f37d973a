package usecase

import (
	"testing"

	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/pkg/pagination"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOpportunityRepository is a mock implementation of OpportunityRepository
type MockOpportunityRepository struct {
	mock.Mock
}

func (m *MockOpportunityRepository) Create(opp *entity.Opportunity) error {
	args := m.Called(opp)
	if opp.ID == "" {
		opp.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockOpportunityRepository) GetByID(id string) (*entity.Opportunity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) GetBySourceLink(sourceLink string) (*entity.Opportunity, error) {
	args := m.Called(sourceLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) GetByCompanyTitle(company, title string) (*entity.Opportunity, error) {
	args := m.Called(company, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) List(filter persistent.ListFilter, limit, offset int) ([]*entity.Opportunity, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) Count(filter persistent.ListFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOpportunityRepository) CountByCategory(filter persistent.ListFilter) (map[string]int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockOpportunityRepository) ListLocations(filter persistent.ListFilter) ([]string, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockOpportunityRepository) Update(opp *entity.Opportunity) error {
	args := m.Called(opp)
	return args.Error(0)
}

func (m *MockOpportunityRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOpportunityRepository) ListCategories() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockOpportunityRepository) GetCategoryByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockOpportunityRepository) GetOrCreateCategory(name string) (*entity.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockOpportunityRepository) EnsureCategories(names []string) error {
	args := m.Called(names)
	return args.Error(0)
}

func (m *MockOpportunityRepository) CreateVersion(version *entity.OpportunityVersion) error {
	args := m.Called(version)
	return args.Error(0)
}

func (m *MockOpportunityRepository) ListVersions(opportunityID string) ([]*entity.OpportunityVersion, error) {
	args := m.Called(opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.OpportunityVersion), args.Error(1)
}

var _ persistent.OpportunityRepository = (*MockOpportunityRepository)(nil)

func newTestUseCase(repo persistent.OpportunityRepository) OpportunityUseCase {
	return NewOpportunityUseCase(repo, nil, nil, logger.New())
}

func TestListOpportunities_BuildsFacets(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	filter := persistent.ListFilter{Region: "Riyadh"}

	repo.On("Count", filter).Return(int64(7), nil)
	repo.On("List", filter, pagination.DefaultPageSize, 0).Return([]*entity.Opportunity{
		{ID: "opp-1", CategoryID: "cat-1", Location: "Riyadh,Riyadh"},
	}, nil)
	repo.On("ListCategories").Return([]*entity.Category{
		{ID: "cat-1", Name: "Cybersecurity"},
		{ID: "cat-2", Name: "Finance"},
	}, nil)
	repo.On("CountByCategory", filter).Return(map[string]int64{"cat-1": 5, "cat-2": 2}, nil)
	repo.On("ListLocations", filter).Return([]string{
		"Riyadh,Riyadh",
		"Riyadh, Riyadh",
		"Makkah,Jeddah",
		"Remote",
	}, nil)

	result, err := uc.ListOpportunities(ListParams{Region: "Riyadh", Page: 1})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, []int{1, 2}, result.PageRange)
	assert.Equal(t, "Riyadh", result.SelectedRegion)

	// Facet counts come straight from the repo
	assert.Len(t, result.Categories, 2)
	assert.Equal(t, int64(5), result.Categories[0].Count)
	assert.Equal(t, "Cybersecurity", result.Opportunities[0].CategoryName)

	// Two Riyadh spellings count toward the same city, off-catalog ignored
	riyadh := result.LocationMenu["Riyadh"]
	var riyadhCity entity.CityCount
	for _, cc := range riyadh {
		if cc.City == "Riyadh" {
			riyadhCity = cc
		}
	}
	assert.Equal(t, int64(2), riyadhCity.Count)
}

func TestListOpportunities_SanitizesFilter(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	// Unknown region is dropped entirely
	empty := persistent.ListFilter{}
	repo.On("Count", empty).Return(int64(0), nil)
	repo.On("List", empty, pagination.DefaultPageSize, 0).Return([]*entity.Opportunity{}, nil)
	repo.On("ListCategories").Return([]*entity.Category{}, nil)
	repo.On("CountByCategory", empty).Return(map[string]int64{}, nil)
	repo.On("ListLocations", empty).Return([]string{}, nil)

	result, err := uc.ListOpportunities(ListParams{Region: "Atlantis", City: "Jeddah", Page: 1})
	assert.NoError(t, err)
	assert.Equal(t, "", result.SelectedRegion)
	assert.Equal(t, "", result.SelectedCity)
	repo.AssertExpectations(t)
}

func TestListOpportunities_ClampsPage(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	filter := persistent.ListFilter{}
	repo.On("Count", filter).Return(int64(6), nil)
	// Page 99 clamps to the last page (2), so offset is 5
	repo.On("List", filter, pagination.DefaultPageSize, 5).Return([]*entity.Opportunity{}, nil)
	repo.On("ListCategories").Return([]*entity.Category{}, nil)
	repo.On("CountByCategory", filter).Return(map[string]int64{}, nil)
	repo.On("ListLocations", filter).Return([]string{}, nil)

	result, err := uc.ListOpportunities(ListParams{Page: 99})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Page)
}

func TestImportCurated_CreatesNew(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	repo.On("EnsureCategories", mock.Anything).Return(nil)
	repo.On("GetOrCreateCategory", "Cybersecurity").
		Return(&entity.Category{ID: "cat-1", Name: "Cybersecurity"}, nil)
	repo.On("GetBySourceLink", "https://example.com/1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("GetByCompanyTitle", "TAWAL", "SOC Analyst Co-op").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*entity.Opportunity")).Return(nil)
	repo.On("CreateVersion", mock.MatchedBy(func(v *entity.OpportunityVersion) bool {
		return v.Changed
	})).Return(nil)

	stats, err := uc.ImportCurated([]CuratedItem{
		{
			Company:     "TAWAL",
			Title:       "SOC Analyst Co-op",
			Category:    "Cybersecurity",
			Location:    "Riyadh, Riyadh",
			Status:      "OPEN",
			SourceLink:  "https://example.com/1",
			Description: "Monitor the SOC.",
		},
	}, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 1, stats.Versions)
	repo.AssertExpectations(t)
}

func TestImportCurated_SkipsUntitled(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	repo.On("EnsureCategories", mock.Anything).Return(nil)

	stats, err := uc.ImportCurated([]CuratedItem{
		{Company: "TAWAL", Title: "   "},
	}, false)

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Created)
	assert.Equal(t, 1, stats.Skipped)
	repo.AssertNotCalled(t, "Create")
}

func TestImportCurated_SkipsExistingWithoutUpdateFlag(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	existing := &entity.Opportunity{ID: "opp-1", Company: "TAWAL", Title: "SOC Analyst Co-op"}

	repo.On("EnsureCategories", mock.Anything).Return(nil)
	repo.On("GetOrCreateCategory", mock.Anything).
		Return(&entity.Category{ID: "cat-1", Name: "Cybersecurity"}, nil)
	repo.On("GetBySourceLink", "https://example.com/1").Return(existing, nil)

	stats, err := uc.ImportCurated([]CuratedItem{
		{
			Company:     "TAWAL",
			Title:       "SOC Analyst Co-op",
			Category:    "Cybersecurity",
			SourceLink:  "https://example.com/1",
			Description: "Monitor the SOC.",
		},
	}, false)

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Created)
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 1, stats.Skipped)
	repo.AssertNotCalled(t, "Create")
	repo.AssertNotCalled(t, "Update")
}

func TestImportCurated_UpdatesChangedDescription(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	existing := &entity.Opportunity{
		ID:              "opp-1",
		Company:         "TAWAL",
		Title:           "SOC Analyst Co-op",
		Description:     "Old text.",
		DescriptionHash: "old-hash",
		Status:          entity.StatusOpen,
		CategoryID:      "cat-1",
		SourceLink:      "https://example.com/1",
	}

	repo.On("EnsureCategories", mock.Anything).Return(nil)
	repo.On("GetOrCreateCategory", "Cybersecurity").
		Return(&entity.Category{ID: "cat-1", Name: "Cybersecurity"}, nil)
	repo.On("GetBySourceLink", "https://example.com/1").Return(existing, nil)
	repo.On("Update", mock.AnythingOfType("*entity.Opportunity")).Return(nil)
	repo.On("CreateVersion", mock.MatchedBy(func(v *entity.OpportunityVersion) bool {
		return v.OpportunityID == "opp-1" && v.Changed
	})).Return(nil)

	stats, err := uc.ImportCurated([]CuratedItem{
		{
			Company:     "TAWAL",
			Title:       "SOC Analyst Co-op",
			Category:    "Cybersecurity",
			SourceLink:  "https://example.com/1",
			Description: "New text.",
		},
	}, true)

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 1, stats.Versions)
	repo.AssertExpectations(t)
}

func TestCreateOpportunity_RequiresTitle(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	_, err := uc.CreateOpportunity("admin-1", entity.SourceAdmin, OpportunityInput{Company: "SAB"})
	assert.Error(t, err)
	assert.Equal(t, "title is required", err.Error())
	repo.AssertNotCalled(t, "Create")
}

func TestCreateOpportunity_ClassifiesWhenNoCategory(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	repo.On("GetOrCreateCategory", "Cybersecurity").
		Return(&entity.Category{ID: "cat-1", Name: "Cybersecurity"}, nil)
	repo.On("Create", mock.MatchedBy(func(o *entity.Opportunity) bool {
		return o.CategoryID == "cat-1" && o.Region == "Riyadh" && o.City == "Riyadh"
	})).Return(nil)

	opp, err := uc.CreateOpportunity("admin-1", entity.SourceAdmin, OpportunityInput{
		Company:     "TAWAL",
		Title:       "SOC Analyst Co-op",
		Description: "cybersecurity monitoring role",
		Location:    "Riyadh, Riyadh",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Riyadh,Riyadh", opp.Location)
	repo.AssertExpectations(t)
}

func TestListVersions_ChecksOpportunityExists(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	repo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	versions, err := uc.ListVersions("missing")

	assert.Nil(t, versions)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	repo.AssertNotCalled(t, "ListVersions")
}

func TestListVersions_ReturnsSnapshots(t *testing.T) {
	repo := new(MockOpportunityRepository)
	uc := newTestUseCase(repo)

	repo.On("GetByID", "opp-1").Return(&entity.Opportunity{ID: "opp-1"}, nil)
	repo.On("ListVersions", "opp-1").Return([]*entity.OpportunityVersion{
		{ID: "ver-2", OpportunityID: "opp-1", Changed: true},
		{ID: "ver-1", OpportunityID: "opp-1", Changed: false},
	}, nil)

	versions, err := uc.ListVersions("opp-1")

	assert.NoError(t, err)
	assert.Len(t, versions, 2)
	assert.True(t, versions[0].Changed)
	repo.AssertExpectations(t)
}
