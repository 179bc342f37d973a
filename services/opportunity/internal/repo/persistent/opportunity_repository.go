package persistent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter narrows the opportunities listing. Zero values mean
// "unfiltered" for their dimension.
type ListFilter struct {
	CategoryIDs []string
	Region      string
	City        string
}

type OpportunityRepository interface {
	Create(opp *entity.Opportunity) error
	GetByID(id string) (*entity.Opportunity, error)
	GetBySourceLink(sourceLink string) (*entity.Opportunity, error)
	GetByCompanyTitle(company, title string) (*entity.Opportunity, error)
	List(filter ListFilter, limit, offset int) ([]*entity.Opportunity, error)
	Count(filter ListFilter) (int64, error)
	CountByCategory(filter ListFilter) (map[string]int64, error)
	ListLocations(filter ListFilter) ([]string, error)
	Update(opp *entity.Opportunity) error
	Delete(id string) error

	ListCategories() ([]*entity.Category, error)
	GetCategoryByID(id string) (*entity.Category, error)
	GetOrCreateCategory(name string) (*entity.Category, error)
	EnsureCategories(names []string) error

	CreateVersion(version *entity.OpportunityVersion) error
	ListVersions(opportunityID string) ([]*entity.OpportunityVersion, error)
}

type opportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(opp *entity.Opportunity) error {
	oppModel := ToOpportunityModel(opp)
	if oppModel.ID == "" {
		oppModel.ID = uuid.New().String()
	}
	if err := r.db.Create(oppModel).Error; err != nil {
		return err
	}
	*opp = *ToOpportunityEntity(oppModel)
	return nil
}

func (r *opportunityRepository) GetByID(id string) (*entity.Opportunity, error) {
	var oppModel model.OpportunityModel
	if err := r.db.Where("id = ?", id).First(&oppModel).Error; err != nil {
		return nil, err
	}
	return ToOpportunityEntity(&oppModel), nil
}

func (r *opportunityRepository) GetBySourceLink(sourceLink string) (*entity.Opportunity, error) {
	var oppModel model.OpportunityModel
	if err := r.db.Where("source_link = ?", sourceLink).First(&oppModel).Error; err != nil {
		return nil, err
	}
	return ToOpportunityEntity(&oppModel), nil
}

func (r *opportunityRepository) GetByCompanyTitle(company, title string) (*entity.Opportunity, error) {
	var oppModel model.OpportunityModel
	if err := r.db.Where("company = ? AND title = ?", company, title).First(&oppModel).Error; err != nil {
		return nil, err
	}
	return ToOpportunityEntity(&oppModel), nil
}

// applyCategoryFilter narrows by the selected categories only.
func applyCategoryFilter(query *gorm.DB, filter ListFilter) *gorm.DB {
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	return query
}

// applyLocationFilter narrows by region/city. Locations are stored as
// "Region,City" but older imports may carry "Region, City", so both exact
// spellings match when a city is selected.
func applyLocationFilter(query *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.Region != "" && filter.City != "" {
		exact := strings.ToLower(fmt.Sprintf("%s,%s", filter.Region, filter.City))
		spaced := strings.ToLower(fmt.Sprintf("%s, %s", filter.Region, filter.City))
		query = query.Where("LOWER(location) = ? OR LOWER(location) = ?", exact, spaced)
	} else if filter.Region != "" {
		query = query.Where("location LIKE ?", filter.Region+",%")
	}
	return query
}

func (r *opportunityRepository) List(filter ListFilter, limit, offset int) ([]*entity.Opportunity, error) {
	var oppModels []model.OpportunityModel
	query := r.db.Model(&model.OpportunityModel{})
	query = applyCategoryFilter(query, filter)
	query = applyLocationFilter(query, filter)
	query = query.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&oppModels).Error; err != nil {
		return nil, err
	}

	opps := make([]*entity.Opportunity, len(oppModels))
	for i := range oppModels {
		opps[i] = ToOpportunityEntity(&oppModels[i])
	}
	return opps, nil
}

func (r *opportunityRepository) Count(filter ListFilter) (int64, error) {
	var count int64
	query := r.db.Model(&model.OpportunityModel{})
	query = applyCategoryFilter(query, filter)
	query = applyLocationFilter(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCategory counts opportunities per category, honoring the location
// filter but ignoring the category filter so the facet shows what selecting
// each category would yield.
func (r *opportunityRepository) CountByCategory(filter ListFilter) (map[string]int64, error) {
	type row struct {
		CategoryID string
		C          int64
	}
	var rows []row

	query := r.db.Model(&model.OpportunityModel{})
	query = applyLocationFilter(query, filter)
	if err := query.Select("category_id, COUNT(id) AS c").Group("category_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.CategoryID] = rw.C
	}
	return counts, nil
}

// ListLocations returns the raw location strings matching every filter
// except location itself. City counts are derived in the usecase by parsing
// them against the region catalog.
func (r *opportunityRepository) ListLocations(filter ListFilter) ([]string, error) {
	var locations []string
	query := r.db.Model(&model.OpportunityModel{})
	query = applyCategoryFilter(query, filter)
	if err := query.Pluck("location", &locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *opportunityRepository) Update(opp *entity.Opportunity) error {
	oppModel := ToOpportunityModel(opp)
	return r.db.Save(oppModel).Error
}

func (r *opportunityRepository) Delete(id string) error {
	return r.db.Delete(&model.OpportunityModel{}, "id = ?", id).Error
}

func (r *opportunityRepository) ListCategories() ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *opportunityRepository) GetCategoryByID(id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("id = ?", id).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *opportunityRepository) GetOrCreateCategory(name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.Where("name = ?", name).First(&categoryModel).Error
	if err == nil {
		return ToCategoryEntity(&categoryModel), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	categoryModel = model.CategoryModel{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := r.db.Create(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *opportunityRepository) EnsureCategories(names []string) error {
	for _, name := range names {
		if _, err := r.GetOrCreateCategory(name); err != nil {
			return err
		}
	}
	return nil
}

func (r *opportunityRepository) CreateVersion(version *entity.OpportunityVersion) error {
	versionModel := ToVersionModel(version)
	if versionModel.ID == "" {
		versionModel.ID = uuid.New().String()
	}
	if err := r.db.Create(versionModel).Error; err != nil {
		return err
	}
	version.ID = versionModel.ID
	return nil
}

func (r *opportunityRepository) ListVersions(opportunityID string) ([]*entity.OpportunityVersion, error) {
	var versionModels []model.OpportunityVersionModel
	if err := r.db.Where("opportunity_id = ?", opportunityID).Order("fetched_at DESC").Find(&versionModels).Error; err != nil {
		return nil, err
	}

	versions := make([]*entity.OpportunityVersion, len(versionModels))
	for i := range versionModels {
		versions[i] = &entity.OpportunityVersion{
			ID:              versionModels[i].ID,
			OpportunityID:   versionModels[i].OpportunityID,
			FetchedAt:       versionModels[i].FetchedAt,
			SourceLink:      versionModels[i].SourceLink,
			DescriptionText: versionModels[i].DescriptionText,
			ContentHash:     versionModels[i].ContentHash,
			Changed:         versionModels[i].Changed,
			CreatedAt:       versionModels[i].CreatedAt,
		}
	}
	return versions, nil
}
