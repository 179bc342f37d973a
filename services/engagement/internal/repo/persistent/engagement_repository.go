package persistent

import (
	"errors"

	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EngagementRepository interface {
	CreateSubmission(sub *entity.Submission) error
	GetSubmission(id string) (*entity.Submission, error)
	GetSubmissionByStudentOpp(studentID, opportunityID string) (*entity.Submission, error)
	ListSubmissionsByStudent(studentID string) ([]*entity.Submission, error)
	ListSubmissionsByOpportunity(opportunityID string) ([]*entity.Submission, error)
	UpdateSubmissionStatus(id string, status entity.SubmissionStatus) error
	WithdrawSubmission(id string) error

	UpsertRating(rating *entity.Rating) (created bool, err error)
	GetRatingSummary(opportunityID string) (*entity.RatingSummary, error)
	GetStudentRating(studentID, opportunityID string) (*entity.Rating, error)

	CreateReport(report *entity.Report) error
	ListReports(status entity.ReportStatus) ([]*entity.Report, error)
	ResolveReport(id string) error

	ToggleBookmark(studentID, opportunityID string) (bookmarked bool, err error)
	ListBookmarks(studentID string) ([]*entity.Bookmark, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) CreateSubmission(sub *entity.Submission) error {
	subModel := ToSubmissionModel(sub)
	if subModel.ID == "" {
		subModel.ID = uuid.New().String()
	}
	if err := r.db.Create(subModel).Error; err != nil {
		return err
	}
	*sub = *ToSubmissionEntity(subModel)
	return nil
}

func (r *engagementRepository) GetSubmission(id string) (*entity.Submission, error) {
	var subModel model.SubmissionModel
	if err := r.db.Where("id = ?", id).First(&subModel).Error; err != nil {
		return nil, err
	}
	return ToSubmissionEntity(&subModel), nil
}

func (r *engagementRepository) GetSubmissionByStudentOpp(studentID, opportunityID string) (*entity.Submission, error) {
	var subModel model.SubmissionModel
	if err := r.db.Where("student_id = ? AND opportunity_id = ?", studentID, opportunityID).First(&subModel).Error; err != nil {
		return nil, err
	}
	return ToSubmissionEntity(&subModel), nil
}

func (r *engagementRepository) ListSubmissionsByStudent(studentID string) ([]*entity.Submission, error) {
	var subModels []model.SubmissionModel
	if err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&subModels).Error; err != nil {
		return nil, err
	}

	subs := make([]*entity.Submission, len(subModels))
	for i := range subModels {
		subs[i] = ToSubmissionEntity(&subModels[i])
	}
	return subs, nil
}

func (r *engagementRepository) ListSubmissionsByOpportunity(opportunityID string) ([]*entity.Submission, error) {
	var subModels []model.SubmissionModel
	if err := r.db.Where("opportunity_id = ?", opportunityID).Order("created_at DESC").Find(&subModels).Error; err != nil {
		return nil, err
	}

	subs := make([]*entity.Submission, len(subModels))
	for i := range subModels {
		subs[i] = ToSubmissionEntity(&subModels[i])
	}
	return subs, nil
}

func (r *engagementRepository) UpdateSubmissionStatus(id string, status entity.SubmissionStatus) error {
	result := r.db.Model(&model.SubmissionModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *engagementRepository) WithdrawSubmission(id string) error {
	return r.db.Delete(&model.SubmissionModel{}, "id = ?", id).Error
}

// UpsertRating writes a student's rating for an opportunity, replacing the
// stars of an existing one.
func (r *engagementRepository) UpsertRating(rating *entity.Rating) (bool, error) {
	var existing model.RatingModel
	err := r.db.Where("student_id = ? AND opportunity_id = ?", rating.StudentID, rating.OpportunityID).First(&existing).Error

	if err == nil {
		existing.Stars = rating.Stars
		if err := r.db.Save(&existing).Error; err != nil {
			return false, err
		}
		*rating = *ToRatingEntity(&existing)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	ratingModel := model.RatingModel{
		ID:            uuid.New().String(),
		StudentID:     rating.StudentID,
		OpportunityID: rating.OpportunityID,
		Stars:         rating.Stars,
	}
	if err := r.db.Create(&ratingModel).Error; err != nil {
		return false, err
	}
	*rating = *ToRatingEntity(&ratingModel)
	return true, nil
}

func (r *engagementRepository) GetRatingSummary(opportunityID string) (*entity.RatingSummary, error) {
	type row struct {
		Avg float64
		Cnt int64
	}
	var res row

	err := r.db.Model(&model.RatingModel{}).
		Where("opportunity_id = ?", opportunityID).
		Select("COALESCE(AVG(stars), 0) AS avg, COUNT(id) AS cnt").
		Scan(&res).Error
	if err != nil {
		return nil, err
	}

	return &entity.RatingSummary{
		OpportunityID: opportunityID,
		Average:       res.Avg,
		Count:         res.Cnt,
	}, nil
}

func (r *engagementRepository) GetStudentRating(studentID, opportunityID string) (*entity.Rating, error) {
	var ratingModel model.RatingModel
	if err := r.db.Where("student_id = ? AND opportunity_id = ?", studentID, opportunityID).First(&ratingModel).Error; err != nil {
		return nil, err
	}
	return ToRatingEntity(&ratingModel), nil
}

func (r *engagementRepository) CreateReport(report *entity.Report) error {
	reportModel := model.ReportModel{
		ID:            uuid.New().String(),
		ReporterID:    report.StudentID,
		OpportunityID: report.OpportunityID,
		Reason:        report.Reason,
		Details:       report.Details,
		Status:        string(entity.ReportOpen),
	}
	if err := r.db.Create(&reportModel).Error; err != nil {
		return err
	}
	*report = *ToReportEntity(&reportModel)
	return nil
}

func (r *engagementRepository) ListReports(status entity.ReportStatus) ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if err := query.Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]*entity.Report, len(reportModels))
	for i := range reportModels {
		reports[i] = ToReportEntity(&reportModels[i])
	}
	return reports, nil
}

func (r *engagementRepository) ResolveReport(id string) error {
	result := r.db.Model(&model.ReportModel{}).Where("id = ?", id).Update("status", string(entity.ReportResolved))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ToggleBookmark adds the bookmark if absent and removes it otherwise. A
// previously removed bookmark is restored instead of duplicated.
func (r *engagementRepository) ToggleBookmark(studentID, opportunityID string) (bool, error) {
	var existing model.BookmarkModel
	err := r.db.Where("student_id = ? AND opportunity_id = ?", studentID, opportunityID).First(&existing).Error

	if err == nil {
		if err := r.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	var removed model.BookmarkModel
	err = r.db.Unscoped().
		Where("student_id = ? AND opportunity_id = ? AND deleted_at IS NOT NULL", studentID, opportunityID).
		First(&removed).Error
	if err == nil {
		if err := r.db.Unscoped().Model(&removed).Update("deleted_at", nil).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	bookmark := model.BookmarkModel{
		ID:            uuid.New().String(),
		StudentID:     studentID,
		OpportunityID: opportunityID,
	}
	if err := r.db.Create(&bookmark).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *engagementRepository) ListBookmarks(studentID string) ([]*entity.Bookmark, error) {
	var bookmarkModels []model.BookmarkModel
	if err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&bookmarkModels).Error; err != nil {
		return nil, err
	}

	bookmarks := make([]*entity.Bookmark, len(bookmarkModels))
	for i := range bookmarkModels {
		bookmarks[i] = ToBookmarkEntity(&bookmarkModels[i])
	}
	return bookmarks, nil
}
