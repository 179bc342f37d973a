package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/pkg/queue"
	"github.com/CyberVigilant/CoopStation-01/pkg/s3"
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:engagement"

// Leaderboard weights per action.
const (
	scoreSubmission = 5
	scoreRating     = 2
	scoreBookmark   = 1
	scoreReport     = 1
)

// validStatusTransitions holds the admin review flow for submissions.
var validStatusTransitions = map[entity.SubmissionStatus][]entity.SubmissionStatus{
	entity.SubmissionSubmitted:   {entity.SubmissionUnderReview, entity.SubmissionAccepted, entity.SubmissionRejected},
	entity.SubmissionUnderReview: {entity.SubmissionAccepted, entity.SubmissionRejected},
}

type EngagementUseCase interface {
	SubmitApplication(studentID, opportunityID, coverNote string, resume io.Reader, resumeName, contentType string) (*entity.Submission, error)
	GetSubmission(studentID, id string, isAdmin bool) (*entity.Submission, error)
	ListMySubmissions(studentID string) ([]*entity.Submission, error)
	ListOpportunitySubmissions(opportunityID string) ([]*entity.Submission, error)
	ReviewSubmission(id string, status entity.SubmissionStatus) (*entity.Submission, error)
	WithdrawSubmission(studentID, id string) error

	RateOpportunity(studentID, opportunityID string, stars int) (*entity.Rating, error)
	GetRatingSummary(opportunityID string) (*entity.RatingSummary, error)
	GetMyRating(studentID, opportunityID string) (*entity.Rating, error)

	ReportOpportunity(studentID, opportunityID, reason, details string) (*entity.Report, error)
	ListReports(status entity.ReportStatus) ([]*entity.Report, error)
	ResolveReport(id string) error

	ToggleBookmark(studentID, opportunityID string) (bool, error)
	ListBookmarks(studentID string) ([]*entity.Bookmark, error)

	Leaderboard(limit int) ([]*entity.LeaderboardEntry, error)
}

type engagementUseCase struct {
	engRepo     persistent.EngagementRepository
	redisClient *redis.Client
	queueClient *queue.Client
	s3Client    *s3.Client
	logger      *logger.Logger
}

func NewEngagementUseCase(
	engRepo persistent.EngagementRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	s3Client *s3.Client,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		engRepo:     engRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		s3Client:    s3Client,
		logger:      logger,
	}
}

func (uc *engagementUseCase) SubmitApplication(studentID, opportunityID, coverNote string, resume io.Reader, resumeName, contentType string) (*entity.Submission, error) {
	if _, err := uc.engRepo.GetSubmissionByStudentOpp(studentID, opportunityID); err == nil {
		return nil, fmt.Errorf("you have already applied to this opportunity")
	}

	resumeURL := ""
	if resume != nil {
		key := fmt.Sprintf("resumes/%s/%s_%s", studentID, uuid.New().String(), resumeName)
		url, err := uc.s3Client.UploadFile(key, resume, contentType)
		if err != nil {
			uc.logger.Error("Failed to upload resume: %v (student_id=%s)", err, studentID)
			return nil, fmt.Errorf("failed to upload resume")
		}
		resumeURL = url
	}

	sub := &entity.Submission{
		StudentID:     studentID,
		OpportunityID: opportunityID,
		Status:        entity.SubmissionSubmitted,
		CoverNote:     coverNote,
		ResumeURL:     resumeURL,
	}

	if err := uc.engRepo.CreateSubmission(sub); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	uc.incrementScore(studentID, scoreSubmission)
	return sub, nil
}

func (uc *engagementUseCase) GetSubmission(studentID, id string, isAdmin bool) (*entity.Submission, error) {
	sub, err := uc.engRepo.GetSubmission(id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && sub.StudentID != studentID {
		return nil, fmt.Errorf("access denied")
	}
	return sub, nil
}

func (uc *engagementUseCase) ListMySubmissions(studentID string) ([]*entity.Submission, error) {
	return uc.engRepo.ListSubmissionsByStudent(studentID)
}

func (uc *engagementUseCase) ListOpportunitySubmissions(opportunityID string) ([]*entity.Submission, error) {
	return uc.engRepo.ListSubmissionsByOpportunity(opportunityID)
}

func (uc *engagementUseCase) ReviewSubmission(id string, status entity.SubmissionStatus) (*entity.Submission, error) {
	sub, err := uc.engRepo.GetSubmission(id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(sub.Status, status) {
		return nil, fmt.Errorf("cannot move submission from %s to %s", sub.Status, status)
	}

	if err := uc.engRepo.UpdateSubmissionStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}
	sub.Status = status

	if uc.queueClient != nil {
		go uc.publishStatusChange(sub)
	}

	return sub, nil
}

func (uc *engagementUseCase) WithdrawSubmission(studentID, id string) error {
	sub, err := uc.engRepo.GetSubmission(id)
	if err != nil {
		return err
	}
	if sub.StudentID != studentID {
		return fmt.Errorf("access denied")
	}
	if sub.Status == entity.SubmissionAccepted || sub.Status == entity.SubmissionRejected {
		return fmt.Errorf("cannot withdraw a reviewed submission")
	}
	return uc.engRepo.WithdrawSubmission(id)
}

func (uc *engagementUseCase) RateOpportunity(studentID, opportunityID string, stars int) (*entity.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, fmt.Errorf("stars must be between 1 and 5")
	}

	rating := &entity.Rating{
		StudentID:     studentID,
		OpportunityID: opportunityID,
		Stars:         stars,
	}

	created, err := uc.engRepo.UpsertRating(rating)
	if err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	if created {
		uc.incrementScore(studentID, scoreRating)
	}
	return rating, nil
}

func (uc *engagementUseCase) GetRatingSummary(opportunityID string) (*entity.RatingSummary, error) {
	return uc.engRepo.GetRatingSummary(opportunityID)
}

func (uc *engagementUseCase) GetMyRating(studentID, opportunityID string) (*entity.Rating, error) {
	return uc.engRepo.GetStudentRating(studentID, opportunityID)
}

func (uc *engagementUseCase) ReportOpportunity(studentID, opportunityID, reason, details string) (*entity.Report, error) {
	report := &entity.Report{
		StudentID:     studentID,
		OpportunityID: opportunityID,
		Reason:        reason,
		Details:       details,
	}

	if err := uc.engRepo.CreateReport(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	uc.incrementScore(studentID, scoreReport)
	return report, nil
}

func (uc *engagementUseCase) ListReports(status entity.ReportStatus) ([]*entity.Report, error) {
	return uc.engRepo.ListReports(status)
}

func (uc *engagementUseCase) ResolveReport(id string) error {
	return uc.engRepo.ResolveReport(id)
}

func (uc *engagementUseCase) ToggleBookmark(studentID, opportunityID string) (bool, error) {
	bookmarked, err := uc.engRepo.ToggleBookmark(studentID, opportunityID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle bookmark: %w", err)
	}

	if bookmarked {
		uc.incrementScore(studentID, scoreBookmark)
	}
	return bookmarked, nil
}

func (uc *engagementUseCase) ListBookmarks(studentID string) ([]*entity.Bookmark, error) {
	return uc.engRepo.ListBookmarks(studentID)
}

func (uc *engagementUseCase) Leaderboard(limit int) ([]*entity.LeaderboardEntry, error) {
	if uc.redisClient == nil {
		return []*entity.LeaderboardEntry{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	ctx := context.Background()
	results, err := uc.redisClient.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]*entity.LeaderboardEntry, len(results))
	for i, res := range results {
		entries[i] = &entity.LeaderboardEntry{
			StudentID: fmt.Sprint(res.Member),
			Score:     res.Score,
			Rank:      i + 1,
		}
	}
	return entries, nil
}

func (uc *engagementUseCase) incrementScore(studentID string, points float64) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	if err := uc.redisClient.ZIncrBy(ctx, leaderboardKey, points, studentID).Err(); err != nil {
		uc.logger.Warn("Failed to update leaderboard: %v (student_id=%s)", err, studentID)
	}
}

func (uc *engagementUseCase) publishStatusChange(sub *entity.Submission) {
	task := map[string]interface{}{
		"type":           queue.RoutingKeySubmissionStatus,
		"submission_id":  sub.ID,
		"student_id":     sub.StudentID,
		"opportunity_id": sub.OpportunityID,
		"status":         string(sub.Status),
		"priority":       7,
	}

	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish submission status notification: %v (submission_id=%s)", err, sub.ID)
	} else {
		uc.logger.Info("Published submission status notification: submission_id=%s status=%s", sub.ID, sub.Status)
	}
}

func transitionAllowed(from, to entity.SubmissionStatus) bool {
	for _, allowed := range validStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
