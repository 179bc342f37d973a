package http

import (
	"net/http"
	"strconv"

	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EngagementHandler struct {
	engUseCase usecase.EngagementUseCase
}

func NewEngagementHandler(engUseCase usecase.EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{
		engUseCase: engUseCase,
	}
}

type RateRequest struct {
	OpportunityID string `json:"opportunity_id" binding:"required"`
	Stars         int    `json:"stars" binding:"required"`
}

type ReportRequest struct {
	OpportunityID string `json:"opportunity_id" binding:"required"`
	Reason        string `json:"reason" binding:"required,max=100"`
	Details       string `json:"details"`
}

type ReviewRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookmarkRequest struct {
	OpportunityID string `json:"opportunity_id" binding:"required"`
}

// Submit godoc
// @Summary      Apply to an opportunity
// @Description  Multipart form with optional resume file and cover note, one submission per student per opportunity
// @Tags         engagement
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        opportunity_id formData string true  "Opportunity ID"
// @Param        cover_note     formData string false "Cover note"
// @Param        resume         formData file   false "Resume file"
// @Success      201  {object}  entity.Submission
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /submissions [post]
func (h *EngagementHandler) Submit(c *gin.Context) {
	studentID := c.GetString("user_id")

	opportunityID := c.PostForm("opportunity_id")
	if opportunityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "opportunity_id is required"})
		return
	}
	coverNote := c.PostForm("cover_note")

	var (
		sub *entity.Submission
		err error
	)

	file, header, ferr := c.Request.FormFile("resume")
	if ferr == nil {
		defer file.Close()
		contentType := header.Header.Get("Content-Type")
		sub, err = h.engUseCase.SubmitApplication(studentID, opportunityID, coverNote, file, header.Filename, contentType)
	} else {
		sub, err = h.engUseCase.SubmitApplication(studentID, opportunityID, coverNote, nil, "", "")
	}

	if err != nil {
		switch err.Error() {
		case "you have already applied to this opportunity":
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case "failed to upload resume":
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		}
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// GetSubmission godoc
// @Summary      Get a submission
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Success      200  {object}  entity.Submission
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /submissions/{id} [get]
func (h *EngagementHandler) GetSubmission(c *gin.Context) {
	studentID := c.GetString("user_id")
	isAdmin := c.GetString("user_role") == "admin"

	sub, err := h.engUseCase.GetSubmission(studentID, c.Param("id"), isAdmin)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		if err.Error() == "access denied" {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get submission"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListMySubmissions godoc
// @Summary      List my submissions
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Submission
// @Router       /submissions [get]
func (h *EngagementHandler) ListMySubmissions(c *gin.Context) {
	subs, err := h.engUseCase.ListMySubmissions(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// ListOpportunitySubmissions godoc
// @Summary      List submissions for an opportunity
// @Description  Admin-only review listing
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Opportunity ID"
// @Success      200  {array}  entity.Submission
// @Router       /opportunities/{id}/submissions [get]
func (h *EngagementHandler) ListOpportunitySubmissions(c *gin.Context) {
	subs, err := h.engUseCase.ListOpportunitySubmissions(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// Review godoc
// @Summary      Review a submission
// @Description  Admin status transition: submitted -> under_review -> accepted/rejected
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string        true "Submission ID"
// @Param        request body ReviewRequest true "New status"
// @Success      200  {object}  entity.Submission
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /submissions/{id}/review [put]
func (h *EngagementHandler) Review(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := entity.SubmissionStatus(req.Status)
	switch status {
	case entity.SubmissionUnderReview, entity.SubmissionAccepted, entity.SubmissionRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	sub, err := h.engUseCase.ReviewSubmission(c.Param("id"), status)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// Withdraw godoc
// @Summary      Withdraw a submission
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /submissions/{id} [delete]
func (h *EngagementHandler) Withdraw(c *gin.Context) {
	err := h.engUseCase.WithdrawSubmission(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		switch err.Error() {
		case "access denied":
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "cannot withdraw a reviewed submission":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw submission"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission withdrawn"})
}

// Rate godoc
// @Summary      Rate an opportunity
// @Description  One rating per student per opportunity, re-rating replaces the stars
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RateRequest true "Rating"
// @Success      200  {object}  entity.Rating
// @Failure      400  {object}  map[string]string
// @Router       /ratings [post]
func (h *EngagementHandler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.engUseCase.RateOpportunity(c.GetString("user_id"), req.OpportunityID, req.Stars)
	if err != nil {
		switch err.Error() {
		case "stars must be between 1 and 5":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}

// RatingSummary godoc
// @Summary      Rating summary for an opportunity
// @Tags         engagement
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      200  {object}  entity.RatingSummary
// @Router       /opportunities/{id}/ratings [get]
func (h *EngagementHandler) RatingSummary(c *gin.Context) {
	summary, err := h.engUseCase.GetRatingSummary(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rating summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// MyRating godoc
// @Summary      My rating for an opportunity
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Opportunity ID"
// @Success      200  {object}  entity.Rating
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id}/ratings/me [get]
func (h *EngagementHandler) MyRating(c *gin.Context) {
	rating, err := h.engUseCase.GetMyRating(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "You have not rated this opportunity"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rating"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// Report godoc
// @Summary      Report an opportunity
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ReportRequest true "Report"
// @Success      201  {object}  entity.Report
// @Failure      400  {object}  map[string]string
// @Router       /reports [post]
func (h *EngagementHandler) Report(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.engUseCase.ReportOpportunity(c.GetString("user_id"), req.OpportunityID, req.Reason, req.Details)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports godoc
// @Summary      List reports
// @Description  Admin moderation queue, optionally filtered by status
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "open or resolved"
// @Success      200  {array}  entity.Report
// @Router       /reports [get]
func (h *EngagementHandler) ListReports(c *gin.Context) {
	reports, err := h.engUseCase.ListReports(entity.ReportStatus(c.Query("status")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ResolveReport godoc
// @Summary      Resolve a report
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Report ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reports/{id}/resolve [put]
func (h *EngagementHandler) ResolveReport(c *gin.Context) {
	if err := h.engUseCase.ResolveReport(c.Param("id")); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report resolved"})
}

// ToggleBookmark godoc
// @Summary      Toggle a bookmark
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BookmarkRequest true "Bookmark"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Router       /bookmarks [post]
func (h *EngagementHandler) ToggleBookmark(c *gin.Context) {
	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookmarked, err := h.engUseCase.ToggleBookmark(c.GetString("user_id"), req.OpportunityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// ListBookmarks godoc
// @Summary      List my bookmarks
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Bookmark
// @Router       /bookmarks [get]
func (h *EngagementHandler) ListBookmarks(c *gin.Context) {
	bookmarks, err := h.engUseCase.ListBookmarks(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookmarks"})
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// Leaderboard godoc
// @Summary      Engagement leaderboard
// @Description  Top students by engagement score
// @Tags         engagement
// @Produce      json
// @Param        limit query int false "Number of entries (max 100)"
// @Success      200  {array}  entity.LeaderboardEntry
// @Router       /leaderboard [get]
func (h *EngagementHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.engUseCase.Leaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
