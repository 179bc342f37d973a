package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockEngagementUseCase is a mock implementation of EngagementUseCase
type MockEngagementUseCase struct {
	mock.Mock
}

func (m *MockEngagementUseCase) SubmitApplication(studentID, opportunityID, coverNote string, resume io.Reader, resumeName, contentType string) (*entity.Submission, error) {
	args := m.Called(studentID, opportunityID, coverNote, resume, resumeName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockEngagementUseCase) GetSubmission(studentID, id string, isAdmin bool) (*entity.Submission, error) {
	args := m.Called(studentID, id, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockEngagementUseCase) ListMySubmissions(studentID string) ([]*entity.Submission, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Submission), args.Error(1)
}

func (m *MockEngagementUseCase) ListOpportunitySubmissions(opportunityID string) ([]*entity.Submission, error) {
	args := m.Called(opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Submission), args.Error(1)
}

func (m *MockEngagementUseCase) ReviewSubmission(id string, status entity.SubmissionStatus) (*entity.Submission, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockEngagementUseCase) WithdrawSubmission(studentID, id string) error {
	args := m.Called(studentID, id)
	return args.Error(0)
}

func (m *MockEngagementUseCase) RateOpportunity(studentID, opportunityID string, stars int) (*entity.Rating, error) {
	args := m.Called(studentID, opportunityID, stars)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockEngagementUseCase) GetRatingSummary(opportunityID string) (*entity.RatingSummary, error) {
	args := m.Called(opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RatingSummary), args.Error(1)
}

func (m *MockEngagementUseCase) GetMyRating(studentID, opportunityID string) (*entity.Rating, error) {
	args := m.Called(studentID, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockEngagementUseCase) ReportOpportunity(studentID, opportunityID, reason, details string) (*entity.Report, error) {
	args := m.Called(studentID, opportunityID, reason, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

func (m *MockEngagementUseCase) ListReports(status entity.ReportStatus) ([]*entity.Report, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Report), args.Error(1)
}

func (m *MockEngagementUseCase) ResolveReport(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEngagementUseCase) ToggleBookmark(studentID, opportunityID string) (bool, error) {
	args := m.Called(studentID, opportunityID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementUseCase) ListBookmarks(studentID string) ([]*entity.Bookmark, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Bookmark), args.Error(1)
}

func (m *MockEngagementUseCase) Leaderboard(limit int) ([]*entity.LeaderboardEntry, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeaderboardEntry), args.Error(1)
}

var _ usecase.EngagementUseCase = (*MockEngagementUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSubmit_WithoutResume(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/submissions", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.Submit(c)
	})

	sub := &entity.Submission{ID: "sub-1", StudentID: "student-1", OpportunityID: "opp-1", Status: entity.SubmissionSubmitted}
	mockUseCase.On("SubmitApplication", "student-1", "opp-1", "Interested!", nil, "", "").Return(sub, nil)

	form := bytes.NewBufferString("opportunity_id=opp-1&cover_note=Interested%21")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSubmit_MissingOpportunityID(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/submissions", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.Submit(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions", bytes.NewBufferString("cover_note=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SubmitApplication")
}

func TestSubmit_Duplicate(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/submissions", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.Submit(c)
	})

	mockUseCase.On("SubmitApplication", "student-1", "opp-1", "", nil, "", "").
		Return(nil, errors.New("you have already applied to this opportunity"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions", bytes.NewBufferString("opportunity_id=opp-1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReview_Accept(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/submissions/:id/review", handler.Review)

	sub := &entity.Submission{ID: "sub-1", Status: entity.SubmissionAccepted}
	mockUseCase.On("ReviewSubmission", "sub-1", entity.SubmissionAccepted).Return(sub, nil)

	body, _ := json.Marshal(ReviewRequest{Status: "accepted"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/submissions/sub-1/review", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestReview_InvalidStatus(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/submissions/:id/review", handler.Review)

	body, _ := json.Marshal(ReviewRequest{Status: "maybe"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/submissions/sub-1/review", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "ReviewSubmission")
}

func TestReview_InvalidTransition(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/submissions/:id/review", handler.Review)

	mockUseCase.On("ReviewSubmission", "sub-1", entity.SubmissionUnderReview).
		Return(nil, errors.New("cannot move submission from accepted to under_review"))

	body, _ := json.Marshal(ReviewRequest{Status: "under_review"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/submissions/sub-1/review", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRate_Success(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/ratings", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.Rate(c)
	})

	rating := &entity.Rating{ID: "rating-1", StudentID: "student-1", OpportunityID: "opp-1", Stars: 4}
	mockUseCase.On("RateOpportunity", "student-1", "opp-1", 4).Return(rating, nil)

	body, _ := json.Marshal(RateRequest{OpportunityID: "opp-1", Stars: 4})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRate_StarsOutOfRange(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/ratings", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.Rate(c)
	})

	mockUseCase.On("RateOpportunity", "student-1", "opp-1", 9).
		Return(nil, errors.New("stars must be between 1 and 5"))

	body, _ := json.Marshal(RateRequest{OpportunityID: "opp-1", Stars: 9})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleBookmark(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/bookmarks", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.ToggleBookmark(c)
	})

	mockUseCase.On("ToggleBookmark", "student-1", "opp-1").Return(true, nil)

	body, _ := json.Marshal(BookmarkRequest{OpportunityID: "opp-1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookmarks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp["bookmarked"])
}

func TestMyRating_Success(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/opportunities/:id/ratings/me", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.MyRating(c)
	})

	rating := &entity.Rating{ID: "rat-1", StudentID: "student-1", OpportunityID: "opp-1", Stars: 4}
	mockUseCase.On("GetMyRating", "student-1", "opp-1").Return(rating, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities/opp-1/ratings/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.Rating
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 4, resp.Stars)
	mockUseCase.AssertExpectations(t)
}

func TestMyRating_NotRated(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/opportunities/:id/ratings/me", func(c *gin.Context) {
		c.Set("user_id", "student-1")
		handler.MyRating(c)
	})

	mockUseCase.On("GetMyRating", "student-1", "opp-1").Return(nil, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities/opp-1/ratings/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSubmission_Forbidden(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/submissions/:id", func(c *gin.Context) {
		c.Set("user_id", "student-2")
		c.Set("user_role", "student")
		handler.GetSubmission(c)
	})

	mockUseCase.On("GetSubmission", "student-2", "sub-1", false).
		Return(nil, errors.New("access denied"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/submissions/sub-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResolveReport_NotFound(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/reports/:id/resolve", handler.ResolveReport)

	mockUseCase.On("ResolveReport", "missing").Return(gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reports/missing/resolve", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboard(t *testing.T) {
	mockUseCase := new(MockEngagementUseCase)
	handler := NewEngagementHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/leaderboard", handler.Leaderboard)

	entries := []*entity.LeaderboardEntry{
		{StudentID: "student-1", Score: 42, Rank: 1},
		{StudentID: "student-2", Score: 17, Rank: 2},
	}
	mockUseCase.On("Leaderboard", 10).Return(entries, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/leaderboard", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*entity.LeaderboardEntry
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, 1, resp[0].Rank)
	mockUseCase.AssertExpectations(t)
}
