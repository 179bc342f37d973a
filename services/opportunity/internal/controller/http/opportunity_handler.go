package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OpportunityHandler struct {
	oppUseCase usecase.OpportunityUseCase
}

func NewOpportunityHandler(oppUseCase usecase.OpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{
		oppUseCase: oppUseCase,
	}
}

type OpportunityRequest struct {
	Company     string `json:"company" binding:"required,max=200"`
	Title       string `json:"title" binding:"required,max=300"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD
	Status      string `json:"status"`
	Majors      string `json:"majors"`
	CategoryID  string `json:"category_id"`
	SourceLink  string `json:"source_link"`
}

type UpdateOpportunityRequest struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Majors      string `json:"majors"`
	CategoryID  string `json:"category_id"`
	SourceLink  string `json:"source_link"`
}

type ImportRequest struct {
	Items          []usecase.CuratedItem `json:"items" binding:"required"`
	UpdateExisting bool                  `json:"update_existing"`
}

// List godoc
// @Summary      List opportunities
// @Description  Paginated opportunities with category and location facets
// @Tags         opportunities
// @Produce      json
// @Param        category query []string false "Category IDs (repeatable)"
// @Param        region   query string   false "Region name"
// @Param        city     query string   false "City name"
// @Param        page     query int      false "Page number"
// @Success      200  {object}  entity.ListResult
// @Failure      500  {object}  map[string]string
// @Router       /opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.oppUseCase.ListOpportunities(usecase.ListParams{
		CategoryIDs: c.QueryArray("category"),
		Region:      c.Query("region"),
		City:        c.Query("city"),
		Page:        page,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list opportunities"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary      Get an opportunity
// @Tags         opportunities
// @Produce      json
// @Param        id path string true "Opportunity ID"
// @Success      200  {object}  entity.Opportunity
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c *gin.Context) {
	opp, err := h.oppUseCase.GetOpportunity(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get opportunity"})
		return
	}

	c.JSON(http.StatusOK, opp)
}

// ListCategories godoc
// @Summary      List categories
// @Tags         opportunities
// @Produce      json
// @Success      200  {array}  entity.Category
// @Failure      500  {object}  map[string]string
// @Router       /categories [get]
func (h *OpportunityHandler) ListCategories(c *gin.Context) {
	categories, err := h.oppUseCase.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary      Create an opportunity
// @Description  Admin-only manual listing creation
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body OpportunityRequest true "Opportunity data"
// @Success      201  {object}  entity.Opportunity
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /opportunities [post]
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, err := parseDeadlineParam(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
		return
	}

	userID := c.GetString("user_id")

	opp, err := h.oppUseCase.CreateOpportunity(userID, entity.SourceAdmin, usecase.OpportunityInput{
		Company:     req.Company,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Deadline:    deadline,
		Status:      req.Status,
		Majors:      req.Majors,
		CategoryID:  req.CategoryID,
		SourceLink:  req.SourceLink,
	})
	if err != nil {
		switch err.Error() {
		case "title is required":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create opportunity"})
		}
		return
	}

	c.JSON(http.StatusCreated, opp)
}

// Update godoc
// @Summary      Update an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                   true "Opportunity ID"
// @Param        request body UpdateOpportunityRequest true "Fields to update"
// @Success      200  {object}  entity.Opportunity
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id} [put]
func (h *OpportunityHandler) Update(c *gin.Context) {
	var req UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, err := parseDeadlineParam(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
		return
	}

	opp, err := h.oppUseCase.UpdateOpportunity(c.Param("id"), usecase.OpportunityInput{
		Company:     req.Company,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Deadline:    deadline,
		Status:      req.Status,
		Majors:      req.Majors,
		CategoryID:  req.CategoryID,
		SourceLink:  req.SourceLink,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update opportunity"})
		return
	}

	c.JSON(http.StatusOK, opp)
}

// Delete godoc
// @Summary      Delete an opportunity
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Opportunity ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c *gin.Context) {
	if err := h.oppUseCase.DeleteOpportunity(c.Param("id")); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete opportunity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Opportunity deleted"})
}

// ListVersions godoc
// @Summary      List import snapshots of an opportunity
// @Description  Admin-only version history written by curated imports
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Opportunity ID"
// @Success      200  {array}   entity.OpportunityVersion
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id}/versions [get]
func (h *OpportunityHandler) ListVersions(c *gin.Context) {
	versions, err := h.oppUseCase.ListVersions(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list versions"})
		return
	}

	c.JSON(http.StatusOK, versions)
}

// Import godoc
// @Summary      Import curated opportunities
// @Description  Apply a curated JSON payload, deduplicating by source link then company+title
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ImportRequest true "Curated items"
// @Success      200  {object}  usecase.ImportStats
// @Failure      400  {object}  map[string]string
// @Router       /opportunities/import [post]
func (h *OpportunityHandler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.oppUseCase.ImportCurated(req.Items, req.UpdateExisting)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseDeadlineParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
