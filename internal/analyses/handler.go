package analyses

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"jobjotter/internal/documents"
	"jobjotter/internal/shared/server/middleware"
	"jobjotter/internal/shared/server/respond"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.create)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
	rg.GET("/analyses/:id/report", h.report)
}

type createAnalysisRequest struct {
	DocumentID     string `json:"documentId" binding:"omitempty,uuid"`
	ResumeText     string `json:"resumeText" binding:"required_without=DocumentID,max=200000"`
	ResumeFileName string `json:"resumeFileName" binding:"max=255"`
	JobDescription string `json:"jobDescription" binding:"required,max=100000"`
	JobTitle       string `json:"jobTitle" binding:"max=200"`
	Company        string `json:"company" binding:"max=200"`
}

type fieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type analysisResponse struct {
	Analysis
	Explanation ScoreExplanation `json:"explanation"`
}

func (h *Handler) create(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			respond.Error(c, http.StatusBadRequest, "validation_error", "request failed validation", validationDetails(verrs))
		case errors.Is(err, io.EOF):
			respond.Error(c, http.StatusBadRequest, "validation_error", "request body is required", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		}
		return
	}

	analysis, err := h.Svc.Run(c.Request.Context(), Request{
		SessionID:      sessionID,
		DocumentID:     req.DocumentID,
		ResumeText:     req.ResumeText,
		ResumeFileName: req.ResumeFileName,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		writeError(c, err, "failed to run analysis")
		return
	}

	c.Set(middleware.AnalysisIDKey, analysis.ID)
	if analysis.DocumentID != "" {
		c.Set(middleware.DocumentIDKey, analysis.DocumentID)
	}
	respond.JSON(c, http.StatusCreated, analysisResponse{Analysis: analysis, Explanation: ExplainScore(analysis.Result)})
}

func (h *Handler) get(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	analysisID := c.Param("id")
	c.Set(middleware.AnalysisIDKey, analysisID)

	analysis, err := h.Svc.Get(c.Request.Context(), sessionID, analysisID)
	if err != nil {
		writeError(c, err, "failed to fetch analysis")
		return
	}
	respond.OK(c, analysisResponse{Analysis: analysis, Explanation: ExplainScore(analysis.Result)})
}

func (h *Handler) list(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	limit, offset := documents.Paging(c, 20, 50)

	items, err := h.Svc.List(c.Request.Context(), sessionID, limit, offset)
	if err != nil {
		writeError(c, err, "failed to list analyses")
		return
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}

func (h *Handler) report(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	analysisID := c.Param("id")
	c.Set(middleware.AnalysisIDKey, analysisID)

	analysis, body, err := h.Svc.Report(c.Request.Context(), sessionID, analysisID)
	if err != nil {
		writeError(c, err, "failed to render report")
		return
	}

	var download string
	if c.Query("download") == "1" || c.Query("download") == "true" {
		download = "resume-analysis-" + analysis.Result.AnalysisDate.Format("2006-01-02") + ".html"
	}
	respond.HTML(c, http.StatusOK, body, download)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrDocumentNotFound):
		respond.Error(c, http.StatusNotFound, "document_not_found", "résumé not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func validationDetails(verrs validator.ValidationErrors) []fieldIssue {
	out := make([]fieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldIssue{Field: fe.Field(), Issue: issueFor(fe)})
	}
	return out
}

func issueFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "required"
	case "max":
		return "too long"
	case "uuid":
		return "must be a uuid"
	default:
		return fe.Tag()
	}
}
