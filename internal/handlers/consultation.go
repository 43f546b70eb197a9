package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/pagination"
)

const consultationHistoryPageSize = 3

// ConsultationHandler renders the AI consultation screen: goals with their
// progress, the consultation itself, its history and the monthly quota.
type ConsultationHandler struct {
	api backend.ConsultationAPI
}

// NewConsultationHandler creates a new consultation handler.
func NewConsultationHandler(api backend.ConsultationAPI) *ConsultationHandler {
	return &ConsultationHandler{api: api}
}

type consultationView struct {
	Title  string
	Active string
	Notice string
	Error  string

	Goals      []goalView
	GoalsError string

	History  pagination.PageResponse[backend.ConsultationHistoryItem]
	Limit    *backend.ConsultationLimit
	LimitMax int

	// Result of a just-posted consultation or message, empty on plain GET.
	ConsultationText  string
	ConsultationError string
	Reply             string
	GoalsAdded        []backend.AddedGoal
}

// load fetches everything the screen shows regardless of which action led
// here. The history page index comes from the hpage query parameter.
func (h *ConsultationHandler) load(c *gin.Context) consultationView {
	ctx := c.Request.Context()
	view := consultationView{
		Title:    "Консультация",
		Active:   "consultation",
		LimitMax: backend.MonthlyConsultationLimit,
	}
	view.Notice, view.Error = flash(c)

	goals, err := h.api.Goals(ctx)
	if err != nil {
		view.GoalsError = errorMessage(err)
	} else {
		view.Goals = goalViews(goals)
	}

	history := fetchQuiet(ctx, "consultation history", h.api.ConsultationHistory)
	var page pagination.PageRequest
	fmt.Sscanf(c.Query("hpage"), "%d", &page.Page)
	if page.Page < 1 {
		page.Page = 1
	}
	page.PageSize = consultationHistoryPageSize
	view.History = pagination.Page(history, page)

	view.Limit = fetchQuietPtr(ctx, "consultation limit", h.api.ConsultationLimit)
	return view
}

// Show handles GET /consultation.
func (h *ConsultationHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "consultation", h.load(c))
}

// Request handles POST /consultation/request: asks the backend to generate
// a consultation and renders the screen with the outcome inline. A
// generation can fail three ways: transport errors, an explicit limit
// response, and failure text hidden inside an HTTP-200 payload.
func (h *ConsultationHandler) Request(c *gin.Context) {
	result, err := h.api.Consultation(c.Request.Context())

	view := h.load(c)
	switch {
	case isTimeout(err):
		view.ConsultationError = "Генерация консультации заняла слишком много времени. Попробуйте позже."
	case err != nil:
		view.ConsultationError = errorMessage(err)
	case result.LimitReached:
		view.ConsultationError = fmt.Sprintf(
			"Достигнут месячный лимит консультаций (%d/%d)",
			result.RequestsUsed, backend.MonthlyConsultationLimit,
		)
	case result.Error != "":
		view.ConsultationError = result.Error
	default:
		if text, failed := result.SoftFailure(); failed {
			view.ConsultationError = text
		} else {
			view.ConsultationText = result.Consultation
		}
	}
	c.HTML(http.StatusOK, "consultation", view)
}

type messageForm struct {
	Message string `form:"message" binding:"required"`
}

// Message handles POST /consultation/message: free text from which the
// backend extracts goals.
func (h *ConsultationHandler) Message(c *gin.Context) {
	var form messageForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/consultation", apperrors.WithMessage(apperrors.ErrInvalidInput, "Введите сообщение"))
		return
	}

	result, err := h.api.SendMessage(c.Request.Context(), strings.TrimSpace(form.Message))

	view := h.load(c)
	if err != nil {
		view.ConsultationError = errorMessage(err)
	} else {
		view.Reply = result.Reply
		view.GoalsAdded = result.GoalsAdded
		if len(result.GoalsAdded) > 0 {
			// Goals list may have changed; re-read it.
			if goals, goalsErr := h.api.Goals(c.Request.Context()); goalsErr == nil {
				view.Goals = goalViews(goals)
				view.GoalsError = ""
			}
		}
	}
	c.HTML(http.StatusOK, "consultation", view)
}

type goalForm struct {
	Title       string `form:"title" binding:"required"`
	Target      string `form:"target" binding:"required"`
	Description string `form:"description"`
}

func (f goalForm) request() (backend.GoalRequest, error) {
	target, err := decimal.NewFromString(strings.TrimSpace(f.Target))
	if err != nil || !target.IsPositive() {
		return backend.GoalRequest{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Введите целевую сумму больше нуля")
	}
	description := strings.TrimSpace(f.Description)
	return backend.GoalRequest{
		Title:       strings.TrimSpace(f.Title),
		Target:      target,
		Description: &description,
	}, nil
}

// CreateGoal handles POST /consultation/goals.
func (h *ConsultationHandler) CreateGoal(c *gin.Context) {
	var form goalForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/consultation", apperrors.ErrInvalidInput)
		return
	}
	req, err := form.request()
	if err != nil {
		redirectWithError(c, "/consultation", err)
		return
	}
	if err := h.api.CreateGoal(c.Request.Context(), req); err != nil {
		redirectWithError(c, "/consultation", err)
		return
	}
	redirectWithNotice(c, "/consultation", "Цель добавлена")
}

// UpdateGoal handles POST /consultation/goals/:id. The goal is updated in
// place, so its identity and server-computed progress survive the edit.
func (h *ConsultationHandler) UpdateGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		redirectWithError(c, "/consultation", err)
		return
	}
	var form goalForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/consultation", apperrors.ErrInvalidInput)
		return
	}
	req, err := form.request()
	if err != nil {
		redirectWithError(c, "/consultation", err)
		return
	}
	if err := h.api.UpdateGoal(c.Request.Context(), id, req); err != nil {
		redirectWithError(c, "/consultation", err)
		return
	}
	redirectWithNotice(c, "/consultation", "Цель обновлена")
}

// DeleteGoal handles POST /consultation/goals/:id/delete.
func (h *ConsultationHandler) DeleteGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		redirectWithError(c, "/consultation", err)
		return
	}
	if err := h.api.DeleteGoal(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/consultation", err)
		return
	}
	redirectWithNotice(c, "/consultation", "Цель удалена")
}
