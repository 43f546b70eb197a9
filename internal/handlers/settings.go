package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "finadvisor/internal/errors"
)

// SettingsWriter persists the remembered test user id.
type SettingsWriter interface {
	SetTestUserID(id string) error
}

// SettingsHandler owns the test-deployment settings form shown in the nav.
type SettingsHandler struct {
	store SettingsWriter
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(store SettingsWriter) *SettingsHandler {
	return &SettingsHandler{store: store}
}

type testUserForm struct {
	UserID string `form:"user_id" binding:"required,numeric"`
	Return string `form:"return"`
}

// SetTestUser handles POST /settings/test-user. Only meaningful in test
// deployments; the stored id goes out as the identity fallback header.
func (h *SettingsHandler) SetTestUser(c *gin.Context) {
	var form testUserForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, returnPath(form.Return), apperrors.WithMessage(apperrors.ErrInvalidInput, "Введите числовой идентификатор пользователя"))
		return
	}
	if err := h.store.SetTestUserID(strings.TrimSpace(form.UserID)); err != nil {
		redirectWithError(c, returnPath(form.Return), apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	redirectWithNotice(c, returnPath(form.Return), "Тестовый пользователь сохранён")
}

// returnPath keeps redirects on-site: only rooted local paths pass.
func returnPath(path string) string {
	if strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") {
		return path
	}
	return "/"
}
