package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/logger"
)

// parsePathID parses an int64 path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Некорректный идентификатор")
	}
	return id, nil
}

// errorMessage converts an error into the text shown to the user. AppErrors
// carry their own message; anything unexpected is logged and replaced with
// a generic one.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
			)
		}
		return appErr.Message
	}
	logger.Get().Errorw("unexpected error", "error", err.Error())
	return "Что-то пошло не так. Попробуйте позже."
}

// isTimeout reports whether err is the client-timeout error.
func isTimeout(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == apperrors.ErrTimeout.Code
}

// Mutations follow post/redirect/get: the outcome is carried back to the
// owning screen as a query-string flash, and the screen re-fetches
// everything on render.

// redirectWithNotice redirects to path with a success flash.
func redirectWithNotice(c *gin.Context, path, notice string) {
	redirectFlash(c, path, "notice", notice)
}

// redirectWithError redirects to path with an error flash.
func redirectWithError(c *gin.Context, path string, err error) {
	redirectFlash(c, path, "err", errorMessage(err))
}

func redirectFlash(c *gin.Context, path, key, value string) {
	target, parseErr := url.Parse(path)
	if parseErr != nil {
		target = &url.URL{Path: "/"}
	}
	query := target.Query()
	query.Set(key, value)
	target.RawQuery = query.Encode()
	c.Redirect(303, target.String())
}

// flash reads the notice/error flash pair from the query string.
func flash(c *gin.Context) (notice, errMsg string) {
	return c.Query("notice"), c.Query("err")
}
