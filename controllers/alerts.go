package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"MedivaDesk/services"
)

// Notifier is how handlers surface outcome dialogs to the web shell. The
// shell renders these envelopes as pop-ups; swapping the implementation
// swaps the presentation without touching any handler.
type Notifier interface {
	NotifySuccess(c *gin.Context, title, message string)
	NotifyError(c *gin.Context, status int, title, message string)
	// Confirm reports whether the caller already confirmed the action.
	// When it has not, Confirm writes the confirmation prompt itself and
	// the handler must stop.
	Confirm(c *gin.Context, title, text string) bool
}

// SwalNotifier emits sweetalert-shaped envelopes.
type SwalNotifier struct{}

func (SwalNotifier) NotifySuccess(c *gin.Context, title, message string) {
	c.JSON(http.StatusOK, gin.H{
		"icon":    "success",
		"title":   title,
		"message": message,
	})
}

func (SwalNotifier) NotifyError(c *gin.Context, status int, title, message string) {
	c.JSON(status, gin.H{
		"icon":    "error",
		"title":   title,
		"message": message,
	})
}

func (SwalNotifier) Confirm(c *gin.Context, title, text string) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusConflict, gin.H{
		"icon":              "warning",
		"title":             title,
		"text":              text,
		"confirmButtonText": "Ya, hapus!",
		"cancelButtonText":  "Batal",
	})
	return false
}

// upstreamStatus maps a storage API rejection onto the status relayed to
// the shell. Transport failures surface as 502.
func upstreamStatus(err error) int {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
