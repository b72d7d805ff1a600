package controllers

import (
	"log"
	"net/http"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"MedivaDesk/services"
)

// AuthController owns the staff session: one login at a time for the whole
// desk, stored process-wide until an explicit logout.
type AuthController struct {
	API      *services.Client
	Sessions *services.SessionStore
	Alerts   Notifier
}

// Register mounts the routes reachable without a session.
func (ctl *AuthController) Register(router *gin.Engine) {
	router.POST("/login", ctl.Login)
	router.POST("/forgot-password", ctl.ForgotPassword)
	router.POST("/reset-password", ctl.ResetPassword)
}

// RegisterProtected mounts the routes that require a session.
func (ctl *AuthController) RegisterProtected(router *gin.RouterGroup) {
	router.POST("/logout", ctl.Logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the credentials locally, exchanges them for a bearer
// token and stores it. Any upstream rejection shows the same fixed message;
// which of the two fields was wrong is never revealed.
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	if errs := services.ValidateLogin(req.Email, req.Password); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	token, err := ctl.API.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Println("Login gagal:", err)
		ctl.Alerts.NotifyError(c, http.StatusUnauthorized, "Login Gagal!", "Email atau password salah. Silakan coba lagi.")
		return
	}
	if err := ctl.Sessions.SetToken(token); err != nil {
		log.Println("Error persisting session:", err)
	}

	c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard"})
}

// Logout drops the stored session. Always succeeds.
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.Sessions.Clear(); err != nil {
		log.Println("Error clearing session:", err)
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword asks the storage API to mail a reset link.
func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	if errs := services.ValidateForgotPassword(req.Email); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := ctl.API.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		log.Println("Error requesting password reset:", err)
		msg := services.ErrorMessage(err, "Terjadi kesalahan saat mengirim email reset password. Pastikan email sudah benar dan terdaftar.")
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!", msg)
		return
	}

	ctl.Alerts.NotifySuccess(c, "Berhasil!", "Cek email Anda untuk instruksi reset password.")
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPassword consumes a mailed reset token together with the new
// password, confirmed twice.
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	if errs := services.ValidateResetPassword(req.Token, req.NewPassword, req.ConfirmPassword); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := ctl.API.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		log.Println("Error resetting password:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!", services.ErrorMessage(err, "Gagal reset password."))
		return
	}

	ctl.Alerts.NotifySuccess(c, "Berhasil!", "Password berhasil direset. Silakan login kembali.")
}
