package controllers

import (
	"log"
	"net/http"
	"time"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"MedivaDesk/services"
)

// DashboardController serves the landing recap: patient totals and the
// gender distribution, computed live and cached for when the storage API
// is down.
type DashboardController struct {
	API    *services.Client
	Cache  *services.RecapCache
	Alerts Notifier
}

func (ctl *DashboardController) Register(router *gin.RouterGroup) {
	router.GET("/dashboard", ctl.Recap)
}

// Recap computes the summary from a fresh fetch and refreshes the cache.
// When the fetch fails it falls back to the last cached recap, flagged
// with its age; with no cache either, the failure surfaces.
func (ctl *DashboardController) Recap(c *gin.Context) {
	patients, err := ctl.API.ListPatients(c.Request.Context())
	if err != nil {
		log.Println("Gagal memuat data pasien:", err)
		recap, updatedAt, ok := ctl.Cache.Get()
		if !ok {
			ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!", "Gagal memuat data pasien.")
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(gin.H{
			"recap":    recap,
			"stale":    true,
			"cachedAt": updatedAt.Format(time.RFC3339),
		}))
		return
	}

	recap := services.BuildRecap(patients)
	ctl.Cache.Set(recap)

	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"recap": recap, "stale": false}))
}
