package routes

import (
	"github.com/gin-gonic/gin"

	"MedivaDesk/controllers"
	"MedivaDesk/middleware"
	"MedivaDesk/services"
)

// Routes mounts the whole gateway surface: the public auth endpoints and,
// behind the session guard, the dashboard, both record views and their
// exports.
func Routes(router *gin.Engine, api *services.Client, sessions *services.SessionStore, rules services.FormRules, cache *services.RecapCache) {
	router.Use(middleware.RequestID())

	alerts := controllers.SwalNotifier{}

	auth := &controllers.AuthController{API: api, Sessions: sessions, Alerts: alerts}
	auth.Register(router)

	private := router.Group("/", middleware.RouteGuard(sessions))
	auth.RegisterProtected(private)

	dashboard := &controllers.DashboardController{API: api, Cache: cache, Alerts: alerts}
	dashboard.Register(private)

	patients := &controllers.PatientController{API: api, Rules: rules, Alerts: alerts}
	patients.Register(private)

	doctors := &controllers.DoctorController{API: api, Rules: rules, Alerts: alerts}
	doctors.Register(private)
}
