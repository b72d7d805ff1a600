package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"MedivaDesk/services"
)

func StartDailyScheduler(api *services.Client, cache *services.RecapCache) {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Patient Recap...")
		RefreshRecap(api, cache)
	})

	c.Start()
}

// RefreshRecap recomputes the dashboard summary from a full fetch. On a
// storage API failure the previous cached recap is kept untouched.
func RefreshRecap(api *services.Client, cache *services.RecapCache) {
	patients, err := api.ListPatients(context.Background())
	if err != nil {
		log.Println("Error refreshing patient recap:", err)
		return
	}
	cache.Set(services.BuildRecap(patients))
	log.Println("Patient recap refreshed for", len(patients), "patients")
}
