package main

import (
	"log"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"MedivaDesk/config"
	"MedivaDesk/jobs"
	"MedivaDesk/routes"
	"MedivaDesk/services"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("Error in loading the config:", err)
	}

	sessions := services.NewSessionStore(cfg.SessionFile)
	api := services.NewClient(cfg.APIBaseURL, sessions)
	rules := services.FormRules{Phone: cfg.PhoneRule()}
	cache := &services.RecapCache{}

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		CacheEnabled:     false,
		MongoEnabled:     false,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			jobs.RefreshRecap(api, cache)
			jobs.StartDailyScheduler(api, cache)
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r, api, sessions, rules, cache)
		},
	}
	startServer(options)
}
