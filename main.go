package main

import (
	"os"
	"time"

	"membership-app/config"
	"membership-app/database"
	plansapi "membership-app/internal/api/plans"
	regsapi "membership-app/internal/api/registrations"
	sessionsapi "membership-app/internal/api/sessions"
	usersapi "membership-app/internal/api/users"
	"membership-app/internal/app/accounts"
	routes "membership-app/internal/app/http"
	plansvc "membership-app/internal/app/plans"
	regsvc "membership-app/internal/app/registrations"
	"membership-app/internal/infra/password"
	"membership-app/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	db := database.InitDB()

	planStore := store.NewPlanStore(db)
	userStore := store.NewUserStore(db)
	studentStore := store.NewStudentStore(db)
	registrationStore := store.NewRegistrationStore(db)

	hasher := password.NewBcrypt()

	planService := plansvc.NewService(planStore)
	accountService := accounts.NewService(userStore, hasher)
	registrationService := regsvc.NewService(registrationStore, planStore, studentStore)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Handlers{
		Plans:         plansapi.NewHandler(planService),
		Users:         usersapi.NewHandler(accountService),
		Registrations: regsapi.NewHandler(registrationService),
		Sessions:      sessionsapi.NewHandler(accountService),
	})

	r.Run(":" + config.PORT)
}
