package main

import (
	"context"
	"log"

	"github.com/Senethlakshan/wanderlust-tales/auth"
	"github.com/Senethlakshan/wanderlust-tales/config"
	"github.com/Senethlakshan/wanderlust-tales/directory"
	"github.com/Senethlakshan/wanderlust-tales/routes"
	"github.com/Senethlakshan/wanderlust-tales/session"
	"github.com/Senethlakshan/wanderlust-tales/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	store, closeStore, err := config.OpenSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Session store failed: ", err)
	}
	defer closeStore()

	demo := directory.DemoUser
	demo.Email = cfg.DemoEmail
	verifier, err := auth.NewDemoVerifier(demo, cfg.DemoPassword)
	if err != nil {
		log.Fatal("❌ Demo identity failed: ", err)
	}

	var opts []session.ManagerOption
	if cfg.SMTPHost != "" {
		opts = append(opts, session.WithMailer(utils.NewMailer(utils.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Email:    cfg.SMTPEmail,
			Password: cfg.SMTPPassword,
		})))
	} else {
		log.Println("⚠️  SMTP_HOST not set, welcome mails disabled")
	}
	sessions := session.NewManager(store, verifier, utils.NewSigner(cfg.JWTSecret), opts...)

	dir := directory.New()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.SetupRoutes(r, dir, sessions)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Println("❌ Server stopped:", err)
	}
}
