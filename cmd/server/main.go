package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tcprodojo/backend/internal/config"
	"github.com/tcprodojo/backend/internal/database"
	"github.com/tcprodojo/backend/internal/handler"
	"github.com/tcprodojo/backend/internal/media"
	"github.com/tcprodojo/backend/internal/model"
	"github.com/tcprodojo/backend/internal/repository"
	"github.com/tcprodojo/backend/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Open(ctx, cfg.MongoURL)
	cancel()
	if err != nil {
		log.Fatalf("connect to document store: %v", err)
	}
	db := client.Database(cfg.DBName)

	gw, err := media.NewGateway(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("configure media gateway: %v", err)
	}

	// One generic repository per collection; only the explicitly ordered
	// collections carry a sort field.
	h := router.Handlers{
		Auth:         handler.NewAuth(cfg.JWTSecret, repository.NewAdmin(db)),
		Events:       handler.NewContent[model.Event]("event", repository.NewContent[model.Event](db, "events", "")),
		Trainers:     handler.NewContent[model.Trainer]("trainer", repository.NewContent[model.Trainer](db, "trainers", "")),
		Testimonials: handler.NewContent[model.Testimonial]("testimonial", repository.NewContent[model.Testimonial](db, "testimonials", "")),
		Gallery:      handler.NewContent[model.GalleryItem]("gallery item", repository.NewContent[model.GalleryItem](db, "gallery", "displayOrder")),
		Coaches:      handler.NewContent[model.Coach]("coach", repository.NewContent[model.Coach](db, "coaches", "displayOrder")),
		Stories:      handler.NewContent[model.SuccessStory]("success story", repository.NewContent[model.SuccessStory](db, "success_stories", "displayOrder")),
		Endorsements: handler.NewContent[model.Endorsement]("endorsement", repository.NewContent[model.Endorsement](db, "endorsements", "displayOrder")),
		Bookings:     handler.NewContent[model.Booking]("booking", repository.NewContent[model.Booking](db, "bookings", "")),
		Contacts:     handler.NewContent[model.ContactMessage]("contact message", repository.NewContent[model.ContactMessage](db, "contacts", "")),
		Status:       handler.NewContent[model.StatusCheck]("status check", repository.NewContent[model.StatusCheck](db, "status_checks", "")),
		Media:        handler.NewMedia(gw),
	}

	e := router.New(cfg, h)

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests and release the
	// store connection.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := database.Close(client, 5*time.Second); err != nil {
		log.Printf("disconnect document store: %v", err)
	}
}
