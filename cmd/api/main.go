package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-core/internal/cache"
	"github.com/BruksfildServices01/agenda-core/internal/clock"
	"github.com/BruksfildServices01/agenda-core/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-core/internal/db"
	"github.com/BruksfildServices01/agenda-core/internal/gateway"
	infraRepo "github.com/BruksfildServices01/agenda-core/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-core/internal/reminder"
	"github.com/BruksfildServices01/agenda-core/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	c := cache.New(cfg.RedisURL)
	clk := clock.Real{}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	// Worker de lembretes roda junto com a API; mais instâncias podem
	// coexistir: o claim condicional no banco resolve a disputa
	dispatcher := reminder.NewDispatcher(
		infraRepo.NewReminderGormRepository(db),
		gateway.New(cfg.WhatsappAPIURL, cfg.WhatsappAPIToken),
		clk,
		time.Duration(cfg.ReminderTickSeconds)*time.Second,
	)
	go dispatcher.Run(ctx)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, c, clk)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
