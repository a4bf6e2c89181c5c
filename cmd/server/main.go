// main.go
//
// Shelter waiting list data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of waitinglist.
// waitinglist is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// waitinglist is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with waitinglist.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/waitinglist/internal/app"
	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/handlers"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/middleware"
	"github.com/localnerve/waitinglist/internal/scheduler"
	"github.com/localnerve/waitinglist/internal/services"
	"github.com/localnerve/waitinglist/internal/types"

	_ "github.com/localnerve/waitinglist/docs/api" // Swagger docs
)

// @title Waiting List API
// @version 1.0.0
// @description Shelter waiting list service with multi-database support
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/waitinglist
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", false).Fatal("failed to load configuration", logger.Error(err))
	}
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := app.Start(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to start", logger.Error(err))
	}
	defer rt.Close()

	maintenance := scheduler.NewMaintenance(rt.WaitingList, log, cfg.MaintenanceInterval)
	maintenance.Start(ctx)
	defer maintenance.Stop()

	server := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	server.Use(recover.New())
	server.Use(middleware.RequestID())
	server.Use(requestLogger(log.Named("http")))
	server.Use(compress.New())

	prometheus := fiberprometheus.New("waitinglist")
	prometheus.RegisterAt(server, "/metrics")
	server.Use(prometheus.Middleware)

	server.Get("/swagger/*", swagger.HandlerDefault)

	server.Get("/healthz", func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), cfg, rt.DB, rt.Redis, log)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	api := server.Group("/api")
	api.Use(middleware.VersionMiddleware())

	waitingList := &handlers.WaitingListHandler{Service: rt.WaitingList}
	waitingList.Register(api.Group("/waitinglist"), middleware.AuthUser(cfg, log), middleware.AuthAdmin(cfg, log))

	server.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	log.Info("authorizer will be initialized on first authenticated request")

	go func() {
		<-ctx.Done()
		log.Info("gracefully shutting down")
		_ = server.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info("starting server", logger.String("port", cfg.Port))
	if err := server.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", logger.Error(err))
		return
	}
	log.Info("server stopped")
}

// requestLogger writes one line per request through the structured logger
func requestLogger(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			logger.String("method", c.Method()),
			logger.String("path", c.Path()),
			logger.Int("status", c.Response().StatusCode()),
			logger.Duration("elapsed", time.Since(start)),
			logger.String("request_id", c.GetRespHeader(middleware.RequestIDHeader)))
		return err
	}
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var fe *fiber.Error
	var ce *types.CustomError
	switch {
	case errors.As(err, &ce):
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	}

	versionError := errors.Is(err, types.ErrConflict)
	if versionError {
		code = fiber.StatusConflict
		errorType = "version"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       code,
		"message":      message,
		"ok":           false,
		"versionError": versionError,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"url":          c.OriginalURL(),
		"type":         errorType,
	})
}
