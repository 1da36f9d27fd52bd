// FILE: internal/controller/ops_controller.go
package controller

import (
	"errors"

	"github.com/marcosalmeidaedp/bot-cliente/internal/dto"
	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"
	"github.com/marcosalmeidaedp/bot-cliente/internal/pkg/serverutils"
	"github.com/marcosalmeidaedp/bot-cliente/internal/repository/memory"
	"github.com/marcosalmeidaedp/bot-cliente/internal/service"
	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// IOpsController exposes the operator API: login, dataset/session stats and
// the application log tail.
type IOpsController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Login(ctx *fiber.Ctx) error
	GetRecordStats(ctx *fiber.Ctx) error
	GetSessionStats(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type opsController struct {
	auth     service.IAuthService
	records  *store.RecordStore
	sessions *memory.SessionRepository
	logger   logger.ILogger
	validate *validator.Validate
}

func NewOpsController(
	auth service.IAuthService,
	records *store.RecordStore,
	sessions *memory.SessionRepository,
	sysLogger logger.ILogger,
) IOpsController {
	return &opsController{
		auth:     auth,
		records:  records,
		sessions: sessions,
		logger:   sysLogger,
		validate: validator.New(),
	}
}

func (c *opsController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	r.Post("/auth/login", c.Login)
	r.Get("/records/stats", jwtMiddleware, c.GetRecordStats)
	r.Get("/sessions/stats", jwtMiddleware, c.GetSessionStats)
	r.Get("/logs", jwtMiddleware, c.GetLogs)
}

func (c *opsController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid credentials"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *opsController) GetRecordStats(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.RecordStatsResponse{
		Records:  c.records.Len(),
		Source:   c.records.Source(),
		LoadedAt: c.records.LoadedAt(),
	})
}

func (c *opsController) GetSessionStats(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.SessionStatsResponse{
		ActiveSessions: c.sessions.Count(),
	})
}

func (c *opsController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(fiber.Map{"data": entries, "limit": limit, "offset": offset})
}
