package handlers

import (
	"fmt"

	"github.com/ar-erp/armazem-api/internal/config"
	"github.com/ar-erp/armazem-api/internal/database"
	"github.com/ar-erp/armazem-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles the liveness and reachability probes
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// Health handles GET /health
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
		"env":    h.Cfg.AppEnv,
	})
}

// DBPing handles GET /db/ping
// @Summary Database reachability probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /db/ping [get]
func (h *HealthHandler) DBPing(c *fiber.Ctx) error {
	if err := database.Ping(h.DB); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("DB ping falhou: %v", err), fiber.StatusInternalServerError, "db.ping")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"db": "ok"})
}
