// sync.go
//
// Sync endpoint group: one read-only projection per entity plus the
// aggregate snapshot variants consumed by the offline mobile client.

package handlers

import (
	"fmt"

	"github.com/ar-erp/armazem-api/internal/services"
	"github.com/ar-erp/armazem-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SyncHandler handles the snapshot synchronization routes
type SyncHandler struct {
	DB *gorm.DB
}

// Full handles GET /sync
// @Summary Full data snapshot
// @Description Returns every entity the mobile app needs to rebuild its local copy
// @Tags Sync
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync [get]
func (h *SyncHandler) Full(c *fiber.Ctx) error {
	data, stats, err := services.FullSnapshot(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro na sincronização: %v", err), fiber.StatusInternalServerError, "sync.full")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"data":      data,
		"stats":     stats,
		"timestamp": services.SyncTimestamp(),
	})
}

// Light handles GET /sync/light
// @Summary Light data snapshot
// @Description Full snapshot without stock movements, for fast re-syncs
// @Tags Sync
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/light [get]
func (h *SyncHandler) Light(c *fiber.Ctx) error {
	data, err := services.LightSnapshot(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro na sincronização: %v", err), fiber.StatusInternalServerError, "sync.light")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"data":      data,
		"timestamp": services.SyncTimestamp(),
	})
}

// Stats handles GET /sync/stats
// @Summary Per-table row counts
// @Description Row counts per table, for detecting change without downloading data
// @Tags Sync
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/stats [get]
func (h *SyncHandler) Stats(c *fiber.Ctx) error {
	counts, err := services.SnapshotStats(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao obter estatísticas: %v", err), fiber.StatusInternalServerError, "sync.stats")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"stats":     counts,
		"timestamp": services.SyncTimestamp(),
	})
}

// Tipos handles GET /sync/tipos
// @Summary Article types projection
// @Tags Sync
// @Produce json
// @Success 200 {array} models.Tipo
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/tipos [get]
func (h *SyncHandler) Tipos(c *fiber.Ctx) error {
	out, err := services.FetchTipos(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sync.tipos")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Familias handles GET /sync/familias
// @Summary Article families projection
// @Tags Sync
// @Produce json
// @Success 200 {array} models.Familia
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/familias [get]
func (h *SyncHandler) Familias(c *fiber.Ctx) error {
	out, err := services.FetchFamilias(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sync.familias")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Estados handles GET /sync/estados
// @Summary Equipment states projection
// @Tags Sync
// @Produce json
// @Success 200 {array} models.Estado
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/estados [get]
func (h *SyncHandler) Estados(c *fiber.Ctx) error {
	out, err := services.FetchEstados(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sync.estados")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Armazens handles GET /sync/armazens
// @Summary Warehouses projection
// @Tags Sync
// @Produce json
// @Success 200 {array} models.Armazem
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/armazens [get]
func (h *SyncHandler) Armazens(c *fiber.Ctx) error {
	out, err := services.FetchArmazens(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sync.armazens")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Artigos handles GET /sync/artigos
// @Summary Articles projection
// @Tags Sync
// @Produce json
// @Success 200 {array} models.Artigo
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/artigos [get]
func (h *SyncHandler) Artigos(c *fiber.Ctx) error {
	out, err := services.FetchArtigos(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sync.artigos")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Equipamentos handles GET /sync/equipamentos
// @Summary Equipment projection
// @Tags Sync
// @Produce json
// @Success 200 {array} services.EquipamentoSync
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/equipamentos [get]
func (h *SyncHandler) Equipamentos(c *fiber.Ctx) error {
	out, err := services.FetchEquipamentos(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro: %v", err), fiber.StatusInternalServerError, "sync.equipamentos")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Movimentos handles GET /sync/movimentos
// @Summary Stock movements projection
// @Tags Sync
// @Produce json
// @Success 200 {array} services.MovimentoSync
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/movimentos [get]
func (h *SyncHandler) Movimentos(c *fiber.Ctx) error {
	out, err := services.FetchMovimentos(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sync.movimentos")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Utilizadores handles GET /sync/utilizadores
// @Summary Users projection
// @Tags Sync
// @Produce json
// @Success 200 {array} models.Utilizador
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sync/utilizadores [get]
func (h *SyncHandler) Utilizadores(c *fiber.Ctx) error {
	out, err := services.FetchUtilizadores(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sync.utilizadores")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
