package handlers

import (
	"errors"
	"fmt"

	"github.com/ar-erp/armazem-api/internal/services"
	"github.com/ar-erp/armazem-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ArtigoHandler handles the article catalog routes
type ArtigoHandler struct {
	DB *gorm.DB
}

// List handles GET /artigos
// @Summary List all articles
// @Description Full catalog with denormalized type/family, ordered by designation
// @Tags Artigos
// @Produce json
// @Success 200 {array} services.ArtigoDetail
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos [get]
func (h *ArtigoHandler) List(c *fiber.Ctx) error {
	artigos, err := services.ListArtigos(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao buscar artigos: %v", err), fiber.StatusInternalServerError, "getArtigos")
	}
	return c.Status(fiber.StatusOK).JSON(artigos)
}

// GetByID handles GET /artigos/:id
// @Summary Get one article
// @Tags Artigos
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} services.ArtigoDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos/{id} [get]
func (h *ArtigoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, "ID de artigo inválido", fiber.StatusBadRequest, "artigos.validation.id")
	}

	artigo, err := services.GetArtigoByID(h.DB, int64(id))
	if err != nil {
		if errors.Is(err, services.ErrArtigoNotFound) {
			return utils.NotFoundResponse(c, "Artigo não encontrado")
		}
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao buscar artigo: %v", err), fiber.StatusInternalServerError, "getArtigoByID")
	}

	return c.Status(fiber.StatusOK).JSON(artigo)
}

// GetByCodigo handles GET /artigos/codigo/:codigo
// @Summary Get one article by alternate code
// @Description Matches the barcode, NFC tag, RFID tag or reference, whichever field holds the code
// @Tags Artigos
// @Produce json
// @Param codigo path string true "Barcode, NFC, RFID or reference code"
// @Success 200 {object} services.ArtigoDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos/codigo/{codigo} [get]
func (h *ArtigoHandler) GetByCodigo(c *fiber.Ctx) error {
	codigo := c.Params("codigo")

	artigo, err := services.GetArtigoByCodigo(h.DB, codigo)
	if err != nil {
		if errors.Is(err, services.ErrArtigoNotFound) {
			return utils.NotFoundResponse(c, "Artigo não encontrado com este código")
		}
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao buscar artigo por código: %v", err), fiber.StatusInternalServerError, "getArtigoByCodigo")
	}

	return c.Status(fiber.StatusOK).JSON(artigo)
}
