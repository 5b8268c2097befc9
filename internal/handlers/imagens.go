// imagens.go
//
// Image attachment routes. A missing image is a 404-style "not found", never
// a 500; the base64 variant reports it inside the payload instead, because
// the mobile client treats that response as data.

package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ar-erp/armazem-api/internal/services"
	"github.com/ar-erp/armazem-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ImageHandler handles the article image routes
type ImageHandler struct {
	DB        *gorm.DB
	ImagesDir string
}

// Upload handles POST /artigos/:id/imagem
// @Summary Upload an article image
// @Description Persists the multipart file and records its path on the article
// @Tags Imagens
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Article ID"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos/{id}/imagem [post]
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, "ID de artigo inválido", fiber.StatusBadRequest, "imagens.validation.id")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "Ficheiro em falta", fiber.StatusBadRequest, "imagens.validation.file")
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return utils.ErrorResponse(c, "Ficheiro deve ser uma imagem", fiber.StatusBadRequest, "imagens.validation.contentType")
	}

	path, err := services.SaveArtigoImage(h.DB, h.ImagesDir, int64(id), file)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao carregar imagem: %v", err), fiber.StatusInternalServerError, "uploadImagem")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Imagem carregada com sucesso",
		"image_path": path,
		"id_artigo":  id,
	})
}

// Get handles GET /artigos/:id/imagem
// @Summary Stream an article image
// @Tags Imagens
// @Produce octet-stream
// @Param id path int true "Article ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos/{id}/imagem [get]
func (h *ImageHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, "ID de artigo inválido", fiber.StatusBadRequest, "imagens.validation.id")
	}

	path, err := services.ArtigoImagePath(h.DB, int64(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSemImagem):
			return utils.NotFoundResponse(c, "Artigo não tem imagem")
		case errors.Is(err, services.ErrFicheiroNaoEncontrado):
			return utils.NotFoundResponse(c, "Ficheiro de imagem não encontrado")
		}
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao obter imagem: %v", err), fiber.StatusInternalServerError, "getImagem")
	}

	return c.SendFile(path)
}

// GetBase64 handles GET /artigos/:id/imagem/base64
// @Summary Get an article image as base64
// @Description For clients that cannot consume binary responses; a missing image yields success=false, not an error status
// @Tags Imagens
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos/{id}/imagem/base64 [get]
func (h *ImageHandler) GetBase64(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, "ID de artigo inválido", fiber.StatusBadRequest, "imagens.validation.id")
	}

	payload, err := services.ArtigoImageBase64(h.DB, int64(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSemImagem):
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success": false,
				"message": "Artigo não tem imagem",
			})
		case errors.Is(err, services.ErrFicheiroNaoEncontrado):
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success": false,
				"message": "Ficheiro não encontrado",
			})
		}
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao processar imagem: %v", err), fiber.StatusInternalServerError, "getImagemBase64")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"id_artigo":    payload.IDArtigo,
		"image_base64": payload.ImageBase64,
		"mime_type":    payload.MimeType,
	})
}

// Delete handles DELETE /artigos/:id/imagem
// @Summary Remove an article image
// @Description Removes the file when present and nulls the Imagem column; idempotent
// @Tags Imagens
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos/{id}/imagem [delete]
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, "ID de artigo inválido", fiber.StatusBadRequest, "imagens.validation.id")
	}

	if err := services.DeleteArtigoImage(h.DB, int64(id)); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao remover imagem: %v", err), fiber.StatusInternalServerError, "deleteImagem")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Imagem removida com sucesso",
	})
}

// Stats handles GET /artigos/imagens/stats
// @Summary Image coverage statistics
// @Tags Imagens
// @Produce json
// @Success 200 {object} services.ImagensStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /artigos/imagens/stats [get]
func (h *ImageHandler) Stats(c *fiber.Ctx) error {
	stats, err := services.ImageStats(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro ao obter estatísticas: %v", err), fiber.StatusInternalServerError, "imagensStats")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
