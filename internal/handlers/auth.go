package handlers

import (
	"fmt"

	"github.com/ar-erp/armazem-api/internal/services"
	"github.com/ar-erp/armazem-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles the authentication routes
type AuthHandler struct {
	DB *gorm.DB
}

// loginRequest is the login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /auth/login
// @Summary Verify credentials
// @Description Stateless credential check. A failed login is HTTP 200 with success=false; only infrastructure failures produce error status codes.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	result, err := services.Login(h.DB, body.Username, body.Password)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Erro: %v", err), fiber.StatusInternalServerError, "login")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
