// auth.go
//
// Stateless credential verification. No session or token is issued; the
// caller handles anything beyond the yes/no answer. A failed login is a
// business outcome carried in the payload, never an HTTP error.

package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/ar-erp/armazem-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UtilizadorPublic is the user record returned on a successful login. It
// never includes the password.
type UtilizadorPublic struct {
	IDUtilizador int64   `json:"ID_utilizador"`
	Nome         *string `json:"Nome"`
	Email        *string `json:"Email"`
	Username     string  `json:"Username"`
	Ativo        int     `json:"Ativo"`
}

// LoginResult is the login payload. Success is always reported with HTTP
// 200; Message distinguishes an unknown/inactive user from a wrong password.
type LoginResult struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Utilizador *UtilizadorPublic `json:"utilizador,omitempty"`
}

// Login verifies credentials against the Utilizadores table. Only active
// users can log in.
func Login(db *gorm.DB, username, password string) (*LoginResult, error) {
	var u models.Utilizador
	err := db.Where("Username = ? AND Ativo = 1", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &LoginResult{
				Success: false,
				Message: "Utilizador não encontrado ou inativo",
			}, nil
		}
		return nil, err
	}

	if !passwordMatches(u.Password, password) {
		return &LoginResult{
			Success: false,
			Message: "Password incorreta",
		}, nil
	}

	return &LoginResult{
		Success: true,
		Message: "Login bem-sucedido",
		Utilizador: &UtilizadorPublic{
			IDUtilizador: u.IDUtilizador,
			Nome:         u.Nome,
			Email:        u.Email,
			Username:     u.Username,
			Ativo:        u.Ativo,
		},
	}, nil
}

// passwordMatches checks the supplied password against the stored value.
// The legacy schema stores plaintext; newer rows hold bcrypt hashes. The
// plaintext path uses a constant-time comparison.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
