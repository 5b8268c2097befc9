// imagens.go
//
// Image attachments for articles. Files live on the local filesystem under
// the configured images directory; the Artigo.Imagem column stores the path.
// Uploads get a random suffix so repeated uploads for the same article never
// collide, but the column only ever points at the latest file.

package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/ar-erp/armazem-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrSemImagem is returned when the article has no image assigned.
	ErrSemImagem = errors.New("artigo não tem imagem")
	// ErrFicheiroNaoEncontrado is returned when the assigned image file is
	// missing from disk.
	ErrFicheiroNaoEncontrado = errors.New("ficheiro de imagem não encontrado")
)

// ImagemBase64 is the base64 payload for clients that cannot consume binary
// responses.
type ImagemBase64 struct {
	IDArtigo    int64  `json:"id_artigo"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ImagensStats reports image coverage over the catalog.
type ImagensStats struct {
	TotalArtigos         int64   `json:"total_artigos"`
	ArtigosComImagem     int64   `json:"artigos_com_imagem"`
	ArtigosSemImagem     int64   `json:"artigos_sem_imagem"`
	PercentagemComImagem float64 `json:"percentagem_com_imagem"`
}

// SaveArtigoImage persists the uploaded file under dir and records its path
// in the article's Imagem column. Returns the stored path.
func SaveArtigoImage(db *gorm.DB, dir string, idArtigo int64, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	u := uuid.New()
	name := fmt.Sprintf("%d_%x%s", idArtigo, u[:4], filepath.Ext(file.Filename))
	path := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	err = db.Model(&models.Artigo{}).
		Where("ID_artigo = ?", idArtigo).
		Update("Imagem", path).Error
	if err != nil {
		return "", err
	}

	return path, nil
}

// ArtigoImagePath resolves the image file path for an article.
func ArtigoImagePath(db *gorm.DB, idArtigo int64) (string, error) {
	var a models.Artigo
	err := db.Select("Imagem").Where("ID_artigo = ?", idArtigo).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSemImagem
		}
		return "", err
	}
	if a.Imagem == nil || *a.Imagem == "" {
		return "", ErrSemImagem
	}

	if _, err := os.Stat(*a.Imagem); err != nil {
		if os.IsNotExist(err) {
			return "", ErrFicheiroNaoEncontrado
		}
		return "", err
	}

	return *a.Imagem, nil
}

// ArtigoImageBase64 reads the article's image and encodes it for transport.
// The mime type is inferred from the file extension.
func ArtigoImageBase64(db *gorm.DB, idArtigo int64) (*ImagemBase64, error) {
	path, err := ArtigoImagePath(db, idArtigo)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &ImagemBase64{
		IDArtigo:    idArtigo,
		ImageBase64: base64.StdEncoding.EncodeToString(raw),
		MimeType:    "image/" + strings.TrimPrefix(filepath.Ext(path), "."),
	}, nil
}

// DeleteArtigoImage removes the article's image file when present and nulls
// the Imagem column regardless. Deleting an article without an image is a
// success, which makes the operation idempotent.
func DeleteArtigoImage(db *gorm.DB, idArtigo int64) error {
	var a models.Artigo
	err := db.Select("Imagem").Where("ID_artigo = ?", idArtigo).First(&a).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err == nil && a.Imagem != nil && *a.Imagem != "" {
		if err := os.Remove(*a.Imagem); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return db.Model(&models.Artigo{}).
		Where("ID_artigo = ?", idArtigo).
		Update("Imagem", nil).Error
}

// ImageStats reports how much of the catalog has an image attached.
func ImageStats(db *gorm.DB) (*ImagensStats, error) {
	stats := &ImagensStats{}

	if err := db.Model(&models.Artigo{}).Count(&stats.TotalArtigos).Error; err != nil {
		return nil, err
	}
	err := db.Model(&models.Artigo{}).
		Where("Imagem IS NOT NULL").
		Count(&stats.ArtigosComImagem).Error
	if err != nil {
		return nil, err
	}

	stats.ArtigosSemImagem = stats.TotalArtigos - stats.ArtigosComImagem
	if stats.TotalArtigos > 0 {
		pct := float64(stats.ArtigosComImagem) / float64(stats.TotalArtigos) * 100
		stats.PercentagemComImagem = math.Round(pct*100) / 100
	}

	return stats, nil
}
