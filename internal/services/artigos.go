// artigos.go
//
// Article catalog queries. The catalog shape denormalizes the type and
// family lookups one level deep: the nested object is present only when both
// the foreign key and the looked-up designation are non-null.

package services

import (
	"errors"

	"github.com/ar-erp/armazem-api/internal/models"
	"gorm.io/gorm"
)

// ErrArtigoNotFound is returned when no article matches the lookup.
var ErrArtigoNotFound = errors.New("artigo não encontrado")

// TipoRef is the denormalized type reference embedded in a catalog article.
type TipoRef struct {
	IDTipo     int64  `json:"ID_tipo"`
	Designacao string `json:"Designacao"`
}

// FamiliaRef is the denormalized family reference embedded in a catalog
// article.
type FamiliaRef struct {
	IDFamilia  int64  `json:"ID_familia"`
	Designacao string `json:"Designacao"`
}

// ArtigoDetail is a catalog article with optional denormalized lookups.
// Absence of tipo/familia means the reference is incomplete, not that the
// object is null.
type ArtigoDetail struct {
	IDArtigo   int64       `json:"ID_artigo"`
	IDTipo     *int64      `json:"ID_tipo"`
	IDFamilia  *int64      `json:"ID_familia"`
	Referencia *string     `json:"Referencia"`
	Designacao *string     `json:"Designacao"`
	Imagem     *string     `json:"Imagem"`
	CodBar     *string     `json:"Cod_bar"`
	CodNFC     *string     `json:"Cod_NFC"`
	CodRFID    *string     `json:"Cod_RFID"`
	Tipo       *TipoRef    `json:"tipo,omitempty"`
	Familia    *FamiliaRef `json:"familia,omitempty"`
}

func newArtigoDetail(a models.Artigo) ArtigoDetail {
	detail := ArtigoDetail{
		IDArtigo:   a.IDArtigo,
		IDTipo:     a.IDTipo,
		IDFamilia:  a.IDFamilia,
		Referencia: a.Referencia,
		Designacao: a.Designacao,
		Imagem:     a.Imagem,
		CodBar:     a.CodBar,
		CodNFC:     a.CodNFC,
		CodRFID:    a.CodRFID,
	}

	if a.IDTipo != nil && a.Tipo != nil && a.Tipo.Designacao != nil {
		detail.Tipo = &TipoRef{IDTipo: *a.IDTipo, Designacao: *a.Tipo.Designacao}
	}
	if a.IDFamilia != nil && a.Familia != nil && a.Familia.Designacao != nil {
		detail.Familia = &FamiliaRef{IDFamilia: *a.IDFamilia, Designacao: *a.Familia.Designacao}
	}

	return detail
}

// ListArtigos returns the full catalog ordered by designation.
func ListArtigos(db *gorm.DB) ([]ArtigoDetail, error) {
	var rows []models.Artigo
	err := db.Preload("Tipo").Preload("Familia").
		Order("Designacao").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ArtigoDetail, 0, len(rows))
	for _, a := range rows {
		out = append(out, newArtigoDetail(a))
	}
	return out, nil
}

// GetArtigoByID returns one article by its numeric id.
func GetArtigoByID(db *gorm.DB, idArtigo int64) (*ArtigoDetail, error) {
	var a models.Artigo
	err := db.Preload("Tipo").Preload("Familia").
		Where("ID_artigo = ?", idArtigo).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtigoNotFound
		}
		return nil, err
	}

	detail := newArtigoDetail(a)
	return &detail, nil
}

// GetArtigoByCodigo returns the article whose barcode, NFC tag, RFID tag or
// reference matches the given code, whichever field matched.
func GetArtigoByCodigo(db *gorm.DB, codigo string) (*ArtigoDetail, error) {
	var a models.Artigo
	err := db.Preload("Tipo").Preload("Familia").
		Where("Cod_bar = ? OR Cod_NFC = ? OR Cod_RFID = ? OR Referencia = ?",
			codigo, codigo, codigo, codigo).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtigoNotFound
		}
		return nil, err
	}

	detail := newArtigoDetail(a)
	return &detail, nil
}
