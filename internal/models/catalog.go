// catalog.go
//
// GORM models for the catalog side of the ERP schema. Column names and JSON
// field names mirror the database exactly; the offline mobile client keys its
// local copy on them.

package models

// Tipo is an article type lookup row.
type Tipo struct {
	IDTipo     int64   `gorm:"column:ID_tipo;primaryKey;autoIncrement" json:"ID_tipo"`
	Designacao *string `gorm:"column:Designacao;size:100" json:"Designacao"`
}

// TableName overrides the table name for Tipo
func (Tipo) TableName() string {
	return "Tipo"
}

// Familia is an article family lookup row.
type Familia struct {
	IDFamilia  int64   `gorm:"column:ID_familia;primaryKey;autoIncrement" json:"ID_familia"`
	Designacao *string `gorm:"column:Designacao;size:100" json:"Designacao"`
}

// TableName overrides the table name for Familia
func (Familia) TableName() string {
	return "Familia"
}

// Armazem is a warehouse row.
type Armazem struct {
	IDArmazem   int64   `gorm:"column:ID_armazem;primaryKey;autoIncrement" json:"ID_armazem"`
	Descricao   *string `gorm:"column:Descricao;size:200" json:"Descricao"`
	Localizacao *string `gorm:"column:Localizacao;size:200" json:"Localizacao"`
}

// TableName overrides the table name for Armazem
func (Armazem) TableName() string {
	return "Armazem"
}

// Artigo is a catalog article. Imagem holds the path of the uploaded image
// file, or NULL when the article has none. The Tipo/Familia associations are
// excluded from JSON; the catalog endpoints denormalize them on demand.
type Artigo struct {
	IDArtigo   int64   `gorm:"column:ID_artigo;primaryKey;autoIncrement" json:"ID_artigo"`
	IDTipo     *int64  `gorm:"column:ID_tipo" json:"ID_tipo"`
	IDFamilia  *int64  `gorm:"column:ID_familia" json:"ID_familia"`
	Referencia *string `gorm:"column:Referencia;size:50" json:"Referencia"`
	Designacao *string `gorm:"column:Designacao;size:200" json:"Designacao"`
	Imagem     *string `gorm:"column:Imagem;size:255" json:"Imagem"`
	CodBar     *string `gorm:"column:Cod_bar;size:100" json:"Cod_bar"`
	CodNFC     *string `gorm:"column:Cod_NFC;size:100" json:"Cod_NFC"`
	CodRFID    *string `gorm:"column:Cod_RFID;size:100" json:"Cod_RFID"`

	Tipo    *Tipo    `gorm:"foreignKey:IDTipo;references:IDTipo" json:"-"`
	Familia *Familia `gorm:"foreignKey:IDFamilia;references:IDFamilia" json:"-"`
}

// TableName overrides the table name for Artigo
func (Artigo) TableName() string {
	return "Artigo"
}
