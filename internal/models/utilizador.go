package models

// Utilizador is an application user. The full sync projection exposes the
// stored Password value to the offline client; login responses use
// services.UtilizadorPublic, which excludes it.
type Utilizador struct {
	IDUtilizador int64   `gorm:"column:ID_utilizador;primaryKey;autoIncrement" json:"ID_utilizador"`
	Nome         *string `gorm:"column:Nome;size:200" json:"Nome"`
	Email        *string `gorm:"column:Email;size:200" json:"Email"`
	Username     string  `gorm:"column:Username;size:100;not null;uniqueIndex" json:"Username"`
	Password     string  `gorm:"column:Password;size:255;not null" json:"Password"`
	Ativo        int     `gorm:"column:Ativo;not null;default:1" json:"Ativo"`
}

// TableName overrides the table name for Utilizador
func (Utilizador) TableName() string {
	return "Utilizadores"
}
