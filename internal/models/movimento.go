package models

import "time"

// Movimento is a stock movement row, including the shelf/corridor location
// detail. Quantities are nullable in the database; sync output coerces them
// to 0.0 (services.MovimentoSync).
type Movimento struct {
	IDMovimento int64      `gorm:"column:ID_movimento;primaryKey;autoIncrement" json:"ID_movimento"`
	IDArtigo    *int64     `gorm:"column:ID_artigo" json:"ID_artigo"`
	IDArmazem   *int64     `gorm:"column:ID_armazem" json:"ID_armazem"`
	DataMov     *time.Time `gorm:"column:Data_mov" json:"Data_mov"`
	QtdEntrada  *float64   `gorm:"column:Qtd_entrada" json:"Qtd_entrada"`
	QtdSaida    *float64   `gorm:"column:Qtd_saida" json:"Qtd_saida"`
	Rack        *string    `gorm:"column:Rack;size:50" json:"Rack"`
	NPrateleira *int       `gorm:"column:NPrateleira" json:"NPrateleira"`
	DPrateleira *string    `gorm:"column:DPrateleira;size:100" json:"DPrateleira"`
	NCorredor   *int       `gorm:"column:NCorredor" json:"NCorredor"`
	DCorredor   *string    `gorm:"column:DCorredor;size:100" json:"DCorredor"`
	Zona        *string    `gorm:"column:Zona;size:50" json:"Zona"`
}

// TableName overrides the table name for Movimento
func (Movimento) TableName() string {
	return "Movimentos"
}
