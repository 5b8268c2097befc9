package models

import "time"

// Estado is an equipment state lookup row.
type Estado struct {
	IDEstado   int64   `gorm:"column:ID_Estado;primaryKey;autoIncrement" json:"ID_Estado"`
	Designacao *string `gorm:"column:Designacao;size:100" json:"Designacao"`
}

// TableName overrides the table name for Estado
func (Estado) TableName() string {
	return "Estado"
}

// Equipamento is a tracked equipment unit belonging to an article.
// Sync output applies coercions (ISO date, Requer_inspecao default 0), so the
// wire shape comes from services.EquipamentoSync, not from this struct.
type Equipamento struct {
	IDEquipamento     int64      `gorm:"column:ID_equipamento;primaryKey;autoIncrement" json:"ID_equipamento"`
	IDArtigo          *int64     `gorm:"column:ID_artigo" json:"ID_artigo"`
	IDEstado          *int64     `gorm:"column:ID_Estado" json:"ID_Estado"`
	NSerie            *string    `gorm:"column:N_serie;size:100" json:"N_serie"`
	Marca             *string    `gorm:"column:Marca;size:100" json:"Marca"`
	Modelo            *string    `gorm:"column:Modelo;size:100" json:"Modelo"`
	DataAquisicao     *time.Time `gorm:"column:Data_aquisicao" json:"Data_aquisicao"`
	RequerInspecao    *int       `gorm:"column:Requer_inspecao" json:"Requer_inspecao"`
	CicloInspecaoDias *int       `gorm:"column:Ciclo_inspecao_dias" json:"Ciclo_inspecao_dias"`
}

// TableName overrides the table name for Equipamento
func (Equipamento) TableName() string {
	return "Equipamento"
}
