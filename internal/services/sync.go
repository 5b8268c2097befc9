// sync.go
//
// Snapshot synchronization for the offline-first mobile client. Every
// projection is a full, read-only dump of one table; there are no deltas and
// no version markers, so the client re-fetches entire entity lists and
// rebuilds its local copy.

package services

import (
	"time"

	"github.com/ar-erp/armazem-api/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// EquipamentoSync is the wire shape of an equipment row. The acquisition
// date becomes an ISO-8601 string (null when absent) and a null
// Requer_inspecao is reported as 0.
type EquipamentoSync struct {
	IDEquipamento     int64   `json:"ID_equipamento"`
	IDArtigo          *int64  `json:"ID_artigo"`
	IDEstado          *int64  `json:"ID_Estado"`
	NSerie            *string `json:"N_serie"`
	Marca             *string `json:"Marca"`
	Modelo            *string `json:"Modelo"`
	DataAquisicao     *string `json:"Data_aquisicao"`
	RequerInspecao    int     `json:"Requer_inspecao"`
	CicloInspecaoDias *int    `json:"Ciclo_inspecao_dias"`
}

// MovimentoSync is the wire shape of a stock movement row. Null quantities
// are coerced to 0.0; the movement timestamp becomes an ISO-8601 string or
// null.
type MovimentoSync struct {
	IDMovimento int64   `json:"ID_movimento"`
	IDArtigo    *int64  `json:"ID_artigo"`
	IDArmazem   *int64  `json:"ID_armazem"`
	DataMov     *string `json:"Data_mov"`
	QtdEntrada  float64 `json:"Qtd_entrada"`
	QtdSaida    float64 `json:"Qtd_saida"`
	Rack        *string `json:"Rack"`
	NPrateleira *int    `json:"NPrateleira"`
	DPrateleira *string `json:"DPrateleira"`
	NCorredor   *int    `json:"NCorredor"`
	DCorredor   *string `json:"DCorredor"`
	Zona        *string `json:"Zona"`
}

// SyncData carries the full snapshot of all entities.
type SyncData struct {
	Estados      []models.Estado     `json:"estados"`
	Tipos        []models.Tipo       `json:"tipos"`
	Familias     []models.Familia    `json:"familias"`
	Armazens     []models.Armazem    `json:"armazens"`
	Artigos      []models.Artigo     `json:"artigos"`
	Equipamentos []EquipamentoSync   `json:"equipamentos"`
	Movimentos   []MovimentoSync     `json:"movimentos"`
	Utilizadores []models.Utilizador `json:"utilizadores"`
}

// LightSyncData is the snapshot without the highest-volume entity
// (movements), for fast re-syncs.
type LightSyncData struct {
	Estados      []models.Estado     `json:"estados"`
	Tipos        []models.Tipo       `json:"tipos"`
	Familias     []models.Familia    `json:"familias"`
	Armazens     []models.Armazem    `json:"armazens"`
	Artigos      []models.Artigo     `json:"artigos"`
	Equipamentos []EquipamentoSync   `json:"equipamentos"`
	Utilizadores []models.Utilizador `json:"utilizadores"`
}

// SyncStats summarizes a full snapshot, derived with len() at assembly time.
type SyncStats struct {
	TotalRegistos int `json:"total_registos"`
	Estados       int `json:"estados"`
	Tipos         int `json:"tipos"`
	Familias      int `json:"familias"`
	Armazens      int `json:"armazens"`
	Artigos       int `json:"artigos"`
	Equipamentos  int `json:"equipamentos"`
	Movimentos    int `json:"movimentos"`
	Utilizadores  int `json:"utilizadores"`
}

// TableCounts carries the per-table row counts of /sync/stats. A count match
// is only an approximation of "unchanged": updates and deletes can cancel
// out.
type TableCounts struct {
	Estado       int64 `json:"estado"`
	Tipo         int64 `json:"tipo"`
	Familia      int64 `json:"familia"`
	Armazem      int64 `json:"armazem"`
	Artigo       int64 `json:"artigo"`
	Equipamento  int64 `json:"equipamento"`
	Movimentos   int64 `json:"movimentos"`
	Utilizadores int64 `json:"utilizadores"`
}

// SyncTimestamp formats the request time carried by the sync envelopes.
func SyncTimestamp() string {
	return time.Now().Format(dateTimeLayout)
}

// FetchTipos returns every article type.
func FetchTipos(db *gorm.DB) ([]models.Tipo, error) {
	out := []models.Tipo{}
	if err := db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FetchFamilias returns every article family.
func FetchFamilias(db *gorm.DB) ([]models.Familia, error) {
	out := []models.Familia{}
	if err := db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FetchEstados returns every equipment state.
func FetchEstados(db *gorm.DB) ([]models.Estado, error) {
	out := []models.Estado{}
	if err := db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FetchArmazens returns every warehouse.
func FetchArmazens(db *gorm.DB) ([]models.Armazem, error) {
	out := []models.Armazem{}
	if err := db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FetchArtigos returns every article in its flat sync shape.
func FetchArtigos(db *gorm.DB) ([]models.Artigo, error) {
	out := []models.Artigo{}
	if err := db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FetchUtilizadores returns every user row, password included.
func FetchUtilizadores(db *gorm.DB) ([]models.Utilizador, error) {
	out := []models.Utilizador{}
	if err := db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FetchEquipamentos returns every equipment row with the sync coercions
// applied.
func FetchEquipamentos(db *gorm.DB) ([]EquipamentoSync, error) {
	var rows []models.Equipamento
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]EquipamentoSync, 0, len(rows))
	for _, e := range rows {
		item := EquipamentoSync{
			IDEquipamento:     e.IDEquipamento,
			IDArtigo:          e.IDArtigo,
			IDEstado:          e.IDEstado,
			NSerie:            e.NSerie,
			Marca:             e.Marca,
			Modelo:            e.Modelo,
			CicloInspecaoDias: e.CicloInspecaoDias,
		}
		if e.RequerInspecao != nil {
			item.RequerInspecao = *e.RequerInspecao
		}
		if e.DataAquisicao != nil {
			iso := e.DataAquisicao.Format(dateLayout)
			item.DataAquisicao = &iso
		}
		out = append(out, item)
	}
	return out, nil
}

// FetchMovimentos returns every stock movement with the sync coercions
// applied.
func FetchMovimentos(db *gorm.DB) ([]MovimentoSync, error) {
	var rows []models.Movimento
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]MovimentoSync, 0, len(rows))
	for _, m := range rows {
		item := MovimentoSync{
			IDMovimento: m.IDMovimento,
			IDArtigo:    m.IDArtigo,
			IDArmazem:   m.IDArmazem,
			Rack:        m.Rack,
			NPrateleira: m.NPrateleira,
			DPrateleira: m.DPrateleira,
			NCorredor:   m.NCorredor,
			DCorredor:   m.DCorredor,
			Zona:        m.Zona,
		}
		if m.DataMov != nil {
			iso := m.DataMov.Format(dateTimeLayout)
			item.DataMov = &iso
		}
		if m.QtdEntrada != nil {
			item.QtdEntrada = *m.QtdEntrada
		}
		if m.QtdSaida != nil {
			item.QtdSaida = *m.QtdSaida
		}
		out = append(out, item)
	}
	return out, nil
}

// FullSnapshot assembles the complete snapshot of all eight entities.
// Entities are fetched concurrently; the call is all-or-nothing, a single
// failed fetch fails the whole snapshot.
func FullSnapshot(db *gorm.DB) (*SyncData, *SyncStats, error) {
	data := &SyncData{}

	g := new(errgroup.Group)
	g.Go(func() (err error) { data.Estados, err = FetchEstados(db); return })
	g.Go(func() (err error) { data.Tipos, err = FetchTipos(db); return })
	g.Go(func() (err error) { data.Familias, err = FetchFamilias(db); return })
	g.Go(func() (err error) { data.Armazens, err = FetchArmazens(db); return })
	g.Go(func() (err error) { data.Artigos, err = FetchArtigos(db); return })
	g.Go(func() (err error) { data.Equipamentos, err = FetchEquipamentos(db); return })
	g.Go(func() (err error) { data.Movimentos, err = FetchMovimentos(db); return })
	g.Go(func() (err error) { data.Utilizadores, err = FetchUtilizadores(db); return })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats := &SyncStats{
		Estados:      len(data.Estados),
		Tipos:        len(data.Tipos),
		Familias:     len(data.Familias),
		Armazens:     len(data.Armazens),
		Artigos:      len(data.Artigos),
		Equipamentos: len(data.Equipamentos),
		Movimentos:   len(data.Movimentos),
		Utilizadores: len(data.Utilizadores),
	}
	stats.TotalRegistos = stats.Estados + stats.Tipos + stats.Familias +
		stats.Armazens + stats.Artigos + stats.Equipamentos +
		stats.Movimentos + stats.Utilizadores

	return data, stats, nil
}

// LightSnapshot assembles the snapshot without movements.
func LightSnapshot(db *gorm.DB) (*LightSyncData, error) {
	data := &LightSyncData{}

	g := new(errgroup.Group)
	g.Go(func() (err error) { data.Estados, err = FetchEstados(db); return })
	g.Go(func() (err error) { data.Tipos, err = FetchTipos(db); return })
	g.Go(func() (err error) { data.Familias, err = FetchFamilias(db); return })
	g.Go(func() (err error) { data.Armazens, err = FetchArmazens(db); return })
	g.Go(func() (err error) { data.Artigos, err = FetchArtigos(db); return })
	g.Go(func() (err error) { data.Equipamentos, err = FetchEquipamentos(db); return })
	g.Go(func() (err error) { data.Utilizadores, err = FetchUtilizadores(db); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

// SnapshotStats counts rows per table without transferring data, for clients
// that want to detect change cheaply.
func SnapshotStats(db *gorm.DB) (*TableCounts, error) {
	counts := &TableCounts{}

	for _, c := range []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Estado{}, &counts.Estado},
		{&models.Tipo{}, &counts.Tipo},
		{&models.Familia{}, &counts.Familia},
		{&models.Armazem{}, &counts.Armazem},
		{&models.Artigo{}, &counts.Artigo},
		{&models.Equipamento{}, &counts.Equipamento},
		{&models.Movimento{}, &counts.Movimentos},
		{&models.Utilizador{}, &counts.Utilizadores},
	} {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	return counts, nil
}
