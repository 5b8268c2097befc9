package services_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ar-erp/armazem-api/internal/database"
	"github.com/ar-erp/armazem-api/internal/models"
	"github.com/ar-erp/armazem-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing. The pool is
// pinned to one connection so the in-memory database survives concurrent
// snapshot fetches.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func int64Ptr(i int64) *int64       { return &i }
func floatPtr(f float64) *float64   { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestFetchEquipamentosCoercions(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.Equipamento{
		NSerie:         strPtr("SN-001"),
		DataAquisicao:  timePtr(time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)),
		RequerInspecao: intPtr(1),
	})
	db.Create(&models.Equipamento{
		NSerie: strPtr("SN-002"),
	})

	out, err := services.FetchEquipamentos(db)
	if err != nil {
		t.Fatalf("FetchEquipamentos failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(out))
	}

	byserial := map[string]services.EquipamentoSync{}
	for _, e := range out {
		byserial[*e.NSerie] = e
	}

	first := byserial["SN-001"]
	if first.DataAquisicao == nil || *first.DataAquisicao != "2023-05-10" {
		t.Errorf("Expected acquisition date '2023-05-10', got %v", first.DataAquisicao)
	}
	if first.RequerInspecao != 1 {
		t.Errorf("Expected Requer_inspecao 1, got %d", first.RequerInspecao)
	}

	second := byserial["SN-002"]
	if second.DataAquisicao != nil {
		t.Errorf("Expected null acquisition date, got %v", *second.DataAquisicao)
	}
	if second.RequerInspecao != 0 {
		t.Errorf("Expected null Requer_inspecao coerced to 0, got %d", second.RequerInspecao)
	}

	// The wire shape must carry an explicit null, not omit the field
	raw, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"Data_aquisicao":null`) {
		t.Errorf("Expected explicit null Data_aquisicao, got %s", raw)
	}
	if !strings.Contains(string(raw), `"Requer_inspecao":0`) {
		t.Errorf("Expected Requer_inspecao 0, got %s", raw)
	}
}

func TestFetchMovimentosCoercions(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.Movimento{
		DataMov:    timePtr(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
		QtdEntrada: floatPtr(12.5),
		Zona:       strPtr("A"),
	})
	db.Create(&models.Movimento{
		Zona: strPtr("B"),
	})

	out, err := services.FetchMovimentos(db)
	if err != nil {
		t.Fatalf("FetchMovimentos failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(out))
	}

	byZona := map[string]services.MovimentoSync{}
	for _, m := range out {
		byZona[*m.Zona] = m
	}

	first := byZona["A"]
	if first.DataMov == nil || *first.DataMov != "2024-01-15T10:30:00" {
		t.Errorf("Expected movement timestamp '2024-01-15T10:30:00', got %v", first.DataMov)
	}
	if first.QtdEntrada != 12.5 {
		t.Errorf("Expected Qtd_entrada 12.5, got %v", first.QtdEntrada)
	}
	if first.QtdSaida != 0.0 {
		t.Errorf("Expected null Qtd_saida coerced to 0.0, got %v", first.QtdSaida)
	}

	second := byZona["B"]
	if second.DataMov != nil {
		t.Errorf("Expected null movement timestamp, got %v", *second.DataMov)
	}
	if second.QtdEntrada != 0.0 || second.QtdSaida != 0.0 {
		t.Errorf("Expected null quantities coerced to 0.0, got %v / %v", second.QtdEntrada, second.QtdSaida)
	}
}

func TestFullSnapshot(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.Tipo{Designacao: strPtr("Ferramenta")})
	db.Create(&models.Tipo{Designacao: strPtr("Consumível")})
	db.Create(&models.Familia{Designacao: strPtr("Elétrica")})
	db.Create(&models.Estado{Designacao: strPtr("Operacional")})
	db.Create(&models.Armazem{Descricao: strPtr("Central")})
	db.Create(&models.Artigo{Designacao: strPtr("Berbequim")})
	db.Create(&models.Equipamento{NSerie: strPtr("SN-001")})
	db.Create(&models.Movimento{QtdEntrada: floatPtr(3)})
	db.Create(&models.Utilizador{Username: "joao", Password: "segredo"})

	data, stats, err := services.FullSnapshot(db)
	if err != nil {
		t.Fatalf("FullSnapshot failed: %v", err)
	}

	if len(data.Tipos) != 2 {
		t.Errorf("Expected 2 tipos, got %d", len(data.Tipos))
	}
	if len(data.Familias) != 1 || len(data.Estados) != 1 || len(data.Armazens) != 1 {
		t.Error("Expected one familia, estado and armazem in the snapshot")
	}
	if len(data.Artigos) != 1 || len(data.Equipamentos) != 1 {
		t.Error("Expected one artigo and equipamento in the snapshot")
	}
	if len(data.Movimentos) != 1 || len(data.Utilizadores) != 1 {
		t.Error("Expected one movimento and utilizador in the snapshot")
	}

	if stats.Tipos != 2 || stats.Familias != 1 || stats.Estados != 1 ||
		stats.Armazens != 1 || stats.Artigos != 1 || stats.Equipamentos != 1 ||
		stats.Movimentos != 1 || stats.Utilizadores != 1 {
		t.Errorf("Unexpected per-entity stats: %+v", stats)
	}
	if stats.TotalRegistos != 9 {
		t.Errorf("Expected total 9 records, got %d", stats.TotalRegistos)
	}
}

func TestFullSnapshotEmptyTablesMarshalAsArrays(t *testing.T) {
	db := setupTestDB(t)

	data, stats, err := services.FullSnapshot(db)
	if err != nil {
		t.Fatalf("FullSnapshot failed: %v", err)
	}
	if stats.TotalRegistos != 0 {
		t.Errorf("Expected 0 records, got %d", stats.TotalRegistos)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, key := range []string{
		"estados", "tipos", "familias", "armazens",
		"artigos", "equipamentos", "movimentos", "utilizadores",
	} {
		if !strings.Contains(string(raw), `"`+key+`":[]`) {
			t.Errorf("Expected %q to marshal as an empty array, got %s", key, raw)
		}
	}
}

func TestLightSnapshot(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.Tipo{Designacao: strPtr("Ferramenta")})
	db.Create(&models.Movimento{QtdEntrada: floatPtr(3)})
	db.Create(&models.Utilizador{Username: "joao", Password: "segredo"})

	data, err := services.LightSnapshot(db)
	if err != nil {
		t.Fatalf("LightSnapshot failed: %v", err)
	}

	if len(data.Tipos) != 1 || len(data.Utilizadores) != 1 {
		t.Error("Expected tipos and utilizadores in the light snapshot")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "movimentos") {
		t.Errorf("Light snapshot must not carry movements, got %s", raw)
	}
}

func TestSnapshotStats(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.Tipo{Designacao: strPtr("Ferramenta")})
	db.Create(&models.Tipo{Designacao: strPtr("Consumível")})
	db.Create(&models.Movimento{QtdEntrada: floatPtr(1)})
	db.Create(&models.Movimento{QtdSaida: floatPtr(2)})
	db.Create(&models.Movimento{QtdEntrada: floatPtr(3)})

	counts, err := services.SnapshotStats(db)
	if err != nil {
		t.Fatalf("SnapshotStats failed: %v", err)
	}

	if counts.Tipo != 2 {
		t.Errorf("Expected 2 tipos, got %d", counts.Tipo)
	}
	if counts.Movimentos != 3 {
		t.Errorf("Expected 3 movimentos, got %d", counts.Movimentos)
	}
	if counts.Familia != 0 || counts.Estado != 0 || counts.Armazem != 0 ||
		counts.Artigo != 0 || counts.Equipamento != 0 || counts.Utilizadores != 0 {
		t.Errorf("Expected zero counts for empty tables, got %+v", counts)
	}
}

func TestSyncTimestampFormat(t *testing.T) {
	ts := services.SyncTimestamp()
	if _, err := time.Parse("2006-01-02T15:04:05", ts); err != nil {
		t.Errorf("Expected ISO-8601 timestamp, got %q: %v", ts, err)
	}
}
