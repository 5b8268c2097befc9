package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ar-erp/armazem-api/internal/models"
)

func TestListArtigosEndpoint(t *testing.T) {
	app, db, _ := setupTestApp(t)

	tipo := models.Tipo{Designacao: strPtr("Ferramenta")}
	db.Create(&tipo)
	db.Create(&models.Artigo{
		Designacao: strPtr("Berbequim"),
		IDTipo:     &tipo.IDTipo,
	})
	db.Create(&models.Artigo{Designacao: strPtr("Alicate")})

	req := httptest.NewRequest("GET", "/artigos", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(result))
	}

	// Ordered by designation, with the type denormalized where complete
	if result[0]["Designacao"] != "Alicate" || result[1]["Designacao"] != "Berbequim" {
		t.Errorf("Unexpected order: %v, %v", result[0]["Designacao"], result[1]["Designacao"])
	}
	nested, ok := result[1]["tipo"].(map[string]interface{})
	if !ok || nested["Designacao"] != "Ferramenta" {
		t.Errorf("Expected denormalized tipo on Berbequim, got %v", result[1]["tipo"])
	}
	if _, present := result[0]["tipo"]; present {
		t.Errorf("Expected no tipo key on Alicate, got %v", result[0]["tipo"])
	}
}

func TestGetArtigoEndpoint(t *testing.T) {
	app, db, _ := setupTestApp(t)

	artigo := models.Artigo{Designacao: strPtr("Berbequim")}
	db.Create(&artigo)

	result := getJSON(t, app, "/artigos/1", 200)
	if result["Designacao"] != "Berbequim" {
		t.Errorf("Unexpected article: %v", result)
	}

	result = getJSON(t, app, "/artigos/9999", 404)
	if result["message"] != "Artigo não encontrado" {
		t.Errorf("Unexpected message: %v", result["message"])
	}

	result = getJSON(t, app, "/artigos/abc", 400)
	if result["message"] != "ID de artigo inválido" {
		t.Errorf("Unexpected message: %v", result["message"])
	}
}

func TestGetArtigoByCodigoEndpoint(t *testing.T) {
	app, db, _ := setupTestApp(t)

	db.Create(&models.Artigo{
		Designacao: strPtr("Berbequim"),
		CodBar:     strPtr("BAR-1"),
	})

	result := getJSON(t, app, "/artigos/codigo/BAR-1", 200)
	if result["Designacao"] != "Berbequim" {
		t.Errorf("Unexpected article: %v", result)
	}

	result = getJSON(t, app, "/artigos/codigo/UNKNOWN", 404)
	if result["message"] != "Artigo não encontrado com este código" {
		t.Errorf("Unexpected message: %v", result["message"])
	}
}
