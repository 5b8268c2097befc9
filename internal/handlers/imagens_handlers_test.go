package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/ar-erp/armazem-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// multipartImage builds a multipart body with one "file" part of the given
// content type.
func multipartImage(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Write part failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close writer failed: %v", err)
	}

	return body, writer.FormDataContentType()
}

func uploadImage(t *testing.T, app *fiber.App, path, filename, contentType string, content []byte) (int, map[string]interface{}) {
	t.Helper()

	body, formContentType := multipartImage(t, filename, contentType, content)
	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", formContentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.StatusCode, result
}

func TestImageUploadAndRoundTrip(t *testing.T) {
	app, db, _ := setupTestApp(t)

	artigo := models.Artigo{Designacao: strPtr("Berbequim")}
	db.Create(&artigo)

	content := []byte("fake-png-content")
	status, result := uploadImage(t, app, "/artigos/1/imagem", "foto.png", "image/png", content)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["success"] != true || result["message"] != "Imagem carregada com sucesso" {
		t.Fatalf("Unexpected upload result: %v", result)
	}
	if result["image_path"] == nil || result["image_path"] == "" {
		t.Fatal("Expected image_path in the upload result")
	}

	// Binary download returns the original bytes
	req := httptest.NewRequest("GET", "/artigos/1/imagem", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	downloaded, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if !bytes.Equal(downloaded, content) {
		t.Errorf("Downloaded image differs from the upload")
	}

	// Base64 variant round-trips too
	b64 := getJSON(t, app, "/artigos/1/imagem/base64", 200)
	if b64["success"] != true {
		t.Fatalf("Expected success, got %v", b64)
	}
	if b64["mime_type"] != "image/png" {
		t.Errorf("Expected mime_type 'image/png', got %v", b64["mime_type"])
	}
	decoded, err := base64.StdEncoding.DecodeString(b64["image_base64"].(string))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, content) {
		t.Errorf("Base64 image differs from the upload")
	}
}

func TestImageUploadValidation(t *testing.T) {
	app, db, _ := setupTestApp(t)
	db.Create(&models.Artigo{Designacao: strPtr("Berbequim")})

	// Non-image content type is rejected
	status, result := uploadImage(t, app, "/artigos/1/imagem", "doc.pdf", "application/pdf", []byte("%PDF"))
	if status != 400 {
		t.Fatalf("Expected status 400, got %d", status)
	}
	if result["message"] != "Ficheiro deve ser uma imagem" {
		t.Errorf("Unexpected message: %v", result["message"])
	}

	// Missing file part is rejected
	req := httptest.NewRequest("POST", "/artigos/1/imagem", bytes.NewReader(nil))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for missing file, got %d", resp.StatusCode)
	}
}

func TestImageDeleteIsIdempotent(t *testing.T) {
	app, db, _ := setupTestApp(t)
	db.Create(&models.Artigo{Designacao: strPtr("Berbequim")})

	status, _ := uploadImage(t, app, "/artigos/1/imagem", "foto.jpg", "image/jpeg", []byte("jpg"))
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("DELETE", "/artigos/1/imagem", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("Expected status 200 on delete %d, got %d", i+1, resp.StatusCode)
		}
		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result["success"] != true || result["message"] != "Imagem removida com sucesso" {
			t.Errorf("Unexpected delete result: %v", result)
		}
	}

	// After deletion the base64 variant reports the absence as data
	result := getJSON(t, app, "/artigos/1/imagem/base64", 200)
	if result["success"] != false || result["message"] != "Artigo não tem imagem" {
		t.Errorf("Unexpected missing-image result: %v", result)
	}
}

func TestImageStatsEndpoint(t *testing.T) {
	app, db, _ := setupTestApp(t)

	img := "some/path.png"
	db.Create(&models.Artigo{Designacao: strPtr("Berbequim"), Imagem: &img})
	db.Create(&models.Artigo{Designacao: strPtr("Alicate")})

	result := getJSON(t, app, "/artigos/imagens/stats", 200)
	if result["total_artigos"] != float64(2) {
		t.Errorf("Expected 2 articles, got %v", result["total_artigos"])
	}
	if result["artigos_com_imagem"] != float64(1) {
		t.Errorf("Expected 1 article with image, got %v", result["artigos_com_imagem"])
	}
	if result["percentagem_com_imagem"] != float64(50) {
		t.Errorf("Expected 50%% coverage, got %v", result["percentagem_com_imagem"])
	}
}
