package database_test

import (
	"path/filepath"
	"testing"

	"github.com/ar-erp/armazem-api/internal/config"
	"github.com/ar-erp/armazem-api/internal/database"
	"github.com/ar-erp/armazem-api/internal/models"
)

func TestBuildServerAddress(t *testing.T) {
	cases := []struct {
		name   string
		server string
		port   string
		want   string
	}{
		{
			name:   "named instance without port uses named pipe",
			server: `SRV3\ARMAZEM`,
			port:   "",
			want:   `np:\\.\pipe\MSSQL$ARMAZEM\sql\query`,
		},
		{
			name:   "named instance with port uses tcp",
			server: `SRV3\ARMAZEM`,
			port:   "1433",
			want:   `SRV3\ARMAZEM,1433`,
		},
		{
			name:   "plain host with port",
			server: "db.example.com",
			port:   "1433",
			want:   "db.example.com,1433",
		},
		{
			name:   "plain host without port",
			server: "db.example.com",
			port:   "",
			want:   "db.example.com",
		},
		{
			name:   "whitespace port counts as empty",
			server: `SRV3\ARMAZEM`,
			port:   "  ",
			want:   `np:\\.\pipe\MSSQL$ARMAZEM\sql\query`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := database.BuildServerAddress(tc.server, tc.port)
			if got != tc.want {
				t.Errorf("BuildServerAddress(%q, %q) = %q, want %q", tc.server, tc.port, got, tc.want)
			}
		})
	}
}

func TestConnectSQLite(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "armazem.db"),
		DBConnectionLimit: 4,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := database.Ping(db); err != nil {
		t.Errorf("Ping failed: %v", err)
	}

	// Round-trip one row through a migrated table
	designacao := "Ferramenta"
	if err := db.Create(&models.Tipo{Designacao: &designacao}).Error; err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.Tipo{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 row, got %d", count)
	}
}

func TestConnectUnsupportedType(t *testing.T) {
	cfg := &config.Config{
		DBType:            "oracle",
		DBConnectionLimit: 4,
	}

	if _, err := database.Connect(cfg); err == nil {
		t.Fatal("Expected error for unsupported database type")
	}
}
