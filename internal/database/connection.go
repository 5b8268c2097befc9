// connection.go
//
// Database connection layer. Production targets SQL Server, including named
// instances reachable only over named pipes; SQLite, MySQL and PostgreSQL
// remain available for tests and alternate deployments.

package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ar-erp/armazem-api/internal/config"
	"github.com/ar-erp/armazem-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BuildServerAddress builds the SQL Server address for the driver.
// A host of the form "host\INSTANCE" with no explicit port cannot be reached
// over TCP; it must go through the local named pipe of that instance. With a
// port, or with a plain host, the TCP form "host,port" (or just the host) is
// used. Getting this wrong yields an opaque connection failure, so the
// branching is preserved exactly.
func BuildServerAddress(server, port string) string {
	port = strings.TrimSpace(port)

	if strings.Contains(server, `\`) && port == "" {
		instance := strings.SplitN(server, `\`, 2)[1]
		return `np:\\.\pipe\MSSQL$` + instance + `\sql\query`
	}

	if port != "" {
		return server + "," + port
	}
	return server
}

// sqlServerDSN builds the go-mssqldb connection string from configuration.
func sqlServerDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"server=%s;database=%s;user id=%s;password=%s;encrypt=%s;TrustServerCertificate=%s;connection timeout=5",
		BuildServerAddress(cfg.DBServer, cfg.DBPort),
		cfg.DBDatabase,
		cfg.DBUsername,
		cfg.DBPassword,
		boolWord(cfg.DBEncrypt),
		boolWord(cfg.DBTrustCert),
	)
}

// boolWord normalizes the yes/no toggles of the original configuration
// surface to the boolean words go-mssqldb accepts.
func boolWord(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return "true"
	}
	return "false"
}

// Connect establishes a database connection based on the configured DB_TYPE
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "sqlserver", "mssql":
		dialector = sqlserver.Open(sqlServerDSN(cfg))

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		dialector = sqlite.Open(cfg.DBDatabase)

	case "mysql", "mariadb":
		port := cfg.DBPort
		if port == "" {
			port = "3306"
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUsername,
			cfg.DBPassword,
			cfg.DBServer,
			port,
			cfg.DBDatabase,
		)
		dialector = mysql.Open(dsn)

	case "postgres", "postgresql":
		port := cfg.DBPort
		if port == "" {
			port = "5432"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBServer,
			cfg.DBUsername,
			cfg.DBPassword,
			cfg.DBDatabase,
			port,
		)
		dialector = postgres.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Bounded pool instead of the open/close-per-request of the old service
	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(cfg.DBConnectionLimit / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Printf("Connected to %s database: %s", cfg.DBType, cfg.DBDatabase)

	return db, nil
}

// Ping verifies database reachability with a round-trip query
func Ping(db *gorm.DB) error {
	var one int
	return db.Raw("SELECT 1").Scan(&one).Error
}

// AutoMigrate creates the ERP tables. Production points at a pre-existing
// schema; this runs only when DB_AUTO_MIGRATE is set (tests, local SQLite).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tipo{},
		&models.Familia{},
		&models.Estado{},
		&models.Armazem{},
		&models.Artigo{},
		&models.Equipamento{},
		&models.Movimento{},
		&models.Utilizador{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
