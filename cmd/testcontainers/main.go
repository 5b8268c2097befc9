// main.go
//
// Dev bootstrap: starts a throwaway SQL Server container, creates the
// warehouse database with the embedded DDL and prints the matching DB_* env,
// then waits for a signal to tear everything down.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/joho/godotenv"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"

	"github.com/ar-erp/armazem-api/data"
)

const (
	sqlServerImage = "mcr.microsoft.com/mssql/server:2022-latest"
	saPassword     = "ArmazemDev(123)"
	databaseName   = "Armazem"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a throwaway SQL Server with the warehouse schema for local development.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        sqlServerImage,
			ExposedPorts: []string{"1433/tcp"},
			Env: map[string]string{
				"ACCEPT_EULA":       "Y",
				"MSSQL_SA_PASSWORD": saPassword,
			},
			WaitingFor: wait.ForLog("SQL Server is now ready for client connections").
				WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start SQL Server container: %v\n", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v\n", err)
	}
	mappedPort, err := container.MappedPort(ctx, nat.Port("1433/tcp"))
	if err != nil {
		log.Fatalf("Failed to get container port: %v\n", err)
	}

	if err := createDatabase(host, mappedPort.Port()); err != nil {
		_ = container.Terminate(ctx)
		log.Fatalf("Failed to initialize database: %v\n", err)
	}

	fmt.Println("SQL Server ready. Point the service at it with:")
	fmt.Println()
	fmt.Printf("  DB_TYPE=sqlserver\n")
	fmt.Printf("  DB_SERVER=%s\n", host)
	fmt.Printf("  DB_PORT=%s\n", mappedPort.Port())
	fmt.Printf("  DB_DATABASE=%s\n", databaseName)
	fmt.Printf("  DB_USERNAME=sa\n")
	fmt.Printf("  DB_PASSWORD=%s\n", saPassword)
	fmt.Printf("  DB_ENCRYPT=no\n")
	fmt.Printf("  DB_TRUST_CERT=yes\n")
	fmt.Println()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating container...\n", sig)
	if err := container.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate container: %v\n", err)
	}
}

// createDatabase creates the warehouse database and applies the embedded DDL.
func createDatabase(host, port string) error {
	masterDSN := fmt.Sprintf(
		"server=%s,%s;database=master;user id=sa;password=%s;encrypt=false;connection timeout=30",
		host, port, saPassword)

	master, err := gorm.Open(sqlserver.Open(masterDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to master: %w", err)
	}
	if err := master.Exec("CREATE DATABASE " + databaseName).Error; err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	if sqlDB, err := master.DB(); err == nil {
		_ = sqlDB.Close()
	}

	dsn := fmt.Sprintf(
		"server=%s,%s;database=%s;user id=sa;password=%s;encrypt=false;connection timeout=30",
		host, port, databaseName, saPassword)

	db, err := gorm.Open(sqlserver.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to %s: %w", databaseName, err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := db.Exec(data.InitdbSQLServerTables).Error; err != nil {
		return fmt.Errorf("apply DDL: %w", err)
	}

	return nil
}
