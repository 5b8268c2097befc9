package data

import (
	_ "embed"
)

//go:embed initdb/sqlserver/001-ddl-tables.sql
var InitdbSQLServerTables string
