// Package datarecording persists simulation results in SQLite databases.
// Tables are derived from flat structs, so recording a new kind of result
// only requires defining a struct and creating a table for it.
package datarecording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store simulation results.
type DataRecorder interface {
	// CreateTable creates a table whose columns are the fields of the
	// sample entry struct.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers one entry of the table's struct type for writing.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered entries to the database.
	Flush()

	// Close flushes and closes the underlying database.
	Close()
}

// New creates a DataRecorder backed by a new SQLite file at path (without
// extension). An empty path picks a unique generated name.
func New(path string) DataRecorder {
	r := &sqliteRecorder{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	r.init()

	atexit.Register(func() { r.Flush() })

	return r
}

// NewWithDB creates a DataRecorder writing to an existing database handle,
// e.g. an in-memory database in tests.
func NewWithDB(db *sql.DB) DataRecorder {
	r := &sqliteRecorder{
		DB:        db,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { r.Flush() })

	return r
}

type table struct {
	structType reflect.Type
	entries    []any
}

type sqliteRecorder struct {
	*sql.DB

	dbName    string
	tables    map[string]*table
	batchSize int
	buffered  int
}

func (r *sqliteRecorder) init() {
	if r.dbName == "" {
		r.dbName = "requsim_results_" + xid.New().String()
	}

	filename := r.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r.DB = db
}

func isAllowedFieldKind(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

func checkStructFields(entry any) error {
	types := reflect.TypeOf(entry)

	for i := 0; i < types.NumField(); i++ {
		field := types.Field(i)
		if !isAllowedFieldKind(field.Type.Kind()) {
			return errors.New(
				"entry fields must be scalar values or strings")
		}
	}

	return nil
}

func (r *sqliteRecorder) CreateTable(tableName string, sampleEntry any) {
	if err := checkStructFields(sampleEntry); err != nil {
		panic(err)
	}

	fields := strings.Join(structs.Names(sampleEntry), ", \n\t")
	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	r.mustExecute(createTableSQL)

	r.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

func (r *sqliteRecorder) InsertData(tableName string, entry any) {
	t, exists := r.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	t.entries = append(t.entries, entry)

	r.buffered++
	if r.buffered >= r.batchSize {
		r.Flush()
	}
}

func (r *sqliteRecorder) ListTables() []string {
	tables := make([]string, 0, len(r.tables))
	for name := range r.tables {
		tables = append(tables, name)
	}

	return tables
}

func (r *sqliteRecorder) Flush() {
	if r.buffered == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	for tableName, t := range r.tables {
		if len(t.entries) == 0 {
			continue
		}

		stmt := r.prepareInsert(tableName, t.entries[0])

		for _, entry := range t.entries {
			values := []any{}

			fields := reflect.ValueOf(entry)
			for i := 0; i < fields.NumField(); i++ {
				values = append(values, fields.Field(i).Interface())
			}

			if _, err := stmt.Exec(values...); err != nil {
				panic(err)
			}
		}

		t.entries = nil
		stmt.Close()
	}

	r.buffered = 0
}

func (r *sqliteRecorder) Close() {
	r.Flush()
	if err := r.DB.Close(); err != nil {
		panic(err)
	}
}

func (r *sqliteRecorder) mustExecute(query string) sql.Result {
	res, err := r.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func (r *sqliteRecorder) prepareInsert(tableName string, sampleEntry any) *sql.Stmt {
	placeholders := structs.Names(sampleEntry)
	for i := range placeholders {
		placeholders[i] = "?"
	}

	sqlStr := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")"

	stmt, err := r.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	return stmt
}
