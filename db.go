package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Pragma sqlite数据库配置
//
// https://www.sqlite.org/pragma.html
type Pragma struct {
	BusyTimeout int
	CacheSize   int
	JournalMode string
	Synchronous string
	TempStore   string
}

func (p Pragma) encode(driver string) string {
	switch driver {
	case "sqlite3":
		return p.encodeMattn()
	case "sqlite":
		return p.encodeModernc()
	}
	return ""
}

func (p Pragma) encodeMattn() string {
	val := url.Values{}

	if v := p.JournalMode; v != "" {
		val.Set("_journal_mode", v)
	}
	if v := p.Synchronous; v != "" {
		val.Set("_synchronous", v)
	}
	if v := p.CacheSize; v != 0 {
		val.Set("_cache_size", fmt.Sprintf("%d", v))
	}
	if v := p.BusyTimeout; v != 0 {
		val.Set("_busy_timeout", fmt.Sprintf("%d", v))
	}
	if v := p.TempStore; v != "" {
		val.Set("_temp_store", v)
	}

	result, _ := url.QueryUnescape(val.Encode())
	return result
}

func (p Pragma) encodeModernc() string {
	val := url.Values{}

	if v := p.JournalMode; v != "" {
		val.Add("_pragma", fmt.Sprintf("journal_mode(%s)", v))
	}
	if v := p.Synchronous; v != "" {
		val.Add("_pragma", fmt.Sprintf("synchronous(%s)", v))
	}
	if v := p.CacheSize; v != 0 {
		val.Add("_pragma", fmt.Sprintf("cache_size(%d)", v))
	}
	if v := p.BusyTimeout; v != 0 {
		val.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", v))
	}
	if v := p.TempStore; v != "" {
		val.Add("_pragma", fmt.Sprintf("temp_store(%s)", v))
	}

	result, _ := url.QueryUnescape(val.Encode())
	return result
}

// connectSqlite 创建sqlite连接
//
//	driver=sqlite3 use github.com/mattn/go-sqlite3
//	driver=sqlite use modernc.org/sqlite
func connectSqlite(driver, file string, pragma Pragma) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("%s?%s", file, pragma.encode(driver))

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}
	return db.Unsafe(), nil
}

// connectPgsql 创建postgres连接
func connectPgsql(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", url)
	if err != nil {
		return nil, err
	}
	return db.Unsafe(), nil
}

// createTables 按主键类型创建parent/child表
func createTables(ctx context.Context, db *sqlx.DB, pk PKType) error {
	driver := db.DriverName()

	ddl := []string{
		fmt.Sprintf(`CREATE TABLE parent (id %s PRIMARY KEY, data text)`,
			pk.ColumnType(driver)),
		fmt.Sprintf(`CREATE TABLE child (id %s PRIMARY KEY, parent_id %s REFERENCES parent(id), data text)`,
			pk.ColumnType(driver), pk.RefType(driver)),
	}

	for _, cmd := range ddl {
		if _, err := db.ExecContext(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// dropTables 清理,child有外键引用,先删
func dropTables(ctx context.Context, db *sqlx.DB) error {
	ddl := []string{
		`DROP TABLE IF EXISTS child`,
		`DROP TABLE IF EXISTS parent`,
	}

	for _, cmd := range ddl {
		if _, err := db.ExecContext(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func newTestDB(driver string, pragma Pragma, pk PKType) (path string, db *sqlx.DB, err error) {
	path, err = os.MkdirTemp("", "pkbench-*")
	if err != nil {
		err = fmt.Errorf("make temp dir, %w", err)
		return
	}

	defer func() {
		if err != nil {
			if removeErr := os.RemoveAll(path); removeErr != nil {
				err = errors.Join(err, removeErr)
			}
		}
	}()

	db, err = connectSqlite(driver, filepath.Join(path, "test.db"), pragma)
	if err != nil {
		err = fmt.Errorf("connect database, %w", err)
		return
	}

	if err = createTables(context.Background(), db, pk); err != nil {
		err = fmt.Errorf("prepare database, %w", err)
		return
	}
	return
}
