package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// PKType 主键类型
type PKType string

const (
	PKSerial PKType = "serial"
	PKUUIDv4 PKType = "uuidv4"
	PKUUIDv7 PKType = "uuidv7"
	PKULID   PKType = "ulid"
)

var pkTypes = []PKType{PKSerial, PKUUIDv4, PKUUIDv7, PKULID}

// Generated 主键是否在进程内生成
//
// serial由数据库自己分配
func (t PKType) Generated() bool {
	return t != PKSerial
}

// NewID 生成一个主键值
//
// 生成开销算进插入耗时里,这是有意的
func (t PKType) NewID() string {
	switch t {
	case PKUUIDv4:
		return uuid.NewString()
	case PKUUIDv7:
		return uuid.Must(uuid.NewV7()).String()
	case PKULID:
		return ulid.Make().String()
	}
	panic(fmt.Errorf("%s id assigned by database", t))
}

// ColumnType 主键列类型
func (t PKType) ColumnType(driver string) string {
	if driver == "pgx" {
		switch t {
		case PKSerial:
			return "serial"
		case PKUUIDv4, PKUUIDv7:
			return "uuid"
		case PKULID:
			return "bytea"
		}
	}

	// sqlite
	if t == PKSerial {
		return "integer"
	}
	return "text"
}

// RefType 外键列类型,serial列引用方用integer
func (t PKType) RefType(driver string) string {
	if t == PKSerial && driver == "pgx" {
		return "integer"
	}
	return t.ColumnType(driver)
}

// arg 主键作为查询参数
//
// pgx的bytea编码不接受string,要转成[]byte
func (t PKType) arg(driver, id string) any {
	if t == PKULID && driver == "pgx" {
		return []byte(id)
	}
	return id
}
