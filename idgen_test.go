package main

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

func TestNewIDUnique(t *testing.T) {
	for _, pk := range []PKType{PKUUIDv4, PKUUIDv7, PKULID} {
		t.Run(string(pk), func(t *testing.T) {
			seen := make(map[string]struct{}, 1000)
			for i := 0; i < 1000; i++ {
				id := pk.NewID()
				if _, ok := seen[id]; ok {
					t.Fatalf("duplicate id %q", id)
				}
				seen[id] = struct{}{}
			}
		})
	}
}

func TestNewIDFormat(t *testing.T) {
	if v := uuid.MustParse(PKUUIDv4.NewID()).Version(); v != 4 {
		t.Fatalf("uuidv4 version, got %d", v)
	}
	if v := uuid.MustParse(PKUUIDv7.NewID()).Version(); v != 7 {
		t.Fatalf("uuidv7 version, got %d", v)
	}

	id := PKULID.NewID()
	if len(id) != 26 {
		t.Fatalf("ulid length, got %d", len(id))
	}
	if _, err := ulid.ParseStrict(id); err != nil {
		t.Fatalf("parse ulid %q, %v", id, err)
	}
}

// 时间有序主键,先生成的排前面
func TestNewIDSortable(t *testing.T) {
	for _, pk := range []PKType{PKUUIDv7, PKULID} {
		t.Run(string(pk), func(t *testing.T) {
			ids := make([]string, 0, 5)
			for i := 0; i < 5; i++ {
				ids = append(ids, pk.NewID())
				time.Sleep(2 * time.Millisecond)
			}

			if !sort.StringsAreSorted(ids) {
				t.Fatalf("ids out of order, %v", ids)
			}
		})
	}
}

func TestNewIDSerialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	PKSerial.NewID()
}

func TestColumnType(t *testing.T) {
	cases := []struct {
		pk     PKType
		driver string
		column string
		ref    string
	}{
		{PKSerial, "pgx", "serial", "integer"},
		{PKUUIDv4, "pgx", "uuid", "uuid"},
		{PKUUIDv7, "pgx", "uuid", "uuid"},
		{PKULID, "pgx", "bytea", "bytea"},
		{PKSerial, "sqlite", "integer", "integer"},
		{PKUUIDv4, "sqlite", "text", "text"},
		{PKUUIDv7, "sqlite3", "text", "text"},
		{PKULID, "sqlite3", "text", "text"},
	}

	for _, v := range cases {
		if got := v.pk.ColumnType(v.driver); got != v.column {
			t.Fatalf("%s column on %s, got %q, want %q", v.pk, v.driver, got, v.column)
		}
		if got := v.pk.RefType(v.driver); got != v.ref {
			t.Fatalf("%s ref on %s, got %q, want %q", v.pk, v.driver, got, v.ref)
		}
	}
}

func TestPKArg(t *testing.T) {
	id := PKULID.NewID()

	if _, ok := PKULID.arg("pgx", id).([]byte); !ok {
		t.Fatal("ulid on pgx should bind as []byte")
	}
	if _, ok := PKULID.arg("sqlite", id).(string); !ok {
		t.Fatal("ulid on sqlite should bind as string")
	}
	if _, ok := PKUUIDv7.arg("pgx", PKUUIDv7.NewID()).(string); !ok {
		t.Fatal("uuid should bind as string")
	}
}
