package main

import (
	"context"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/jmoiron/sqlx"
)

type record struct {
	ID   string `db:"id" faker:"-"`
	Data string `db:"data" faker:"username"`
}

var (
	records []*record
)

func init() {
	records = make([]*record, 0, 1000)
	for i := 0; i < 1000; i++ {
		r := &record{}
		if err := faker.FakeData(r); err != nil {
			panic(err)
		}
		records = append(records, r)
	}
}

func getRecord() *record {
	return records[rand.Intn(len(records))]
}

// SlidingSample 有界随机采样,保留插入过的部分主键
type SlidingSample struct {
	size int
	data []any
}

func newSlidingSample(size int) *SlidingSample {
	return &SlidingSample{
		size: size,
		data: make([]any, 0, size),
	}
}

// Append 样本未满直接收录,满了之后五成概率随机替换一个
func (s *SlidingSample) Append(id any) {
	if len(s.data) < s.size {
		s.data = append(s.data, id)
	} else if rand.Float64() > 0.5 {
		s.data[rand.Intn(s.size)] = id
	}
}

func (s *SlidingSample) Len() int {
	return len(s.data)
}

// IDs 当前样本
func (s *SlidingSample) IDs() []any {
	return s.data
}

// insertParent 插入一条parent,不取回主键
func insertParent(ctx context.Context, db *sqlx.DB, pk PKType) error {
	if pk.Generated() {
		id := pk.arg(db.DriverName(), pk.NewID())
		_, err := db.ExecContext(ctx, db.Rebind(`
			INSERT INTO parent (id, data) VALUES (?, ?)
		`), id, getRecord().Data)
		return err
	}

	_, err := db.ExecContext(ctx, db.Rebind(`
		INSERT INTO parent (data) VALUES (?)
	`), getRecord().Data)
	return err
}

// insertParentReturning 插入一条parent,取回主键
func insertParentReturning(ctx context.Context, db *sqlx.DB, pk PKType) (any, error) {
	if pk.Generated() {
		id := pk.arg(db.DriverName(), pk.NewID())
		_, err := db.ExecContext(ctx, db.Rebind(`
			INSERT INTO parent (id, data) VALUES (?, ?)
		`), id, getRecord().Data)
		return id, err
	}

	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(`
		INSERT INTO parent (data) VALUES (?) RETURNING id
	`), getRecord().Data)
	return id, err
}

// insertChild 插入一条child,引用parent
func insertChild(ctx context.Context, db *sqlx.DB, pk PKType, parentID any) error {
	if pk.Generated() {
		id := pk.arg(db.DriverName(), pk.NewID())
		_, err := db.ExecContext(ctx, db.Rebind(`
			INSERT INTO child (id, parent_id, data) VALUES (?, ?, ?)
		`), id, parentID, getRecord().Data)
		return err
	}

	_, err := db.ExecContext(ctx, db.Rebind(`
		INSERT INTO child (parent_id, data) VALUES (?, ?)
	`), parentID, getRecord().Data)
	return err
}

// selectParent 按主键点查
func selectParent(ctx context.Context, db *sqlx.DB, id any) (*record, error) {
	rec := &record{}
	if err := db.GetContext(ctx, rec, db.Rebind(`
		SELECT * FROM parent WHERE id = ?
	`), id); err != nil {
		return nil, err
	}
	return rec, nil
}

// insertCase 插入n条parent
func insertCase(ctx context.Context, db *sqlx.DB, pk PKType, n int) error {
	for i := 0; i < n; i++ {
		if err := insertParent(ctx, db, pk); err != nil {
			return err
		}
	}
	return nil
}

// seedParents 预置n条parent,采样主键
func seedParents(ctx context.Context, db *sqlx.DB, pk PKType, n int, sample *SlidingSample) error {
	for i := 0; i < n; i++ {
		id, err := insertParentReturning(ctx, db, pk)
		if err != nil {
			return err
		}
		sample.Append(id)
	}
	return nil
}

// selectCase 点查样本里全部主键,必须全部命中
func selectCase(ctx context.Context, db *sqlx.DB, sample *SlidingSample) error {
	for _, id := range sample.IDs() {
		if _, err := selectParent(ctx, db, id); err != nil {
			return err
		}
	}
	return nil
}

// relationCase 插入n对parent/child
func relationCase(ctx context.Context, db *sqlx.DB, pk PKType, n int) error {
	for i := 0; i < n; i++ {
		parentID, err := insertParentReturning(ctx, db, pk)
		if err != nil {
			return err
		}
		if err := insertChild(ctx, db, pk, parentID); err != nil {
			return err
		}
	}
	return nil
}
