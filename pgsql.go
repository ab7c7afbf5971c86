package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/exp/slog"
)

// pgsqlBenchDB 重建parent/child表,返回清理函数
func pgsqlBenchDB(ctx context.Context, pk PKType) (*sqlx.DB, func()) {
	db, err := connectPgsql(postgresURL)
	if err != nil {
		panic(fmt.Errorf("connect postgresql, %w", err))
	}

	if err := dropTables(ctx, db); err != nil {
		panic(fmt.Errorf("drop tables, %w", err))
	}
	if err := createTables(ctx, db, pk); err != nil {
		panic(fmt.Errorf("create tables, %w", err))
	}
	slog.Debug("tables ready", slog.String("pk", string(pk)))

	return db, func() {
		if err := dropTables(context.Background(), db); err != nil {
			slog.Error("drop tables", err)
		}
		db.Close()
	}
}

func pgsqlInsertBench() {
	fmt.Println("PGSQL INSERT:")

	for _, pk := range pkTypes {
		func() {
			ctx := context.Background()
			db, cleanup := pgsqlBenchDB(ctx, pk)
			defer cleanup()

			report, err := runRounds(ctx, fmt.Sprintf("pgsql/insert/%s", pk), roundCount, func(ctx context.Context) error {
				return insertCase(ctx, db, pk, insertCount)
			})
			if err != nil {
				panic(fmt.Errorf("insert %s, %w", pk, err))
			}

			fmt.Println(report)
		}()
	}
}

func pgsqlSelectBench() {
	fmt.Println("PGSQL SELECT:")

	for _, pk := range pkTypes {
		func() {
			ctx := context.Background()
			db, cleanup := pgsqlBenchDB(ctx, pk)
			defer cleanup()

			sample := newSlidingSample(selectCount)
			if err := seedParents(ctx, db, pk, insertCount, sample); err != nil {
				panic(fmt.Errorf("seed %s, %w", pk, err))
			}

			report, err := runRounds(ctx, fmt.Sprintf("pgsql/select/%s", pk), roundCount, func(ctx context.Context) error {
				return selectCase(ctx, db, sample)
			})
			if err != nil {
				panic(fmt.Errorf("select %s, %w", pk, err))
			}

			fmt.Println(report)
		}()
	}
}

func pgsqlRelationBench() {
	fmt.Println("PGSQL RELATION:")

	for _, pk := range pkTypes {
		func() {
			ctx := context.Background()
			db, cleanup := pgsqlBenchDB(ctx, pk)
			defer cleanup()

			report, err := runRounds(ctx, fmt.Sprintf("pgsql/relation/%s", pk), roundCount, func(ctx context.Context) error {
				return relationCase(ctx, db, pk, insertCount)
			})
			if err != nil {
				panic(fmt.Errorf("relation %s, %w", pk, err))
			}

			fmt.Println(report)
		}()
	}
}
