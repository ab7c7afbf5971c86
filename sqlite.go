package main

import (
	"context"
	"fmt"
	"os"
)

// sqlite对照组,serial对应INTEGER PRIMARY KEY,其余主键存TEXT

var sqliteDrivers = []string{
	"sqlite",
	"sqlite3",
}

var sqlitePragmas = []Pragma{
	{},
	{
		BusyTimeout: 3000,
		JournalMode: "WAL",
		Synchronous: "NORMAL",
	},
	{
		BusyTimeout: 3000,
		JournalMode: "WAL",
		Synchronous: "NORMAL",
		TempStore:   "MEMORY",
		CacheSize:   10000,
	},
}

func sqliteInsertBench() {
	fmt.Println("SQLITE INSERT:")

	for _, pragma := range sqlitePragmas {
		for _, driver := range sqliteDrivers {
			for _, pk := range pkTypes {
				func() {
					path, db, err := newTestDB(driver, pragma, pk)
					if err != nil {
						panic(fmt.Errorf("prepare test database, %w", err))
					}
					defer os.RemoveAll(path)
					defer db.Close()

					ctx := context.Background()
					report, err := runRounds(ctx, fmt.Sprintf("%s/insert/%s", driver, pk), roundCount, func(ctx context.Context) error {
						return insertCase(ctx, db, pk, insertCount)
					})
					if err != nil {
						panic(fmt.Errorf("insert %s, %w", pk, err))
					}

					fmt.Println("")
					fmt.Printf("%s?%s\n", driver, pragma.encode(driver))
					fmt.Println(report)
				}()
			}
		}
	}
}

func sqliteSelectBench() {
	fmt.Println("SQLITE SELECT:")

	for _, pragma := range sqlitePragmas {
		for _, driver := range sqliteDrivers {
			for _, pk := range pkTypes {
				func() {
					path, db, err := newTestDB(driver, pragma, pk)
					if err != nil {
						panic(fmt.Errorf("prepare test database, %w", err))
					}
					defer os.RemoveAll(path)
					defer db.Close()

					ctx := context.Background()

					sample := newSlidingSample(selectCount)
					if err := seedParents(ctx, db, pk, insertCount, sample); err != nil {
						panic(fmt.Errorf("seed %s, %w", pk, err))
					}
					if _, err := db.Exec("vacuum"); err != nil {
						panic(fmt.Errorf("vacuum, %w", err))
					}

					report, err := runRounds(ctx, fmt.Sprintf("%s/select/%s", driver, pk), roundCount, func(ctx context.Context) error {
						return selectCase(ctx, db, sample)
					})
					if err != nil {
						panic(fmt.Errorf("select %s, %w", pk, err))
					}

					fmt.Println("")
					fmt.Printf("%s?%s\n", driver, pragma.encode(driver))
					fmt.Println(report)
				}()
			}
		}
	}
}

func sqliteRelationBench() {
	fmt.Println("SQLITE RELATION:")

	for _, pragma := range sqlitePragmas {
		for _, driver := range sqliteDrivers {
			for _, pk := range pkTypes {
				func() {
					path, db, err := newTestDB(driver, pragma, pk)
					if err != nil {
						panic(fmt.Errorf("prepare test database, %w", err))
					}
					defer os.RemoveAll(path)
					defer db.Close()

					ctx := context.Background()
					report, err := runRounds(ctx, fmt.Sprintf("%s/relation/%s", driver, pk), roundCount, func(ctx context.Context) error {
						return relationCase(ctx, db, pk, insertCount)
					})
					if err != nil {
						panic(fmt.Errorf("relation %s, %w", pk, err))
					}

					fmt.Println("")
					fmt.Printf("%s?%s\n", driver, pragma.encode(driver))
					fmt.Println(report)
				}()
			}
		}
	}
}
