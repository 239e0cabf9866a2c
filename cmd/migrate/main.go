// migrate runs DB migrations from embedded SQL; run with go run ./cmd/migrate.
// Each dataset is migrated separately: -dataset user|feature|all.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"tenant-core/internal/config"
	"tenant-core/internal/db"
	"tenant-core/internal/db/migrate"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	dataset := flag.String("dataset", "all", "Dataset to migrate: user, feature or all")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var targets []db.Dataset
	switch *dataset {
	case "all":
		targets = []db.Dataset{db.DatasetUser, db.DatasetFeature}
	case string(db.DatasetUser), string(db.DatasetFeature):
		targets = []db.Dataset{db.Dataset(*dataset)}
	default:
		fmt.Fprintf(os.Stderr, "dataset must be user, feature or all, got %q\n", *dataset)
		os.Exit(2)
	}

	for _, d := range targets {
		dsn := cfg.UserDatabaseURL
		if d == db.DatasetFeature {
			dsn = cfg.FeatureDatabaseURL
		}
		if err := migrate.Run(dsn, d, *direction); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				continue
			}
			fmt.Fprintf(os.Stderr, "migrate %s: %v\n", d, err)
			os.Exit(1)
		}
	}
}
