package db

import "embed"

// Dataset names a migration set. The user dataset holds users, organizations, the original
// memberships table and audit logs; the feature dataset holds memberships written by feature
// modules and per-org access policies.
type Dataset string

const (
	DatasetUser    Dataset = "user"
	DatasetFeature Dataset = "feature"
)

// MigrationFS embeds SQL migration files for both datasets from internal/db/migrations/<dataset>.
// Used by the migrate runner (cmd/migrate) to apply migrations.
//
//go:embed migrations/user/*.sql migrations/feature/*.sql
var MigrationFS embed.FS

// MigrationDir returns the embedded directory holding the migrations for d.
func MigrationDir(d Dataset) string {
	return "migrations/" + string(d)
}
