package migration

import "github.com/gocql/gocql"

type ActivityJournalMigration struct{}

func (m ActivityJournalMigration) Name() string {
	return "10_08_2026_Activity_Journal"
}

func (m ActivityJournalMigration) Up(session *gocql.Session) error {
	cql := []string{
		`CREATE TABLE IF NOT EXISTS migrations_applied (
            name TEXT PRIMARY KEY,
            applied_at TIMESTAMP
        );`,

		// Activity recorded out-of-band by the community bot, partitioned
		// by day so the recent-activity read stays a single-partition scan.
		`CREATE TABLE IF NOT EXISTS activity_events (
            day        TEXT,
            created_at TIMESTAMP,
            id         UUID,
            type       TEXT,
            username   TEXT,
            avatar     TEXT,
            content    TEXT,
            channel    TEXT,
            PRIMARY KEY ((day), created_at, id)
        ) WITH CLUSTERING ORDER BY (created_at DESC, id ASC);`,
	}

	for _, q := range cql {
		if err := session.Query(q).Exec(); err != nil {
			return err
		}
	}
	return nil
}
