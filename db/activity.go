package db

import (
	"time"

	"github.com/gocql/gocql"
	"github.com/ieee-swc/ClubBack/models"
)

// RecordActivity journals one community event. The bot webhook is the only
// writer; the aggregator is the only reader.
func RecordActivity(session *gocql.Session, ev models.ActivityEvent) error {
	ts, err := time.Parse(time.RFC3339, ev.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	}

	id, err := gocql.ParseUUID(ev.ID)
	if err != nil {
		id = gocql.TimeUUID()
	}

	return session.Query(
		`INSERT INTO activity_events (day, created_at, id, type, username, avatar, content, channel)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.Format("2006-01-02"), ts, id, ev.Type, ev.User.Username, ev.User.Avatar, ev.Content, ev.Channel,
	).Exec()
}

// RecentActivity reads back the journal, newest first, looking at today and
// yesterday so a quiet morning still shows last night's events.
func RecentActivity(session *gocql.Session, limit int) ([]models.ActivityEvent, error) {
	now := time.Now().UTC()
	days := []string{
		now.Format("2006-01-02"),
		now.AddDate(0, 0, -1).Format("2006-01-02"),
	}

	events := make([]models.ActivityEvent, 0, limit)
	for _, day := range days {
		if len(events) >= limit {
			break
		}

		iter := session.Query(
			`SELECT id, created_at, type, username, avatar, content, channel
             FROM activity_events WHERE day = ? LIMIT ?`,
			day, limit-len(events),
		).Iter()

		var (
			id        gocql.UUID
			createdAt time.Time
			evType    string
			username  string
			avatar    string
			content   string
			channel   string
		)
		for iter.Scan(&id, &createdAt, &evType, &username, &avatar, &content, &channel) {
			events = append(events, models.ActivityEvent{
				ID:        id.String(),
				Type:      evType,
				User:      models.ActivityActor{Username: username, Avatar: avatar},
				Content:   content,
				Channel:   channel,
				Timestamp: createdAt.UTC().Format(time.RFC3339),
			})
		}
		if err := iter.Close(); err != nil {
			return nil, err
		}
	}

	return events, nil
}
