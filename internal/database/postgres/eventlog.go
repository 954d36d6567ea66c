package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/itemforge/internal/eventlog"
)

// EventLogRepository implements eventlog.Repository for PostgreSQL
type EventLogRepository struct {
	pool *pgxpool.Pool
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(pool *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{pool: pool}
}

var _ eventlog.Repository = (*EventLogRepository)(nil)

// LogEvent stores an entry; a replayed event id is ignored
func (r *EventLogRepository) LogEvent(ctx context.Context, entry eventlog.Entry) error {
	query := `
		INSERT INTO item_events (event_id, event_type, item_id, payload, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
	`

	payloadJSON, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
	}

	var metadataJSON []byte
	if entry.Metadata != nil {
		if metadataJSON, err = json.Marshal(entry.Metadata); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
		}
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	if _, err := r.pool.Exec(ctx, query,
		strToText(entry.EventID), entry.EventType, entry.ItemID, payloadJSON, metadataJSON, createdAt,
	); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// GetEvents retrieves entries matching filter, newest first
func (r *EventLogRepository) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, event_id, event_type, item_id, payload, metadata, created_at
		FROM item_events
		WHERE 1=1`)

	args := []any{}
	argNum := 1

	if filter.ItemID != nil {
		fmt.Fprintf(&queryBuilder, " AND item_id = $%d", argNum)
		args = append(args, *filter.ItemID)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes entries created before cutoff
func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM item_events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Entry, error) {
	var entries []eventlog.Entry

	for rows.Next() {
		var (
			entry                     eventlog.Entry
			eventID                   *string
			payloadJSON, metadataJSON []byte
		)
		if err := rows.Scan(
			&entry.ID,
			&eventID,
			&entry.EventType,
			&entry.ItemID,
			&payloadJSON,
			&metadataJSON,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvents, err)
		}
		if eventID != nil {
			entry.EventID = *eventID
		}

		if err := json.Unmarshal(payloadJSON, &entry.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeEvent, err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeEvent, err)
			}
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvents, err)
	}
	return entries, nil
}
