package m_journal

// Keys of one journal line.
const (
	KeyEventID     = "event_id"
	KeyEventType   = "event_type"
	KeyAggregateID = "aggregate_id"
	KeyPayload     = "payload"
	KeyCreatedAt   = "created_at"
)
