package domain

type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	BaseEntity   `bson:",inline"`
	Title        string      `bson:"title,omitempty"`
	Description  string      `bson:"description,omitempty"`
	Venue        string      `bson:"venue,omitempty"`
	StartTime    int64       `bson:"startTime,omitempty"`
	EndTime      int64       `bson:"endTime,omitempty"`
	Capacity     int         `bson:"capacity,omitempty"`
	Status       EventStatus `bson:"status,omitempty"`
	CancelReason string      `bson:"cancelReason,omitempty"`
}

type UpdateEventOptions struct {
	Title       *string
	Description *string
	Venue       *string
	StartTime   *int64
	EndTime     *int64
	Capacity    *int
}
