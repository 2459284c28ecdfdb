package entity

import (
	"time"

	"github.com/google/uuid"
)

// LogRecord is one application log row. Rows live in the database until the
// backup job archives them to object storage, at which point they are deleted.
type LogRecord struct {
	ID        int64
	Level     string
	Message   string
	Module    string
	UserID    *uuid.UUID
	CreatedAt time.Time
}
