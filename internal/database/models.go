package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Kind           string
	Status         string
	ObjectKey      string
	Filename       string
	Mime           string
	JobDescription string
	QuestionType   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type JobResult struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	Result    json.RawMessage
	IsError   bool
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
