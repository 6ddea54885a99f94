package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateJobResult = `-- name: CreateOrUpdateJobResult :exec
INSERT INTO job_results (
result, is_error, error, job_id)
VALUES ( $1, $2, $3, $4)
ON CONFLICT (job_id)
DO UPDATE SET
    result = EXCLUDED.result,
    is_error = EXCLUDED.is_error,
    error = EXCLUDED.error,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateJobResultParams struct {
	Result  json.RawMessage
	IsError bool
	Error   string
	JobID   uuid.UUID
}

func (q *Queries) CreateOrUpdateJobResult(ctx context.Context, arg CreateOrUpdateJobResultParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateJobResult,
		arg.Result,
		arg.IsError,
		arg.Error,
		arg.JobID,
	)
	return err
}
