package database

import (
	"context"

	"github.com/google/uuid"
)

const updateJobStatus = `-- name: UpdateJobStatus :exec
UPDATE jobs
SET status=$1, updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type UpdateJobStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateJobStatus(ctx context.Context, arg UpdateJobStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateJobStatus, arg.Status, arg.ID)
	return err
}
