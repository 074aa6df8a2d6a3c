package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is wrapped by every entity-specific not-found error.
var ErrNotFound = errors.New("record not found")

var (
	ErrProjectNotFound    = fmt.Errorf("project: %w", ErrNotFound)
	ErrTaskNotFound       = fmt.Errorf("task: %w", ErrNotFound)
	ErrSubtaskNotFound    = fmt.Errorf("subtask: %w", ErrNotFound)
	ErrCommentNotFound    = fmt.Errorf("comment: %w", ErrNotFound)
	ErrAttachmentNotFound = fmt.Errorf("attachment: %w", ErrNotFound)
	ErrFileNotFound       = fmt.Errorf("file: %w", ErrNotFound)
)

const (
	foreignKeyViolation = "23503"

	attachmentFileFK = "fk_attachments_file"
)

// missingReference maps a foreign key violation on an attachment insert to
// the not-found error of the row it pointed at.
func missingReference(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return err
	}
	if pgErr.ConstraintName == attachmentFileFK {
		return ErrFileNotFound
	}
	return ErrTaskNotFound
}
