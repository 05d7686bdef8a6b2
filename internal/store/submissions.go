package store

import (
	"fmt"
	"time"
)

// Submission is one logged contact form attempt. Attachment payloads are
// never stored, only their count and combined size.
type Submission struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Message         string    `json:"message"`
	AttachmentCount int       `json:"attachmentCount"`
	AttachmentBytes int64     `json:"attachmentBytes"`
	Transport       string    `json:"transport"`
	Success         bool      `json:"success"`
	RelayMessage    string    `json:"relayMessage"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertSubmission appends to the submission log.
func (s *Store) InsertSubmission(sub Submission) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO submissions
			(id, name, email, message, attachment_count, attachment_bytes, transport, success, relay_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Message,
		sub.AttachmentCount, sub.AttachmentBytes,
		sub.Transport, sub.Success, sub.RelayMessage,
		sub.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("logging submission %s: %w", sub.ID, err)
	}
	return nil
}

// RecentSubmissions returns up to limit log entries, newest first.
func (s *Store) RecentSubmissions(limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, name, email, message, attachment_count, attachment_bytes, transport, success, relay_message, created_at
		FROM submissions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		var createdAt string
		if err := rows.Scan(
			&sub.ID, &sub.Name, &sub.Email, &sub.Message,
			&sub.AttachmentCount, &sub.AttachmentBytes,
			&sub.Transport, &sub.Success, &sub.RelayMessage, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		sub.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, sub)
	}
	return out, rows.Err()
}
