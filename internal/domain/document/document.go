package document

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Record is one uploaded document, stored under its document-type key on the
// owning entity.
type Record struct {
	URL        string    `json:"url"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Set maps a document-type key (e.g. "qid", "cr") to its uploaded record.
type Set map[string]Record

// Value implements driver.Valuer for JSONB storage
func (s Set) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB retrieval
func (s *Set) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan document set: invalid type")
	}

	return json.Unmarshal(bytes, s)
}

// UploadResponse is the wire shape returned by the upload endpoint for a
// single document type.
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Document struct {
		FileName   string `json:"file_name"`
		UploadedAt string `json:"uploaded_at"`
	} `json:"document"`
	Message string `json:"message"`
}

// NewUploadResponse builds the upload envelope from a stored record.
func NewUploadResponse(rec Record, message string) UploadResponse {
	resp := UploadResponse{
		Success: true,
		URL:     rec.URL,
		Message: message,
	}
	resp.Document.FileName = rec.FileName
	resp.Document.UploadedAt = rec.UploadedAt.Format(time.RFC3339)
	return resp
}
