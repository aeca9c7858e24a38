// ABOUTME: Uploaded document metadata model
// ABOUTME: Stored via the document repository; file bytes live on disk

package models

import "time"

// Document records one uploaded file
type Document struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`     // stored name on disk
	OriginalName string    `json:"originalname"` // client-supplied name
	MimeType     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// UploadResponse is returned after a successful document upload
type UploadResponse struct {
	Message  string          `json:"message"`
	Document DocumentSummary `json:"document"`
}

// DocumentSummary is the public view of an uploaded document
type DocumentSummary struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"` // original client-supplied name
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Summary returns the public fields of the document
func (d *Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:         d.ID,
		Filename:   d.OriginalName,
		Size:       d.Size,
		UploadedAt: d.UploadedAt,
	}
}
