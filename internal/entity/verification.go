package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportFile describes an uploaded report document.
type ReportFile struct {
	ID          uuid.UUID
	BuildingID  int64
	MilestoneID int64
	Filename    string
	FileExt     string
	FileSize    int
	ContentHash []byte
	UploadedAt  time.Time
}

// ExtractJob tracks one pipeline invocation over a ReportFile.
type ExtractJob struct {
	ID            uuid.UUID
	FileID        uuid.UUID
	Format        string
	Status        string
	OCRMethod     string
	OCRText       string
	OCRConfidence float32
	Pages         int
	ErrorMessage  string
	StartedAt     time.Time
	FinishedAt    *time.Time
}

// Verification is the recorded outcome of validating an ExtractionResult,
// plus the fund-release transaction hash when one was submitted.
type Verification struct {
	ID                  uuid.UUID
	JobID               uuid.UUID
	ResponsibleEngineer string
	ReportDate          string
	ProgressPercent     float64
	Valid               bool
	FieldOrigins        map[string]FieldOrigin
	ReleaseTxHash       string
	CreatedAt           time.Time
}
