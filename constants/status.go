package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // accepted, not yet started
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusOCROK     JobStatus = "OCR_OK"    // stage 1 completed (text extracted)
	JobStatusEntityOK  JobStatus = "ENTITY_OK" // stage 2 completed (fields extracted)
	JobStatusValidated JobStatus = "VALIDATED" // stage 3 completed (verdict recorded)
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// JobStatuses holds every value accepted by the extract_job status column.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusOCROK),
	string(JobStatusEntityOK),
	string(JobStatusValidated),
	string(JobStatusFailed),
}
