// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/byb-ai/progress-verifier/db/ent/schema"
	"github.com/byb-ai/progress-verifier/gen/ent/extractjob"
	"github.com/byb-ai/progress-verifier/gen/ent/reportfile"
	"github.com/byb-ai/progress-verifier/gen/ent/verification"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[2].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[3].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = func() func(string) error {
		validators := extractjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	reportfileFields := schema.ReportFile{}.Fields()
	_ = reportfileFields
	// reportfileDescBuildingID is the schema descriptor for building_id field.
	reportfileDescBuildingID := reportfileFields[1].Descriptor()
	// reportfile.BuildingIDValidator is a validator for the "building_id" field. It is called by the builders before save.
	reportfile.BuildingIDValidator = reportfileDescBuildingID.Validators[0].(func(int64) error)
	// reportfileDescMilestoneID is the schema descriptor for milestone_id field.
	reportfileDescMilestoneID := reportfileFields[2].Descriptor()
	// reportfile.MilestoneIDValidator is a validator for the "milestone_id" field. It is called by the builders before save.
	reportfile.MilestoneIDValidator = reportfileDescMilestoneID.Validators[0].(func(int64) error)
	// reportfileDescFilename is the schema descriptor for filename field.
	reportfileDescFilename := reportfileFields[3].Descriptor()
	// reportfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	reportfile.FilenameValidator = reportfileDescFilename.Validators[0].(func(string) error)
	// reportfileDescFileExt is the schema descriptor for file_ext field.
	reportfileDescFileExt := reportfileFields[4].Descriptor()
	// reportfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	reportfile.FileExtValidator = reportfileDescFileExt.Validators[0].(func(string) error)
	// reportfileDescFileSize is the schema descriptor for file_size field.
	reportfileDescFileSize := reportfileFields[5].Descriptor()
	// reportfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	reportfile.FileSizeValidator = reportfileDescFileSize.Validators[0].(func(int) error)
	// reportfileDescContentHash is the schema descriptor for content_hash field.
	reportfileDescContentHash := reportfileFields[6].Descriptor()
	// reportfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	reportfile.ContentHashValidator = reportfileDescContentHash.Validators[0].(func([]byte) error)
	// reportfileDescUploadedAt is the schema descriptor for uploaded_at field.
	reportfileDescUploadedAt := reportfileFields[7].Descriptor()
	// reportfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	reportfile.DefaultUploadedAt = reportfileDescUploadedAt.Default.(func() time.Time)
	// reportfileDescID is the schema descriptor for id field.
	reportfileDescID := reportfileFields[0].Descriptor()
	// reportfile.DefaultID holds the default value on creation for the id field.
	reportfile.DefaultID = reportfileDescID.Default.(func() uuid.UUID)
	verificationFields := schema.Verification{}.Fields()
	_ = verificationFields
	// verificationDescCreatedAt is the schema descriptor for created_at field.
	verificationDescCreatedAt := verificationFields[8].Descriptor()
	// verification.DefaultCreatedAt holds the default value on creation for the created_at field.
	verification.DefaultCreatedAt = verificationDescCreatedAt.Default.(func() time.Time)
	// verificationDescID is the schema descriptor for id field.
	verificationDescID := verificationFields[0].Descriptor()
	// verification.DefaultID holds the default value on creation for the id field.
	verification.DefaultID = verificationDescID.Default.(func() uuid.UUID)
}
