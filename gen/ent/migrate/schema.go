// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_method", Type: field.TypeString, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_report_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{ReportFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[2], ExtractJobColumns[3]},
			},
		},
	}
	// ReportFilesColumns holds the columns for the "report_files" table.
	ReportFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "building_id", Type: field.TypeInt64},
		{Name: "milestone_id", Type: field.TypeInt64},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ReportFilesTable holds the schema information for the "report_files" table.
	ReportFilesTable = &schema.Table{
		Name:       "report_files",
		Columns:    ReportFilesColumns,
		PrimaryKey: []*schema.Column{ReportFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reportfile_building_id_milestone_id",
				Unique:  false,
				Columns: []*schema.Column{ReportFilesColumns[1], ReportFilesColumns[2]},
			},
			{
				Name:    "reportfile_content_hash",
				Unique:  false,
				Columns: []*schema.Column{ReportFilesColumns[6]},
			},
			{
				Name:    "reportfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ReportFilesColumns[7]},
			},
		},
	}
	// VerificationsColumns holds the columns for the "verifications" table.
	VerificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "responsible_engineer", Type: field.TypeString},
		{Name: "report_date", Type: field.TypeString},
		{Name: "progress_percent", Type: field.TypeFloat64},
		{Name: "valid", Type: field.TypeBool},
		{Name: "field_origins", Type: field.TypeJSON, Nullable: true},
		{Name: "release_tx_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// VerificationsTable holds the schema information for the "verifications" table.
	VerificationsTable = &schema.Table{
		Name:       "verifications",
		Columns:    VerificationsColumns,
		PrimaryKey: []*schema.Column{VerificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verifications_extract_job_verifications",
				Columns:    []*schema.Column{VerificationsColumns[8]},
				RefColumns: []*schema.Column{ExtractJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verification_job_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationsColumns[8]},
			},
			{
				Name:    "verification_valid_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationsColumns[4], VerificationsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		ReportFilesTable,
		VerificationsTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = ReportFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	ReportFilesTable.Annotation = &entsql.Annotation{
		Table: "report_files",
	}
	VerificationsTable.ForeignKeys[0].RefTable = ExtractJobTable
	VerificationsTable.Annotation = &entsql.Annotation{
		Table: "verifications",
	}
}
