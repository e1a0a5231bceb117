// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// ReportFile is the predicate function for reportfile builders.
type ReportFile func(*sql.Selector)

// Verification is the predicate function for verification builders.
type Verification func(*sql.Selector)
