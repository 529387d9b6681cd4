package domain

import "time"

// Report represents a rendered scenario summary
type Report struct {
	ID          string
	Title       string
	Role        Role
	Region      Region
	Currency    string
	GeneratedAt time.Time
	Sections    []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Details []ReportDetail
}

// ReportDetail represents a single row within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
