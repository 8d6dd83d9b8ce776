package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 10 * time.Second

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

const (
	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)

const (
	DefaultPageSize = 15

	CertificatePageSize = 10
	LabelBatchPageSize  = 12

	// Upper bound of rows in a spreadsheet export.
	ExportLimit = 5000
	// Upper bound of documents merged into one PDF.
	MergeLimit = 50
	// Distinct product names offered to the list filters.
	DistinctProductLimit = 100
)
