package domain

// RunStatus represents the lifecycle of a parse run.
type RunStatus string

const (
	RunStatusPending    RunStatus = "pending"
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// UserRole defines the API role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ValidUserRoles is the set of roles accepted on user create/update.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// ExportFormat selects the output representation of a run's records.
type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatCSV  ExportFormat = "csv"
)

// AllowedExportFormats maps format names to their MIME content types.
var AllowedExportFormats = map[ExportFormat]string{
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ExportFormatCSV:  "text/csv",
}

// FileType represents the allowed upload types. Source documents arrive as
// pre-extracted plain text, one page per form-feed-separated section.
type FileType string

const (
	FileTypeTXT FileType = "txt"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"txt": FileTypeTXT,
}
