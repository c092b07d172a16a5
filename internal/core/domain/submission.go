package domain

import "time"

// ExportFormat selects the spreadsheet flavour produced by POST /export.
type ExportFormat int

const (
	ExportXLSX ExportFormat = 1
	ExportCSV  ExportFormat = 2
)

// Submission is a single document-submission record. The image fields hold
// server-side file identifiers; the binary content itself never travels
// through list or detail responses.
type Submission struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	TEID        string    `json:"teId"`
	CIN         string    `json:"cin"`
	DateOfBirth string    `json:"dateOfBirth"`
	PlantID     string    `json:"plantId"`
	PlantName   string    `json:"plantName,omitempty"`
	GreyCard    string    `json:"greyCard,omitempty"`
	CINImage    string    `json:"cinImage"`
	PicImage    string    `json:"picImage"`
	GreyCardImg string    `json:"greyCardImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
