package ports

import (
	"context"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string
	Password string
}

// LoginResult is returned by POST /auth/login.
type LoginResult struct {
	Token                 string
	RequirePasswordChange bool
	User                  *domain.User
}

// RegisterAdminInput carries the fields for POST /auth/register. Password
// may be empty, in which case the backend generates one.
type RegisterAdminInput struct {
	FullName     string
	TEID         string
	Email        string
	Password     string
	PlantID      string
	IsSuperAdmin bool
}

// ChangePasswordInput carries the fields for POST /auth/change-password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ResetPasswordResult is the generated password returned by the admin
// reset endpoint.
type ResetPasswordResult struct {
	NewPassword string
}

// FileUpload is one multipart file part of a submission.
type FileUpload struct {
	Name    string
	Content []byte
}

// CreateSubmissionInput carries the multipart form for POST /submissions.
// GreyCard and GreyCardImage are optional and travel together.
type CreateSubmissionInput struct {
	FullName      string
	TEID          string
	CIN           string
	DateOfBirth   string
	PlantID       string
	GreyCard      string
	CINImage      FileUpload
	PicImage      FileUpload
	GreyCardImage *FileUpload
}

// ExportInput selects format and optional plant scope for POST /export.
type ExportInput struct {
	Format  domain.ExportFormat
	PlantID string
}

// ExportResult is the binary spreadsheet returned by the export endpoint.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PortalAPI is the REST surface of the portal backend as consumed by the
// client. Every call goes through the request pipeline; implementations
// must not bypass it.
type PortalAPI interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	Sessions(ctx context.Context) ([]domain.UserToken, error)
	Profile(ctx context.Context) (*domain.User, error)

	RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*domain.User, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	Admins(ctx context.Context) ([]domain.User, error)
	AdminsByPlant(ctx context.Context, plantID string) ([]domain.User, error)
	DeleteAdmin(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, userID string) (*ResetPasswordResult, error)

	Plants(ctx context.Context) ([]domain.Plant, error)
	Plant(ctx context.Context, id string) (*domain.Plant, error)

	Submissions(ctx context.Context) ([]domain.Submission, error)
	SubmissionsByPlant(ctx context.Context, plantID string) ([]domain.Submission, error)
	Submission(ctx context.Context, id string) (*domain.Submission, error)
	CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*domain.Submission, error)

	Export(ctx context.Context, input ExportInput) (*ExportResult, error)
}
