package rest

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
)

func (c *Client) Submissions(ctx context.Context) ([]domain.Submission, error) {
	var out []domain.Submission
	if err := c.getJSON(ctx, "/submissions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmissionsByPlant(ctx context.Context, plantID string) ([]domain.Submission, error) {
	var out []domain.Submission
	if err := c.getJSON(ctx, "/submissions/plant/"+plantID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Submission(ctx context.Context, id string) (*domain.Submission, error) {
	var out domain.Submission
	if err := c.getJSON(ctx, "/submissions/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSubmission posts the public submission form as multipart/form-data:
// text fields plus the CIN and picture images, and the optional grey card
// pair.
func (c *Client) CreateSubmission(ctx context.Context, input ports.CreateSubmissionInput) (*domain.Submission, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"fullName":    input.FullName,
		"teId":        input.TEID,
		"cin":         input.CIN,
		"dateOfBirth": input.DateOfBirth,
		"plantId":     input.PlantID,
	}
	if input.GreyCard != "" {
		fields["greyCard"] = input.GreyCard
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("rest: write field %s: %w", name, err)
		}
	}

	files := []struct {
		field string
		file  *ports.FileUpload
	}{
		{"cinImage", &input.CINImage},
		{"picImage", &input.PicImage},
		{"greyCardImage", input.GreyCardImage},
	}
	for _, f := range files {
		if f.file == nil {
			continue
		}
		part, err := w.CreateFormFile(f.field, f.file.Name)
		if err != nil {
			return nil, fmt.Errorf("rest: create part %s: %w", f.field, err)
		}
		if _, err := part.Write(f.file.Content); err != nil {
			return nil, fmt.Errorf("rest: write part %s: %w", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("rest: close multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/submissions", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out domain.Submission
	if err := c.doJSON(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
