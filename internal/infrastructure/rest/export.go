package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
)

type exportRequest struct {
	Format  int    `json:"format"`
	PlantID string `json:"plantId,omitempty"`
}

// Export downloads the submissions spreadsheet. The response is opaque
// binary; the filename comes from Content-Disposition when present.
func (c *Client) Export(ctx context.Context, input ports.ExportInput) (*ports.ExportResult, error) {
	data, err := json.Marshal(exportRequest{Format: int(input.Format), PlantID: input.PlantID})
	if err != nil {
		return nil, fmt.Errorf("rest: encode export request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/export", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rest: read export body: %w", err)
	}

	fallback := "submissions.csv"
	if input.Format == domain.ExportXLSX {
		fallback = "submissions.xlsx"
	}
	return &ports.ExportResult{
		Filename:    filenameFromDisposition(resp.Header.Get("Content-Disposition"), fallback),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        payload,
	}, nil
}
