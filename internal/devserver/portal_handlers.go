package devserver

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

// PortalHandler implements the plants, submissions and export endpoints.
type PortalHandler struct {
	store *Store
	log   zerolog.Logger
}

func NewPortalHandler(store *Store, log zerolog.Logger) *PortalHandler {
	return &PortalHandler{store: store, log: log}
}

// Plants handles GET /api/plants. Public: the submission form needs the
// plant list before any authentication exists.
func (h *PortalHandler) Plants(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Plants())
}

// Plant handles GET /api/plants/:id.
func (h *PortalHandler) Plant(c echo.Context) error {
	plant, err := h.store.Plant(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plant)
}

// Submissions handles GET /api/submissions. Regular admins are scoped to
// their own plant; super admins see everything.
func (h *PortalHandler) Submissions(c echo.Context) error {
	userID, _ := c.Get(ctxUserID).(string)
	user, err := h.store.FindUser(userID)
	if err != nil {
		return err
	}
	if user.IsSuperAdmin {
		return c.JSON(http.StatusOK, h.store.Submissions())
	}
	return c.JSON(http.StatusOK, h.store.SubmissionsByPlant(user.PlantID))
}

// SubmissionsByPlant handles GET /api/submissions/plant/:id.
func (h *PortalHandler) SubmissionsByPlant(c echo.Context) error {
	plantID := c.Param("id")
	if _, err := h.store.Plant(plantID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.store.SubmissionsByPlant(plantID))
}

// Submission handles GET /api/submissions/:id.
func (h *PortalHandler) Submission(c echo.Context) error {
	sub, err := h.store.Submission(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

// CreateSubmission handles POST /api/submissions: the public multipart
// form. File contents are accepted and discarded; only the filenames are
// kept, since the stub has no file storage.
func (h *PortalHandler) CreateSubmission(c echo.Context) error {
	required := map[string]string{
		"fullName":    c.FormValue("fullName"),
		"teId":        c.FormValue("teId"),
		"cin":         c.FormValue("cin"),
		"dateOfBirth": c.FormValue("dateOfBirth"),
		"plantId":     c.FormValue("plantId"),
	}
	var missing []string
	for name, v := range required {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name+" is required")
		}
	}
	if len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Errors: missing})
	}

	cinImage, err := formFileName(c, "cinImage")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cinImage is required")
	}
	picImage, err := formFileName(c, "picImage")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "picImage is required")
	}
	greyCardImage, _ := formFileName(c, "greyCardImage")

	sub, err := h.store.AddSubmission(domain.Submission{
		FullName:    required["fullName"],
		TEID:        required["teId"],
		CIN:         required["cin"],
		DateOfBirth: required["dateOfBirth"],
		PlantID:     required["plantId"],
		GreyCard:    c.FormValue("greyCard"),
		CINImage:    cinImage,
		PicImage:    picImage,
		GreyCardImg: greyCardImage,
	})
	if err != nil {
		return err
	}

	h.log.Info().Str("te_id", sub.TEID).Str("plant", sub.PlantName).Msg("submission received")
	return c.JSON(http.StatusCreated, sub)
}

type exportRequest struct {
	Format  int    `json:"format"  validate:"required,oneof=1 2"`
	PlantID string `json:"plantId"`
}

// Export handles POST /api/export. The stub always renders CSV content;
// only the filename extension follows the requested format.
func (h *PortalHandler) Export(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	subs := h.store.Submissions()
	if req.PlantID != "" {
		if _, err := h.store.Plant(req.PlantID); err != nil {
			return err
		}
		subs = h.store.SubmissionsByPlant(req.PlantID)
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"full_name", "te_id", "cin", "date_of_birth", "plant", "grey_card", "created_at"})
	for _, s := range subs {
		_ = w.Write([]string{s.FullName, s.TEID, s.CIN, s.DateOfBirth, s.PlantName, s.GreyCard, s.CreatedAt.Format("2006-01-02 15:04")})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	ext := "csv"
	contentType := "text/csv"
	if domain.ExportFormat(req.Format) == domain.ExportXLSX {
		ext = "xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="submissions.%s"`, ext))
	return c.Blob(http.StatusOK, contentType, []byte(buf.String()))
}

// formFileName returns the uploaded file's name after draining its
// content, so large uploads do not accumulate in memory.
func formFileName(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	if err := drainFile(fh); err != nil {
		return "", err
	}
	return fh.Filename, nil
}

func drainFile(fh *multipart.FileHeader) error {
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(io.Discard, f)
	return err
}
