package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/forms"
	"github.com/plantdesk/portalctl/internal/nav"
)

var submissionsCmd = &cobra.Command{
	Use:     "submissions",
	Aliases: []string{"subs"},
	Short:   "List, inspect and create document submissions",
}

var submissionsPlantID string

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions, optionally scoped to a plant",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathSubmissions); err != nil {
			return done(err)
		}

		var (
			subs []domain.Submission
			err  error
		)
		if submissionsPlantID != "" {
			subs, err = application.api.SubmissionsByPlant(cmd.Context(), submissionsPlantID)
		} else {
			subs, err = application.api.Submissions(cmd.Context())
		}
		if err != nil {
			return done(err)
		}
		for _, s := range subs {
			fmt.Printf("%s  %-24s %-10s %s  %s\n",
				s.ID, s.FullName, s.TEID, s.PlantName, s.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var submissionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathSubmissions); err != nil {
			return done(err)
		}
		sub, err := application.api.Submission(cmd.Context(), args[0])
		if err != nil {
			return done(err)
		}
		fmt.Printf("ID:            %s\n", sub.ID)
		fmt.Printf("Full name:     %s\n", sub.FullName)
		fmt.Printf("TE ID:         %s\n", sub.TEID)
		fmt.Printf("CIN:           %s\n", sub.CIN)
		fmt.Printf("Date of birth: %s\n", sub.DateOfBirth)
		fmt.Printf("Plant:         %s\n", sub.PlantName)
		if sub.GreyCard != "" {
			fmt.Printf("Grey card:     %s\n", sub.GreyCard)
		}
		fmt.Printf("Created:       %s\n", sub.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

var createForm struct {
	fullName    string
	teID        string
	cin         string
	dateOfBirth string
	plantID     string
	greyCard    string

	cinImage      string
	picImage      string
	greyCardImage string
}

var submissionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit the document form with its images",
	Long: `Submit a new document record. The endpoint is public, so no session
is required. The CIN and picture images are mandatory; the grey card
value and its image are optional but travel together.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.SubmissionForm{
			FullName:    createForm.fullName,
			TEID:        createForm.teID,
			CIN:         createForm.cin,
			DateOfBirth: createForm.dateOfBirth,
			PlantID:     createForm.plantID,
			GreyCard:    createForm.greyCard,
		}
		if err := forms.Validate(form); err != nil {
			return err
		}
		if (createForm.greyCard == "") != (createForm.greyCardImage == "") {
			return fmt.Errorf("--grey-card and --grey-card-image must be given together")
		}

		cinImage, err := readUpload(createForm.cinImage)
		if err != nil {
			return err
		}
		picImage, err := readUpload(createForm.picImage)
		if err != nil {
			return err
		}

		input := ports.CreateSubmissionInput{
			FullName:    createForm.fullName,
			TEID:        createForm.teID,
			CIN:         createForm.cin,
			DateOfBirth: createForm.dateOfBirth,
			PlantID:     createForm.plantID,
			GreyCard:    createForm.greyCard,
			CINImage:    cinImage,
			PicImage:    picImage,
		}
		if createForm.greyCardImage != "" {
			greyImage, err := readUpload(createForm.greyCardImage)
			if err != nil {
				return err
			}
			input.GreyCardImage = &greyImage
		}

		sub, err := application.api.CreateSubmission(cmd.Context(), input)
		if err != nil {
			return done(err)
		}
		fmt.Printf("Submission created: %s\n", sub.ID)
		return nil
	},
}

// readUpload loads a local file into a multipart upload part. The part
// name is the base filename, matching what a browser file input sends.
func readUpload(path string) (ports.FileUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ports.FileUpload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ports.FileUpload{Name: filepath.Base(path), Content: data}, nil
}

func init() {
	submissionsListCmd.Flags().StringVar(&submissionsPlantID, "plant", "", "restrict the list to one plant")

	flags := submissionsCreateCmd.Flags()
	flags.StringVar(&createForm.fullName, "name", "", "full name")
	flags.StringVar(&createForm.teID, "teid", "", "employee id")
	flags.StringVar(&createForm.cin, "cin", "", "national id number")
	flags.StringVar(&createForm.dateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
	flags.StringVar(&createForm.plantID, "plant", "", "plant id")
	flags.StringVar(&createForm.greyCard, "grey-card", "", "grey card number (optional)")
	flags.StringVar(&createForm.cinImage, "cin-image", "", "path to the CIN image")
	flags.StringVar(&createForm.picImage, "pic-image", "", "path to the portrait image")
	flags.StringVar(&createForm.greyCardImage, "grey-card-image", "", "path to the grey card image (optional)")
	_ = submissionsCreateCmd.MarkFlagRequired("cin-image")
	_ = submissionsCreateCmd.MarkFlagRequired("pic-image")

	submissionsCmd.AddCommand(submissionsListCmd, submissionsGetCmd, submissionsCreateCmd)
	rootCmd.AddCommand(submissionsCmd)
}
