// Command wizard is a terminal client for authoring careers: it walks a
// recruiter through the four-step flow, saving drafts against the career API
// as it goes.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/jmagwili/launchpad-jia/internal/geo"
	"github.com/jmagwili/launchpad-jia/internal/model"
	"github.com/jmagwili/launchpad-jia/internal/wizard"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	savedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func main() {
	baseURL := envOr("API_BASE_URL", "http://localhost:8080")
	token := os.Getenv("API_TOKEN")
	if token == "" {
		log.Fatal("API_TOKEN is required")
	}

	orgID, err := uuid.Parse(os.Getenv("ORG_ID"))
	if err != nil {
		log.Fatalf("ORG_ID must be a valid UUID: %s", err)
	}

	author := model.UserSnapshot{
		Name:  envOr("USER_NAME", "Recruiter"),
		Email: os.Getenv("USER_EMAIL"),
	}

	client := wizard.NewClient(baseURL, token)
	machine := wizard.NewDraft(orgID, author, client)

	if err := run(machine); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(m *wizard.Machine) error {
	for !m.Finished() {
		printHeader(m)

		var err error
		switch m.Step() {
		case wizard.StepDetails:
			err = runDetailsStep(m)
		case wizard.StepScreening:
			err = runScreeningStep(m)
		case wizard.StepInterview:
			err = runInterviewStep(m)
		case wizard.StepReview:
			err = runReviewStep(m)
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Aborted. Unsaved changes were discarded.")
				return nil
			}
			return err
		}
	}

	fmt.Println(savedStyle.Render("Career saved. Find it on your careers dashboard."))
	return nil
}

func printHeader(m *wizard.Machine) {
	status := "unsaved"
	if m.Saved() {
		status = "draft saved"
	}
	fmt.Println(headerStyle.Render("Career Wizard"))
	fmt.Println(stepStyle.Render(fmt.Sprintf("Step %d of 4: %s (%s)", int(m.Step())+1, m.Step(), status)))
}

// reportSaveError prints validation and rejection messages and lets the
// recruiter retry; anything else bubbles up.
func reportSaveError(err error) error {
	var validationErr *wizard.ValidationError
	var rejected *wizard.RequestRejected
	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErr):
		fmt.Println(errorStyle.Render(validationErr.Message))
		return nil
	case wizard.IsQuotaExceeded(err):
		fmt.Println(errorStyle.Render("Plan limit reached: " + err.Error()))
		return nil
	case errors.As(err, &rejected):
		fmt.Println(errorStyle.Render(rejected.Message))
		return nil
	default:
		return err
	}
}

func runDetailsStep(m *wizard.Machine) error {
	draft := m.Draft()
	title := draft.JobTitle
	description := draft.Description
	workSetup := draft.WorkSetup
	remarks := draft.WorkSetupRemarks
	employment := draft.EmploymentType
	province := draft.Province
	city := draft.Location
	minSalary := formatSalary(draft.MinimumSalary)
	maxSalary := formatSalary(draft.MaximumSalary)
	negotiable := draft.SalaryNegotiable

	provinceOptions := make([]huh.Option[string], 0)
	for _, p := range geo.Provinces() {
		provinceOptions = append(provinceOptions, huh.NewOption(p.Name, p.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Job Title").Value(&title),
			huh.NewText().Title("Description").Value(&description),
			huh.NewSelect[string]().Title("Employment Type").
				Options(
					huh.NewOption(model.EmploymentFullTime, model.EmploymentFullTime),
					huh.NewOption(model.EmploymentPartTime, model.EmploymentPartTime),
				).Value(&employment),
			huh.NewSelect[string]().Title("Work Setup").
				Options(
					huh.NewOption(model.WorkSetupRemote, model.WorkSetupRemote),
					huh.NewOption(model.WorkSetupOnsite, model.WorkSetupOnsite),
					huh.NewOption(model.WorkSetupHybrid, model.WorkSetupHybrid),
				).Value(&workSetup),
			huh.NewInput().Title("Work Setup Remarks").Value(&remarks),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Province").Options(provinceOptions...).Value(&province),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	cityOptions := make([]huh.Option[string], 0)
	if p, ok := geo.ProvinceByName(province); ok {
		for _, c := range geo.CitiesOf(p.Key) {
			cityOptions = append(cityOptions, huh.NewOption(c.Name, c.Name))
		}
	}
	if !geo.CityBelongs(city, province) && len(cityOptions) > 0 {
		city = ""
	}

	salaryForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("City").Options(cityOptions...).Value(&city),
			huh.NewConfirm().Title("Salary Negotiable?").Value(&negotiable),
			huh.NewInput().Title("Minimum Monthly Salary (blank to skip)").
				Value(&minSalary).Validate(validateOptionalNumber),
			huh.NewInput().Title("Maximum Monthly Salary (blank to skip)").
				Value(&maxSalary).Validate(validateOptionalNumber),
		),
	).WithShowHelp(false)
	if err := salaryForm.Run(); err != nil {
		return err
	}

	m.Edit(func(info *model.EditableCareerInfo) {
		info.JobTitle = title
		info.Description = description
		info.WorkSetup = workSetup
		info.WorkSetupRemarks = remarks
		info.EmploymentType = employment
		info.Province = province
		info.Location = city
		info.SalaryNegotiable = negotiable
		info.MinimumSalary = parseSalary(minSalary)
		info.MaximumSalary = parseSalary(maxSalary)
	})

	return stepAction(m)
}

func runScreeningStep(m *wizard.Machine) error {
	draft := m.Draft()
	setting := draft.ScreeningSetting
	requireVideo := draft.RequireVideo

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("CV Screening Setting").
				Options(
					huh.NewOption(model.ScreeningGoodFitAndAbove, model.ScreeningGoodFitAndAbove),
					huh.NewOption(model.ScreeningOnlyStrongFit, model.ScreeningOnlyStrongFit),
					huh.NewOption(model.ScreeningNoAutoPromotion, model.ScreeningNoAutoPromotion),
				).Value(&setting),
			huh.NewConfirm().Title("Require video introduction?").Value(&requireVideo),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	m.Edit(func(info *model.EditableCareerInfo) {
		info.ScreeningSetting = setting
		info.RequireVideo = requireVideo
	})

	if err := runSuggestedQuestions(m); err != nil {
		return err
	}

	return stepAction(m)
}

func runSuggestedQuestions(m *wizard.Machine) error {
	suggested := m.Suggested()
	options := make([]huh.Option[int], 0, len(suggested))
	for i, s := range suggested {
		if s.Added {
			continue
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s: %s", s.Category, s.Question), i))
	}
	if len(options) == 0 {
		return nil
	}

	var picks []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Add suggested pre-screening questions").
				Options(options...).
				Value(&picks),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	for _, i := range picks {
		m.AddSuggested(i)
	}
	return nil
}

func runInterviewStep(m *wizard.Machine) error {
	draft := m.Draft()
	screening := draft.InterviewScreening

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Interview Screening Setting").
				Options(
					huh.NewOption(model.ScreeningGoodFitAndAbove, model.ScreeningGoodFitAndAbove),
					huh.NewOption(model.ScreeningOnlyStrongFit, model.ScreeningOnlyStrongFit),
					huh.NewOption(model.ScreeningNoAutoPromotion, model.ScreeningNoAutoPromotion),
				).Value(&screening),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	m.Edit(func(info *model.EditableCareerInfo) {
		info.InterviewScreening = screening
	})

	for {
		draft = m.Draft()
		categoryOptions := make([]huh.Option[int], 0, len(draft.Questions)+1)
		for i, cat := range draft.Questions {
			label := fmt.Sprintf("%s (%d questions)", cat.Category, len(cat.Questions))
			categoryOptions = append(categoryOptions, huh.NewOption(label, i))
		}
		categoryOptions = append(categoryOptions, huh.NewOption("Done adding questions", -1))

		var pick int
		pickForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().Title("Add an interview question to...").
					Options(categoryOptions...).Value(&pick),
			),
		).WithShowHelp(false)
		if err := pickForm.Run(); err != nil {
			return err
		}
		if pick < 0 {
			break
		}

		var question string
		questionForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Question").Value(&question),
			),
		).WithShowHelp(false)
		if err := questionForm.Run(); err != nil {
			return err
		}
		if question == "" {
			continue
		}
		m.Edit(func(info *model.EditableCareerInfo) {
			info.Questions[pick].Questions = append(info.Questions[pick].Questions,
				model.InterviewQuestion{Question: question})
		})
	}

	return stepAction(m)
}

const (
	actionSaveAndContinue = "save"
	actionSaveDraftExit   = "draft"
	actionPublish         = "publish"
	actionStay            = "stay"
)

// stepAction offers the save choices available on every step.
func stepAction(m *wizard.Machine) error {
	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("What next?").
				Options(
					huh.NewOption("Save draft and continue", actionSaveAndContinue),
					huh.NewOption("Save as unpublished and exit", actionSaveDraftExit),
					huh.NewOption("Publish now", actionPublish),
					huh.NewOption("Stay on this step", actionStay),
				).Value(&action),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	switch action {
	case actionSaveAndContinue:
		return reportSaveError(m.SaveDraftAndAdvance())
	case actionSaveDraftExit:
		return reportSaveError(m.SaveAsUnpublished())
	case actionPublish:
		return reportSaveError(m.SaveAsPublished())
	default:
		return nil
	}
}

func runReviewStep(m *wizard.Machine) error {
	draft := m.Draft()
	fmt.Println(renderSummary(&draft))

	const (
		reviewPublish = "publish"
		reviewDraft   = "draft"
		reviewEdit    = "edit"
	)

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Review").
				Options(
					huh.NewOption("Publish career", reviewPublish),
					huh.NewOption("Save as unpublished", reviewDraft),
					huh.NewOption("Edit a section", reviewEdit),
				).Value(&action),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	switch action {
	case reviewPublish:
		return reportSaveError(m.SaveAsPublished())
	case reviewDraft:
		return reportSaveError(m.SaveAsUnpublished())
	default:
		return runSectionEdit(m)
	}
}

// runSectionEdit opens a shadow copy of one review section so a cancelled
// edit never touches the draft.
func runSectionEdit(m *wizard.Machine) error {
	var section wizard.Section
	pickForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[wizard.Section]().Title("Which section?").
				Options(
					huh.NewOption("Job Details", wizard.SectionDetails),
					huh.NewOption("CV Review Settings", wizard.SectionScreening),
					huh.NewOption("AI Interview Setup", wizard.SectionInterview),
				).Value(&section),
		),
	).WithShowHelp(false)
	if err := pickForm.Run(); err != nil {
		return err
	}

	shadow, err := m.OpenShadow(section)
	if err != nil {
		return reportSaveError(err)
	}

	fields := shadow.Fields()
	var form *huh.Form
	switch section {
	case wizard.SectionDetails:
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Job Title").Value(&fields.JobTitle),
				huh.NewText().Title("Description").Value(&fields.Description),
				huh.NewSelect[string]().Title("Work Setup").
					Options(
						huh.NewOption(model.WorkSetupRemote, model.WorkSetupRemote),
						huh.NewOption(model.WorkSetupOnsite, model.WorkSetupOnsite),
						huh.NewOption(model.WorkSetupHybrid, model.WorkSetupHybrid),
					).Value(&fields.WorkSetup),
			),
		).WithShowHelp(false)
	case wizard.SectionScreening:
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().Title("CV Screening Setting").
					Options(
						huh.NewOption(model.ScreeningGoodFitAndAbove, model.ScreeningGoodFitAndAbove),
						huh.NewOption(model.ScreeningOnlyStrongFit, model.ScreeningOnlyStrongFit),
						huh.NewOption(model.ScreeningNoAutoPromotion, model.ScreeningNoAutoPromotion),
					).Value(&fields.ScreeningSetting),
				huh.NewConfirm().Title("Require video introduction?").Value(&fields.RequireVideo),
			),
		).WithShowHelp(false)
	default:
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().Title("Interview Screening Setting").
					Options(
						huh.NewOption(model.ScreeningGoodFitAndAbove, model.ScreeningGoodFitAndAbove),
						huh.NewOption(model.ScreeningOnlyStrongFit, model.ScreeningOnlyStrongFit),
						huh.NewOption(model.ScreeningNoAutoPromotion, model.ScreeningNoAutoPromotion),
					).Value(&fields.InterviewScreening),
			),
		).WithShowHelp(false)
	}
	if err := form.Run(); err != nil {
		shadow.Cancel()
		return err
	}

	var confirm bool
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Apply these changes?").Value(&confirm),
		),
	).WithShowHelp(false)
	if err := confirmForm.Run(); err != nil {
		shadow.Cancel()
		return err
	}

	if !confirm {
		shadow.Cancel()
		return nil
	}
	return reportSaveError(shadow.Commit())
}

func renderSummary(draft *model.Career) string {
	questionCount := 0
	for _, cat := range draft.Questions {
		questionCount += len(cat.Questions)
	}
	return stepStyle.Render(fmt.Sprintf(
		"%s | %s | %s, %s | screening: %s | %d interview questions",
		draft.JobTitle, draft.WorkSetup, draft.Location, draft.Province,
		draft.ScreeningSetting, questionCount,
	))
}

func formatSalary(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseSalary(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func validateOptionalNumber(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}
