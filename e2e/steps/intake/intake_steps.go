package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (interface{}, error)
}

// RegisterSteps registers intake form step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &intakeSteps{tc: tc}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		steps.draft = map[string]interface{}{}
		steps.countBefore = -1
		return ctx, nil
	})

	// Draft building steps
	ctx.Step(`^an empty entity form$`, steps.emptyForm)
	ctx.Step(`^a valid entity form$`, steps.validForm)
	ctx.Step(`^the field "([^"]*)" is set to "([^"]*)"$`, steps.setField)
	ctx.Step(`^the field "([^"]*)" is set to the number (\d+)$`, steps.setFieldNumber)
	ctx.Step(`^the field "([^"]*)" is removed$`, steps.removeField)
	ctx.Step(`^I note the number of entries$`, steps.noteEntryCount)

	// Actions
	ctx.Step(`^I submit the form$`, steps.submit)
	ctx.Step(`^I change the field "([^"]*)" to "([^"]*)"$`, steps.changeField)

	// Assertions
	ctx.Step(`^the submission should be accepted$`, steps.shouldBeAccepted)
	ctx.Step(`^the submission should be rejected$`, steps.shouldBeRejected)
	ctx.Step(`^only the field "([^"]*)" should be invalid$`, steps.onlyFieldInvalid)
	ctx.Step(`^every field should be invalid$`, steps.everyFieldInvalid)
	ctx.Step(`^the confirmation should read "([^"]*)"$`, steps.confirmationShouldRead)
	ctx.Step(`^the confirmation should be hidden$`, steps.confirmationHidden)
	ctx.Step(`^the URL feedback should read "([^"]*)"$`, steps.urlFeedbackShouldRead)
	ctx.Step(`^no URL feedback should be shown$`, steps.noURLFeedback)
	ctx.Step(`^the displayed "([^"]*)" should be "([^"]*)"$`, steps.displayedValue)
	ctx.Step(`^the number of entries should be unchanged$`, steps.entryCountUnchanged)
}

var fieldOrder = []string{"fullName", "country", "yob", "position", "url", "risk"}

type intakeSteps struct {
	tc          TestContext
	draft       map[string]interface{}
	countBefore int
}

func (s *intakeSteps) emptyForm(ctx context.Context) error {
	s.draft = map[string]interface{}{}
	return nil
}

func (s *intakeSteps) validForm(ctx context.Context) error {
	s.draft = map[string]interface{}{
		"fullName": "Joe Bloggs",
		"country":  "GB",
		"yob":      "1970-01-01",
		"position": "Yes Minister",
		"url":      "https://cia.gov/bluebook/narnia",
		"risk":     "HUGE",
	}
	return nil
}

func (s *intakeSteps) setField(ctx context.Context, field, value string) error {
	s.draft[field] = value
	return nil
}

func (s *intakeSteps) setFieldNumber(ctx context.Context, field string, value int) error {
	s.draft[field] = value
	return nil
}

func (s *intakeSteps) removeField(ctx context.Context, field string) error {
	delete(s.draft, field)
	return nil
}

func (s *intakeSteps) noteEntryCount(ctx context.Context) error {
	n, err := s.entryCount()
	if err != nil {
		return err
	}
	s.countBefore = n
	return nil
}

func (s *intakeSteps) submit(ctx context.Context) error {
	return s.tc.POST("/entities", s.draft)
}

func (s *intakeSteps) changeField(ctx context.Context, field, value string) error {
	return s.tc.POST("/entities/fields/"+field, map[string]interface{}{"value": value})
}

func (s *intakeSteps) shouldBeAccepted(ctx context.Context) error {
	return s.expectState("accepted", true)
}

func (s *intakeSteps) shouldBeRejected(ctx context.Context) error {
	return s.expectState("rejected", false)
}

func (s *intakeSteps) expectState(state string, accepted bool) error {
	got, err := s.tc.GetResponseField("state")
	if err != nil {
		return err
	}
	if got != state {
		return fmt.Errorf("expected state %s, got %v", state, got)
	}
	flag, err := s.tc.GetResponseField("accepted")
	if err != nil {
		return err
	}
	if flag != accepted {
		return fmt.Errorf("expected accepted=%t, got %v", accepted, flag)
	}
	return nil
}

func (s *intakeSteps) invalidFields() ([]string, error) {
	raw, err := s.tc.GetResponseField("invalid_fields")
	if err != nil {
		return nil, err
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid_fields is not a list: %T", raw)
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, fmt.Sprint(v))
	}
	return out, nil
}

func (s *intakeSteps) onlyFieldInvalid(ctx context.Context, field string) error {
	invalid, err := s.invalidFields()
	if err != nil {
		return err
	}
	if len(invalid) != 1 || invalid[0] != field {
		return fmt.Errorf("expected only %s to be invalid, got %v", field, invalid)
	}
	return nil
}

func (s *intakeSteps) everyFieldInvalid(ctx context.Context) error {
	invalid, err := s.invalidFields()
	if err != nil {
		return err
	}
	if fmt.Sprint(invalid) != fmt.Sprint(fieldOrder) {
		return fmt.Errorf("expected %v to be invalid, got %v", fieldOrder, invalid)
	}
	return nil
}

func (s *intakeSteps) confirmationShouldRead(ctx context.Context, text string) error {
	visible, err := s.tc.GetResponseField("feedback.confirmation.visible")
	if err != nil {
		return err
	}
	if visible != true {
		return fmt.Errorf("expected confirmation to be visible")
	}
	got, err := s.tc.GetResponseField("feedback.confirmation.text")
	if err != nil {
		return err
	}
	if got != text {
		return fmt.Errorf("expected confirmation %q, got %q", text, got)
	}
	return nil
}

func (s *intakeSteps) confirmationHidden(ctx context.Context) error {
	visible, err := s.tc.GetResponseField("feedback.confirmation.visible")
	if err != nil {
		return err
	}
	if visible != false {
		return fmt.Errorf("expected confirmation to be hidden")
	}
	return nil
}

func (s *intakeSteps) urlFeedbackShouldRead(ctx context.Context, message string) error {
	got, err := s.tc.GetResponseField("feedback.url_feedback.message")
	if err != nil {
		return err
	}
	if got != message {
		return fmt.Errorf("expected URL feedback %q, got %q", message, got)
	}
	return nil
}

func (s *intakeSteps) noURLFeedback(ctx context.Context) error {
	if _, err := s.tc.GetResponseField("feedback.url_feedback"); err == nil {
		return fmt.Errorf("expected no URL feedback to be shown")
	}
	return nil
}

func (s *intakeSteps) displayedValue(ctx context.Context, field, expected string) error {
	got, err := s.tc.GetResponseField("feedback.values." + field)
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("expected displayed %s %q, got %v", field, expected, got)
	}
	return nil
}

func (s *intakeSteps) entryCountUnchanged(ctx context.Context) error {
	if s.countBefore < 0 {
		return fmt.Errorf("entry count was never noted")
	}
	n, err := s.entryCount()
	if err != nil {
		return err
	}
	if n != s.countBefore {
		return fmt.Errorf("expected %d entries, got %d", s.countBefore, n)
	}
	return nil
}

// entryCount reads the list endpoint. It replaces the last response, so
// assertions on a submission must run before it.
func (s *intakeSteps) entryCount() (int, error) {
	if err := s.tc.GET("/entities", nil); err != nil {
		return 0, err
	}
	raw, err := s.tc.GetResponseField("count")
	if err != nil {
		return 0, err
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(string(b))
}
