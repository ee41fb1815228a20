package common

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext is the slice of the scenario state these steps need.
type TestContext interface {
	Do(ctx context.Context, method, path, actor, body string) error
	LastStatus() int
	LastError() string
	Field(path string) (string, error)
	Count() (int, error)
	Expand(s string) string
	Save(name, value string)
}

// RegisterSteps registers generic request and assertion steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^"([^"]*)" sends (GET|DELETE) "([^"]*)"$`, steps.sendWithoutBody)
	ctx.Step(`^"([^"]*)" sends (POST|PUT) "([^"]*)" with:$`, steps.sendWithBody)
	ctx.Step(`^an anonymous client sends POST "([^"]*)" with:$`, steps.anonymousPost)

	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response error should be "([^"]*)"$`, steps.errorShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.fieldShouldBe)
	ctx.Step(`^the response should list (\d+) items?$`, steps.countShouldBe)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, steps.rememberField)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) sendWithoutBody(ctx context.Context, actor, method, path string) error {
	return s.tc.Do(ctx, method, path, actor, "")
}

func (s *commonSteps) sendWithBody(ctx context.Context, actor, method, path string, body *godog.DocString) error {
	return s.tc.Do(ctx, method, path, actor, body.Content)
}

func (s *commonSteps) anonymousPost(ctx context.Context, path string, body *godog.DocString) error {
	return s.tc.Do(ctx, "POST", path, "", body.Content)
}

func (s *commonSteps) statusShouldBe(expected int) error {
	if got := s.tc.LastStatus(); got != expected {
		return fmt.Errorf("expected status %d, got %d (error %q)", expected, got, s.tc.LastError())
	}
	return nil
}

func (s *commonSteps) errorShouldBe(expected string) error {
	if got := s.tc.LastError(); got != expected {
		return fmt.Errorf("expected error %q, got %q", expected, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldBe(path, expected string) error {
	got, err := s.tc.Field(path)
	if err != nil {
		return err
	}
	if want := s.tc.Expand(expected); got != want {
		return fmt.Errorf("field %s: expected %q, got %q", path, want, got)
	}
	return nil
}

func (s *commonSteps) countShouldBe(expected int) error {
	got, err := s.tc.Count()
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("expected %d items, got %s", expected, strconv.Itoa(got))
	}
	return nil
}

func (s *commonSteps) rememberField(path, name string) error {
	v, err := s.tc.Field(path)
	if err != nil {
		return err
	}
	s.tc.Save(name, v)
	return nil
}
