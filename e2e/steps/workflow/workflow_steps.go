package workflow

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// TestContext is the slice of the scenario state these steps need.
type TestContext interface {
	Do(ctx context.Context, method, path, actor, body string) error
	LastStatus() int
	LastError() string
	Field(path string) (string, error)
	Save(name, value string)
	SetToken(actor, token string)
	HasToken(actor string) bool
}

// Credentials for the bootstrap admin the server seeds at startup.
type Credentials struct {
	Username string
	Password string
}

const password = "e2e-password-1"

// RegisterSteps registers steps that set up actors and catalogue data.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext, admin Credentials) {
	steps := &workflowSteps{tc: tc, admin: admin}

	ctx.Step(`^the admin is logged in$`, steps.adminLoggedIn)
	ctx.Step(`^a registered customer "([^"]*)" is logged in$`, steps.customerLoggedIn)
	ctx.Step(`^an agent "([^"]*)" is logged in$`, steps.agentLoggedIn)
	ctx.Step(`^the catalogue offers "([^"]*)" at (\d+(?:\.\d+)?) for (\d+) months$`, steps.catalogueOffers)
	ctx.Step(`^"([^"]*)" holds an approved "([^"]*)" policy serviced by "([^"]*)"$`, steps.holdsPolicy)
	ctx.Step(`^"([^"]*)" fails to log in (\d+) times$`, steps.failLogin)
}

type workflowSteps struct {
	tc    TestContext
	admin Credentials
}

func (s *workflowSteps) login(ctx context.Context, actor, username, pass string) error {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, pass)
	if err := s.tc.Do(ctx, http.MethodPost, "/auth/login", "", body); err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusOK {
		return fmt.Errorf("login %s: status %d (%s)", username, s.tc.LastStatus(), s.tc.LastError())
	}
	token, err := s.tc.Field("token")
	if err != nil {
		return err
	}
	s.tc.SetToken(actor, token)
	return nil
}

func (s *workflowSteps) adminLoggedIn(ctx context.Context) error {
	if s.tc.HasToken("admin") {
		return nil
	}
	return s.login(ctx, "admin", s.admin.Username, s.admin.Password)
}

// uniqueUsername keeps scenarios independent against a long-lived server.
func uniqueUsername(name string) string {
	return name + "-" + uuid.NewString()[:8]
}

func (s *workflowSteps) customerLoggedIn(ctx context.Context, name string) error {
	username := uniqueUsername(name)
	body := fmt.Sprintf(`{"username":%q,"password":%q,"name":%q,"email":"%s@example.com"}`, username, password, name, username)
	if err := s.tc.Do(ctx, http.MethodPost, "/auth/register", "", body); err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusCreated {
		return fmt.Errorf("register %s: status %d (%s)", name, s.tc.LastStatus(), s.tc.LastError())
	}
	id, err := s.tc.Field("id")
	if err != nil {
		return err
	}
	s.tc.Save(name+".id", id)
	return s.login(ctx, name, username, password)
}

func (s *workflowSteps) agentLoggedIn(ctx context.Context, name string) error {
	if err := s.adminLoggedIn(ctx); err != nil {
		return err
	}
	username := uniqueUsername(name)
	body := fmt.Sprintf(`{"username":%q,"password":%q,"name":%q,"email":"%s@example.com"}`, username, password, name, username)
	if err := s.tc.Do(ctx, http.MethodPost, "/admin/agents", "admin", body); err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusCreated {
		return fmt.Errorf("add agent %s: status %d (%s)", name, s.tc.LastStatus(), s.tc.LastError())
	}
	id, err := s.tc.Field("id")
	if err != nil {
		return err
	}
	s.tc.Save(name+".id", id)
	return s.login(ctx, name, username, password)
}

func (s *workflowSteps) catalogueOffers(ctx context.Context, name, premium string, months int) error {
	if err := s.adminLoggedIn(ctx); err != nil {
		return err
	}
	body := fmt.Sprintf(`{"name":%q,"coverageDetails":"e2e","basePremium":%s,"validityPeriod":%d}`, name, premium, months)
	if err := s.tc.Do(ctx, http.MethodPost, "/admin/catalogue", "admin", body); err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusCreated {
		return fmt.Errorf("create catalogue item: status %d (%s)", s.tc.LastStatus(), s.tc.LastError())
	}
	id, err := s.tc.Field("id")
	if err != nil {
		return err
	}
	s.tc.Save(name+".id", id)
	return nil
}

// holdsPolicy walks submit then approve so later steps start from an issued policy.
func (s *workflowSteps) holdsPolicy(ctx context.Context, customer, product, agent string) error {
	if err := s.tc.Do(ctx, http.MethodPost, "/customer/policy-requests", customer,
		`{"availablePolicyId":{`+product+`.id}}`); err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusCreated {
		return fmt.Errorf("submit request: status %d (%s)", s.tc.LastStatus(), s.tc.LastError())
	}
	requestID, err := s.tc.Field("id")
	if err != nil {
		return err
	}
	if err := s.tc.Do(ctx, http.MethodPost, "/admin/policy-requests/"+requestID+"/approve", "admin",
		`{"agentId":{`+agent+`.id}}`); err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusOK {
		return fmt.Errorf("approve request: status %d (%s)", s.tc.LastStatus(), s.tc.LastError())
	}
	policyID, err := s.tc.Field("id")
	if err != nil {
		return err
	}
	s.tc.Save(customer+".policy", policyID)
	return nil
}

func (s *workflowSteps) failLogin(ctx context.Context, username string, times int) error {
	body := fmt.Sprintf(`{"username":%q,"password":"definitely-wrong"}`, username)
	for range times {
		if err := s.tc.Do(ctx, http.MethodPost, "/auth/login", "", body); err != nil {
			return err
		}
	}
	return nil
}
