package e2e

import (
	"github.com/cucumber/godog"

	"ims/e2e/steps/common"
	"ims/e2e/steps/workflow"
)

// RegisterSteps registers all step definitions from the step packages.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext, admin workflow.Credentials) {
	common.RegisterSteps(ctx, tc)
	workflow.RegisterSteps(ctx, tc, admin)
}
