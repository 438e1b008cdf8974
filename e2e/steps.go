package e2e

import (
	"github.com/cucumber/godog"

	"amply/e2e/steps/common"
	"amply/e2e/steps/intake"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (service health, generic requests, assertions)
	common.RegisterSteps(ctx, tc)

	// Register intake form steps
	intake.RegisterSteps(ctx, tc)
}
