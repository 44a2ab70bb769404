package checkers

import (
	"context"
	"fmt"
)

// ModelChecker reports whether the model provider has credentials.
// Requests are still served without them; the calls just fail.
type ModelChecker struct {
	provider string
	apiKey   string
}

func NewModelChecker(provider, apiKey string) *ModelChecker {
	return &ModelChecker{provider: provider, apiKey: apiKey}
}

func (c *ModelChecker) Name() string { return "model" }

func (c *ModelChecker) Check(context.Context) error {
	if c.apiKey == "" {
		return fmt.Errorf("%s api key is not configured", c.provider)
	}
	return nil
}
