// Package appenv reports the runtime environment from APP_ENV.
package appenv

import (
	"os"
	"strings"
)

type Env string

const (
	Production Env = "production"
	Test       Env = "test"
)

// Current returns the effective environment. Anything that is not an
// explicit "test" counts as production, so an unset or mistyped value
// never loosens behavior.
func Current() Env {
	if strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))) == string(Test) {
		return Test
	}
	return Production
}

func IsProduction() bool { return Current() == Production }
func IsTest() bool       { return Current() == Test }
