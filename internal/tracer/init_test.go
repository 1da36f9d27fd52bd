package tracer

import "testing"

func TestDeploymentEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	if got := deploymentEnvironment(); got != "production" {
		t.Errorf("deploymentEnvironment() = %q, want the GO_ENV value", got)
	}

	t.Setenv("GO_ENV", "")
	if got := deploymentEnvironment(); got != "development" {
		t.Errorf("deploymentEnvironment() = %q, want the default", got)
	}
}
