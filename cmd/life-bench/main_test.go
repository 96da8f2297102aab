package main

import "testing"

func TestRunScenarioMatches(t *testing.T) {
	res := runScenario(scenario{seed: 7, n: 32, density: 0.35, steps: 40})
	if !res.ok() {
		t.Fatalf("%s board diverged at generation %d", res.divergedIn, res.divergedAt)
	}
	if res.initialLive == 0 {
		t.Fatal("soup should not be empty")
	}
}
