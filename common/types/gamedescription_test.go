package types

import "testing"

func TestGameDescriptionClampsConfiguration(t *testing.T) {
	desc := NewGameDescription("clamped", 20, GameModeGround, 50, 500000, 100000, 20)

	if got := desc.GetAgentCount(); got != MaxAgents {
		t.Fatalf("agent count: got %d, want %d", got, MaxAgents)
	}
	if got := desc.GetFoodCount(); got != MaxFood {
		t.Fatalf("food count: got %d, want %d", got, MaxFood)
	}
	if got := desc.GetDurationSeconds(); got != MaxDurationMinutes*60 {
		t.Fatalf("duration: got %d, want %d", got, MaxDurationMinutes*60)
	}

	desc = NewGameDescription("floor", 20, GameModeGround, 0, 0, 0, 20)

	if got := desc.GetAgentCount(); got != MinAgents {
		t.Fatalf("agent count floor: got %d, want %d", got, MinAgents)
	}
	if got := desc.GetFoodCount(); got != MinFood {
		t.Fatalf("food count floor: got %d, want %d", got, MinFood)
	}
	if got := desc.GetDurationSeconds(); got != MinDurationMinutes*60 {
		t.Fatalf("duration floor: got %d, want %d", got, MinDurationMinutes*60)
	}
}

func TestGameDescriptionHyperModeFixesFoodCount(t *testing.T) {
	desc := NewGameDescription("legacy", 20, GameModeHyper, 4, 5000, 10, 20)

	if got := desc.GetFoodCount(); got != HyperFoodCount {
		t.Fatalf("hyper mode food count: got %d, want %d", got, HyperFoodCount)
	}
}

func TestGameDescriptionUnknownModeDefaultsToGround(t *testing.T) {
	desc := NewGameDescription("default", 20, GameMode("8d"), 4, 100, 10, 20)

	if got := desc.GetMode(); got != GameModeGround {
		t.Fatalf("mode: got %s, want %s", got, GameModeGround)
	}
}
