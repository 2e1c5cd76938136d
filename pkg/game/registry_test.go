package game

import (
	"math/rand"
	"testing"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/entities"
)

func TestRegistry_Add(t *testing.T) {
	cfg := config.Default()
	r := rand.New(rand.NewSource(1))
	reg := NewRegistry()

	reg.AddRocket(entities.NewRocket(0, 0, 10, 10, &cfg.Rocket, r))
	reg.AddSparks(entities.CreateExplosion(0, 0, cfg, r))
	reg.AddTrail(entities.NewParticle(entities.ParticleTrail, 0, 0, &cfg.Particle, r))

	rockets, sparks, trails := reg.Counts()
	if rockets != 1 || sparks != 80 || trails != 1 {
		t.Fatalf("Counts() = (%d, %d, %d), want (1, 80, 1)", rockets, sparks, trails)
	}
	if reg.Total() != 82 {
		t.Errorf("Total() = %d, want 82", reg.Total())
	}
}

func TestRemoveAt_PreservesOrder(t *testing.T) {
	a, b, c, d := new(int), new(int), new(int), new(int)
	s := []*int{a, b, c, d}

	s = removeAt(s, 1)

	want := []*int{a, c, d}
	if len(s) != len(want) {
		t.Fatalf("len = %d, want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d] changed order", i)
		}
	}
	if tail := s[:4][3]; tail != nil {
		t.Error("removed slot still holds a reference")
	}
}
