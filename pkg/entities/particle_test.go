package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/render"
)

const epsilon = 1e-9

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewParticle_VariantParameters(t *testing.T) {
	cfg := config.Default()
	r := newTestRand()

	tests := []struct {
		name         string
		kind         ParticleKind
		wantFriction float64
		wantGravity  float64
		wantTrail    int
		speedMin     float64
		speedMax     float64
	}{
		{"爆炸火花", ParticleSpark, 0.92, 0.6, 5, 1, 16},
		{"拖尾火花", ParticleTrail, 0.95, 0.1, 3, 0.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				p := NewParticle(tt.kind, 100, 200, &cfg.Particle, r)

				if p.Friction != tt.wantFriction {
					t.Fatalf("Friction = %v, want %v", p.Friction, tt.wantFriction)
				}
				if p.Gravity != tt.wantGravity {
					t.Fatalf("Gravity = %v, want %v", p.Gravity, tt.wantGravity)
				}
				if p.Trail.Len() != tt.wantTrail {
					t.Fatalf("Trail.Len() = %d, want %d", p.Trail.Len(), tt.wantTrail)
				}
				if p.Alpha != 1 {
					t.Fatalf("Alpha = %v, want 1", p.Alpha)
				}
				if p.Decay < 0.005 || p.Decay >= 0.02 {
					t.Fatalf("Decay = %v, out of [0.005, 0.02)", p.Decay)
				}
				if p.Speed < tt.speedMin || p.Speed >= tt.speedMax {
					t.Fatalf("Speed = %v, out of [%v, %v)", p.Speed, tt.speedMin, tt.speedMax)
				}
				if p.Hue < 0 || p.Hue >= 360 {
					t.Fatalf("Hue = %v, out of [0, 360)", p.Hue)
				}
				if p.Brightness < 40 || p.Brightness >= 100 {
					t.Fatalf("Brightness = %v, out of [40, 100)", p.Brightness)
				}
				if p.Angle < 0 || p.Angle >= 2*math.Pi {
					t.Fatalf("Angle = %v, out of [0, 2π)", p.Angle)
				}
			}
		})
	}
}

func TestParticle_UpdateSingleStep(t *testing.T) {
	cfg := config.Default()
	p := NewParticle(ParticleSpark, 100, 200, &cfg.Particle, newTestRand())
	p.Angle = 0
	p.Speed = 10
	p.Decay = 0.01
	p.Flicker = false

	removed := p.Update()

	if removed {
		t.Fatal("Update() reported removal after one tick")
	}
	if math.Abs(p.Speed-9.2) > epsilon {
		t.Errorf("Speed = %v, want 9.2", p.Speed)
	}
	if math.Abs(p.X-109.2) > epsilon {
		t.Errorf("X = %v, want 109.2", p.X)
	}
	if math.Abs(p.Y-200.6) > epsilon {
		t.Errorf("Y = %v, want 200.6 (gravity only)", p.Y)
	}
	if math.Abs(p.Alpha-0.99) > epsilon {
		t.Errorf("Alpha = %v, want 0.99", p.Alpha)
	}
	if got := p.Trail.Points()[0]; got.X != 100 || got.Y != 200 {
		t.Errorf("Trail[0] = %v, want previous position (100, 200)", got)
	}
}

func TestParticle_AlphaMonotonicAndRemovalTick(t *testing.T) {
	cfg := config.Default()
	r := newTestRand()

	for _, kind := range []ParticleKind{ParticleSpark, ParticleTrail} {
		t.Run(kind.String(), func(t *testing.T) {
			for n := 0; n < 50; n++ {
				p := NewParticle(kind, 0, 0, &cfg.Particle, r)
				prev := p.Alpha
				ticks := 0
				for {
					ticks++
					removed := p.Update()
					if p.Alpha > prev {
						t.Fatalf("alpha increased: %v -> %v", prev, p.Alpha)
					}
					prev = p.Alpha

					if removed {
						if p.Alpha > p.Decay {
							t.Fatalf("removed while alpha(%v) > decay(%v)", p.Alpha, p.Decay)
						}
						break
					}
					if p.Alpha <= p.Decay {
						t.Fatalf("not removed although alpha(%v) <= decay(%v)", p.Alpha, p.Decay)
					}
					if ticks > 1000 {
						t.Fatal("particle never expired")
					}
				}
				// 截止点位于 alpha 变为非正之前
				if p.Alpha+p.Decay <= 0 {
					t.Fatalf("particle survived past alpha <= 0: %v", p.Alpha)
				}
			}
		})
	}
}

func TestParticle_FlickerOnlyAffectsSparks(t *testing.T) {
	cfg := config.Default()
	r := newTestRand()

	spark := NewParticle(ParticleSpark, 0, 0, &cfg.Particle, r)
	spark.Flicker = true
	spark.Decay = 0.001
	changed := false
	before := spark.Brightness
	for i := 0; i < 20; i++ {
		spark.Update()
		if spark.Brightness < 20 || spark.Brightness >= 100 {
			t.Fatalf("flicker brightness = %v, out of [20, 100)", spark.Brightness)
		}
		if spark.Brightness != before {
			changed = true
		}
	}
	if !changed {
		t.Error("flickering spark never changed brightness")
	}

	trail := NewParticle(ParticleTrail, 0, 0, &cfg.Particle, r)
	trail.Flicker = true
	trail.Decay = 0.001
	want := trail.Brightness
	for i := 0; i < 20; i++ {
		trail.Update()
	}
	if trail.Brightness != want {
		t.Errorf("trail brightness changed to %v, want constant %v", trail.Brightness, want)
	}
}

func TestParticle_TrailLengthStable(t *testing.T) {
	cfg := config.Default()
	r := newTestRand()
	spark := NewParticle(ParticleSpark, 0, 0, &cfg.Particle, r)
	trail := NewParticle(ParticleTrail, 0, 0, &cfg.Particle, r)
	spark.Decay, trail.Decay = 0.001, 0.001

	for i := 0; i < 30; i++ {
		spark.Update()
		trail.Update()
		if spark.Trail.Len() != 5 {
			t.Fatalf("spark trail length = %d, want 5", spark.Trail.Len())
		}
		if trail.Trail.Len() != 3 {
			t.Fatalf("trail particle trail length = %d, want 3", trail.Trail.Len())
		}
	}
}

func TestParticle_DrawFromOldestTrailPoint(t *testing.T) {
	cfg := config.Default()
	p := NewParticle(ParticleSpark, 10, 10, &cfg.Particle, newTestRand())
	p.Angle = 0
	p.Speed = 5
	p.Gravity = 0
	p.Friction = 0.5
	p.Decay = 0.1
	p.Flicker = false

	p.Update()
	p.Update()

	s := &render.RecordingSurface{KeepStrokes: true}
	p.Draw(s)

	if len(s.Strokes) != 1 {
		t.Fatalf("strokes = %d, want 1", len(s.Strokes))
	}
	st := s.Strokes[0]
	if st.X0 != 10 || st.Y0 != 10 {
		t.Errorf("stroke start = (%v, %v), want oldest point (10, 10)", st.X0, st.Y0)
	}
	if st.X1 != p.X || st.Y1 != p.Y {
		t.Errorf("stroke end = (%v, %v), want current (%v, %v)", st.X1, st.Y1, p.X, p.Y)
	}
	// alpha = 0.8 → A = 204
	if st.Color.A != 204 {
		t.Errorf("stroke alpha = %d, want 204", st.Color.A)
	}
}
