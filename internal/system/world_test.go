package system

import (
	"testing"

	"pirate-platformer/internal/anim"
	"pirate-platformer/internal/component"
	"pirate-platformer/internal/geom"
)

func TestCreateCaptainInitialState(t *testing.T) {
	w := newTestWorld(floorMap(20, 8, 5))
	h := w.Create(3, 4, component.KindCaptain)
	e := mustEntity(t, w.Entity(h))

	if e.Pos != (geom.V2{X: 3, Y: 4}) {
		t.Errorf("pos = %v; want {3 4}", e.Pos)
	}
	if e.Vel != (geom.V2{}) {
		t.Errorf("vel = %v; want zero", e.Vel)
	}
	if e.Spawn != (geom.V2i{X: 3, Y: 4}) {
		t.Errorf("spawn = %v; want {3 4}", e.Spawn)
	}
	if e.Anim.Def() != anim.Get(anim.CaptainIdle) {
		t.Error("captain should start idle")
	}
	meta := component.MetaOf(component.KindCaptain)
	if e.Health != meta.MaxHealth || e.MaxHealth != meta.MaxHealth {
		t.Errorf("health = %d/%d; want %d/%d", e.Health, e.MaxHealth, meta.MaxHealth, meta.MaxHealth)
	}
	if ph, _ := w.Player(); ph != h {
		t.Error("first captain should become the player")
	}
}

func TestCreateCrabbyStartsPatrolling(t *testing.T) {
	w := newTestWorld(floorMap(20, 8, 5))
	e := w.Entity(w.Create(6, 4, component.KindCrabby))
	if e.Vel.X != w.Tuning.CrabbySpeed || e.Vel.X == 0 {
		t.Fatalf("crabby vx = %v; want %v", e.Vel.X, w.Tuning.CrabbySpeed)
	}
	if e.Anim.Def() != anim.Get(anim.CrabbyIdle) {
		t.Error("crabby should start on its default animation")
	}
}

func TestCreateWithHealth(t *testing.T) {
	w := newTestWorld(floorMap(10, 8, 5))
	e := w.Entity(w.CreateWithHealth(1, 1, component.KindCrabby, 9, 4))
	if e.Health != 4 || e.MaxHealth != 4 {
		t.Fatalf("health = %d/%d; want 4/4 (capped)", e.Health, e.MaxHealth)
	}
	e.Hurt(3)
	if e.Health != 1 || e.Dead() {
		t.Fatalf("after Hurt(3) health = %d dead=%v", e.Health, e.Dead())
	}
	e.Hurt(5)
	if e.Health != 0 || !e.Dead() {
		t.Fatalf("health should clamp at zero, got %d", e.Health)
	}
	e.Heal(10)
	if e.Health != 4 {
		t.Fatalf("Heal should cap at max, got %d", e.Health)
	}
}

func TestCreateInvalidKindPanics(t *testing.T) {
	w := newTestWorld(floorMap(10, 8, 5))
	defer func() {
		if recover() == nil {
			t.Fatal("Create with KindInvalid should panic")
		}
	}()
	w.Create(0, 0, component.KindInvalid)
}

func TestDestroy(t *testing.T) {
	w := newTestWorld(floorMap(10, 8, 5))
	h := w.Create(1, 4, component.KindCaptain)
	if !w.Destroy(h) {
		t.Fatal("Destroy should report true for a live entity")
	}
	if w.Entity(h) != nil || w.Len() != 0 {
		t.Fatal("entity still present after Destroy")
	}
	if _, p := w.Player(); p != nil {
		t.Fatal("destroyed captain still reported as player")
	}
}

func TestDestroyPlayerPromotesNextCaptain(t *testing.T) {
	w := newTestWorld(floorMap(10, 8, 5))
	first := w.Create(1, 4, component.KindCaptain)
	w.Create(3, 4, component.KindCrabby)
	second := w.Create(6, 4, component.KindCaptain)

	if h, _ := w.Player(); h != first {
		t.Fatalf("player = %v; want the first captain %v", h, first)
	}
	w.Destroy(first)
	h, p := w.Player()
	if h != second || p == nil || p.Kind != component.KindCaptain {
		t.Fatalf("player = %v; want the remaining captain %v", h, second)
	}
	w.Destroy(second)
	if _, p := w.Player(); p != nil {
		t.Fatal("no captain left, Player should be nil")
	}
}

func TestIntegrateZeroVelocity(t *testing.T) {
	e := Entity{Pos: geom.V2{X: 2.5, Y: 7}}
	for i := 0; i < 500; i++ {
		integrate(&e, frame)
	}
	if e.Pos != (geom.V2{X: 2.5, Y: 7}) {
		t.Fatalf("pos drifted to %v", e.Pos)
	}
}

func TestIntegrateConstantVelocity(t *testing.T) {
	cases := []struct {
		name string
		vel  geom.V2
		dt   float64
	}{
		{"single step", geom.V2{X: 3, Y: -1}, 0.25},
		{"negative", geom.V2{X: -4, Y: 2}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Entity{Pos: geom.V2{X: 1, Y: 1}, Vel: tc.vel}
			integrate(&e, tc.dt)
			want := geom.V2{X: 1 + tc.vel.X*tc.dt, Y: 1 + tc.vel.Y*tc.dt}
			if !near(e.Pos.X, want.X) || !near(e.Pos.Y, want.Y) {
				t.Errorf("pos = %v; want %v", e.Pos, want)
			}
		})
	}

	e := Entity{Vel: geom.V2{X: 1.5, Y: -0.5}}
	for i := 0; i < 10; i++ {
		integrate(&e, 0.1)
	}
	if !near(e.Pos.X, 1.5) || !near(e.Pos.Y, -0.5) {
		t.Errorf("after 10 steps pos = %v; want {1.5 -0.5}", e.Pos)
	}
}

func TestUpdateTicksAnimation(t *testing.T) {
	w := newTestWorld(floorMap(20, 8, 5))
	e := w.Entity(w.Create(3, 4, component.KindCaptain))
	d := anim.Get(anim.CaptainIdle)
	w.Update(d.Interval, nil)
	if e.Anim.Frame() != d.First+1 {
		t.Fatalf("frame = %d; want %d", e.Anim.Frame(), d.First+1)
	}
}
