package geom

import "testing"

func TestV2Arithmetic(t *testing.T) {
	a := V2{1, 2}
	b := V2{0.5, -4}
	if got := a.Add(b); got != (V2{1.5, -2}) {
		t.Errorf("Add = %v; want {1.5 -2}", got)
	}
	if got := a.Sub(b); got != (V2{0.5, 6}) {
		t.Errorf("Sub = %v; want {0.5 6}", got)
	}
	if got := a.Scale(3); got != (V2{3, 6}) {
		t.Errorf("Scale = %v; want {3 6}", got)
	}
}

func TestBoxTranslate(t *testing.T) {
	mask := Box{TL: V2{0.5, 0}, BR: V2{1.5, 1}}
	abs := mask.Translate(V2{10, 4})
	if abs.TL != (V2{10.5, 4}) || abs.BR != (V2{11.5, 5}) {
		t.Fatalf("Translate = %+v; want TL={10.5 4} BR={11.5 5}", abs)
	}
	if s := abs.Size(); s != (V2{1, 1}) {
		t.Errorf("Size = %v; want {1 1}", s)
	}
}

func TestV2iToV2(t *testing.T) {
	if got := (V2i{3, -2}).V2(); got != (V2{3, -2}) {
		t.Errorf("V2() = %v; want {3 -2}", got)
	}
}
