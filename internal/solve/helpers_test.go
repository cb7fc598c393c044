package solve

import (
	"testing"

	"github.com/witnessline/witnessline/pkg/minikanren"
)

func TestEncodeDecodeOffset_RoundTrip(t *testing.T) {
	for logical := 0; logical < 10; logical++ {
		if got := decodeOffset(encodeOffset(logical)); got != logical {
			t.Fatalf("decodeOffset(encodeOffset(%d)) = %d, want %d", logical, got, logical)
		}
	}
}

func TestBoolOf(t *testing.T) {
	if boolOf(boolFalse) {
		t.Fatalf("boolOf(boolFalse) = true, want false")
	}
	if !boolOf(boolTrue) {
		t.Fatalf("boolOf(boolTrue) = false, want true")
	}
}

func TestFixBool_PinsSingleValue(t *testing.T) {
	model := minikanren.NewModel()
	v := fixBool(model, true, "v")
	if !v.Domain().IsSingleton() || v.Domain().SingletonValue() != boolTrue {
		t.Fatalf("fixBool(true) domain = %v, want singleton boolTrue", v.Domain())
	}
}

func TestConstInUniverse_SharesMaxValueWithTarget(t *testing.T) {
	model := minikanren.NewModel()
	target := model.NewVariableWithName(minikanren.DomainRange(1, 50), "target")
	c := constInUniverse(model, 50, 7, "const")
	if c.Domain().MaxValue() != target.Domain().MaxValue() {
		t.Fatalf("constInUniverse MaxValue = %d, want %d", c.Domain().MaxValue(), target.Domain().MaxValue())
	}
	if !c.Domain().IsSingleton() || c.Domain().SingletonValue() != 7 {
		t.Fatalf("constInUniverse domain = %v, want singleton 7", c.Domain())
	}
}
