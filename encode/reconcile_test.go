package encode

import (
	"reflect"
	"testing"

	"github.com/vegasq/onehotsql/frame"
)

func TestReconcile(t *testing.T) {
	// catalog expects {A, B, C}; dataset has {A, C, D}
	cat := &Catalog{
		Numeric:     []string{"A"},
		Categorical: []string{"B", "C"},
		Levels: map[string][]string{
			"B": {"x"},
			"C": {"y", "z"},
		},
	}
	f := mustFrame(t,
		frame.NumericColumn("A", []float64{1, 2}),
		frame.StringColumn("C", []string{"y", "z"}, nil),
		frame.StringColumn("D", []string{"drop", "me"}, nil),
	)

	out, missing := Reconcile(f, cat)

	if !reflect.DeepEqual(missing, []string{"B"}) {
		t.Errorf("missing = %v, want [B]", missing)
	}
	if !reflect.DeepEqual(out.Names(), []string{"A", "B", "C"}) {
		t.Errorf("Names() = %v, want [A B C]", out.Names())
	}
	if out.Has("D") {
		t.Error("extra column D should have been dropped")
	}

	b := out.Column("B")
	for i := 0; i < out.Len(); i++ {
		if !b.IsMissing(i) {
			t.Errorf("added column B should be all-missing, row %d is not", i)
		}
	}

	// survivors are copied, not aliased
	out.Column("A").Floats[0] = 99
	if f.Column("A").Floats[0] != 1 {
		t.Error("Reconcile aliased the input frame's storage")
	}
}

func TestReconcile_AddedNumericIsNumericKind(t *testing.T) {
	cat := &Catalog{
		Numeric:     []string{"price"},
		Categorical: []string{"cut"},
		Levels:      map[string][]string{"cut": {"Fair"}},
	}
	f := mustFrame(t, frame.StringColumn("cut", []string{"Fair"}, nil))

	out, missing := Reconcile(f, cat)
	if !reflect.DeepEqual(missing, []string{"price"}) {
		t.Fatalf("missing = %v", missing)
	}
	if got := out.Column("price").Kind; got != frame.Numeric {
		t.Errorf("added numeric column has kind %v", got)
	}
}

func TestReconcile_NoDrift(t *testing.T) {
	cat := &Catalog{
		Categorical: []string{"cut"},
		Levels:      map[string][]string{"cut": {"Fair"}},
	}
	f := mustFrame(t, frame.StringColumn("cut", []string{"Fair"}, nil))

	_, missing := Reconcile(f, cat)
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}
