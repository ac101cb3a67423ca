package trace

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func buildTrace() *Trace {
	// 53 -> 65 (served 0) -> 199 (synthetic) -> 14 (served 1)
	t := New(53)
	t.Record(65, 12, intPtr(0))
	t.Record(199, 134, nil)
	t.Record(14, 185, intPtr(1))
	return t
}

func TestTrace_RecordAccumulates(t *testing.T) {
	tr := buildTrace()

	if tr.Len() != 4 {
		t.Fatalf("Len = %d, want 4", tr.Len())
	}
	if tr.TotalSeek() != 12+134+185 {
		t.Errorf("TotalSeek = %d, want %d", tr.TotalSeek(), 12+134+185)
	}

	wantSeq := []int{53, 65, 199, 14}
	for i, head := range tr.Sequence() {
		if head != wantSeq[i] {
			t.Errorf("Sequence[%d] = %d, want %d", i, head, wantSeq[i])
		}
	}

	for i, s := range tr.Steps {
		if s.Step != i {
			t.Errorf("step %d has index %d", i, s.Step)
		}
	}
}

func TestTrace_ServedCountAndSynthetic(t *testing.T) {
	tr := buildTrace()

	if tr.ServedCount() != 2 {
		t.Errorf("ServedCount = %d, want 2", tr.ServedCount())
	}
	if tr.Steps[0].Synthetic() {
		t.Error("initial step must not count as synthetic")
	}
	if !tr.Steps[2].Synthetic() {
		t.Error("nil-served movement step must be synthetic")
	}
	if tr.Steps[1].Synthetic() {
		t.Error("served step must not be synthetic")
	}
}

func TestTrace_InitialOnly(t *testing.T) {
	tr := New(50)
	if tr.Len() != 1 || tr.TotalSeek() != 0 || tr.ServedCount() != 0 {
		t.Errorf("fresh trace: Len %d TotalSeek %d ServedCount %d", tr.Len(), tr.TotalSeek(), tr.ServedCount())
	}
}
