package damage

import (
	"strings"
	"testing"
	"time"

	"fleetrent-be/internal/entity"
)

func TestNormalizePoint(t *testing.T) {
	tests := []struct {
		name         string
		point        entity.DamagePoint
		wantSeverity entity.DamageSeverity
		wantType     string
	}{
		{
			name:         "severe maps to major",
			point:        entity.DamagePoint{X: 10, Y: 20, Type: "dent", Description: "front bumper", Severity: entity.PointSeveritySevere},
			wantSeverity: entity.DamageSeverityMajor,
			wantType:     "dent",
		},
		{
			name:         "moderate passes through",
			point:        entity.DamagePoint{Type: "scratch", Severity: entity.PointSeverityModerate},
			wantSeverity: entity.DamageSeverityModerate,
			wantType:     "scratch",
		},
		{
			name:         "minor passes through",
			point:        entity.DamagePoint{Type: "chip", Severity: entity.PointSeverityMinor},
			wantSeverity: entity.DamageSeverityMinor,
			wantType:     "chip",
		},
		{
			name:         "empty type defaults to diagram",
			point:        entity.DamagePoint{Severity: entity.PointSeverityMinor},
			wantSeverity: entity.DamageSeverityMinor,
			wantType:     "diagram",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePoint(tt.point)
			if got.Severity != tt.wantSeverity {
				t.Errorf("severity = %q, want %q", got.Severity, tt.wantSeverity)
			}
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Position == nil {
				t.Fatal("position should be carried over from the diagram point")
			}
			if got.Position.X != tt.point.X || got.Position.Y != tt.point.Y {
				t.Errorf("position = (%v,%v), want (%v,%v)", got.Position.X, got.Position.Y, tt.point.X, tt.point.Y)
			}
		})
	}
}

func TestMergePreservesDuplicates(t *testing.T) {
	points := []entity.DamagePoint{
		{Type: "scratch", Description: "rear door", Severity: entity.PointSeverityMinor},
	}
	manual := []entity.Damage{
		{Type: "scratch", Description: "rear door", Severity: entity.DamageSeverityMinor},
	}

	merged := Merge(points, manual)
	if len(merged) != 2 {
		t.Fatalf("merged length = %d, want 2 (no deduplication)", len(merged))
	}
}

func TestSynthesizeNotesEmpty(t *testing.T) {
	if got := SynthesizeNotes(nil, nil); got != "" {
		t.Errorf("notes for no damages = %q, want empty string", got)
	}
	if got := SynthesizeNotes([]entity.DamagePoint{}, []entity.Damage{}); got != "" {
		t.Errorf("notes for empty slices = %q, want empty string", got)
	}
}

func TestSynthesizeNotesSections(t *testing.T) {
	points := []entity.DamagePoint{
		{X: 50, Y: 10, Type: "dent", Description: "hood", Severity: entity.PointSeveritySevere},
		{X: 20, Y: 80, Type: "scratch", Description: "left door", Severity: entity.PointSeverityMinor},
	}
	manual := []entity.Damage{
		{Type: "crack", Description: "windshield", Severity: entity.DamageSeverityModerate},
	}

	notes := SynthesizeNotes(points, manual)

	for _, want := range []string{
		"🔴 أضرار جسيمة",
		"🟡 أضرار متوسطة",
		"🟢 أضرار بسيطة",
		"hood",
		"left door",
		"windshield",
		"إجمالي الأضرار / Total Damages: 3",
		time.Now().Format("2006-01-02"),
	} {
		if !strings.Contains(notes, want) {
			t.Errorf("notes missing %q\nnotes:\n%s", want, notes)
		}
	}

	// severe before moderate before minor
	severeIdx := strings.Index(notes, "🔴")
	moderateIdx := strings.Index(notes, "🟡")
	minorIdx := strings.Index(notes, "🟢")
	if !(severeIdx < moderateIdx && moderateIdx < minorIdx) {
		t.Errorf("sections out of order: severe=%d moderate=%d minor=%d", severeIdx, moderateIdx, minorIdx)
	}
}

func TestSynthesizeNotesOmitsEmptySections(t *testing.T) {
	manual := []entity.Damage{
		{Type: "scratch", Description: "trunk lid", Severity: entity.DamageSeverityMinor},
	}

	notes := SynthesizeNotes(nil, manual)

	if strings.Contains(notes, "🔴") || strings.Contains(notes, "🟡") {
		t.Errorf("notes should only contain the minor section:\n%s", notes)
	}
	if !strings.Contains(notes, "🟢 أضرار بسيطة") {
		t.Errorf("minor section header missing:\n%s", notes)
	}
	if !strings.Contains(notes, "(جسيمة: 0، متوسطة: 0، بسيطة: 1)") {
		t.Errorf("severity counts missing or wrong:\n%s", notes)
	}
}
