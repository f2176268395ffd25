package damage

import (
	"fmt"
	"strings"
	"time"

	"fleetrent-be/internal/entity"
)

// NormalizePoint converts a diagram-originated point into the canonical
// damage taxonomy. The diagram scale uses "severe" where the manual
// taxonomy uses "major"; everything else maps one to one.
func NormalizePoint(p entity.DamagePoint) entity.Damage {
	severity := entity.DamageSeverity(p.Severity)
	if p.Severity == entity.PointSeveritySevere {
		severity = entity.DamageSeverityMajor
	}

	damageType := p.Type
	if damageType == "" {
		damageType = "diagram"
	}

	return entity.Damage{
		Type:        damageType,
		Description: p.Description,
		Severity:    severity,
		Position:    &entity.DamagePosition{X: p.X, Y: p.Y},
	}
}

// Merge flattens both input modalities into one canonical damage list.
// Diagram points come first, then manual entries; relative order within
// each source is preserved. Identical descriptions from both sources are
// kept as separate observations, never deduplicated.
func Merge(points []entity.DamagePoint, manual []entity.Damage) []entity.Damage {
	merged := make([]entity.Damage, 0, len(points)+len(manual))
	for _, p := range points {
		merged = append(merged, NormalizePoint(p))
	}
	merged = append(merged, manual...)
	return merged
}

// section headers, severe bucket first
var buckets = []struct {
	severity entity.DamageSeverity
	header   string
}{
	{entity.DamageSeverityMajor, "🔴 أضرار جسيمة / Severe Damage"},
	{entity.DamageSeverityModerate, "🟡 أضرار متوسطة / Moderate Damage"},
	{entity.DamageSeverityMinor, "🟢 أضرار بسيطة / Minor Damage"},
}

// SynthesizeNotes builds the bilingual damage report persisted in the
// return record's notes field. An empty result signals that no automatic
// notes exist and user-entered free text should be kept as is.
func SynthesizeNotes(points []entity.DamagePoint, manual []entity.Damage) string {
	if len(points) == 0 && len(manual) == 0 {
		return ""
	}

	merged := Merge(points, manual)

	var b strings.Builder
	b.WriteString("تقرير الأضرار / Damage Report\n")
	b.WriteString("==============================\n")

	counts := map[entity.DamageSeverity]int{}
	for _, bucket := range buckets {
		var lines []string
		for _, d := range merged {
			if d.Severity != bucket.severity {
				continue
			}
			lines = append(lines, formatLine(d))
			counts[bucket.severity]++
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString("\n" + bucket.header + ":\n")
		for _, line := range lines {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nإجمالي الأضرار / Total Damages: %d\n", len(merged)))
	b.WriteString(fmt.Sprintf("(جسيمة: %d، متوسطة: %d، بسيطة: %d)\n",
		counts[entity.DamageSeverityMajor],
		counts[entity.DamageSeverityModerate],
		counts[entity.DamageSeverityMinor],
	))
	b.WriteString(fmt.Sprintf("التاريخ / Date: %s\n", time.Now().Format("2006-01-02")))

	return b.String()
}

func formatLine(d entity.Damage) string {
	line := fmt.Sprintf("- [%s] %s", d.Type, d.Description)
	if d.Position != nil {
		line += fmt.Sprintf(" (الموقع / position: %.0f%%, %.0f%%)", d.Position.X, d.Position.Y)
	}
	if d.CostEstimate != nil {
		line += fmt.Sprintf(" (التكلفة التقديرية / est. cost: %.2f)", *d.CostEstimate)
	}
	return line
}
