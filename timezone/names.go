package timezone

import "fmt"

// OffsetNameResolver adapts a Resolver into datetime.ZoneResolver by
// formatting the resolved offset as a numeric "+HH:MM" fallback name --
// the UTS-35 fallback used whenever no localized metazone name table
// is loaded (spec.md §4.9's ERROR-tagged-fallback policy extends to
// zone names the same way it does to any other missing-data case).
type OffsetNameResolver struct {
	Resolver Resolver
}

// Resolve implements datetime.ZoneResolver.
func (r OffsetNameResolver) Resolve(zoneID string, hourTruncatedUnix int64) (string, bool) {
	offsets, err := r.Resolver.Resolve(zoneID, FromUnix(hourTruncatedUnix))
	if err != nil {
		return "", false
	}

	return formatOffset(offsets.StandardSeconds), true
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
