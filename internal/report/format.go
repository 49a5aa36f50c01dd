package report

import "fmt"

// FormatDuration renders minutes as "{H}h {M}m". Zero minutes are kept, so 0
// renders as "0h 0m".
func FormatDuration(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh %dm", sign, minutes/60, minutes%60)
}
