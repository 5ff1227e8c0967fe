package templates

import (
	"strconv"
	"strings"
)

// typeParams renders "T0, T1, ..., Tn-1".
func typeParams(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('T')
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}
