package evaluator

import (
	"fmt"
	"strconv"

	"github.com/stint-lang/stint/pkg/types"
)

// FormatValue renders a runtime value as the text Print emits. The unit
// value prints as the literal word "Unit"; everything else prints its
// payload's natural textual form.
func FormatValue(v any, typ types.Type) string {
	switch typ {
	case types.Unit:
		return "Unit"
	case types.Integer:
		return strconv.FormatInt(v.(int64), 10)
	case types.FloatingPoint:
		return strconv.FormatFloat(v.(float64), 'f', -1, 64)
	case types.String:
		return v.(string)
	case types.Boolean:
		return strconv.FormatBool(v.(bool))
	}
	return fmt.Sprintf("%v", v)
}
