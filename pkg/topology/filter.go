package topology

import "fmt"

// LabelProperty is the broker metadata field tested by label filters.
const LabelProperty = "sys.Label"

// Filter is a named SQL rule expression evaluated by the broker against
// message metadata. A subscription only receives messages for which at
// least one of its filters evaluates to true.
//
// Filters are immutable value types. The model performs no validation of
// the expression; a malformed expression surfaces as a remote error when
// the rule is created.
type Filter struct {
	Name          string
	SQLExpression string
}

// NewLabelFilter builds a filter matching messages whose label equals the
// given value. The filter name is the normalized label.
func NewLabelFilter(label string) Filter {
	return Filter{
		Name:          Normalize(PrefixRule, label),
		SQLExpression: fmt.Sprintf("%s='%s'", LabelProperty, label),
	}
}

// NewFilter builds an equality filter against an arbitrary metadata key.
// String values are single-quoted in the expression; integer (and other
// non-string) values are embedded verbatim.
func NewFilter(name, key string, value any) Filter {
	var expr string
	switch v := value.(type) {
	case string:
		expr = fmt.Sprintf("%s='%s'", key, v)
	default:
		expr = fmt.Sprintf("%s=%v", key, v)
	}
	return Filter{
		Name:          Normalize(PrefixRule, name),
		SQLExpression: expr,
	}
}
