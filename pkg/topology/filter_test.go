package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLabelFilter(t *testing.T) {
	f := NewLabelFilter("OrderCreated")

	assert.Equal(t, "sbsr-ordercreated", f.Name)
	assert.Equal(t, "sys.Label='OrderCreated'", f.SQLExpression)
}

func TestNewFilterIntValue(t *testing.T) {
	f := NewFilter("HighPriority", "Priority", 5)

	assert.Equal(t, "sbsr-highpriority", f.Name)
	assert.Equal(t, "Priority=5", f.SQLExpression)
}

func TestNewFilterStringValue(t *testing.T) {
	f := NewFilter("ActiveStatus", "Status", "Active")

	assert.Equal(t, "sbsr-activestatus", f.Name)
	assert.Equal(t, "Status='Active'", f.SQLExpression)
}

func TestNewFilterNameNormalized(t *testing.T) {
	f := NewFilter("Loud NAME", "Key", 1)

	assert.Equal(t, "sbsr-loud-name", f.Name)
}
