package topology

import (
	"strings"
	"testing"
)

// TestNormalize tests prefixing and lowercasing across entity kinds
func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		input  string
		want   string
	}{
		{
			name:   "plain name gets prefix",
			prefix: PrefixQueue,
			input:  "Orders",
			want:   "sbq-orders",
		},
		{
			name:   "already prefixed name is unchanged",
			prefix: PrefixQueue,
			input:  "sbq-orders",
			want:   "sbq-orders",
		},
		{
			name:   "uppercase prefixed name is lowercased not re-prefixed",
			prefix: PrefixQueue,
			input:  "SBQ-Orders",
			want:   "sbq-orders",
		},
		{
			name:   "interior spaces become hyphens",
			prefix: PrefixTopic,
			input:  "Order Created Events",
			want:   "sbt-order-created-events",
		},
		{
			name:   "empty name yields bare prefix",
			prefix: PrefixResource,
			input:  "",
			want:   "sb-",
		},
		{
			name:   "uppercase prefix argument is lowercased",
			prefix: "SBS-",
			input:  "Handler",
			want:   "sbs-handler",
		},
		{
			name:   "tabs are trimmed",
			prefix: PrefixQueue,
			input:  "\torders\t",
			want:   "sbq-orders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.prefix, tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.prefix, tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizePreservesEdgeHyphens pins the space handling order: spaces
// are replaced with hyphens before the trim, so surrounding spaces become
// surrounding hyphens instead of disappearing. Intentional, relied-upon
// behavior: do not "fix".
func TestNormalizePreservesEdgeHyphens(t *testing.T) {
	got := Normalize(PrefixQueue, " Orders ")
	want := "sbq--orders-"
	if got != want {
		t.Errorf("Normalize(%q, %q) = %q, want %q", PrefixQueue, " Orders ", got, want)
	}
}

// TestNormalizeIdempotent tests that re-normalizing an already normalized
// name is a no-op
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Orders", "Order Intake", " Edge ", "sbq-done", "", "MiXeD Case NAME"}

	for _, input := range inputs {
		once := Normalize(PrefixQueue, input)
		twice := Normalize(PrefixQueue, once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}

// TestNormalizeLowercases tests that output never contains uppercase letters
func TestNormalizeLowercases(t *testing.T) {
	inputs := []string{"ORDERS", "OrderCreated", "A B C", "SBT-LOUD"}

	for _, input := range inputs {
		got := Normalize(PrefixTopic, input)
		if got != strings.ToLower(got) {
			t.Errorf("Normalize(%q) = %q contains uppercase", input, got)
		}
	}
}
