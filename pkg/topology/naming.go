package topology

import "strings"

// Entity name prefixes. Every entity name stored in the model carries the
// prefix for its kind, so remote names are unambiguous about what they are.
const (
	PrefixResource     = "sb-"
	PrefixTopic        = "sbt-"
	PrefixQueue        = "sbq-"
	PrefixSubscription = "sbs-"
	PrefixRule         = "sbsr-"
)

// Normalize lowercases raw, replaces spaces with hyphens, trims surrounding
// whitespace, and prepends prefix unless raw already starts with it.
//
// The replace happens before the trim, so leading/trailing spaces become
// leading/trailing hyphens that survive the trim. That ordering is load
// bearing: existing deployments carry names produced this way, and renaming
// a remote entity is not possible, only create-plus-delete.
//
// Normalize is total over any string input and idempotent: feeding its own
// output back in returns the same name because the prefix check short
// circuits re-prefixing.
func Normalize(prefix, raw string) string {
	prefix = strings.ToLower(prefix)

	name := strings.ToLower(raw)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.TrimSpace(name)

	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}
