package broker

import "errors"

// Errors returned by the emulators. ErrNotFound backs get/update/delete of
// an absent entity; ErrExists backs create of a present one. Both mirror
// what a real control plane reports, so reconciler behavior against an
// emulator matches behavior against a namespace.
var (
	ErrNotFound = errors.New("entity not found")
	ErrExists   = errors.New("entity already exists")
)

// Composite keys for subscription- and rule-scoped entities. The slash is
// safe as a separator because normalized entity names never contain one.
func subKey(topic, sub string) string {
	return topic + "/" + sub
}

func ruleKey(topic, sub, rule string) string {
	return topic + "/" + sub + "/" + rule
}
