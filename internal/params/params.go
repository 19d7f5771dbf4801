// Package params implements the static parameter-name translation,
// sanitizing and diagnostic validation applied to every hit before it is
// queued.
package params

import (
	"github.com/bft-labs/hitship/internal/hit"
	"github.com/bft-labs/hitship/pkg/log"
)

// Translate returns a new map with every key found in the translation
// table renamed to its wire-protocol key. Unknown keys pass through
// unchanged; no key is dropped.
func Translate(p hit.Hit) hit.Hit {
	out := make(hit.Hit, len(p))
	for k, v := range p {
		if wire, ok := translations[k]; ok {
			out[wire] = v
		} else {
			out[k] = v
		}
	}
	return out
}

// Sanitize removes every key whose value is empty, in place, and returns
// the same map. Structured inputs report unset optional fields as empty
// strings, so an empty value means "absent".
func Sanitize(p hit.Hit) hit.Hit {
	for k, v := range p {
		if v == "" {
			delete(p, k)
		}
	}
	return p
}

// Check warns about keys the collector does not recognize. It is a pure
// diagnostic: it never modifies the hit and never blocks enqueue.
func Check(p hit.Hit, logger log.Logger) {
	for k := range p {
		if _, ok := accepted[k]; ok {
			continue
		}
		if matchesCustomPattern(k) {
			continue
		}
		logger.Warn("unsupported parameter", log.String("param", k))
	}
}

func matchesCustomPattern(k string) bool {
	for _, re := range customPatterns {
		if re.MatchString(k) {
			return true
		}
	}
	return false
}
