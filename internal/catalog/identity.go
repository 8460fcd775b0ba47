package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// nameSpaceEntityName scopes IDs derived from names for entities without a URL.
var nameSpaceEntityName = uuid.NewSHA1(uuid.NameSpaceURL, []byte("swapi-browser:entity-name"))

// DeriveID returns a durable identifier for e, derived from its canonical locator.
// The same locator always yields the same ID, across refreshes and reorderings.
func DeriveID(e Entity) uuid.UUID {
	if locator := CanonicalLocator(e.URL); locator != "" {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(locator))
	}
	return uuid.NewSHA1(nameSpaceEntityName, []byte(strings.ToLower(strings.TrimSpace(e.Name))))
}

// CanonicalLocator normalises a resource URL so trivially different spellings
// (scheme case, missing trailing slash) map to the same identity.
func CanonicalLocator(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if i := strings.Index(raw, "://"); i > 0 {
		raw = strings.ToLower(raw[:i]) + raw[i:]
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw
}
