package ntfy

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ValidMethod reports whether m names a supported publish method.
// The ntfy protocol publishes over POST; GET is accepted for polling.
func ValidMethod(m string) bool {
	switch strings.ToUpper(strings.TrimSpace(m)) {
	case http.MethodGet, http.MethodPost:
		return true
	}
	return false
}

// TargetURL resolves the destination URL for a publish.
//
// An override URL without a path component gets "/topic" appended; one with
// a path is used verbatim. With no override the target is baseURL/topic,
// with trailing slashes normalized.
func TargetURL(baseURL, topic, override string) (string, error) {
	if override != "" {
		u, err := url.Parse(override)
		if err != nil {
			return "", fmt.Errorf("invalid URL %q: %w", override, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return "", fmt.Errorf("invalid URL %q: missing scheme or host", override)
		}
		if u.Path == "" || u.Path == "/" {
			return strings.TrimRight(override, "/") + "/" + topic, nil
		}
		return override, nil
	}
	return strings.TrimRight(baseURL, "/") + "/" + topic, nil
}
