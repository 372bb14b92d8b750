package mailroutes

import "fmt"

// Filter expressions. Patterns are Python-style regular expressions
// evaluated by Mailgun. Arguments are placed between double quotes as
// written, so a regex escape such as `\.` reaches Mailgun unchanged.
// Arguments must not contain a double quote; none of these helpers
// validate their input.

// MatchRecipient matches messages whose recipient matches pattern.
func MatchRecipient(pattern string) string {
	return "match_recipient(" + quote(pattern) + ")"
}

// MatchHeader matches messages whose header value matches pattern.
func MatchHeader(header, pattern string) string {
	return fmt.Sprintf("match_header(%s, %s)", quote(header), quote(pattern))
}

// CatchAll matches every message not matched by a higher-priority route.
func CatchAll() string {
	return "catch_all()"
}

// Actions.

// Forward forwards the message to an address or URL.
func Forward(destination string) string {
	return "forward(" + quote(destination) + ")"
}

// Store stores the message, optionally notifying notifyURL.
func Store(notifyURL string) string {
	if notifyURL == "" {
		return "store()"
	}
	return "store(notify=" + quote(notifyURL) + ")"
}

// Stop stops evaluation of lower-priority routes.
func Stop() string {
	return "stop()"
}

func quote(s string) string {
	return `"` + s + `"`
}
