package mailroutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressions(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"match recipient", MatchRecipient(".*@example.com"), `match_recipient(".*@example.com")`},
		{"match recipient keeps regex escapes", MatchRecipient(`support@example\.com`), `match_recipient("support@example\.com")`},
		{"match recipient anchors", MatchRecipient(`^chris\+(.*)@example\.com$`), `match_recipient("^chris\+(.*)@example\.com$")`},
		{"match header keeps regex escapes", MatchHeader("subject", `\[urgent\]`), `match_header("subject", "\[urgent\]")`},
		{"match header", MatchHeader("subject", ".*support"), `match_header("subject", ".*support")`},
		{"catch all", CatchAll(), "catch_all()"},
		{"forward", Forward("a@b.com"), `forward("a@b.com")`},
		{"forward url", Forward("https://example.com/messages"), `forward("https://example.com/messages")`},
		{"store", Store(""), "store()"},
		{"store notify", Store("https://example.com/hook"), `store(notify="https://example.com/hook")`},
		{"stop", Stop(), "stop()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
