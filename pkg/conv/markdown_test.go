package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML_Bold(t *testing.T) {
	out := MarkdownToTelegramHTML([]byte("**launch** day"))
	if !strings.Contains(out, "<strong>launch</strong>") {
		t.Errorf("expected bold tag, got %q", out)
	}
}

func TestMarkdownToTelegramHTML_Code(t *testing.T) {
	out := MarkdownToTelegramHTML([]byte("use `#FF5733` everywhere"))
	if !strings.Contains(out, "<code>#FF5733</code>") {
		t.Errorf("expected code tag, got %q", out)
	}
}

func TestMarkdownToTelegramHTML_StripsUnsupportedTags(t *testing.T) {
	out := MarkdownToTelegramHTML([]byte("# Campaign\n\n- one\n- two"))
	for _, tag := range []string{"<h1>", "<ul>", "<li>"} {
		if strings.Contains(out, tag) {
			t.Errorf("expected %s to be stripped, got %q", tag, out)
		}
	}
	if !strings.Contains(out, "Campaign") {
		t.Errorf("text content lost: %q", out)
	}
}
