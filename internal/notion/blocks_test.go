package notion

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/atomicstack/faultnote/internal/state"
)

func TestEntryBlocksWithoutCode(t *testing.T) {
	blocks := EntryBlocks(state.Entry{Error: "NPE", Problem: "null user", Solution: "guard"}, "go")
	if len(blocks) != 1 || blocks[0].Type != "heading_3" {
		t.Fatalf("expected a single heading, got %#v", blocks)
	}
	heading := blocks[0].Heading3
	if heading.RichText[0].Text.Content != entryHeading || heading.Color != "red" {
		t.Fatalf("unexpected heading %#v", heading)
	}
	if len(heading.Children) != 3 {
		t.Fatalf("expected 3 paragraphs without code, got %d", len(heading.Children))
	}
	wantLabels := []struct{ label, color, body string }{
		{errorLabel, "red", "NPE"},
		{problemLabel, "yellow", "null user"},
		{solutionLabel, "green", "guard"},
	}
	for i, want := range wantLabels {
		p := heading.Children[i].Paragraph
		if p == nil || len(p.RichText) != 2 {
			t.Fatalf("child %d: unexpected paragraph %#v", i, heading.Children[i])
		}
		label := p.RichText[0]
		if label.Text.Content != want.label || !label.Annotations.Bold || label.Annotations.Color != want.color {
			t.Fatalf("child %d: unexpected label %#v", i, label)
		}
		if p.RichText[1].Text.Content != want.body {
			t.Fatalf("child %d: expected body %q, got %q", i, want.body, p.RichText[1].Text.Content)
		}
	}
}

func TestEntryBlocksCodeLanguage(t *testing.T) {
	code := "fn main() {}"
	entry := state.Entry{Error: "E", Problem: "P", Solution: "S", Code: &code}

	blocks := EntryBlocks(entry, "rust")
	last := blocks[0].Heading3.Children[3]
	if last.Type != "code" || last.Code.Language != "rust" || last.Code.RichText[0].Text.Content != code {
		t.Fatalf("unexpected code block %#v", last)
	}

	blocks = EntryBlocks(entry, " ")
	if got := blocks[0].Heading3.Children[3].Code.Language; got != plainLanguage {
		t.Fatalf("expected %q fallback, got %q", plainLanguage, got)
	}

	blank := "  "
	entry.Code = &blank
	if got := len(EntryBlocks(entry, "rust")[0].Heading3.Children); got != 3 {
		t.Fatalf("expected blank code to be omitted, got %d children", got)
	}
}

func TestEntryBlocksSplitsLongText(t *testing.T) {
	code := strings.Repeat("x", 2500)
	long := strings.Repeat("é", 2500)
	blocks := EntryBlocks(state.Entry{Error: long, Problem: "P", Solution: "S", Code: &code}, "go")
	children := blocks[0].Heading3.Children

	check := func(name string, rich []RichText, want string) {
		t.Helper()
		var joined strings.Builder
		for i, rt := range rich {
			if n := utf8.RuneCountInString(rt.Text.Content); n > maxTextRunes {
				t.Fatalf("%s run %d is %d runes, limit %d", name, i, n, maxTextRunes)
			}
			joined.WriteString(rt.Text.Content)
		}
		if joined.String() != want {
			t.Fatalf("%s content not preserved across runs", name)
		}
	}

	errRich := children[0].Paragraph.RichText
	if len(errRich) != 3 {
		t.Fatalf("expected label plus two runs, got %d items", len(errRich))
	}
	if errRich[0].Text.Content != errorLabel {
		t.Fatalf("expected label first, got %q", errRich[0].Text.Content)
	}
	check("error", errRich[1:], long)

	codeRich := children[3].Code.RichText
	if len(codeRich) != 2 {
		t.Fatalf("expected two code runs, got %d", len(codeRich))
	}
	check("code", codeRich, code)

	if got := len(children[1].Paragraph.RichText); got != 2 {
		t.Fatalf("expected short field to stay a single run, got %d items", got)
	}
}
