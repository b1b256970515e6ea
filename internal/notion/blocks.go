package notion

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/atomicstack/faultnote/internal/state"
)

// Block is a Notion block object as sent to the children endpoint.
type Block struct {
	Object    string       `json:"object"`
	Type      string       `json:"type"`
	Heading3  *HeadingBody `json:"heading_3,omitempty"`
	Paragraph *TextBody    `json:"paragraph,omitempty"`
	Code      *CodeBody    `json:"code,omitempty"`
}

type HeadingBody struct {
	RichText     []RichText `json:"rich_text"`
	Color        string     `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable"`
	Children     []Block    `json:"children,omitempty"`
}

type TextBody struct {
	RichText []RichText `json:"rich_text"`
}

type CodeBody struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

type RichText struct {
	Type        string       `json:"type"`
	Text        TextContent  `json:"text"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type Annotations struct {
	Bold  bool   `json:"bold,omitempty"`
	Color string `json:"color,omitempty"`
}

const (
	entryHeading  = "📋 Error Log Entry"
	errorLabel    = "🔴 Error: "
	problemLabel  = "🟡 Problem: "
	solutionLabel = "🟢 Solution: "
	plainLanguage = "plain text"

	// maxTextRunes is the Notion limit for one rich text content string.
	maxTextRunes = 2000
)

func text(content string, ann *Annotations) RichText {
	return RichText{Type: "text", Text: TextContent{Content: content}, Annotations: ann}
}

// runs splits content into plain rich text items of at most maxTextRunes
// runes each. Empty content yields one empty item.
func runs(content string) []RichText {
	r := []rune(content)
	if len(r) <= maxTextRunes {
		return []RichText{text(content, nil)}
	}
	out := make([]RichText, 0, len(r)/maxTextRunes+1)
	for len(r) > 0 {
		n := min(len(r), maxTextRunes)
		out = append(out, text(string(r[:n]), nil))
		r = r[n:]
	}
	return out
}

func labelled(label, color, body string) Block {
	rich := []RichText{text(label, &Annotations{Bold: true, Color: color})}
	return Block{
		Object:    "block",
		Type:      "paragraph",
		Paragraph: &TextBody{RichText: append(rich, runs(body)...)},
	}
}

// EntryBlocks renders an entry as a single toggleable heading holding the
// labelled fields and, when present, a code block in language.
func EntryBlocks(entry state.Entry, language string) []Block {
	children := []Block{
		labelled(errorLabel, "red", entry.Error),
		labelled(problemLabel, "yellow", entry.Problem),
		labelled(solutionLabel, "green", entry.Solution),
	}
	if entry.Code != nil && strings.TrimSpace(*entry.Code) != "" {
		if strings.TrimSpace(language) == "" {
			language = plainLanguage
		}
		children = append(children, Block{
			Object: "block",
			Type:   "code",
			Code: &CodeBody{
				RichText: runs(*entry.Code),
				Language: language,
			},
		})
	}
	return []Block{{
		Object: "block",
		Type:   "heading_3",
		Heading3: &HeadingBody{
			RichText:     []RichText{text(entryHeading, nil)},
			Color:        "red",
			IsToggleable: true,
			Children:     children,
		},
	}}
}

type appendRequest struct {
	Children []Block `json:"children"`
}

// AppendEntry appends entry to the page identified by targetID.
func (c *Client) AppendEntry(ctx context.Context, targetID string, entry state.Entry) error {
	path := "/v1/blocks/" + url.PathEscape(targetID) + "/children"
	req := appendRequest{Children: EntryBlocks(entry, c.language)}
	return c.do(ctx, "append entry", http.MethodPatch, path, req, nil)
}
