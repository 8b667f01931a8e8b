package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/result"
)

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestPalette_CoversEveryOp(t *testing.T) {
	p := DefaultPalette()
	seen := map[string]model.Op{}
	for _, op := range []model.Op{
		model.OpEqual, model.OpDeleted, model.OpAdded,
		model.OpFontChanged, model.OpSizeChanged, model.OpStyleChanged,
	} {
		c := p.Color(op)
		if c == "" {
			t.Errorf("no colour for %v", op)
		}
		if prev, ok := seen[c]; ok {
			t.Errorf("%v and %v share colour %s", prev, op, c)
		}
		seen[c] = op
	}
}

func TestPalette_ColorOf(t *testing.T) {
	p := DefaultPalette()
	if got := p.ColorOf(0); got != p.Equal {
		t.Errorf("empty set = %s, want Equal colour", got)
	}
	if got := p.ColorOf(model.NewOpSet(model.OpAdded)); got != p.Added {
		t.Errorf("Added = %s, want %s", got, p.Added)
	}
}

func TestRender(t *testing.T) {
	c := result.NewContainer("/out")
	c.AddAlignmentRow(0, []string{"/out/item_1/alignment/page_1/img1.png", "/out/item_1/alignment/page_1/img2.png", "/out/item_1/alignment/page_1/diff.png"})

	custom := DefaultPalette()
	custom.Deleted = "#abcdef"

	doc := Document{
		Title:   "Batch",
		RunID:   "run-1",
		Palette: &custom,
		Rows: []Row{
			{
				Index:  0,
				Source: "a.pdf",
				Target: "b.pdf",
				Records: []model.DiffRecord{
					{Token: model.WordToken{Text: "World", Line: 1}, Side: model.Source, Ops: model.NewOpSet(model.OpDeleted)},
					{Token: model.WordToken{Text: "Word", Line: 1}, Side: model.Target, Ops: model.NewOpSet(model.OpAdded)},
				},
				Artifacts: c,
			},
			{Index: 1, Source: "c.pdf", Target: "d.pdf", Err: errors.New("page count mismatch")},
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		t.Fatalf("Render: %v", err)
	}

	parsed, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	sections := findAll(parsed, "section")
	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}

	rows := findAll(sections[0], "tr")
	if len(rows) != 3 {
		t.Fatalf("table rows = %d, want header + 2", len(rows))
	}
	if style := rows[1].Attr[0].Val; !strings.Contains(style, "#abcdef") {
		t.Errorf("deleted row style = %q, want custom colour", style)
	}

	links := findAll(sections[0], "a")
	if len(links) != 3 || links[2].Attr[0].Val != "item_1/alignment/page_1/diff.png" {
		t.Errorf("links = %d, want 3 relative links", len(links))
	}

	if got := textOf(sections[1]); !strings.Contains(got, "page count mismatch") {
		t.Errorf("failed row text = %q, want the error", got)
	}

	scripts := findAll(parsed, "script")
	if len(scripts) != 1 {
		t.Fatalf("scripts = %d, want 1", len(scripts))
	}
	want := `artifacts[1] = ["item_1/alignment/page_1/img1.png","item_1/alignment/page_1/img2.png","item_1/alignment/page_1/diff.png"];`
	if got := textOf(scripts[0]); !strings.Contains(got, want) {
		t.Errorf("script = %q, want it to contain %q", got, want)
	}
}

func TestRender_ContentImages(t *testing.T) {
	c := result.NewContainer("/out")
	c.AddAlignmentRow(0, []string{"/out/item_1/alignment/page_1/img1.png", "/out/item_1/alignment/page_1/img2.png", "/out/item_1/alignment/page_1/diff.png"})
	c.AddContentRow(1, []string{"/out/item_1/content/page_2/img1.png", "/out/item_1/content/page_2/img2.png"})

	var buf bytes.Buffer
	if err := Render(&buf, Document{Rows: []Row{{Source: "a.pdf", Target: "b.pdf", Artifacts: c}}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	parsed, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	var content []*html.Node
	for _, p := range findAll(parsed, "p") {
		if len(p.Attr) > 0 && p.Attr[0].Val == "content" {
			content = append(content, p)
		}
	}
	if len(content) != 1 {
		t.Fatalf("content paragraphs = %d, want 1 for the one set slot", len(content))
	}
	links := findAll(content[0], "a")
	if len(links) != 2 || links[0].Attr[0].Val != "item_1/content/page_2/img1.png" {
		t.Errorf("content links = %d, want 2 relative links", len(links))
	}
	if got := textOf(content[0]); !strings.HasPrefix(got, "Page 2 marked: ") {
		t.Errorf("label = %q", got)
	}

	script := textOf(findAll(parsed, "script")[0])
	want := `content[1] = ["item_1/content/page_2/img1.png","item_1/content/page_2/img2.png"];`
	if !strings.Contains(script, want) {
		t.Errorf("script = %q, want it to contain %q", script, want)
	}
}

func TestRender_ScriptCannotBeClosedByPaths(t *testing.T) {
	c := result.NewContainer("/out")
	c.AddAlignmentRow(0, []string{"/out/</script><b>x</b>.png"})

	var buf bytes.Buffer
	if err := Render(&buf, Document{Rows: []Row{{Source: "a", Target: "b", Artifacts: c}}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n := strings.Count(buf.String(), "</script"); n != 1 {
		t.Errorf("found %d closing script tags, want 1", n)
	}
}

func TestRender_NoDifferences(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Document{Rows: []Row{{Source: "a", Target: "b"}}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No differences") {
		t.Error("expected a no-differences note")
	}
	if !strings.Contains(out, "<title>Comparison report</title>") {
		t.Error("expected the default title")
	}
}
