// Package report renders a comparison batch as a standalone HTML page.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/result"
)

// Document is the content of a report.
type Document struct {
	Title   string
	RunID   string
	Palette *Palette
	Rows    []Row
}

// Row is one comparison row of a report.
type Row struct {
	Index    int
	Source   string
	Target   string
	Err      error
	Warnings []string
	Records  []model.DiffRecord

	// Artifacts may be nil when the row failed before producing any.
	Artifacts *result.Container
}

// Render writes doc as HTML to w.
func Render(w io.Writer, doc Document) error {
	palette := DefaultPalette()
	if doc.Palette != nil {
		palette = *doc.Palette
	}

	title := doc.Title
	if title == "" {
		title = "Comparison report"
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element("html")
	head := element("head")
	head.AppendChild(element("meta", attr("charset", "utf-8")))
	head.AppendChild(withText(element("title"), title))
	htmlEl.AppendChild(head)

	body := element("body")
	body.AppendChild(withText(element("h1"), title))
	if doc.RunID != "" {
		body.AppendChild(withText(element("p", attr("class", "run")), "Run "+doc.RunID))
	}

	var script strings.Builder
	script.WriteString("var artifacts = {};\nvar content = {};\n")
	for _, row := range doc.Rows {
		body.AppendChild(renderRow(row, palette))
		if row.Artifacts != nil {
			fmt.Fprintf(&script, "artifacts[%d] = [%s];\n", row.Index+1, result.Literals(row.Artifacts.AlignmentRows()))
			fmt.Fprintf(&script, "content[%d] = [%s];\n", row.Index+1, result.Literals(row.Artifacts.ContentRows()))
		}
	}
	body.AppendChild(withText(element("script"), script.String()))

	htmlEl.AppendChild(body)
	root.AppendChild(htmlEl)

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	return nil
}

func renderRow(row Row, palette Palette) *html.Node {
	section := element("section", attr("id", fmt.Sprintf("item_%d", row.Index+1)))
	section.AppendChild(withText(element("h2"), fmt.Sprintf("%d. %s vs %s", row.Index+1, row.Source, row.Target)))

	if row.Err != nil {
		section.AppendChild(withText(element("p", attr("class", "error")), row.Err.Error()))
	}
	for _, w := range row.Warnings {
		section.AppendChild(withText(element("p", attr("class", "warning")), w))
	}

	if len(row.Records) > 0 {
		section.AppendChild(recordTable(row.Records, palette))
	} else if row.Err == nil {
		section.AppendChild(withText(element("p", attr("class", "same")), "No differences"))
	}

	if row.Artifacts != nil {
		appendLinks(section, "images", "Page %d: ", row.Artifacts.AlignmentRows())
		appendLinks(section, "content", "Page %d marked: ", row.Artifacts.ContentRows())
	}
	return section
}

// appendLinks adds one paragraph of links per set slot.
func appendLinks(section *html.Node, class, label string, slots []result.Slot) {
	for i, slot := range slots {
		if !slot.Set {
			continue
		}
		p := element("p", attr("class", class))
		p.AppendChild(withText(element("span"), fmt.Sprintf(label, i+1)))
		for _, path := range slot.Paths {
			p.AppendChild(withText(element("a", attr("href", path.Rel)), path.Rel))
			p.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
		}
		section.AppendChild(p)
	}
}

func recordTable(records []model.DiffRecord, palette Palette) *html.Node {
	table := element("table")
	header := element("tr")
	for _, h := range []string{"Side", "Line", "Position", "Word", "Change", "Detail"} {
		header.AppendChild(withText(element("th"), h))
	}
	table.AppendChild(header)

	for _, r := range records {
		tr := element("tr", attr("style", "color: "+palette.ColorOf(r.Ops)))
		tr.AppendChild(withText(element("td"), r.Side.String()))
		tr.AppendChild(withText(element("td"), fmt.Sprint(r.Token.Line)))
		tr.AppendChild(withText(element("td"), position(r.Token.Bounds())))
		tr.AppendChild(withText(element("td"), r.Token.Text))
		tr.AppendChild(withText(element("td"), r.Ops.String()))
		tr.AppendChild(withText(element("td"), r.Annotation))
		table.AppendChild(tr)
	}
	return table
}

// position formats the top-left corner of a word's box.
func position(b model.BBox) string {
	if b.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%.0f, %.0f", b.Left(), b.Top())
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return n
}
