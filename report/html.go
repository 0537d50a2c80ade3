package report

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/policyocr/entry"
	"github.com/tsawler/policyocr/policy"
)

// writeHTML renders a standalone page with one table row per entry. Each row
// carries a class named after its status so reviewers can style or filter
// ILL and ERR rows.
func (rw *Writer) writeHTML(entries []entry.Entry, w io.Writer) error {
	title := rw.config.Title
	if title == "" {
		title = DefaultConfig().Title
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	head.AppendChild(withText(element(atom.Title), title))
	root.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), title))
	body.AppendChild(withText(element(atom.P), entry.Summarize(entries).String()))

	table := element(atom.Table)
	headerRow := element(atom.Tr)
	for _, h := range []string{"Line", "Number", "Status"} {
		headerRow.AppendChild(withText(element(atom.Th), h))
	}
	thead := element(atom.Thead)
	thead.AppendChild(headerRow)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, e := range entries {
		tr := element(atom.Tr)
		tr.Attr = []html.Attribute{{Key: "class", Val: statusClass(e.Status)}}
		tr.AppendChild(withText(element(atom.Td), strconv.Itoa(e.Line)))
		tr.AppendChild(withText(element(atom.Td), e.Number))
		tr.AppendChild(withText(element(atom.Td), e.Status.String()))
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	body.AppendChild(table)
	root.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func statusClass(s policy.Status) string {
	switch s {
	case policy.OK:
		return "ok"
	case policy.ILL:
		return "ill"
	case policy.ERR:
		return "err"
	default:
		return "unknown"
	}
}
