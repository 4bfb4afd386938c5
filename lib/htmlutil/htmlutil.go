package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// FindScript returns the text of the first <script> element whose body
// contains marker, or "" when no script matches. Pages frequently embed
// their state as inline javascript assignments, which is the only place
// some of the data we scrape exists.
func FindScript(doc *goquery.Document, marker string) string {
	for _, script := range doc.Find("script").Nodes {
		text := GetText(script)
		if strings.Contains(text, marker) {
			return text
		}
	}
	return ""
}
