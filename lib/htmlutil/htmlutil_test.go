package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const page = `<html><head>
<script>var unrelated = 1;</script>
<script>window.appState = {"contests": [1, 2, 3]};</script>
</head><body><p>hello <b>world</b></p></body></html>`

func TestFindScript(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	text := FindScript(doc, "window.appState")
	require.Contains(t, text, `"contests": [1, 2, 3]`)

	require.Equal(t, "", FindScript(doc, "window.doesNotExist"))
}

func TestGetText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	sel := doc.Find("p")
	require.Len(t, sel.Nodes, 1)
	require.Equal(t, "hello world", GetText(sel.Nodes[0]))
}
