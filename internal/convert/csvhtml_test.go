// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVToHTML(t *testing.T) {
	input := "name,city,age\nAda,London,36\nLinus,Helsinki,54\n\"Smith, J\",\"New York\",41\n"
	out := runConverter(t, CSVToHTML{}, []byte(input))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	var headers []string
	doc.Find("th").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, s.Text())
	})
	assert.Equal(t, []string{"name", "city", "age"}, headers)

	var rows [][]string
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		var row []string
		cells.Each(func(_ int, td *goquery.Selection) {
			row = append(row, td.Text())
		})
		rows = append(rows, row)
	})
	assert.Equal(t, [][]string{
		{"Ada", "London", "36"},
		{"Linus", "Helsinki", "54"},
		{"Smith, J", "New York", "41"},
	}, rows)

	assert.Equal(t, 1, doc.Find("table").Length())
}

func TestCSVToHTMLExactMarkup(t *testing.T) {
	out := runConverter(t, CSVToHTML{}, []byte("a,b\n1,x & y\n"))
	want := "<!DOCTYPE html><html><body><table>" +
		"<tr><th>a</th><th>b</th></tr>" +
		"<tr><td>1</td><td>x & y</td></tr>" +
		"</table></body></html>"
	assert.Equal(t, want, string(out))
}

func TestCSVToHTMLHeaderOnly(t *testing.T) {
	out := runConverter(t, CSVToHTML{}, []byte("only,headers\n"))
	assert.Equal(t, "<!DOCTYPE html><html><body><table><tr><th>only</th><th>headers</th></tr></table></body></html>", string(out))
}

func TestCSVToHTMLEmptyInput(t *testing.T) {
	out := runConverter(t, CSVToHTML{}, nil)
	assert.Equal(t, "<!DOCTYPE html><html><body><table><tr></tr></table></body></html>", string(out))
}

func TestCSVToHTMLRaggedRecord(t *testing.T) {
	var out bytes.Buffer
	err := CSVToHTML{}.Convert(strings.NewReader("a,b\n1,2,3\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading CSV record")
}
