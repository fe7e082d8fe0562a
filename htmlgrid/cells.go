package htmlgrid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/domonda/go-datagrid"
)

// The functions of this file return custom display values
// for use in the Render function of a datagrid.CustomCell.
// Other renderers fall back to the plain text of the values.

// PreCell returns text within an HTML pre element.
func PreCell(text string) datagrid.DisplayValue {
	return datagrid.Custom("<pre>"+escape(text)+"</pre>", text)
}

// CodeCell returns text within an HTML code element.
func CodeCell(text string) datagrid.DisplayValue {
	return datagrid.Custom("<code>"+escape(text)+"</code>", text)
}

// AnchorCell returns an HTML anchor element with text as id and inner text.
func AnchorCell(text string) datagrid.DisplayValue {
	value := template.HTMLEscapeString(text)
	return datagrid.Custom(Raw(fmt.Sprintf("<a id='%[1]s'>%[1]s</a>", value)), text)
}

// SpanClassCell returns text within an HTML span element
// with the passed class.
func SpanClassCell(class, text string) datagrid.DisplayValue {
	html := fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(class), template.HTMLEscapeString(text))
	return datagrid.Custom(Raw(html), text)
}

// JSONCell returns the JSON src within an HTML pre element,
// compacted if indent is empty, else indented.
// Empty src results in a placeholder value.
func JSONCell(src []byte, indent string) (datagrid.DisplayValue, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return datagrid.Placeholder(datagrid.DefaultPlaceholder), nil
	}
	var (
		buf bytes.Buffer
		err error
	)
	if indent == "" {
		err = json.Compact(&buf, src)
	} else {
		err = json.Indent(&buf, src, "", indent)
	}
	if err != nil {
		return datagrid.DisplayValue{}, err
	}
	return datagrid.Custom("<pre>"+escape(buf.String())+"</pre>", buf.String()), nil
}
