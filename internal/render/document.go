package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/dshills/tonetint/pkg/types"
)

// DocumentHeading is the heading of standalone output documents
const DocumentHeading = "ToneTint Output:"

// DocumentOptions controls the standalone page
type DocumentOptions struct {
	Title   string // <title>, defaults to "ToneTint"
	Font    Font
	Palette Palette // Used for the legend
	Legend  bool
}

type legendEntry struct {
	Name  string
	Color template.CSS
}

type documentData struct {
	Title   string
	Heading string
	Style   template.CSS
	Markup  template.HTML
	Legend  []legendEntry
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { margin: 0; padding: 40px 16px; background: #f4f4f6; font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; }
  .container { max-width: 860px; margin: 0 auto; padding: 32px 40px; background: #ffffff; border-radius: 10px; box-shadow: 0 4px 18px rgba(0, 0, 0, 0.15); }
  h1 { margin-top: 0; font-size: 1.6em; color: #333333; }
  .content { line-height: 1.9; color: #222222; }
  .content span { border-radius: 3px; padding: 1px 0; }
  .legend { margin-top: 24px; font-size: 0.85em; color: #555555; }
  .legend span { display: inline-block; margin-right: 14px; padding: 2px 8px; border-radius: 3px; }
</style>
</head>
<body>
<div class="container">
<h1>{{.Heading}}</h1>
<div class="content"{{if .Style}} style="{{.Style}}"{{end}}>{{.Markup}}</div>
{{- if .Legend}}
<div class="legend">{{range .Legend}}<span style="background-color:{{.Color}};">{{.Name}}</span>{{end}}</div>
{{- end}}
</div>
</body>
</html>
`))

// Document wraps rendered markup in a complete HTML page with fixed chrome:
// a centered container with a drop shadow under the "ToneTint Output:" heading
func Document(markup string, opts DocumentOptions) (string, error) {
	title := opts.Title
	if title == "" {
		title = "ToneTint"
	}

	data := documentData{
		Title:   title,
		Heading: DocumentHeading,
		Style:   template.CSS(opts.Font.style()),
		Markup:  template.HTML(markup), // chunk text is escaped by Markup
	}

	if opts.Legend {
		palette := opts.Palette
		if palette == (Palette{}) {
			palette = DefaultPalette()
		}
		for _, c := range []types.Category{types.CategoryPositive, types.CategoryNeutral, types.CategoryNegative} {
			data.Legend = append(data.Legend, legendEntry{Name: strings.ToLower(string(c)), Color: template.CSS(palette.Hex(c))})
		}
	}

	var b strings.Builder
	if err := documentTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return b.String(), nil
}
