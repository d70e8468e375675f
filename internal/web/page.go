package web

import "html/template"

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ToneTint</title>
<style>
body { font-family: sans-serif; background: #fafafa; margin: 0; }
main { max-width: 860px; margin: 32px auto; padding: 0 16px; }
form, .output { background: #fff; padding: 20px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1); margin-bottom: 20px; }
label { display: block; margin-top: 12px; font-weight: bold; }
textarea { width: 100%; min-height: 160px; }
.colors label { display: inline-block; margin-right: 16px; }
.actions button { margin-top: 16px; margin-right: 8px; }
.error { color: #b00020; }
.output { line-height: 1.8; }
</style>
</head>
<body>
<main>
<h1>ToneTint</h1>
<p>Color text by sentiment, chunk by chunk. Opacity follows model confidence.</p>
<form method="post" action="/analyze">
  <label for="model">Model</label>
  <select id="model" name="model">
  {{- range .Models}}
    <option value="{{.}}"{{if eq . $.Model}} selected{{end}}>{{.}}</option>
  {{- end}}
  </select>

  <label for="chunk_size">Chunk size: <output id="chunk_size_value">{{.ChunkSize}}</output> words</label>
  <input type="range" id="chunk_size" name="chunk_size" min="{{.MinChunkSize}}" max="{{.MaxChunkSize}}" value="{{.ChunkSize}}"
    oninput="document.getElementById('chunk_size_value').value = this.value">

  <div class="colors">
    <label>Positive <input type="color" name="positive_color" value="{{.Palette.Positive}}"></label>
    <label>Negative <input type="color" name="negative_color" value="{{.Palette.Negative}}"></label>
    <label>Neutral <input type="color" name="neutral_color" value="{{.Palette.Neutral}}"></label>
  </div>

  <label for="text">Text</label>
  <textarea id="text" name="text" placeholder="Paste some text...">{{.Text}}</textarea>

  <div class="actions">
    <button type="submit">Analyze</button>
    <button type="submit" formaction="/download/html">Download HTML</button>
    <button type="submit" formaction="/download/pdf">Download PDF</button>
  </div>
</form>
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- end}}
{{- if .Markup}}
<div class="output">{{.Markup}}</div>
{{- with .Distribution}}
<p>{{range $label, $n := .}}{{$label}}: {{$n}} &nbsp; {{end}}</p>
{{- end}}
{{- end}}
</main>
</body>
</html>
`))
