package server

import (
	"html/template"

	"github.com/at-ishikawa/metaboschema/internal/shell"
)

type indexPage struct {
	View    shell.View
	Regions []regionButton
	Notice  *shell.Notice
}

// regionButton selects or clears a region. Selection changes only through POST.
type regionButton struct {
	Action   string
	Label    string
	Selected bool
}

type printPage struct {
	View    shell.View
	Diagram template.HTML
	Body    template.HTML
}

func parsePages() (*template.Template, error) {
	return template.New("pages").Parse(stylesTemplate + indexTemplate + printTemplate)
}

const stylesTemplate = `{{ define "styles" }}
body { font-family: system-ui, sans-serif; margin: 0; background: #f8fafc; color: #0f172a; }
main { display: grid; grid-template-columns: 2fr 1fr; gap: 1.5rem; padding: 1.5rem; }
.card { background: #fff; border-radius: 0.75rem; padding: 1.25rem; box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1); }
.actions { display: flex; gap: 0.5rem; flex-wrap: wrap; margin-bottom: 1rem; }
.actions form { margin: 0; }
.button, button { border: 1px solid #cbd5e1; border-radius: 0.5rem; background: #fff; padding: 0.4rem 0.9rem; cursor: pointer; text-decoration: none; color: inherit; font: inherit; }
.notice { white-space: pre-line; padding: 0.6rem 0.9rem; border-radius: 0.5rem; }
.notice.ok { background: #dcfce7; }
.notice.manual { background: #e0e7ff; }
.notice.failed { background: #fee2e2; }
.diagram { width: 100%; height: auto; }
.diagram-form { margin: 0; overflow-x: auto; }
.diagram-form input { width: 600px; height: 350px; max-width: none; cursor: pointer; }
.regions { display: flex; gap: 0.4rem; flex-wrap: wrap; margin-top: 1rem; }
.regions form { margin: 0; }
.regions button.selected { background: #fee2e2; border-color: #ef4444; }
.badge { display: inline-block; font-size: 0.75rem; background: #e0e7ff; border-radius: 999px; padding: 0.15rem 0.6rem; }
.products { font-family: ui-monospace, monospace; }
.placeholder { color: #64748b; text-align: center; margin-top: 4rem; }
.source { font-size: 0.8rem; color: #64748b; }
@media print { .actions, .regions { display: none; } main { display: block; } }
{{ end }}`

const indexTemplate = `{{ define "index" }}<!DOCTYPE html>
<html lang="{{ .View.Language }}" dir="{{ .View.Direction }}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .View.Title }}</title>
<style>{{ template "styles" }}</style>
</head>
<body>
<main>
<section class="card">
<h1>{{ .View.Title }}</h1>
<p>{{ .View.Instruction }}</p>
<div class="actions">
<form method="post" action="/language"><button type="submit" title="{{ .View.SwitchTitle }}">{{ .View.SwitchLabel }}</button></form>
<form method="post" action="/copy"><button type="submit">{{ .View.CopyLabel }}</button></form>
<a class="button" href="/export.pdf">{{ .View.ExportLabel }}</a>
<a class="button" href="/print">{{ .View.PrintLabel }}</a>
</div>
{{ with .Notice }}<p class="notice {{ .Result }}" role="status">{{ .Message }}</p>{{ end }}
<form class="diagram-form" method="post" action="/click">
<input type="image" src="/diagram.svg?selected={{ .View.Highlighted }}" width="600" height="350" alt="{{ .View.Title }}">
</form>
<div class="regions">
{{ range .Regions }}<form method="post" action="{{ .Action }}"><button type="submit"{{ if .Selected }} class="selected" aria-pressed="true"{{ end }}>{{ .Label }}</button></form>
{{ end }}</div>
</section>
<aside class="card">
{{ with .View.Detail }}<span class="badge">{{ .Badge }}</span>
<h2>{{ .Title }}</h2>
<h3>{{ $.View.Labels.Description }}</h3>
<p>{{ .Description }}</p>
<h3>{{ $.View.Labels.Products }}</h3>
<p class="products">{{ .Products }}</p>
{{ with .Mechanism }}<h3>{{ $.View.Labels.Mechanism }}</h3>
<p class="mechanism">{{ . }}</p>
{{ end }}<p class="source">{{ $.View.Labels.Source }} {{ .SourcePages }}</p>
{{ else }}<p class="placeholder">{{ .View.Placeholder }}</p>
{{ end }}</aside>
</main>
</body>
</html>
{{ end }}`

const printTemplate = `{{ define "print" }}<!DOCTYPE html>
<html lang="{{ .View.Language }}" dir="{{ .View.Direction }}">
<head>
<meta charset="utf-8">
<title>{{ .View.Title }}</title>
<style>{{ template "styles" }}</style>
</head>
<body>
<section class="card">
<h1>{{ .View.Title }}</h1>
{{ .Diagram }}
</section>
<article class="card reference">
{{ .Body }}
</article>
</body>
</html>
{{ end }}`
