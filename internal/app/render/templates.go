package render

// Both themes receive a view and must emit every value through template actions only.
const layouts = `
{{define "card"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; background: #f5f5f5; padding: 30px; margin: 0; }
.container { max-width: 800px; background: #fff; padding: 40px; margin: auto; border-radius: 8px; }
.meta { color: #666; }
.services { list-style: none; padding: 0; }
.service { background: #eee; padding: 10px; margin: 10px 0; border-radius: 4px; }
</style>
</head>
<body>
<div class="container">
<header>
<h1>{{.Name}}</h1>
{{- if .Subtitle}}
<p class="meta">{{.Subtitle}}</p>
{{- end}}
</header>
{{- if .ShowServices}}
<section>
<h2>Services</h2>
<ul class="services">
{{- range .Services}}
<li class="service">{{.}}</li>
{{- end}}
</ul>
</section>
{{- end}}
</div>
</body>
</html>
{{end}}

{{define "plain"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Name}}{{if .Category}} - {{.Category}}{{end}}</h1>
{{- if .Style}}
<p>Style: {{.Style}}</p>
{{- end}}
{{- if .ShowServices}}
<h3>Services</h3>
<ul>
{{- range .Services}}
<li class="service">{{.}}</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
{{end}}
`
