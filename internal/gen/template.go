package gen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// {{.Header}}

package {{.Package}}

import (
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)
{{range .Types}}
// {{.Name}}Tag tells {{.Name}} numbers apart.
type {{.Name}}Tag struct{}

// {{.Name}}Caps grants {{.Comment}}.
type {{.Name}}Caps struct {
{{- range .Markers}}
	number.{{.}}
{{- end}}
}

func ({{.Name}}Caps) Flags() flags.Set {
	return {{.Flags}}
}

type {{.Name}}[T number.Real] = number.Number[T, {{.Name}}Tag, {{.Name}}Caps, {{.Policy}}[T]]
{{if .Aliases}}
type (
{{- range .Aliases}}
	{{.Name}} = {{.Type}}[{{.Rep}}]
{{- end}}
)
{{end}}
{{- range .Helpers}}
func {{.Func}}(a {{.Type}}[{{.Left}}], b {{.Type}}[{{.Right}}]) {{.Type}}[{{.Result}}] {
	return number.{{.Op}}[{{.Type}}[{{.Result}}]](a, b)
}
{{end}}
{{- end}}
{{- range .Dimensions}}
// {{.Name}}Dim is the dimension {{.Suffix}}.
type {{.Name}}Dim struct{}

func ({{.Name}}Dim) Exponents() physical.Exponents {
	return {{.Exponents}}
}

type {{.Name}}[T number.Real] = physical.Quantity[T, {{.Name}}Dim]
{{end}}
{{- range .Products}}
func {{.Func}}[T number.Real](a {{.Left}}[T], b {{.Right}}[T]) {{.Result}}[T] {
	return physical.{{.Op}}[{{.Result}}Dim](a, b)
}
{{end}}`))
