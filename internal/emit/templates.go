package emit

import (
	"strings"
	"text/template"
)

var (
	structTemplate = template.Must(template.New("struct").Parse(
		"{{.Opener}}\n" +
			"{{with .Head}}{{.}}\n{{end}}" +
			"{{range .Fields}}    {{.Type}} {{.Name}} = {{.Literal}};\n{{end}}" +
			"{{with .Tail}}{{.}}\n{{end}}" +
			"};\n",
	))

	enumTemplate = template.Must(template.New("enum").Parse(
		"enum {{.Name}} {\n" +
			"{{range $i, $v := .Values}}{{if $i}},\n{{end}}{{$v}}{{end}}" +
			"{{if .Values}}\n{{end}}" +
			"};\n",
	))
)

func render(tmpl *template.Template, data any) string {
	var sb strings.Builder

	// the templates are static, an execution error is a bug
	if err := tmpl.Execute(&sb, data); err != nil {
		panic(err)
	}

	return sb.String()
}
