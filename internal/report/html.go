package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// HTMLFileName is the fixed output name, overwritten on every run
const HTMLFileName = "SessionsReport.html"

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Backup Sessions Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #2d3748; color: #fff; }
tr.warning { background: #fdf3c8; }
tr.failed { background: #f8d0d0; }
</style>
</head>
<body>
<h1>Backup Sessions Report: {{.Label}}</h1>
<table>
<thead>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr{{with .Class}} class="{{.}}"{{end}}><td>{{.Name}}</td><td>{{.JobType}}</td><td>{{.StartTime}}</td><td>{{.EndTime}}</td><td>{{.Duration}}</td><td>{{.Result}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type htmlReport struct {
	Label  string
	Header []string
	Rows   []Row
}

// WriteHTML renders the rows to <dir>/SessionsReport.html and returns the
// written path. Warning and Failed rows carry a styling class, everything
// else renders plain.
func WriteHTML(dir string, w TimeWindow, rows []Row) (string, error) {
	path := filepath.Join(dir, HTMLFileName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	data := htmlReport{Label: w.Label, Header: csvHeader, Rows: rows}
	if err := htmlTemplate.Execute(file, data); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return path, nil
}
