package render

import (
	"bytes"
	"fmt"
	"html/template"

	"codeberg.org/antivibe/antivibe/internal/hints"
)

var panelTemplate = template.Must(template.New("panel").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Antivibe.ai Hint</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            padding: 20px;
            background: #1e1e1e;
            color: #ffffff;
        }
        .hint-container {
            background: #2d2d30;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 20px;
        }
        .questions-section {
            background: #252526;
            padding: 15px;
            border-radius: 8px;
            margin: 15px 0;
        }
        .resource-link {
            color: #4ec9b0;
            text-decoration: none;
        }
        .next-step {
            background: #0e639c;
            padding: 10px;
            border-radius: 4px;
            margin-top: 15px;
        }
    </style>
</head>
<body>
    <h1>Antivibe.ai Hint</h1>

    <div class="hint-container">
        <h2>Hint</h2>
        <p>{{.Hint}}</p>
    </div>

    <div class="questions-section">
        <h2>Questions to Consider</h2>
        <ul>
            {{- range .Questions}}
            <li>{{.}}</li>
            {{- end}}
        </ul>
    </div>
{{if .Resources}}
    <div class="questions-section resources">
        <h2>Learning Resources</h2>
        <ul>
            {{- range .Resources}}
            <li><a href="{{.}}" class="resource-link">{{.}}</a></li>
            {{- end}}
        </ul>
    </div>
{{end}}
    <div class="next-step">
        <strong>Next Step:</strong> {{.NextStep}}
    </div>
</body>
</html>
`))

// renders the hint panel as a standalone HTML document
func HTML(resp hints.Response) ([]byte, error) {
	var buf bytes.Buffer

	if err := panelTemplate.Execute(&buf, resp); err != nil {
		return nil, fmt.Errorf("failed to render hint panel: %w", err)
	}

	return buf.Bytes(), nil
}
