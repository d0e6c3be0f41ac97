package htmlemail

import (
	"bytes"
	"html/template"
)

func Welcome(username string) (string, error) {
	tmpl, err := template.New("email").Parse(`
		<!DOCTYPE html>
		<html>
			<body style="font-family: monospace; background-color: #0d1117; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background: #161b22; color: #c9d1d9; padding: 20px; border-radius: 8px;">
					<h2 style="color: #58a6ff;">// welcome, {{.Username}}</h2>
					<p>Your club account is ready. Hop into the Discord, check the
					upcoming workshops, and say hi in #general.</p>
					<p style="color: #8b949e;">— IEEE SWC Club</p>
				</div>
			</body>
		</html>
	`)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct{ Username string }{Username: username})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
