package mail

import (
	"bytes"
	"html/template"
)

type verificationEmailData struct {
	Brand     string
	Code      string
	VerifyURL string
}

var verificationTmpl = template.Must(template.New("verification").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Brand}} - Verify your email</title>
  </head>
  <body style="background:#f8fafc; margin:0; padding:24px; font-family:system-ui, -apple-system, Segoe UI, Roboto, Ubuntu;">
    <div style="display:none; max-height:0; overflow:hidden; opacity:0;">{{.Brand}}: your verification code is {{.Code}}</div>
    <table role="presentation" cellpadding="0" cellspacing="0" width="100%">
      <tr>
        <td align="center">
          <table role="presentation" width="600" style="max-width:600px; background:#ffffff; border-radius:16px; border:1px solid #e2e8f0; overflow:hidden;">
            <tr>
              <td style="padding:24px; text-align:center;">
                <div style="display:inline-block; padding:8px 14px; border-radius:9999px; background:#f8fafc; color:#475569; font-size:12px; font-weight:600; border:1px solid #e2e8f0;">{{.Brand}}</div>
                <h1 style="margin:16px 0 8px; font-size:22px; color:#0f172a;">Verify your email address</h1>
                <p style="margin:0 0 20px; font-size:14px; color:#475569;">Use the code below to complete your registration.</p>
                <div style="display:inline-block; padding:14px 28px; border-radius:12px; background:#0b1220; color:#e2e8f0; font-size:28px; letter-spacing:8px; font-weight:700;">{{.Code}}</div>
                {{if .VerifyURL}}
                <p style="margin:20px 0 0;">
                  <a href="{{.VerifyURL}}" style="display:inline-block; padding:12px 24px; border-radius:12px; background:#0ea5e9; color:#ffffff; font-size:14px; font-weight:600; text-decoration:none;">Verify now</a>
                </p>
                {{end}}
                <p style="margin:20px 0 24px; font-size:12px; color:#475569;">The code expires in 15 minutes. If you did not request it, ignore this email.</p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`))

func renderVerificationEmail(data verificationEmailData) (string, error) {
	var buf bytes.Buffer
	if err := verificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
