package notify

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"

	"timewise/internal/pkg/errs"
)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplate = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/confirmation.html"))
	textTemplate = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/confirmation.txt"))
)

type confirmationView struct {
	Name         string
	Organizer    string
	When         string
	MeetLink     string
	CalendarLink string
}

func renderConfirmation(v confirmationView) (string, string, error) {
	var html, text bytes.Buffer
	if err := htmlTemplate.Execute(&html, v); err != nil {
		return "", "", errs.Wrap(err, "failed to render confirmation html")
	}
	if err := textTemplate.Execute(&text, v); err != nil {
		return "", "", errs.Wrap(err, "failed to render confirmation text")
	}
	return html.String(), text.String(), nil
}
