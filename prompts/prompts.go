package prompts

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

// ModelOutput is one member model's raw answer, labeled for synthesis.
type ModelOutput struct {
	Model string
	Text  string
}

// SynthesisPromptData feeds the synthesis prompt templates.
type SynthesisPromptData struct {
	Transcript string
	Outputs    []ModelOutput
}

// RenderSynthesisPrompt renders the system and user prompts for the synthesis
// call using embedded Go templates.
func RenderSynthesisPrompt(data SynthesisPromptData) (systemPrompt, userPrompt string, err error) {
	systemPrompt, err = loadPrompt("templates/synthesize_system.md", data)
	if err != nil {
		return "", "", err
	}

	userPrompt, err = loadPrompt("templates/synthesize_user.md", data)
	if err != nil {
		return "", "", err
	}

	return systemPrompt, userPrompt, nil
}

func loadPrompt(templatePath string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
