package main

import (
	"github.com/charmbracelet/huh"

	"github.com/aidoctool/aidoc/pkg/config"
)

// profileInput collects the three core profile fields across flags and
// prompts.
type profileInput struct {
	Provider string
	Model    string
	APIKey   string //nolint:gosec // may hold an env var reference, collected interactively
}

type providerDefault struct {
	APIKey string //nolint:gosec // env var reference template, not a secret
	Model  string
}

//nolint:gosec // env var reference templates, not hardcoded secrets
var providerDefaults = map[string]providerDefault{
	"anthropic": {APIKey: "${ANTHROPIC_API_KEY}", Model: "claude-sonnet-4-20250514"},
	"openai":    {APIKey: "${OPENAI_API_KEY}", Model: "gpt-4o-mini"},
	"grok":      {APIKey: "${GROK_API_KEY}", Model: "grok-3-mini-fast-beta"},
}

// promptMissing fills any empty field of p interactively. Known providers
// pre-fill the model and an env var reference for the API key; both remain
// editable. A literal API key typed for an unknown provider is masked.
func promptMissing(p *profileInput) error {
	if p.Provider == "" {
		if err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Provider").
				Options(
					huh.NewOption("Anthropic", "anthropic"),
					huh.NewOption("OpenAI", "openai"),
					huh.NewOption("Grok", "grok"),
					huh.NewOption("Other", "other"),
				).
				Value(&p.Provider),
		)).Run(); err != nil {
			return err
		}

		if p.Provider == "other" {
			p.Provider = ""
			if err := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Provider name").Value(&p.Provider),
			)).Run(); err != nil {
				return err
			}
		}
	}

	def := providerDefaults[p.Provider]

	if p.Model == "" {
		p.Model = def.Model
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Model").Value(&p.Model),
		)).Run(); err != nil {
			return err
		}
	}

	if p.APIKey == "" {
		input := huh.NewInput().Title("API key (or ${VAR} reference)").Value(&p.APIKey)
		if def.APIKey != "" {
			p.APIKey = def.APIKey
		} else {
			input = input.EchoMode(huh.EchoModePassword)
		}

		if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
			return err
		}
	}

	return nil
}

// promptEdit shows a form pre-filled with the current profile and returns an
// update carrying all three core fields.
func promptEdit(current config.Profile) (config.ProfileUpdate, error) {
	in := profileInput{
		Provider: current.Provider,
		Model:    current.Model,
		APIKey:   current.APIKey,
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Provider").Value(&in.Provider),
		huh.NewInput().Title("Model").Value(&in.Model),
		huh.NewInput().Title("API key (or ${VAR} reference)").Value(&in.APIKey),
	)).Run(); err != nil {
		return config.ProfileUpdate{}, err
	}

	return config.ProfileUpdate{
		Provider: &in.Provider,
		Model:    &in.Model,
		APIKey:   &in.APIKey,
	}, nil
}
