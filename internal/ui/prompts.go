package ui

import "github.com/AlecAivazis/survey/v2"

// Confirm prompts for yes/no confirmation, defaulting to no.
func Confirm(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
