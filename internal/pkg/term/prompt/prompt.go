// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package prompt provides functionality to retrieve free-form text, selection,
// and secret input from the user via a terminal.
package prompt

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
)

// ErrEmptyOptions indicates the input options list was empty.
var ErrEmptyOptions = errors.New("list of provided options is empty")

// Prompt abstracts the survey.Askone function.
type Prompt func(survey.Prompt, interface{}, ...survey.AskOpt) error

// ValidatorFunc defines the function signature for validating inputs.
type ValidatorFunc func(interface{}) error

// New returns a Prompt with default configuration.
func New() Prompt {
	return survey.AskOne
}

// Option is a functional option to configure the prompt.
type Option func(survey.Prompt)

// WithDefaultInput sets a default message for an input or select prompt.
func WithDefaultInput(s string) Option {
	return func(p survey.Prompt) {
		switch typed := p.(type) {
		case *survey.Input:
			typed.Default = s
		case *survey.Select:
			typed.Default = s
		}
	}
}

// Get prompts the user for free-form text input.
func (p Prompt) Get(message, help string, validator ValidatorFunc, promptOpts ...Option) (string, error) {
	input := &survey.Input{
		Message: message,
	}
	if help != "" {
		input.Help = color.Help(help)
	}
	for _, opt := range promptOpts {
		opt(input)
	}

	var result string
	err := p(input, &result, stdio(), validators(validator), icons())
	return result, err
}

// GetSecret prompts the user for sensitive input. Wraps survey.Password
func (p Prompt) GetSecret(message, help string) (string, error) {
	passwd := &survey.Password{
		Message: message,
	}
	if help != "" {
		passwd.Help = color.Help(help)
	}

	var result string
	err := p(passwd, &result, stdio(), survey.WithValidator(survey.Required), icons())
	return result, err
}

// SelectOne prompts the user with a list of options to choose from with the arrow keys.
func (p Prompt) SelectOne(message, help string, options []string, promptOpts ...Option) (string, error) {
	if len(options) <= 0 {
		return "", ErrEmptyOptions
	}

	sel := &survey.Select{
		Message: message,
		Options: options,
		Default: options[0],
	}
	if help != "" {
		sel.Help = color.Help(help)
	}
	for _, opt := range promptOpts {
		opt(sel)
	}

	var result string
	err := p(sel, &result, stdio(), icons())
	return result, err
}

func stdio() survey.AskOpt {
	return survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)
}

func icons() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		// The question mark "?" icon to denote a prompt will be colored in bold.
		icons.Question.Text = ""
		icons.Question.Format = "default+b"

		// Help text shown when the user presses "?"
		icons.Help.Text = ""
		icons.Help.Format = "default"
	})
}

func validators(validatorFunc ValidatorFunc) survey.AskOpt {
	var v survey.Validator
	if validatorFunc != nil {
		v = survey.ComposeValidators(survey.Required, survey.Validator(validatorFunc))
	} else {
		v = survey.Required
	}
	return survey.WithValidator(v)
}
