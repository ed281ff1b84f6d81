// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/huh"
)

func promptInput(title string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

func promptPassword() (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// withSpinner runs fn with a progress spinner on stderr, so stdout stays
// clean for command output.
func withSpinner[T any](message string, fn func() (T, error)) (T, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Prefix = message
	s.Start()
	defer s.Stop()

	return fn()
}
