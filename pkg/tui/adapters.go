package tui

import (
	"context"
	"errors"

	"github.com/goliatone/go-formbuilder/pkg/editor"
)

// Confirmer asks the editor's confirmation questions through driver. An
// aborted prompt counts as "no".
func Confirmer(driver PromptDriver) editor.Confirmer {
	return editor.ConfirmerFunc(func(ctx context.Context, prompt string) (bool, error) {
		ok, err := driver.Confirm(ctx, ConfirmConfig{Message: prompt})
		if errors.Is(err, ErrAborted) {
			return false, nil
		}
		return ok, err
	})
}

// Notifier prints editor notifications through driver.Info.
func Notifier(driver PromptDriver) editor.Notifier {
	return editor.NotifierFunc(func(ctx context.Context, n editor.Notification) {
		_ = driver.Info(ctx, n.Message)
	})
}
