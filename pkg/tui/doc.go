// Package tui drives an editor.Session from the terminal. The survey-backed
// PromptDriver asks the questions, Confirmer and Notifier adapt it to the
// session collaborators and Shell runs the interactive menu.
package tui
