package domain

import (
	"context"
	"strings"
)

//go:generate mockgen -destination mocks/mock_template.go -package mocks github.com/TraineeHub/notify/internal/domain TemplateRenderer

// Template block selectors. An email renders the two blocks separately; an
// empty selector set renders the whole template.
const (
	TemplateBlockSubject = "subject"
	TemplateBlockContent = "content"
)

// TemplateRenderer resolves and renders notification templates. Rendering is
// pure: the only I/O is the template file read.
type TemplateRenderer interface {
	// GetTemplatePath resolves (channel, kind, version) to a template path
	// using the {channel}/{kind-as-kebab}/{version} convention.
	GetTemplatePath(channel MessageChannel, kind NotificationKind, version string) string
	// Version returns the configured template version for a kind and
	// channel, or an ErrUnknownTemplateVersion.
	Version(kind NotificationKind, channel MessageChannel) (string, error)
	// Process renders the named blocks of the template at path with the
	// given variables; an empty selector list renders everything.
	Process(ctx context.Context, path string, selectors []string, variables map[string]interface{}) (string, error)
}

// KindAsKebab converts a notification kind to its kebab-case template
// directory name, e.g. PROGRAMME_UPDATED_WEEK_8 -> programme-updated-week-8.
func KindAsKebab(kind NotificationKind) string {
	return strings.ReplaceAll(strings.ToLower(string(kind)), "_", "-")
}
