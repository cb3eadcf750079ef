package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/osteele/liquid"

	"github.com/TraineeHub/notify/config"
	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// blockMarker delimits named sections inside a template file, e.g.
// {% comment %}block:subject{% endcomment %}. Each block runs from its
// marker to the next marker or the end of the file.
var blockMarker = regexp.MustCompile(`\{%\s*comment\s*%\}block:(\w+)\{%\s*endcomment\s*%\}`)

// TemplateService renders notification templates with Liquid. Rendering is
// pure apart from the template file read.
type TemplateService struct {
	rootDir  string
	versions map[string]string
	engine   *liquid.Engine
	location *time.Location
	logger   logger.Logger
}

func NewTemplateService(cfg config.TemplatesConfig, location *time.Location, logger logger.Logger) *TemplateService {
	return &TemplateService{
		rootDir:  cfg.RootDir,
		versions: cfg.Versions,
		engine:   liquid.NewEngine(),
		location: location,
		logger:   logger,
	}
}

// GetTemplatePath resolves (channel, kind, version) to the template file
// path using the {channel}/{kind-as-kebab}/{version} convention.
func (s *TemplateService) GetTemplatePath(channel domain.MessageChannel, kind domain.NotificationKind, version string) string {
	return filepath.Join(
		s.rootDir,
		strings.ToLower(string(channel)),
		domain.KindAsKebab(kind),
		version+".liquid",
	)
}

// Version returns the pinned template version for a kind and channel.
func (s *TemplateService) Version(kind domain.NotificationKind, channel domain.MessageChannel) (string, error) {
	version, ok := s.versions[fmt.Sprintf("%s.%s", kind, channel)]
	if !ok {
		return "", &domain.ErrUnknownTemplateVersion{Kind: kind, Channel: channel}
	}
	return version, nil
}

// Process renders the named blocks of the template at path with the given
// variables. An empty selector list renders the whole file.
func (s *TemplateService) Process(ctx context.Context, path string, selectors []string, variables map[string]interface{}) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}

	source := string(raw)
	if len(selectors) > 0 {
		source, err = extractBlocks(source, selectors)
		if err != nil {
			return "", fmt.Errorf("template %s: %w", path, err)
		}
	}

	rendered, err := s.engine.ParseAndRenderString(source, s.localise(variables))
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", path, err)
	}
	return rendered, nil
}

// localise rebinds time values into the service zone so templates format
// local wall-clock times. Nested maps are walked; other values pass through.
func (s *TemplateService) localise(variables map[string]interface{}) map[string]interface{} {
	if variables == nil {
		return map[string]interface{}{}
	}

	out := make(map[string]interface{}, len(variables))
	for key, value := range variables {
		switch v := value.(type) {
		case time.Time:
			out[key] = v.In(s.location)
		case *time.Time:
			if v != nil {
				out[key] = v.In(s.location)
			} else {
				out[key] = nil
			}
		case map[string]interface{}:
			out[key] = s.localise(v)
		default:
			out[key] = value
		}
	}
	return out
}

func extractBlocks(source string, selectors []string) (string, error) {
	markers := blockMarker.FindAllStringSubmatchIndex(source, -1)

	blocks := make(map[string]string, len(markers))
	for i, marker := range markers {
		name := source[marker[2]:marker[3]]
		start := marker[1]
		end := len(source)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		blocks[name] = strings.TrimSpace(source[start:end])
	}

	var parts []string
	for _, selector := range selectors {
		block, ok := blocks[selector]
		if !ok {
			return "", fmt.Errorf("template has no block %q", selector)
		}
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n"), nil
}
