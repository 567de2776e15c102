package helpers

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/feeddigital/cursos-api/internal/constants"
)

// Deployment stages. The stage selects the log encoder, the gin mode and
// whether the debug request logger is mounted.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

var stageAliases = map[string]string{
	"prod":        StageProd,
	"production":  StageProd,
	"dev":         StageDev,
	"development": StageDev,
	"local":       StageLocal,
}

// ParseStage normalizes a STAGE value. Matching ignores case and surrounding
// whitespace, and the long names "production" and "development" are accepted.
// An empty value resolves to StageLocal.
func ParseStage(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return StageLocal, nil
	}
	if stage, ok := stageAliases[value]; ok {
		return stage, nil
	}
	return "", errors.Errorf("invalid STAGE '%s': must be one of %s, %s, %s",
		raw, StageProd, StageDev, StageLocal)
}
