package extract

import (
	"context"
	"errors"

	"knowmap-backend/domain/annotate"

	"github.com/sirupsen/logrus"
)

// ErrNoAnnotator marks extraction attempted without a loaded linguistic
// model. With DegradeOnError set it collapses into an empty triple list.
var ErrNoAnnotator = errors.New("linguistic annotator not available")

type Setting struct {
	Logger *logrus.Logger

	// GetAnnotator supplies the shared annotator; it may return nil when the
	// linguistic model failed to load.
	GetAnnotator func() *annotate.Annotator

	// DegradeOnError turns annotator failures into empty successful results,
	// the documented best-effort policy of the pipeline. Tests flip it off to
	// tell "no triples found" apart from "pipeline failed".
	DegradeOnError bool
}

var globalSetting Setting

func Init(setting *Setting) {
	globalSetting = *setting
}

// FromText extracts triples from one raw text unit.
func FromText(ctx context.Context, text string) ([]Triple, error) {
	return fromText(&globalSetting, ctx, text)
}

// FromBatch extracts triples from several text units and unions the results.
func FromBatch(ctx context.Context, texts []string) ([]Triple, error) {
	return fromBatch(&globalSetting, ctx, texts)
}

// FromFile extracts triples from uploaded file bytes; filename only decides
// CSV flattening vs plain-text decoding.
func FromFile(ctx context.Context, data []byte, filename string) ([]Triple, error) {
	return fromFile(&globalSetting, ctx, data, filename)
}
