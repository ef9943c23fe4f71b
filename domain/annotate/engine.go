package annotate

import (
	"context"

	"knowmap-backend/domain/refdata"

	"github.com/sirupsen/logrus"
)

/*
Engine is the supplied dependency-parsing capability: tokenization, lemmas,
part-of-speech tags, dependency labels with head linkage, noun-phrase chunks
and named-entity spans. The pipeline never reimplements it, only wraps it.
*/
type Engine interface {
	Annotate(ctx context.Context, text string) (*Document, error)
}

/*
Annotator wraps an Engine and augments its output with entity patterns built
from the entity dictionary, so known names are tagged consistently with their
stored type (uppercased) regardless of what the engine recognized.
*/
type Annotator struct {
	engine Engine
	ruler  *ruler
	logger *logrus.Logger
}

/*
New builds an Annotator around engine. A nil engine yields a nil Annotator:
the configured linguistic model could not be loaded, and downstream extraction
degrades to zero triples instead of crashing. An empty dictionary just means
no extra patterns.
*/
func New(engine Engine, lookups *refdata.Lookups, logger *logrus.Logger) *Annotator {
	if engine == nil {
		return nil
	}

	return &Annotator{
		engine: engine,
		ruler:  newRuler(lookups),
		logger: logger,
	}
}

func (a *Annotator) Annotate(ctx context.Context, text string) (*Document, error) {
	doc, err := a.engine.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	a.ruler.apply(doc)

	return doc, nil
}
