package extract

import (
	"context"

	"knowmap-backend/utils"
)

/*
The extraction entry point handles three input shapes, one function per
shape: raw text (FromText), a pre-annotated document (FromDocument) and a
batch of text units (FromBatch). File bytes are a fourth shape layered on top
(FromFile).
*/

func degrade(setting *Setting, err error) ([]Triple, error) {
	if !setting.DegradeOnError {
		return nil, err
	}

	if setting.Logger != nil {
		setting.Logger.WithError(err).Warnf("extraction degraded to empty result: %s", err.Error())
	}
	return []Triple{}, nil
}

func fromText(setting *Setting, ctx context.Context, text string) ([]Triple, error) {
	cleaned := utils.CleanText(text)
	if cleaned == "" {
		return []Triple{}, nil
	}

	annotator := setting.GetAnnotator()
	if annotator == nil {
		return degrade(setting, ErrNoAnnotator)
	}

	doc, err := annotator.Annotate(ctx, cleaned)
	if err != nil {
		return degrade(setting, utils.WrapError(err, "annotate text fail"))
	}

	return FromDocument(doc), nil
}

func fromBatch(setting *Setting, ctx context.Context, texts []string) ([]Triple, error) {
	collected := make([]Triple, 0)

	for _, text := range texts {
		triples, err := fromText(setting, ctx, text)
		if err != nil {
			return nil, err
		}
		collected = append(collected, triples...)
	}

	return dedupTriples(collected), nil
}
