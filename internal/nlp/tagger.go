// Package nlp provides tokenization and part-of-speech tagging behind a small
// interface so detectors can be tested without a real model.
package nlp

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// Tagger assigns a part-of-speech tag to each token of a text fragment.
type Tagger interface {
	Tags(text string) ([]string, error)
}

// ProseTagger tags tokens with the prose English model. It is stateless and
// safe for concurrent use.
type ProseTagger struct{}

// NewProseTagger returns the default prose-backed Tagger.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tags implements Tagger. Tags are Penn Treebank tags; only tag equality
// matters to callers, not the tag inventory.
func (p *ProseTagger) Tags(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	toks := doc.Tokens()
	tags := make([]string, 0, len(toks))
	for _, tok := range toks {
		tags = append(tags, tok.Tag)
	}
	return tags, nil
}
