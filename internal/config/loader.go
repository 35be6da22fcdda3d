package config

import (
	"github.com/alexisbeaulieu97/showreel/internal/deck"
	showreelerrors "github.com/alexisbeaulieu97/showreel/pkg/errors"
)

// Loader applies configuration changes to a live widget. It remembers the last document
// that parsed and validated so a bad update never leaves the widget unconfigured.
type Loader struct {
	variant deck.Name
	last    *Document
}

// NewLoader creates a loader for a widget of the given variant. Documents that omit the
// variant inherit it.
func NewLoader(variant deck.Name) *Loader {
	return &Loader{variant: variant}
}

// Load parses data. On success the new document becomes the last known good one. On
// failure the previous good document (or the variant defaults) is returned alongside the
// error.
func (l *Loader) Load(data []byte) (*Document, error) {
	doc, err := parse(inlineSource, data, l.variant)
	if err == nil && doc.Variant != string(l.variant) {
		err = showreelerrors.NewValidationError("variant",
			"variant cannot change on a live widget: have "+string(l.variant)+", got "+doc.Variant, nil)
	}
	if err != nil {
		return l.Current(), err
	}

	l.last = doc
	return doc, nil
}

// Current returns the last known good document, or the variant defaults.
func (l *Loader) Current() *Document {
	if l.last != nil {
		return l.last
	}
	return Default(l.variant)
}
