package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/showreel/internal/deck"
	showreelerrors "github.com/alexisbeaulieu97/showreel/pkg/errors"
)

// inlineSource labels documents that did not come from a file.
const inlineSource = "inline"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes an inline document. A document without a variant is a ripple deck.
func Parse(data []byte) (*Document, error) {
	return parse(inlineSource, data, deck.Ripple)
}

// ParseFile loads a document from disk, validates it, and returns the merged result.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, showreelerrors.NewParseError(path, 0, err)
	}
	return parse(path, data, deck.Ripple)
}

func parse(source string, data []byte, variant deck.Name) (*Document, error) {
	var doc Document
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, showreelerrors.NewParseError(source, extractLine(err), err)
		}
	}

	if doc.Variant == "" {
		doc.Variant = string(variant)
	}
	fill(&doc, Default(deck.Name(doc.Variant)))

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ValidateDocument runs struct validation on a merged document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return showreelerrors.NewValidationError("document", "document is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(doc))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
