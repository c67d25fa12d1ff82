package nlp

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type corpusFile struct {
	Intents []IntentRecord `json:"intents"`
}

// ParseCorpus decodes a corpus document and validates its records: every tag
// must be non-empty and unique.
func ParseCorpus(data []byte) ([]IntentRecord, error) {
	var doc corpusFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Intents))
	for _, record := range doc.Intents {
		if record.Tag == "" {
			return nil, fmt.Errorf("corpus contains an intent with an empty tag")
		}
		if _, dup := seen[record.Tag]; dup {
			return nil, fmt.Errorf("corpus contains duplicate tag %q", record.Tag)
		}
		seen[record.Tag] = struct{}{}
	}

	return doc.Intents, nil
}

// LoadCorpus reads and parses the corpus file at path.
func LoadCorpus(path string) ([]IntentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	return ParseCorpus(data)
}
