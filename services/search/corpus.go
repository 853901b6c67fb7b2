package search

import (
	"errors"
	"fmt"
	"os"

	"github.com/meghashyamc/ecssnav/models"
	"gopkg.in/yaml.v3"
)

type corpusFile struct {
	Results []models.Result `yaml:"results"`
}

// DefaultCorpus returns a fresh copy of the built-in fallback entries.
func DefaultCorpus() []models.Result {
	return []models.Result{
		{
			ID:      "1",
			Title:   "ECSS-S-ST-00C Rev.1(15June2020)",
			Content: "This document provides a comprehensive overview of ECSS standards and their application in space systems. It covers the fundamental principles, requirements, and guidelines for implementing ECSS standards across various space projects.",
			Score:   0.95,
			Metadata: models.Metadata{
				models.MetaBranch:         "S",
				models.MetaBranchName:     "Space Product Assurance",
				models.MetaDiscipline:     "ST",
				models.MetaDisciplineName: "Space Systems",
				models.MetaDocumentNumber: "00C",
				models.MetaRevision:       "1",
				models.MetaFilename:       "ECSS-S-ST-00C Rev.1(15June2020).pdf",
				models.MetaDocumentType:   "ECSS_Standard",
				models.MetaSource:         "ECSS_Published_Standards",
			},
		},
		{
			ID:      "2",
			Title:   "ECSS-Q-ST-70C-Rev.2(15October2019)",
			Content: "Materials and processes standards for space applications. This document specifies requirements for materials selection, testing procedures, and quality assurance processes used in space systems.",
			Score:   0.87,
			Metadata: models.Metadata{
				models.MetaBranch:         "Q",
				models.MetaBranchName:     "Quality Assurance",
				models.MetaDiscipline:     "ST",
				models.MetaDisciplineName: "Space Systems",
				models.MetaDocumentNumber: "70C",
				models.MetaRevision:       "2",
				models.MetaFilename:       "ECSS-Q-ST-70C-Rev.2(15October2019).pdf",
				models.MetaDocumentType:   "ECSS_Standard",
				models.MetaSource:         "ECSS_Published_Standards",
			},
		},
		{
			ID:      "3",
			Title:   "ECSS-E-ST-50C-Rev.1(1March2021)",
			Content: "Communication protocols and standards for space systems. This document defines the requirements for communication systems, data transmission protocols, and interface specifications.",
			Score:   0.82,
			Metadata: models.Metadata{
				models.MetaBranch:         "E",
				models.MetaBranchName:     "Engineering",
				models.MetaDiscipline:     "ST",
				models.MetaDisciplineName: "Space Systems",
				models.MetaDocumentNumber: "50C",
				models.MetaRevision:       "1",
				models.MetaFilename:       "ECSS-E-ST-50C-Rev.1(1March2021).pdf",
				models.MetaDocumentType:   "ECSS_Standard",
				models.MetaSource:         "ECSS_Published_Standards",
			},
		},
	}
}

// LoadCorpus reads fallback entries from a YAML file with a top level
// "results" list. An empty path yields DefaultCorpus.
func LoadCorpus(path string) ([]models.Result, error) {
	if path == "" {
		return DefaultCorpus(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback corpus %s: %w", path, err)
	}

	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fallback corpus %s: %w", path, err)
	}

	if len(file.Results) == 0 {
		return nil, errors.New("fallback corpus must contain at least one result")
	}

	for i, result := range file.Results {
		if result.ID == "" {
			return nil, fmt.Errorf("fallback corpus entry %d has no id", i)
		}
	}

	return file.Results, nil
}
