// Package catalog loads the course knowledge base, the background passage
// used by the extractive model, and the generic rule answers.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"academyqa/models"

	"github.com/spf13/viper"
)

//go:embed catalog.yml
var defaultCatalog []byte

// Catalog is immutable once loaded.
type Catalog struct {
	KB             *models.KnowledgeBase
	Context        string
	DurationAnswer string
	FeesAnswer     string
}

var ErrEmptyContext = errors.New("catalog context is empty")

// Load reads the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return fromViper(v)
}

// Parse reads a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return fromViper(v)
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Load("")
}

func fromViper(v *viper.Viper) (*Catalog, error) {
	var records []models.CourseRecord
	if err := v.UnmarshalKey("courses", &records); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	for i := range records {
		records[i].Key = strings.ToLower(strings.TrimSpace(records[i].Key))
		records[i].Name = strings.TrimSpace(records[i].Name)
		records[i].Duration = strings.TrimSpace(records[i].Duration)
		records[i].Fees = strings.TrimSpace(records[i].Fees)
	}

	kb, err := models.NewKnowledgeBase(records...)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		KB:             kb,
		Context:        strings.TrimSpace(v.GetString("context")),
		DurationAnswer: strings.TrimSpace(v.GetString("answers.duration")),
		FeesAnswer:     strings.TrimSpace(v.GetString("answers.fees")),
	}
	if c.Context == "" {
		return nil, ErrEmptyContext
	}
	if c.DurationAnswer == "" {
		c.DurationAnswer = "The Certified Specialist programs are 6 months long."
	}
	if c.FeesAnswer == "" {
		c.FeesAnswer = "The fees for Certified Specialist programs are between Rs. 15,000 to Rs. 25,000."
	}
	return c, nil
}
