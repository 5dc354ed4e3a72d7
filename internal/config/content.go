package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Content is the page copy rendered around the particle field.
type Content struct {
	Title    string    `yaml:"title"`
	Path     string    `yaml:"path"`
	Hero     Hero      `yaml:"hero"`
	Nav      []Link    `yaml:"nav"`
	Sections []Section `yaml:"sections"`
}

type Hero struct {
	Greeting string   `yaml:"greeting"`
	Typed    []string `yaml:"typed"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Section struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// DefaultContent returns the embedded page content.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// LoadContent reads page content from a YAML file.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return ParseContent(data)
}

func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if c.Path == "" {
		c.Path = "/"
	}
	return &c, nil
}
