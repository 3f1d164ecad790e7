package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/puzzlesolver/internal/model"
)

// ErrInvalidManifest is returned when a manifest fails validation
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest lists puzzle inputs to solve in one go
type Manifest struct {
	Path string
	Jobs []Job
}

// Job is one entry in a manifest
type Job struct {
	Name      string
	Puzzle    model.PuzzleKind
	InputFile string // absolute, resolved against the manifest directory
	Input     string // inline input, used when InputFile is empty
	Expect    *int   // optional expected answer
}

type yamlManifest struct {
	Jobs []yamlJob `yaml:"jobs"`
}

type yamlJob struct {
	Name      string `yaml:"name"`
	Puzzle    string `yaml:"puzzle"`
	InputFile string `yaml:"input_file"`
	Input     string `yaml:"input"`
	Expect    *int   `yaml:"expect"`
}

// Load reads and validates a manifest file
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(path, b)
}

// Parse decodes manifest YAML. Relative input files resolve against the
// directory containing path.
func Parse(path string, data []byte) (*Manifest, error) {
	var ym yamlManifest
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}

	if len(ym.Jobs) == 0 {
		return nil, fmt.Errorf("%w: %s: no jobs", ErrInvalidManifest, path)
	}

	dir := filepath.Dir(path)
	seen := make(map[string]bool, len(ym.Jobs))
	m := &Manifest{Path: path, Jobs: make([]Job, 0, len(ym.Jobs))}

	for i, yj := range ym.Jobs {
		if yj.Name == "" {
			return nil, fmt.Errorf("%w: job %d: name is required", ErrInvalidManifest, i+1)
		}
		if seen[yj.Name] {
			return nil, fmt.Errorf("%w: job %q: duplicate name", ErrInvalidManifest, yj.Name)
		}
		seen[yj.Name] = true

		puzzle, err := model.ParsePuzzleKind(yj.Puzzle)
		if err != nil {
			return nil, fmt.Errorf("%w: job %q: %v", ErrInvalidManifest, yj.Name, err)
		}

		switch {
		case yj.InputFile != "" && yj.Input != "":
			return nil, fmt.Errorf("%w: job %q: set input_file or input, not both", ErrInvalidManifest, yj.Name)
		case yj.InputFile == "" && yj.Input == "":
			return nil, fmt.Errorf("%w: job %q: input_file or input is required", ErrInvalidManifest, yj.Name)
		}

		inputFile := yj.InputFile
		if inputFile != "" && !filepath.IsAbs(inputFile) {
			inputFile = filepath.Join(dir, inputFile)
		}

		m.Jobs = append(m.Jobs, Job{
			Name:      yj.Name,
			Puzzle:    puzzle,
			InputFile: inputFile,
			Input:     yj.Input,
			Expect:    yj.Expect,
		})
	}

	return m, nil
}

// ReadInput returns the job's puzzle input
func (j Job) ReadInput() (string, error) {
	if j.InputFile == "" {
		return j.Input, nil
	}
	b, err := os.ReadFile(j.InputFile)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
