// Package fs loads and stores workloads through afs, so any supported
// storage scheme (file, mem, gs, s3 ...) can hold them.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/service/workload"
	"gopkg.in/yaml.v3"
)

// Document is the envelope form of a workload file.  A file may also hold a
// bare list of processes.
type Document struct {
	Processes model.Processes `json:"processes" yaml:"processes"`
}

// Service reads and writes workload files
type Service struct {
	fs afs.Service
}

// Load reads a JSON or YAML workload from URL and validates it.
func (s *Service) Load(ctx context.Context, URL string) (model.Processes, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download workload %s: %w", URL, err)
	}
	processes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode workload %s: %w", URL, err)
	}
	if err := processes.Validate(); err != nil {
		return nil, fmt.Errorf("workload %s: %w", URL, err)
	}
	return processes, nil
}

// Save writes processes to URL, as JSON for a .json extension and YAML otherwise.
func (s *Service) Save(ctx context.Context, URL string, processes model.Processes) error {
	doc := &Document{Processes: processes}
	var data []byte
	var err error
	if isJSON(URL) {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode workload: %w", err)
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload workload %s: %w", URL, err)
	}
	return nil
}

// Source binds URL into a workload source.
func (s *Service) Source(URL string) workload.Source {
	return workload.Func(func(ctx context.Context) (model.Processes, error) {
		return s.Load(ctx, URL)
	})
}

// Decode parses a workload document.  JSON is accepted as a YAML subset.
func Decode(data []byte) (model.Processes, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	root := &node
	if root.Kind == 0 {
		return model.Processes{}, nil
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return model.Processes{}, nil
		}
		root = root.Content[0]
	}
	switch root.Kind {
	case yaml.SequenceNode:
		var processes model.Processes
		if err := root.Decode(&processes); err != nil {
			return nil, err
		}
		return processes, nil
	case yaml.MappingNode:
		doc := &Document{}
		if err := root.Decode(doc); err != nil {
			return nil, err
		}
		return doc.Processes, nil
	default:
		return nil, fmt.Errorf("unsupported workload node kind: %v", root.Kind)
	}
}

func isJSON(URL string) bool {
	return strings.EqualFold(path.Ext(URL), ".json")
}

// New creates a workload file service; a nil fs selects afs.New().
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
