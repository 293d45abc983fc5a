package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"

	m "classidx.dev/pkg/classidx/internal/model"
)

// ArtifactFormat selects the encoding of persisted artifacts.
type ArtifactFormat string

const (
	// FormatJSON writes indented JSON with sorted keys.
	FormatJSON ArtifactFormat = "json"
	// FormatYAML writes YAML with sorted keys.
	FormatYAML ArtifactFormat = "yaml"
	// FormatPHP writes a PHP file returning the artifact as an array.
	FormatPHP ArtifactFormat = "php"
)

const artifactPerm os.FileMode = 0o644

// ErrUnreadableFormat is returned when loading an artifact whose format can
// only be written.
var ErrUnreadableFormat = errors.New("artifact format cannot be read back")

// WriteStatus tells whether a save replaced the artifact on disk.
type WriteStatus int

const (
	// Written means the artifact content changed and was replaced.
	Written WriteStatus = iota
	// Unchanged means the artifact already held the same bytes.
	Unchanged
)

func (s WriteStatus) String() string {
	if s == Unchanged {
		return "unchanged"
	}

	return "written"
}

// ParseArtifactFormat validates a configured format name.
func ParseArtifactFormat(name string) (ArtifactFormat, error) {
	switch format := ArtifactFormat(strings.ToLower(strings.TrimSpace(name))); format {
	case FormatJSON, FormatYAML, FormatPHP:
		return format, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown artifact format %q (want json, yaml or php)", name)
	}
}

// Extension returns the file extension used for the format.
func (f ArtifactFormat) Extension() string {
	return "." + string(f)
}

// ArtifactStore encodes and persists the class index and hierarchy artifacts.
// Encoding is separate from Save so a caller can encode every artifact before
// replacing any of them.
type ArtifactStore interface {
	EncodeClassIndex(index m.ClassIndex) ([]byte, error)
	EncodeHierarchy(hierarchy m.HierarchyIndex) ([]byte, error)
	// Save atomically replaces path with content. A file already holding
	// content is left alone and reported Unchanged.
	Save(ctx context.Context, path m.Path, content []byte) (WriteStatus, error)
	// LoadClassIndex reads a class index produced by EncodeClassIndex. A
	// missing artifact yields an error matching fs.ErrNotExist.
	LoadClassIndex(ctx context.Context, path m.Path) (m.ClassIndex, error)
	Format() ArtifactFormat
}

// FileArtifactStore encodes artifacts in one format and writes them through
// the SourceFSAdapter atomic write.
type FileArtifactStore struct {
	fs     SourceFSAdapter
	format ArtifactFormat
}

// NewFileArtifactStore constructs a FileArtifactStore.
func NewFileArtifactStore(fs SourceFSAdapter, format ArtifactFormat) *FileArtifactStore {
	if format == "" {
		format = FormatJSON
	}

	return &FileArtifactStore{fs: fs, format: format}
}

// Format implements ArtifactStore.
func (s *FileArtifactStore) Format() ArtifactFormat {
	return s.format
}

// EncodeClassIndex implements ArtifactStore.
func (s *FileArtifactStore) EncodeClassIndex(index m.ClassIndex) ([]byte, error) {
	if index.ClassMap == nil {
		index.ClassMap = map[string]m.Path{}
	}

	if index.Errors == nil {
		index.Errors = map[string]string{}
	}

	content, err := s.encode(index)
	if err != nil {
		return nil, fmt.Errorf("failed to encode class index: %w", err)
	}

	return content, nil
}

// EncodeHierarchy implements ArtifactStore.
func (s *FileArtifactStore) EncodeHierarchy(hierarchy m.HierarchyIndex) ([]byte, error) {
	normalized := make(m.HierarchyIndex, len(hierarchy))

	for symbol, record := range hierarchy {
		if record.Supertypes == nil {
			record.Supertypes = []string{}
		}

		if record.Interfaces == nil {
			record.Interfaces = []string{}
		}

		normalized[symbol] = record
	}

	content, err := s.encode(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to encode hierarchy: %w", err)
	}

	return content, nil
}

// LoadClassIndex implements ArtifactStore.
func (s *FileArtifactStore) LoadClassIndex(ctx context.Context, path m.Path) (m.ClassIndex, error) {
	var index m.ClassIndex

	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return index, fmt.Errorf("failed to read class index %s: %w", path, err)
	}

	switch s.format {
	case FormatJSON:
		err = json.Unmarshal(content, &index)
	case FormatYAML:
		err = yaml.Unmarshal(content, &index)
	default:
		return index, fmt.Errorf("%w: %s", ErrUnreadableFormat, s.format)
	}

	if err != nil {
		return index, fmt.Errorf("failed to decode class index %s: %w", path, err)
	}

	return index, nil
}

// Save implements ArtifactStore.
func (s *FileArtifactStore) Save(ctx context.Context, path m.Path, content []byte) (WriteStatus, error) {
	if s.sameContent(ctx, path, content) {
		slog.Debug("Artifact unchanged", "path", path)
		return Unchanged, nil
	}

	if err := s.fs.AtomicWriteFile(ctx, path, content, artifactPerm); err != nil {
		slog.Error("Failed to write artifact", "path", path, "error", err)
		return Written, err
	}

	return Written, nil
}

func (s *FileArtifactStore) sameContent(ctx context.Context, path m.Path, content []byte) bool {
	existing, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Cannot read existing artifact", "path", path, "error", err)
		}

		return false
	}

	return len(existing) == len(content) && xxh3.Hash128(existing) == xxh3.Hash128(content)
}

func (s *FileArtifactStore) encode(value any) ([]byte, error) {
	switch s.format {
	case FormatJSON:
		content, err := json.MarshalIndent(value, "", "    ")
		if err != nil {
			return nil, err
		}

		return append(content, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)

		if err := encoder.Encode(value); err != nil {
			return nil, err
		}

		if err := encoder.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case FormatPHP:
		return encodePHP(value)
	default:
		return nil, fmt.Errorf("unknown artifact format %q", s.format)
	}
}

// encodePHP renders value as `<?php return [...];`. The value goes through its
// JSON form first so struct tags decide the array keys.
func encodePHP(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	buf.WriteString("<?php\n\nreturn ")
	writePHPValue(&buf, generic, 0)
	buf.WriteString(";\n")

	return buf.Bytes(), nil
}

func writePHPValue(buf *bytes.Buffer, value any, depth int) {
	indent := strings.Repeat("    ", depth+1)

	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 {
			buf.WriteString("[]")
			return
		}

		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		buf.WriteString("[\n")

		for _, key := range keys {
			buf.WriteString(indent)
			buf.WriteString(phpString(key))
			buf.WriteString(" => ")
			writePHPValue(buf, v[key], depth+1)
			buf.WriteString(",\n")
		}

		buf.WriteString(strings.Repeat("    ", depth))
		buf.WriteByte(']')
	case []any:
		if len(v) == 0 {
			buf.WriteString("[]")
			return
		}

		buf.WriteString("[\n")

		for _, item := range v {
			buf.WriteString(indent)
			writePHPValue(buf, item, depth+1)
			buf.WriteString(",\n")
		}

		buf.WriteString(strings.Repeat("    ", depth))
		buf.WriteByte(']')
	case string:
		buf.WriteString(phpString(v))
	case float64:
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	default:
		buf.WriteString("null")
	}
}

func phpString(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)

	return "'" + escaped + "'"
}
