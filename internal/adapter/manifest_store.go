// Package adapter provides the I/O boundary for data objects: reading and
// writing YAML manifests.
package adapter

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/dataobj/internal/model"
)

// ManifestStore persists and retrieves data object records.
type ManifestStore interface {
	LoadRecords(path m.Path) ([]m.Record, error)
	SaveRecords(path m.Path, records []m.Record) error
	WriteRecords(w io.Writer, records []m.Record) error
}

// LocalManifestStore reads and writes YAML manifests on the local filesystem.
type LocalManifestStore struct{}

// NewLocalManifestStore constructs a LocalManifestStore.
func NewLocalManifestStore() *LocalManifestStore {
	return &LocalManifestStore{}
}

type manifestYAML struct {
	Objects []recordYAML `yaml:"objects"`
}

type recordYAML struct {
	Kind           string     `yaml:"kind"`
	Text           *string    `yaml:"text,omitempty"`
	Encoding       string     `yaml:"encoding,omitempty"`
	Value          yaml.Node  `yaml:"value,omitempty"`
	Width          int        `yaml:"width,omitempty"`
	Representation string     `yaml:"representation,omitempty"`
}

// LoadRecords reads the manifest at path.
func (s *LocalManifestStore) LoadRecords(path m.Path) ([]m.Record, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	records, err := s.decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode manifest %s", path)
	}

	return records, nil
}

// SaveRecords writes records to path, replacing any existing file.
func (s *LocalManifestStore) SaveRecords(path m.Path, records []m.Record) error {
	var buf bytes.Buffer
	if err := s.WriteRecords(&buf, records); err != nil {
		return err
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write manifest %s", path)
	}

	return nil
}

// WriteRecords encodes records as a YAML manifest to w.
func (s *LocalManifestStore) WriteRecords(w io.Writer, records []m.Record) error {
	doc := manifestYAML{Objects: make([]recordYAML, 0, len(records))}

	for i, r := range records {
		ry, err := toRecordYAML(r)
		if err != nil {
			return errors.Wrapf(err, "record %d", i)
		}

		doc.Objects = append(doc.Objects, ry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "failed to encode manifest")
	}

	return enc.Close()
}

func (s *LocalManifestStore) decode(data []byte) ([]m.Record, error) {
	var doc manifestYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	records := make([]m.Record, 0, len(doc.Objects))

	for i, ry := range doc.Objects {
		r, err := fromRecordYAML(ry)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}

		records = append(records, r)
	}

	return records, nil
}

func toRecordYAML(r m.Record) (recordYAML, error) {
	ry := recordYAML{Kind: string(r.Kind)}

	switch r.Kind {
	case m.KindString:
		text := r.Text
		ry.Text = &text
		ry.Encoding = r.Encoding
	case m.KindInteger:
		if err := ry.Value.Encode(r.Int); err != nil {
			return recordYAML{}, err
		}

		ry.Width = r.WidthBits
	case m.KindFloat:
		if err := ry.Value.Encode(r.Float); err != nil {
			return recordYAML{}, err
		}

		ry.Representation = r.Representation
	default:
		return recordYAML{}, errors.Wrapf(m.ErrUnknownKind, "%q", ry.Kind)
	}

	return ry, nil
}

func fromRecordYAML(ry recordYAML) (m.Record, error) {
	r := m.Record{Kind: m.Kind(ry.Kind)}

	switch r.Kind {
	case m.KindString:
		if ry.Text != nil {
			r.Text = *ry.Text
		}

		r.Encoding = ry.Encoding
	case m.KindInteger:
		if err := decodeValue(&ry.Value, &r.Int); err != nil {
			return m.Record{}, err
		}

		r.WidthBits = ry.Width
	case m.KindFloat:
		if err := decodeValue(&ry.Value, &r.Float); err != nil {
			return m.Record{}, err
		}

		r.Representation = ry.Representation
	default:
		return m.Record{}, errors.Wrapf(m.ErrUnknownKind, "%q", ry.Kind)
	}

	return r, nil
}

// decodeValue decodes the value field; a zero node means the key was absent.
func decodeValue(node *yaml.Node, out interface{}) error {
	if node.Kind == 0 {
		return errors.New("missing value")
	}

	if err := node.Decode(out); err != nil {
		return errors.Wrapf(err, "invalid value %q", node.Value)
	}

	return nil
}
