package scheduler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartres/smartres/internal/models"
	"github.com/smartres/smartres/internal/scheduler/producers"
)

// OutputDestination receives one message per reservation change, keyed by
// topic (the event type).
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "%s: %s\n", topic, msg)
	return err
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// FileOutput appends one JSON line per event to a per-topic file. Files are
// opened lazily and kept open until Close.
type FileOutput struct {
	basePath string
	files    map[string]*os.File
}

func NewFileOutput(basePath string) (*FileOutput, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create event directory %s: %w", basePath, err)
	}
	return &FileOutput{
		basePath: basePath,
		files:    make(map[string]*os.File),
	}, nil
}

func (f *FileOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := f.files[topic]
	if !ok {
		filename := filepath.Join(f.basePath, topic+".jsonl")
		var err error
		file, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open file for topic %s: %w", topic, err)
		}
		f.files[topic] = file
	}

	if _, err := file.Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (f *FileOutput) Close() error {
	for _, file := range f.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// newOutputDestination builds the sink named by the config, or nil when
// events are disabled.
func newOutputDestination(cfg *models.Config) (OutputDestination, error) {
	switch cfg.EventSink {
	case "", models.EventSinkNone:
		return nil, nil
	case models.EventSinkConsole:
		return &ConsoleOutput{}, nil
	case models.EventSinkFile:
		return NewFileOutput(cfg.EventPath)
	case models.EventSinkKafka:
		return producers.NewSaramaProducer(cfg)
	default:
		return nil, fmt.Errorf("unsupported event sink: %s", cfg.EventSink)
	}
}
