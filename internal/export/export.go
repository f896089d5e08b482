package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/smartres/smartres/internal/cloudwriter"
	"github.com/smartres/smartres/internal/models"
)

// Record is one flattened reservation row as written by every export
// format.
type Record struct {
	ID        string `json:"id" parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name      string `json:"name" parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Gender    string `json:"gender" parquet:"name=gender, type=BYTE_ARRAY, convertedtype=UTF8"`
	Slot      string `json:"slot" parquet:"name=slot, type=BYTE_ARRAY, convertedtype=UTF8"`
	DateStr   string `json:"dateStr" parquet:"name=date_str, type=BYTE_ARRAY, convertedtype=UTF8"`
	CreatedAt int64  `json:"createdAt" parquet:"name=created_at, type=INT64"`
}

// Flatten turns the map into rows ordered by date key, keeping each day's
// insertion order.
func Flatten(m models.ReservationMap) []Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var records []Record
	for _, k := range keys {
		for _, r := range m[k] {
			records = append(records, Record{
				ID:        r.ID,
				Name:      r.Name,
				Gender:    string(r.Gender),
				Slot:      string(r.Slot),
				DateStr:   r.DateStr,
				CreatedAt: r.CreatedAt,
			})
		}
	}
	return records
}

type Exporter struct {
	cfg *models.Config
}

func New(cfg *models.Config) *Exporter {
	return &Exporter{cfg: cfg}
}

// Run writes the full reservation set in the configured format and returns
// the destination it wrote to.
func (e *Exporter) Run(m models.ReservationMap) (string, error) {
	records := Flatten(m)
	filename := fmt.Sprintf("reservations_%s.%s", time.Now().Format("20060102_150405"), e.cfg.ExportFormat)

	var buf bytes.Buffer
	switch e.cfg.ExportFormat {
	case models.ExportFormatJSON:
		if err := writeJSON(&buf, records); err != nil {
			return "", err
		}
	case models.ExportFormatCSV:
		if err := writeCSV(&buf, records); err != nil {
			return "", err
		}
	case models.ExportFormatParquet:
		if err := writeParquet(&buf, records); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported export format: %s", e.cfg.ExportFormat)
	}

	if e.cfg.ExportDestination == models.ExportDestinationLocal {
		dir := filepath.Join(e.cfg.ExportPath, e.cfg.ExportFolder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return "", fmt.Errorf("failed to write export file: %w", err)
		}
		return path, nil
	}

	objectPath := filepath.Join(e.cfg.ExportFolder, filename)
	if err := e.upload(objectPath, buf.Bytes()); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s://%s/%s", e.cfg.CloudStorage.Provider, e.cfg.CloudStorage.BucketName, objectPath), nil
}

func (e *Exporter) upload(objectPath string, data []byte) error {
	var factory cloudwriter.CloudWriterFactory
	var err error

	switch e.cfg.CloudStorage.Provider {
	case "s3":
		factory, err = cloudwriter.NewS3WriterFactory(e.cfg.CloudStorage.Region)
	default:
		return fmt.Errorf("unsupported cloud storage provider: %s", e.cfg.CloudStorage.Provider)
	}
	if err != nil {
		return fmt.Errorf("failed to create cloud writer factory: %w", err)
	}

	w, err := factory.NewWriter(e.cfg.CloudStorage.BucketName, objectPath)
	if err != nil {
		return fmt.Errorf("failed to create cloud writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to buffer export upload: %w", err)
	}
	return w.Close()
}

func writeJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode record %s: %w", r.ID, err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "gender", "slot", "dateStr", "createdAt"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.ID, r.Name, r.Gender, r.Slot, r.DateStr, strconv.FormatInt(r.CreatedAt, 10)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
