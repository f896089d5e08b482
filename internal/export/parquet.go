package export

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/writer"
)

func writeParquet(w io.Writer, records []Record) error {
	fw := writerfile.NewWriterFile(w)
	pw, err := writer.NewParquetWriter(fw, new(Record), 4)
	if err != nil {
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}

	for _, r := range records {
		if err := pw.Write(r); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet output: %w", err)
	}
	return fw.Close()
}
