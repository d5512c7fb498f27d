package jobs

import (
	"context"
	"fmt"
	"folio/internal/jobs/interfaces"
	"folio/internal/providers"
	"folio/internal/store"
	"io"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// FileManager moves compressed store dumps between the store and files or
// streams.
type FileManager struct {
	client     store.ClientInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, client store.ClientInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		client:     client,
		logger:     logger,
	}
}

func (f *FileManager) export(ctx context.Context) ([]byte, int, error) {
	dump, err := f.client.Dump(ctx)
	if err != nil {
		return nil, 0, err
	}
	jsonData, err := json.Marshal(dump)
	if err != nil {
		return nil, 0, err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return nil, 0, err
	}
	return data, dump.Len(), nil
}

// Write streams a compressed dump of every collection to w.
func (f *FileManager) Write(ctx context.Context, w io.Writer) error {
	data, _, err := f.export(ctx)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (f *FileManager) SaveToFile(ctx context.Context, fileName string) error {
	data, count, err := f.export(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return err
	}
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, fileName); err != nil {
		return err
	}
	f.logger.Infof(providers.TypeStore, "Saved %d documents to %s", count, fileName)
	return nil
}

// LoadFromFile upserts every document of a dump file into the store.
func (f *FileManager) LoadFromFile(ctx context.Context, fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", fileName, err)
	}

	var dump store.Dump
	if err := json.Unmarshal(decompressedData, &dump); err != nil {
		return fmt.Errorf("decode %s: %w", fileName, err)
	}
	if err := f.client.Restore(ctx, &dump); err != nil {
		return err
	}
	f.logger.Infof(providers.TypeStore, "Restored %d documents from %s", dump.Len(), fileName)
	return nil
}
