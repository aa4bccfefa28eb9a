package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
)

// JSONFile keeps every blob in one JSON object on disk, keyed by blob name.
// Blobs must themselves be valid JSON.
type JSONFile struct {
	filename string
}

func NewJSONFile(filename string) Store {
	return &JSONFile{filename: filename}
}

func (f *JSONFile) read() (map[string]json.RawMessage, error) {
	blobs := map[string]json.RawMessage{}

	data, err := ioutil.ReadFile(f.filename)
	if os.IsNotExist(err) {
		return blobs, nil
	} else if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return blobs, nil
	}

	err = json.Unmarshal(data, &blobs)
	if err != nil {
		return nil, fmt.Errorf("corrupt store file %s: %w", f.filename, err)
	}
	return blobs, nil
}

func (f *JSONFile) Get(ctx context.Context, key string) ([]byte, error) {
	blobs, err := f.read()
	if err != nil {
		return nil, err
	}

	blob, ok := blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return blob, nil
}

func (f *JSONFile) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("blob %s is not valid json", key)
	}

	blobs, err := f.read()
	if err != nil {
		return err
	}
	blobs[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(blobs, "", "  ")
	if err != nil {
		return err
	}

	// write then rename so a crash never leaves half a file behind
	tmp := f.filename + ".tmp"
	err = ioutil.WriteFile(tmp, data, 0644)
	if err != nil {
		return err
	}
	return os.Rename(tmp, f.filename)
}
