package wordlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
)

// Write exports entries to path atomically. The format follows the extension,
// the same way LoadPool reads it.
func Write(path string, entries []model.WordEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(entries)
	case ".toml":
		err = toml.NewEncoder(writer).Encode(tomlWordList{Words: entries})
	default:
		for i, e := range entries {
			if hasTSVBreak(e.Day, e.Word, e.Meaning) {
				err = fmt.Errorf("entry %d: tab or newline not allowed in tab-separated output", i+1)
				break
			}
			if _, err = fmt.Fprintf(writer, "%s\t%s\t%s\n", e.Day, e.Word, e.Meaning); err != nil {
				break
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

func hasTSVBreak(fields ...string) bool {
	for _, f := range fields {
		if strings.ContainsAny(f, "\t\r\n") {
			return true
		}
	}
	return false
}
