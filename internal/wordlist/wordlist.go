// Package wordlist loads vocabulary word lists from the bundled data or files.
package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/notedthegoat/toeicword-practice-app/internal/model"
)

//go:embed data.json
var bundled []byte

type tomlWordList struct {
	Words []model.WordEntry `toml:"words"`
}

// LoadBundled decodes the word list compiled into the binary.
func LoadBundled() ([]model.WordEntry, error) {
	entries, err := decodeJSON(bytes.NewReader(bundled))
	if err != nil {
		return nil, fmt.Errorf("bundled word list: %w", err)
	}
	return entries, nil
}

// LoadPool loads the word pool. An empty path selects the bundled list; the
// file format is chosen by extension (.json, .toml, otherwise tab-separated).
func LoadPool(path string) ([]model.WordEntry, error) {
	if path == "" {
		return LoadBundled()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var entries []model.WordEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = decodeJSON(file)
	case ".toml":
		entries, err = decodeTOML(file)
	default:
		entries, err = decodeTSV(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

func decodeJSON(r io.Reader) ([]model.WordEntry, error) {
	var entries []model.WordEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	return validate(entries)
}

func decodeTOML(r io.Reader) ([]model.WordEntry, error) {
	var list tomlWordList
	if _, err := toml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode toml: %w", err)
	}
	return validate(list.Words)
}

// decodeTSV reads "day<TAB>word<TAB>meaning" lines. Blank lines and lines
// starting with '#' are skipped. The meaning may be empty.
func decodeTSV(r io.Reader) ([]model.WordEntry, error) {
	var entries []model.WordEntry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		entries = append(entries, model.WordEntry{
			Day:     strings.TrimSpace(fields[0]),
			Word:    strings.TrimSpace(fields[1]),
			Meaning: strings.TrimSpace(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return validate(entries)
}

func validate(entries []model.WordEntry) ([]model.WordEntry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Word) == "" {
			return nil, fmt.Errorf("entry %d has an empty word", i+1)
		}
	}
	return entries, nil
}
