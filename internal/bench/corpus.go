// Package bench provides benchmarking utilities for grid tokenization:
// corpus loading, throughput and padding metrics, and separator-set sweeps.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is one corpus file loaded as a batch: one cell per non-empty
// line, in file order.
type Document struct {
	ID    string // filename without extension
	Lines []string
	Bytes int // total payload bytes across Lines
}

// LoadDocument reads a text file into a Document. Blank lines and
// #-comment lines are skipped.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	base := filepath.Base(path)
	doc := &Document{ID: strings.TrimSuffix(base, filepath.Ext(base))}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		doc.Lines = append(doc.Lines, line)
		doc.Bytes += len(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	if len(doc.Lines) == 0 {
		return nil, errors.New("no input lines in file")
	}
	return doc, nil
}

// LoadCorpus loads all .txt files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
