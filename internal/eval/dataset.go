// Package eval provides annotation loading and threshold sweeps for
// event-level agreement scoring.
package eval

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	eventmatch "github.com/jamesainslie/go-eventmatch"
)

// Annotation is a sample-level label sequence loaded from a file.
type Annotation struct {
	ID     string // filename without extension
	Name   string // from "# Name:" header, if present
	Source string // from "# Source:" header, if present
	Labels []int
}

// ParseAnnotation reads an annotation from text. Lines starting with "#"
// are header comments ("# Name:" and "# Source:" are recognized); every
// other line contributes whitespace- or comma-separated integer labels.
func ParseAnnotation(text string) (*Annotation, error) {
	var a Annotation

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			line = strings.TrimPrefix(line, "# ")
			if value, ok := strings.CutPrefix(line, "Name:"); ok {
				a.Name = strings.TrimSpace(value)
			} else if value, ok := strings.CutPrefix(line, "Source:"); ok {
				a.Source = strings.TrimSpace(value)
			}
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad label %q: %w", lineNo, f, err)
			}
			a.Labels = append(a.Labels, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan annotation: %w", err)
	}

	return &a, nil
}

// LoadAnnotation loads and parses an annotation file.
func LoadAnnotation(path string) (*Annotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	a, err := ParseAnnotation(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	base := filepath.Base(path)
	a.ID = strings.TrimSuffix(base, filepath.Ext(base))
	return a, nil
}

// LoadPair loads a ground-truth and a comparison annotation and verifies
// they cover the same number of samples.
func LoadPair(gtPath, cmpPath string) (gt, cmp *Annotation, err error) {
	gt, err = LoadAnnotation(gtPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ground truth: %w", err)
	}
	cmp, err = LoadAnnotation(cmpPath)
	if err != nil {
		return nil, nil, fmt.Errorf("comparison: %w", err)
	}

	if len(gt.Labels) != len(cmp.Labels) {
		return nil, nil, fmt.Errorf("%w: %s has %d samples, %s has %d",
			eventmatch.ErrLengthMismatch, gt.ID, len(gt.Labels), cmp.ID, len(cmp.Labels))
	}
	return gt, cmp, nil
}
