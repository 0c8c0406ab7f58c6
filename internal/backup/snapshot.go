// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package backup exports and imports the users, products and settings documents.

Snapshots are written as JSON or YAML. Cart, session and orders are not part of
a snapshot.
*/
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/settings"
	"github.com/taibuivan/lookeasy/internal/users/account"
)

// Snapshot is the portable backup document.
//
// A nil section is absent: importing it leaves the stored document alone.
type Snapshot struct {
	Users      []account.User     `json:"users,omitempty" yaml:"users,omitempty"`
	Products   []catalog.Product  `json:"products,omitempty" yaml:"products,omitempty"`
	Settings   *settings.Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
	ExportDate time.Time          `json:"exportDate" yaml:"exportDate"`
}

// # Formats

// Format is a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("backup_unknown_format: %q", value)
	}
}

// FormatFromPath picks the format from a file extension, JSON when unknown.
func FormatFromPath(path string) Format {
	if format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return format
	}
	return FormatJSON
}

// Encode writes snapshot to w.
func Encode(w io.Writer, snapshot Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("backup_encode_json_failed: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("backup_encode_yaml_failed: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("backup_encode_yaml_failed: %w", err)
		}
	default:
		return fmt.Errorf("backup_unknown_format: %q", format)
	}
	return nil
}

// Decode reads a snapshot from r.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	var snapshot Snapshot

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
			return nil, fmt.Errorf("backup_decode_json_failed: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&snapshot); err != nil {
			return nil, fmt.Errorf("backup_decode_yaml_failed: %w", err)
		}
	default:
		return nil, fmt.Errorf("backup_unknown_format: %q", format)
	}
	return &snapshot, nil
}
