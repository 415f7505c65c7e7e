package config

import (
	"fmt"
	"time"

	"github.com/rpattn/dinaquery/internal/db"
	"github.com/rpattn/dinaquery/internal/domain"
)

// DefaultHierarchyRank is the hierarchy rank hierarchy searches are pinned to.
const DefaultHierarchyRank = 2

// Config holds all service settings.
type Config struct {
	Server        ServerConfig
	Database      db.Config
	Search        SearchConfig
	Log           LogConfig
	DynamicFields []domain.DynamicField
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

// SearchConfig holds query translation settings.
type SearchConfig struct {
	HierarchyRank int
	StrictUUID    bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string
	Development bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: db.DefaultConfig(),
		Search: SearchConfig{
			HierarchyRank: DefaultHierarchyRank,
		},
		Log: LogConfig{
			Level: "info",
		},
		DynamicFields: DefaultDynamicFields(),
	}
}

// DefaultDynamicFields is the dynamic field mapping of the material sample
// list page.
func DefaultDynamicFields() []domain.DynamicField {
	return []domain.DynamicField{
		{
			Type:      domain.DynamicFieldTypeManagedAttribute,
			Path:      "data.attributes.managedAttributes",
			Component: "MATERIAL_SAMPLE",
		},
		{
			Type:      domain.DynamicFieldTypeFieldExtension,
			Path:      "data.attributes.extensionValues",
			Component: "MATERIAL_SAMPLE",
		},
		{
			Type:         domain.DynamicFieldTypeManagedAttribute,
			Path:         "included.attributes.managedAttributes",
			Component:    "COLLECTING_EVENT",
			ReferencedBy: "collecting-event",
		},
		{
			Type:         domain.DynamicFieldTypeFieldExtension,
			Path:         "included.attributes.extensionValues",
			Component:    "COLLECTING_EVENT",
			ReferencedBy: "collecting-event",
		},
	}
}

// Validate checks settings that would otherwise fail later at query time.
func (c Config) Validate() error {
	if c.Search.HierarchyRank < 0 {
		return fmt.Errorf("%w: search.hierarchy_rank must not be negative", domain.ErrInvalidArgument)
	}
	seen := make(map[string]struct{}, len(c.DynamicFields))
	for i, f := range c.DynamicFields {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("dynamic_fields[%d]: %w", i, err)
		}
		if _, dup := seen[f.ID()]; dup {
			return fmt.Errorf("dynamic_fields[%d]: %w: duplicate field %s", i, domain.ErrInvalidArgument, f.ID())
		}
		seen[f.ID()] = struct{}{}
	}
	return nil
}
