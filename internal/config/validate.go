package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateConvert() error {
	if !strings.HasPrefix(c.Convert.BoundaryMarker, c.Convert.CommentPrefix) {
		return fmt.Errorf("convert.boundary_marker: %q must begin with convert.comment_prefix %q", c.Convert.BoundaryMarker, c.Convert.CommentPrefix)
	}
	if c.Convert.GeneIDPrefix == "" {
		return errors.New("convert.gene_id_prefix must be set so gene and transcript identifiers differ")
	}
	if c.Convert.CDSIDPrefix == "" {
		return errors.New("convert.cds_id_prefix must be set so exon and CDS identifiers differ")
	}
	for key, value := range map[string]string{
		"convert.aligner_name":     c.Convert.AlignerName,
		"convert.alignment_source": c.Convert.AlignmentSource,
		"convert.match_type":       c.Convert.MatchType,
	} {
		if strings.ContainsAny(value, "\t\n") {
			return fmt.Errorf("%s: tabs and newlines are not allowed", key)
		}
	}
	if strings.ContainsAny(c.Convert.IdentityKey, "=;") {
		return fmt.Errorf("convert.identity_key: %q must not contain '=' or ';'", c.Convert.IdentityKey)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn or error)", c.Logging.Level)
	}
	return nil
}
