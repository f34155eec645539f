package config

import "strings"

func (c *Config) normalize() {
	c.normalizeConvert()
	c.normalizeLogging()
}

func (c *Config) normalizeConvert() {
	defaults := Default().Convert
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&c.Convert.AlignerName, defaults.AlignerName)
	fill(&c.Convert.BoundaryMarker, defaults.BoundaryMarker)
	fill(&c.Convert.CommentPrefix, defaults.CommentPrefix)
	fill(&c.Convert.AlignmentSource, defaults.AlignmentSource)
	fill(&c.Convert.MatchType, defaults.MatchType)
	fill(&c.Convert.IdentityKey, defaults.IdentityKey)
	// Prefixes are trimmed only; validation rejects empty ones.
	c.Convert.GeneIDPrefix = strings.TrimSpace(c.Convert.GeneIDPrefix)
	c.Convert.CDSIDPrefix = strings.TrimSpace(c.Convert.CDSIDPrefix)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
