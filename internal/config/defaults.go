package config

import (
	"mpevm/internal/gff"
	"mpevm/internal/transform"
)

const (
	defaultConfigPath = "~/.config/mpevm/config.toml"
	projectConfigName = "mpevm.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	opts := transform.DefaultOptions()
	return Config{
		Convert: Convert{
			AlignerName:     opts.AlignerName,
			BoundaryMarker:  gff.DefaultBoundaryMarker,
			CommentPrefix:   gff.DefaultCommentPrefix,
			AlignmentSource: opts.AlignmentSource,
			MatchType:       opts.MatchType,
			IdentityKey:     opts.IdentityKey,
			GeneIDPrefix:    opts.GeneIDPrefix,
			CDSIDPrefix:     opts.CDSIDPrefix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
