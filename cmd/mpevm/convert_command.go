package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mpevm/internal/config"
	"mpevm/internal/convert"
	"mpevm/internal/logging"
	"mpevm/internal/preflight"
	"mpevm/internal/transform"
)

func newGeneCommand(ctx *commandContext) *cobra.Command {
	return newConvertCommand(ctx, transform.VariantGene,
		"Convert to EVM gene-structure GFF3 (gene, mRNA, exon, CDS)")
}

func newAlignmentCommand(ctx *commandContext) *cobra.Command {
	return newConvertCommand(ctx, transform.VariantAlignment,
		"Convert to EVM spliced-alignment GFF3 (nucleotide_to_protein_match)")
}

type convertRequest struct {
	variant string
	input   string
	output  string
	summary bool
}

func newConvertCommand(ctx *commandContext, variant, short string) *cobra.Command {
	var outputPath string
	var summary bool

	cmd := &cobra.Command{
		Use:   variant + " <miniprot GFF file>",
		Short: short,
		Args:  exactlyOneInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, convertRequest{
				variant: variant,
				input:   args[0],
				output:  outputPath,
				summary: summary,
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", convert.StdoutPath, "Write records to this file instead of stdout")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a conversion summary table to stderr")
	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, req convertRequest) (err error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()

	inputPath, err := config.ExpandPath(strings.TrimSpace(req.input))
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	if err := preflight.CheckInputReadable(inputPath).Err(); err != nil {
		return err
	}

	tr, err := transform.New(req.variant, cfg.TransformOptions())
	if err != nil {
		return err
	}

	baseLogger, err := ctx.logger(stderr)
	if err != nil {
		return err
	}
	runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
	logger := logging.WithContext(runCtx, logging.NewComponentLogger(baseLogger, "cli"))

	in, err := convert.OpenInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := convert.OpenOutput(req.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	logger.Info("conversion started", logging.Args(
		logging.String(logging.FieldVariant, tr.Name()),
		logging.String("input", inputPath),
		logging.String("output", out.Path()),
	)...)

	converter := convert.New(tr, convert.Options{
		BoundaryMarker: cfg.Convert.BoundaryMarker,
		CommentPrefix:  cfg.Convert.CommentPrefix,
		Logger:         baseLogger,
	})
	stats, err := converter.Run(runCtx, in, out)
	if err != nil {
		if convert.IsBrokenPipe(err) && out.Path() == convert.StdoutPath {
			logger.Debug("output closed by reader", logging.Int("lines_read", stats.LinesRead))
			return nil
		}
		return fmt.Errorf("convert %s: %w", inputPath, err)
	}

	logger.Info("conversion finished", logging.Args(
		logging.Int("lines_read", stats.LinesRead),
		logging.Int("blocks", stats.BlocksFlushed),
		logging.Int("records_written", stats.RecordsWritten),
	)...)

	fmt.Fprintf(stderr, "Done! Read %d lines\n", stats.LinesRead)
	if req.summary {
		fmt.Fprintln(stderr, renderSummary(stats, isTerminal(stderr)))
	}
	return nil
}
