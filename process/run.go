// Package process implements the program subcommands.
package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"atext/config"
	"atext/markup"
	"atext/state"
	"atext/text"
)

// loadDocument parses the markup source file into an annotated string,
// applying whatever document processing the configuration asks for.
func loadDocument(ctx context.Context, src string) (text.AnnotatedString, error) {
	env := state.EnvFromContext(ctx)

	f, err := os.Open(src)
	if err != nil {
		return text.AnnotatedString{}, fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()

	as, err := markup.NewParser(env.Log.Named("markup")).Parse(f)
	if err != nil {
		return text.AnnotatedString{}, fmt.Errorf("unable to parse source: %w", err)
	}

	if env.Cfg.Document.AnnotateSentences {
		as = env.Splitter.AnnotateSentences(as)
	}
	return as, nil
}

func sourceArg(cmd *cli.Command, log *zap.Logger) (string, error) {
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return "", errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return filepath.Abs(src)
}

// RunInspect parses a document and prints its text with every annotation.
func RunInspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src, err := sourceArg(cmd, log)
	if err != nil {
		return err
	}
	log.Debug("Inspecting document", zap.String("source", src))

	as, err := loadDocument(ctx, src)
	if err != nil {
		return err
	}

	switch mapping := cmd.String("case"); mapping {
	case "":
	case "upper":
		as = as.ToUpperCase(env.Language)
	case "lower":
		as = as.ToLowerCase(env.Language)
	default:
		return fmt.Errorf("unsupported case mapping %q", mapping)
	}

	fmt.Printf("text (%d bytes):\n%s\n", as.Len(), as.String())
	fmt.Printf("annotations (%d):\n", len(as.Annotations()))
	for _, r := range as.Annotations() {
		describeAnnotation(r)
	}
	return nil
}

func describeAnnotation(r text.Range[text.Annotation]) {
	span := fmt.Sprintf("[%d, %d)", r.Start, r.End)
	switch item := r.Item.(type) {
	case text.SpanStyle:
		fmt.Printf("  %-12s span %+v\n", span, item)
	case text.ParagraphStyle:
		fmt.Printf("  %-12s paragraph %+v\n", span, item)
	case text.StringAnnotation:
		fmt.Printf("  %-12s %s=%q\n", span, r.Tag, string(item))
	case text.VerbatimTts:
		fmt.Printf("  %-12s speech %q\n", span, item.Verbatim)
	case text.LinkURL:
		fmt.Printf("  %-12s link %s\n", span, item.URL)
	case text.LinkClickable:
		fmt.Printf("  %-12s clickable %s\n", span, item.Tag)
	case text.Bullet:
		fmt.Printf("  %-12s bullet %v\n", span, item.Shape)
	default:
		fmt.Printf("  %-12s %v\n", span, item)
	}
}

// RunParagraphs parses a document and prints its normalized paragraph cover,
// one entry per paragraph with the effective style.
func RunParagraphs(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("paragraphs")

	src, err := sourceArg(cmd, log)
	if err != nil {
		return err
	}
	log.Debug("Computing paragraphs", zap.String("source", src))

	as, err := loadDocument(ctx, src)
	if err != nil {
		return err
	}

	as.MapEachParagraph(env.DefaultParagraph, func(paragraph string, style text.Range[text.ParagraphStyle]) {
		fmt.Printf("[%d, %d) %+v\n", style.Start, style.End, style.Item)
		fmt.Printf("  %q\n", paragraph)
	})
	return nil
}

// RunSave parses a document and writes it out in the persistent JSON form.
func RunSave(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("save")

	src, err := sourceArg(cmd, log)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = outputName(src)
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}

	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", dst)
	}

	as, err := loadDocument(ctx, src)
	if err != nil {
		return err
	}

	data, err := text.Save(as)
	if err != nil {
		return fmt.Errorf("unable to serialize document: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write destination: %w", err)
	}

	log.Info("Document saved",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Int("text", as.Len()),
		zap.Int("annotations", len(as.Annotations())))
	return nil
}

// outputName derives the destination file name from the source, next to the
// current working directory.
func outputName(src string) string {
	base := filepath.Base(src)
	if ext := filepath.Ext(base); len(ext) > 0 {
		base = strings.TrimSuffix(base, ext)
	}
	return config.CleanFileName(base) + ".json"
}

// RunRestore reads a saved JSON document back and prints a short summary,
// verifying the file still makes a valid document.
func RunRestore(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("restore")

	src, err := sourceArg(cmd, log)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}
	as, err := text.Restore(data)
	if err != nil {
		return fmt.Errorf("unable to restore document: %w", err)
	}

	fmt.Printf("%s: %d bytes of text, %d annotations\n", filepath.Base(src), as.Len(), len(as.Annotations()))
	return nil
}
