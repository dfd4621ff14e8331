package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/oncotext/genetext/genetext/config"
	"github.com/oncotext/genetext/genetext/corpus"
	"github.com/oncotext/genetext/genetext/embedding"
	"github.com/oncotext/genetext/genetext/encoding"
	"github.com/oncotext/genetext/genetext/vocab"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	output := flag.String("output", "dataset.json", "output path for the encoded dataset")
	withVectors := flag.Bool("vectors", false, "also load the pretrained vector file and report its shape")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	runID := uuid.New()
	log.Debug().
		Str("run_id", runID.String()).
		Str("doc_unit", cfg.Encoding.DocUnit).
		Str("doc_form", cfg.Encoding.DocForm).
		Str("divide_document", cfg.Encoding.DivideDocument).
		Msg("Configuration loaded")

	unitCfg, err := encoding.UnitConfigFromStrings(
		cfg.Encoding.GeneUnit,
		cfg.Encoding.VariationUnit,
		cfg.Encoding.DocUnit,
		cfg.Encoding.DocForm,
		cfg.Encoding.DivideDocument,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid encoding configuration")
	}

	voc, err := vocab.Load(cfg.Corpus.VocabPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Corpus.VocabPath).Msg("Failed to load vocabulary")
	}
	log.Info().Int("size", voc.Size()).Msg("Vocabulary loaded")

	tok, err := corpus.NewTokenizer(cfg.Corpus.VocabPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build tokenizer")
	}

	log.Info().
		Str("variants", cfg.Corpus.VariantsPath).
		Str("texts", cfg.Corpus.TextPath).
		Msg("Loading corpus...")
	records, err := corpus.LoadRecords(cfg.Corpus.VariantsPath, cfg.Corpus.TextPath, tok)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load corpus")
	}
	log.Info().Int("records", len(records)).Msg("Corpus loaded")

	gen := encoding.NewGenerator(records, voc)

	start := time.Now()
	ds, err := gen.Generate(unitCfg, cfg.Encoding.HasClass, cfg.Encoding.AddBoundaryTags)
	if err != nil {
		log.Fatal().Err(err).Str("run_id", runID.String()).Msg("Encoding failed")
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("documents", len(ds.Documents)).
		Int("genes", len(ds.Genes)).
		Int("variations", len(ds.Variations)).
		Int("labels", len(ds.Labels)).
		Msg("Dataset encoded")

	out, err := os.Create(*output)
	if err != nil {
		log.Fatal().Err(err).Str("path", *output).Msg("Failed to create output file")
	}
	defer out.Close()
	if err := json.NewEncoder(out).Encode(ds); err != nil {
		log.Fatal().Err(err).Msg("Failed to write dataset")
	}
	log.Info().Str("path", *output).Msg("Dataset written")

	if *withVectors {
		m, err := embedding.LoadVectors(cfg.Embedding.VectorsPath, cfg.Embedding.Dim, voc.Words())
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Embedding.VectorsPath).Msg("Failed to load vectors")
		}
		rows, cols := m.Dims()
		log.Info().Int("rows", rows).Int("cols", cols).Msg("Embedding matrix loaded")
	}
}
