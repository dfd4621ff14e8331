package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/oncotext/genetext/genetext"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Encoding  EncodingConfig  `mapstructure:"encoding"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Corpus    CorpusConfig    `mapstructure:"corpus"`
}

// EncodingConfig stores the unit choices for dataset generation. The
// string-valued options are parsed into closed enumerations by the encoding
// package before use.
type EncodingConfig struct {
	GeneUnit        string `mapstructure:"geneUnit"`
	VariationUnit   string `mapstructure:"variationUnit"`
	DocUnit         string `mapstructure:"docUnit"`
	DocForm         string `mapstructure:"docForm"`
	DivideDocument  string `mapstructure:"divideDocument"`
	AddBoundaryTags bool   `mapstructure:"addBoundaryTags"`
	HasClass        bool   `mapstructure:"hasClass"`
}

// EmbeddingConfig stores pretrained word-vector settings.
type EmbeddingConfig struct {
	VectorsPath string `mapstructure:"vectorsPath"`
	Dim         int    `mapstructure:"dim"`
}

// CorpusConfig stores the input file locations.
type CorpusConfig struct {
	VariantsPath string `mapstructure:"variantsPath"`
	TextPath     string `mapstructure:"textPath"`
	VocabPath    string `mapstructure:"vocabPath"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("..")
		viper.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values; they mirror the historical default unit dict.
	viper.SetDefault("encoding.geneUnit", "words")
	viper.SetDefault("encoding.variationUnit", "words")
	viper.SetDefault("encoding.docUnit", "words")
	viper.SetDefault("encoding.docForm", "text")
	viper.SetDefault("encoding.divideDocument", "single_unit")
	viper.SetDefault("encoding.addBoundaryTags", false)
	viper.SetDefault("encoding.hasClass", false)

	viper.SetDefault("embedding.dim", internal.DefaultEmbeddingDim)
	viper.SetDefault("embedding.vectorsPath", internal.DefaultVectorsFile)

	viper.SetDefault("corpus.vocabPath", internal.DefaultVocabFile)

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. encoding.docUnit becomes ENCODING_DOCUNIT

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
