package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/usecase"
)

// Replies contains the composer copy loaded from YAML
type Replies struct {
	AckHeader        string   `yaml:"ack_header"`
	DigestHeader     string   `yaml:"digest_header"`
	HelpIntro        string   `yaml:"help_intro"`
	HelpExamples     []string `yaml:"help_examples"`
	RecommendFailure string   `yaml:"recommend_failure"`
	ProcessFailure   string   `yaml:"process_failure"`
}

// LoadReplies loads reply copy from a YAML file. When configPath is empty a
// few conventional locations are tried; when no file is found the built-in
// defaults are returned.
func LoadReplies(configPath string) (*Replies, error) {
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/replies.yaml",
			"./configs/replies.yaml",
		}
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, "configs", "replies.yaml"))
		}
	}

	var data []byte
	for _, p := range paths {
		if p == "" {
			continue
		}
		if b, err := os.ReadFile(p); err == nil {
			data = b
			break
		}
	}

	if data == nil {
		return defaultReplies(), nil
	}

	var replies Replies
	if err := yaml.Unmarshal(data, &replies); err != nil {
		return nil, fmt.Errorf("failed to parse replies.yaml: %w", err)
	}
	replies.fillDefaults()
	return &replies, nil
}

// ToTemplates converts the loaded copy into the composer's template struct
func (r *Replies) ToTemplates() usecase.ReplyTemplates {
	return usecase.ReplyTemplates{
		AckHeader:        r.AckHeader,
		DigestHeader:     r.DigestHeader,
		HelpIntro:        r.HelpIntro,
		HelpExamples:     r.HelpExamples,
		RecommendFailure: r.RecommendFailure,
		ProcessFailure:   r.ProcessFailure,
	}
}

func defaultReplies() *Replies {
	defaults := usecase.DefaultReplyTemplates()
	return &Replies{
		AckHeader:        defaults.AckHeader,
		DigestHeader:     defaults.DigestHeader,
		HelpIntro:        defaults.HelpIntro,
		HelpExamples:     defaults.HelpExamples,
		RecommendFailure: defaults.RecommendFailure,
		ProcessFailure:   defaults.ProcessFailure,
	}
}

// fillDefaults fills in default values for empty fields
func (r *Replies) fillDefaults() {
	defaults := defaultReplies()
	if r.AckHeader == "" {
		r.AckHeader = defaults.AckHeader
	}
	if r.DigestHeader == "" {
		r.DigestHeader = defaults.DigestHeader
	}
	if r.HelpIntro == "" {
		r.HelpIntro = defaults.HelpIntro
	}
	if len(r.HelpExamples) == 0 {
		r.HelpExamples = defaults.HelpExamples
	}
	if r.RecommendFailure == "" {
		r.RecommendFailure = defaults.RecommendFailure
	}
	if r.ProcessFailure == "" {
		r.ProcessFailure = defaults.ProcessFailure
	}
}
