package matching

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyVocabulary is returned when a vocabulary has no skills to scan for.
var ErrEmptyVocabulary = errors.New("vocabulary has no skills")

// Vocabulary holds the ordered term lists the engine scans for.
// Order matters: it drives tie-breaking in skill ranking and the
// order of missing skills and keywords.
type Vocabulary struct {
	Version         string              `yaml:"version" json:"version"`
	Skills          []string            `yaml:"skills" json:"skills"`
	Keywords        []string            `yaml:"keywords" json:"keywords"`
	MissingSkills   []string            `yaml:"missing_skills" json:"missingSkills"`
	RelatedKeywords map[string][]string `yaml:"related_keywords" json:"relatedKeywords"`
}

const defaultVocabularyVersion = "builtin:v1"

// DefaultVocabulary returns the built-in term lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Version: defaultVocabularyVersion,
		Skills: []string{
			"javascript", "typescript", "react", "node.js", "python", "java", "sql",
			"aws", "docker", "kubernetes", "git", "agile", "scrum", "html", "css",
			"mongodb", "postgresql", "redis", "graphql", "rest api", "microservices",
			"vue.js", "angular", "express", "django", "flask", "spring boot",
			"product management", "ux design", "ui design", "figma", "sketch",
			"user research", "prototyping", "wireframing", "a/b testing",
			"data analysis", "machine learning", "artificial intelligence",
			"devops", "ci/cd", "jenkins", "terraform", "ansible",
		},
		Keywords: []string{
			"agile", "scrum", "kanban", "ci/cd", "devops", "microservices",
			"api", "rest", "graphql", "database", "cloud", "security",
			"testing", "debugging", "optimization", "scalability",
			"collaboration", "leadership", "mentoring", "communication",
		},
		MissingSkills: []string{
			"machine learning", "data science", "blockchain", "mobile development",
			"ios", "android", "flutter", "react native", "vue.js", "angular",
			"golang", "rust", "scala", "kotlin", "swift", "c++", "c#",
			"elasticsearch", "kafka", "rabbitmq", "nginx", "apache",
		},
		RelatedKeywords: map[string][]string{
			"javascript": {"ES6", "Node.js", "npm", "webpack", "babel"},
			"react":      {"JSX", "Redux", "hooks", "components", "Next.js"},
			"python":     {"Django", "Flask", "pandas", "numpy", "pip"},
			"aws":        {"EC2", "S3", "Lambda", "RDS", "CloudFormation"},
			"docker":     {"containers", "Kubernetes", "microservices", "DevOps"},
			"sql":        {"PostgreSQL", "MySQL", "database", "queries", "optimization"},
		},
	}
}

// LoadVocabulary reads a YAML vocabulary file. Slots left empty in the
// file fall back to the built-in lists.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes a YAML vocabulary document.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var raw Vocabulary
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}

	def := DefaultVocabulary()
	out := Vocabulary{
		Version:         strings.TrimSpace(raw.Version),
		Skills:          normalizeTerms(raw.Skills),
		Keywords:        normalizeTerms(raw.Keywords),
		MissingSkills:   normalizeTerms(raw.MissingSkills),
		RelatedKeywords: normalizeRelated(raw.RelatedKeywords),
	}
	if out.Version == "" {
		out.Version = "custom"
	}
	if len(out.Skills) == 0 {
		out.Skills = def.Skills
	}
	if len(out.Keywords) == 0 {
		out.Keywords = def.Keywords
	}
	if len(out.MissingSkills) == 0 {
		out.MissingSkills = def.MissingSkills
	}
	if len(out.RelatedKeywords) == 0 {
		out.RelatedKeywords = def.RelatedKeywords
	}
	return out, out.Validate()
}

// Validate reports whether the vocabulary can be used by the engine.
func (v Vocabulary) Validate() error {
	if len(v.Skills) == 0 {
		return ErrEmptyVocabulary
	}
	return nil
}

// YAML encodes the vocabulary in the same shape LoadVocabulary reads.
func (v Vocabulary) YAML() ([]byte, error) {
	return yaml.Marshal(v)
}

func normalizeTerms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, term := range in {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		out = append(out, term)
	}
	return out
}

func normalizeRelated(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for skill, related := range in {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" {
			continue
		}
		kept := make([]string, 0, len(related))
		for _, r := range related {
			if r = strings.TrimSpace(r); r != "" {
				kept = append(kept, r)
			}
		}
		out[key] = kept
	}
	return out
}
