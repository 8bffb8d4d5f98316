// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
)

//go:embed rules/*.yaml
var embeddedRules embed.FS

const (
	bannedPhrasesFile    = "banned_phrases.yaml"
	ctaPatternsFile      = "cta_patterns.yaml"
	categoryKeywordsFile = "category_keywords.yaml"
)

// RuleSet holds the three language-keyed keyword lists used by the
// linguistic and relevance scorers. The contract for every lookup is
// "absent language means skip the check", never an error, so scorer logic
// stays total.
type RuleSet struct {
	banned   map[string][]string
	cta      map[string][]string
	category map[string][]string
}

// DefaultRules loads the rule lists shipped with the binary.
func DefaultRules() (*RuleSet, error) {
	return loadRules(func(name string) ([]byte, error) {
		return embeddedRules.ReadFile("rules/" + name)
	})
}

// LoadRules loads rule lists from dir. Files missing from dir fall back to
// the embedded defaults, so deployments can override a single list.
func LoadRules(dir string) (*RuleSet, error) {
	return loadRules(func(name string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return embeddedRules.ReadFile("rules/" + name)
		}
		return data, err
	})
}

func loadRules(read func(name string) ([]byte, error)) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, f := range []struct {
		name string
		dest *map[string][]string
	}{
		{bannedPhrasesFile, &rs.banned},
		{ctaPatternsFile, &rs.cta},
		{categoryKeywordsFile, &rs.category},
	} {
		data, err := read(f.name)
		if err != nil {
			return nil, fmt.Errorf("reading rule file %s: %w", f.name, err)
		}
		lists := make(map[string][]string)
		if err := yaml.Unmarshal(data, &lists); err != nil {
			return nil, fmt.Errorf("parsing rule file %s: %w", f.name, err)
		}
		*f.dest = lowerLists(lists)
	}
	return rs, nil
}

// lowerLists lowercases keys and values once at load time; all matching is
// case-insensitive substring matching against lowercased text.
func lowerLists(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for lang, list := range in {
		lowered := make([]string, 0, len(list))
		for _, entry := range list {
			entry = strings.ToLower(strings.TrimSpace(entry))
			if entry != "" {
				lowered = append(lowered, entry)
			}
		}
		out[strings.ToLower(lang)] = lowered
	}
	return out
}

// BannedPhrases returns the boilerplate-phrase list for lang. The second
// return is false when no list exists for the language.
func (r *RuleSet) BannedPhrases(lang string) ([]string, bool) {
	return lookup(r.banned, lang)
}

// CTAPatterns returns the call-to-action pattern list for lang.
func (r *RuleSet) CTAPatterns(lang string) ([]string, bool) {
	return lookup(r.cta, lang)
}

// CategoryKeywords returns the property-category keyword list for lang.
func (r *RuleSet) CategoryKeywords(lang string) ([]string, bool) {
	return lookup(r.category, lang)
}

func lookup(lists map[string][]string, lang string) ([]string, bool) {
	list, ok := lists[normalizeLang(lang)]
	if !ok || len(list) == 0 {
		return nil, false
	}
	return list, true
}

// normalizeLang reduces a BCP 47 tag to its base language ("pt-BR" → "pt")
// so regional variants share one rule list. Unparseable tags are matched
// verbatim, lowercased.
func normalizeLang(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return strings.ToLower(tag)
	}
	base, _ := t.Base()
	return base.String()
}
