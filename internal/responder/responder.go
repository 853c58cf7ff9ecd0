// File: internal/responder/responder.go

// Package responder selects canned drone-assistant responses by language
// and topic. It is pure lookup over immutable tables: no state, no I/O,
// and Resolve is total over every input.
package responder

import (
	"strings"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

// keywordGroup maps a set of case-insensitive substrings to a topic.
// Groups are checked in order; the first match wins.
type keywordGroup struct {
	topic    domain.Topic
	keywords []string
}

var keywordGroups = []keywordGroup{
	{domain.TopicAssembly, []string{"assembly", "assemble"}},
	{domain.TopicComponents, []string{"component", "parts"}},
	{domain.TopicMaintenance, []string{"maintenance", "maintain"}},
	{domain.TopicRules, []string{"dgca", "rules", "regulation"}},
	{domain.TopicSimulation, []string{"simulation", "simscape"}},
	{domain.TopicUseCases, []string{"agriculture", "delivery", "use case"}},
}

// InferTopic matches userMessage against the ordered keyword groups.
// The boolean is false when no group matches.
func InferTopic(userMessage string) (domain.Topic, bool) {
	lower := strings.ToLower(userMessage)
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.topic, true
			}
		}
	}
	return "", false
}

// Resolve returns the canned response for the given language and topic.
// When topic is empty it is inferred from userMessage. Unknown languages
// fall back to the default language's table; languages without an entry
// for the chosen topic fall back to that language's default response.
func Resolve(userMessage string, language domain.LanguageCode, topic domain.Topic) string {
	table, ok := responses[language]
	if !ok {
		table = responses[domain.DefaultLanguage]
	}

	if topic == "" {
		if inferred, matched := InferTopic(userMessage); matched {
			topic = inferred
		}
	}
	if topic != "" {
		if text, ok := table.topics[topic]; ok {
			return text
		}
	}
	return table.fallback
}
