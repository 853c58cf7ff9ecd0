// File: internal/domain/topic.go
package domain

// Topic is one of the fixed drone subject categories used to pick a
// canned response. The empty Topic means "infer from the user message".
type Topic string

const (
	TopicAssembly    Topic = "assembly"
	TopicComponents  Topic = "components"
	TopicMaintenance Topic = "maintenance"
	TopicSimulation  Topic = "simulation"
	TopicRules       Topic = "rules"
	TopicUseCases    Topic = "usecases"
)

// Topics lists every subject category, in presentation order.
var Topics = []Topic{
	TopicAssembly, TopicComponents, TopicMaintenance,
	TopicSimulation, TopicRules, TopicUseCases,
}

// Valid reports whether t names a known subject category.
func (t Topic) Valid() bool {
	for _, topic := range Topics {
		if t == topic {
			return true
		}
	}
	return false
}
