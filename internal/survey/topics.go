// Package survey computes ranked frequency breakdowns over the
// multi-value columns of a loaded survey table.
package survey

// AllCountries is the sentinel country filter meaning "no filter".
const AllCountries = "All"

// Topic is one of the multi-value survey columns available for
// detailed analysis.
type Topic string

const (
	TopicLanguagesUsed    Topic = "LanguageHaveWorkedWith"
	TopicLanguagesDesired Topic = "LanguageWantToWorkWith"
	TopicDatabasesUsed    Topic = "DatabaseHaveWorkedWith"
	TopicDatabasesDesired Topic = "DatabaseWantToWorkWith"
	TopicPlatformsUsed    Topic = "PlatformHaveWorkedWith"
	TopicPlatformsDesired Topic = "PlatformWantToWorkWith"
)

// Topics lists every analysis topic in selectbox order.
func Topics() []Topic {
	return []Topic{
		TopicLanguagesUsed,
		TopicLanguagesDesired,
		TopicDatabasesUsed,
		TopicDatabasesDesired,
		TopicPlatformsUsed,
		TopicPlatformsDesired,
	}
}

// Column returns the survey column the topic reads.
func (t Topic) Column() string { return string(t) }

// Label returns the human-facing selectbox label.
func (t Topic) Label() string {
	switch t {
	case TopicLanguagesUsed:
		return "Most used languages"
	case TopicLanguagesDesired:
		return "Most desired languages"
	case TopicDatabasesUsed:
		return "Most used databases"
	case TopicDatabasesDesired:
		return "Most desired databases"
	case TopicPlatformsUsed:
		return "Most used platforms"
	case TopicPlatformsDesired:
		return "Most desired platforms"
	default:
		return string(t)
	}
}

// TopicByLabel resolves a selectbox label back to its topic.
func TopicByLabel(label string) (Topic, bool) {
	for _, t := range Topics() {
		if t.Label() == label || string(t) == label {
			return t, true
		}
	}
	return "", false
}
