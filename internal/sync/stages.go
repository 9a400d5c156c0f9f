package sync

import "slices"

// relevantStages is the allow-list of interview stage titles that are mirrored locally
var relevantStages = stageSet(
	"First Round",
	"Second Round",
	"Talent Acquisition Interview",
	"First Stage Interview",
	"Final Stage Interview",
	"Assessment Day",
	"TA Screen",
	"In Person or Virtual Interview with Hiring Team",
	"TA Interview",
)

func stageSet(titles ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		set[title] = struct{}{}
	}
	return set
}

// IsRelevantStage reports whether an application in the given stage should be synced.
// Titles are matched exactly.
func IsRelevantStage(title string) bool {
	_, ok := relevantStages[title]
	return ok
}

// RelevantStages returns the sorted stage allow-list
func RelevantStages() []string {
	stages := make([]string, 0, len(relevantStages))
	for title := range relevantStages {
		stages = append(stages, title)
	}
	slices.Sort(stages)
	return stages
}
