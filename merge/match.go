package merge

import "strings"

// Columns the merge appends after the catalog's own header.
const (
	ColMajor       = "Major"
	ColActivities  = "Activities"
	ColProgramList = "ProgramList"
)

// matchSurvey returns the first entry, in survey order, whose
// normalized model contains the catalog key or is contained by it.
// First match wins: respondents often type only part of the model name,
// and the published dataset was built with exactly this policy, so row
// order of the survey file is part of the contract.
func matchSurvey(entries []SurveyEntry, key string) (SurveyEntry, bool) {
	for _, e := range entries {
		if e.NormalizedModel == "" {
			continue
		}
		if strings.Contains(key, e.NormalizedModel) || strings.Contains(e.NormalizedModel, key) {
			return e, true
		}
	}
	return SurveyEntry{}, false
}

// emptyProgramList reports placeholder answers in the free-text
// software-list question.
func emptyProgramList(v string) bool {
	switch strings.ToLower(v) {
	case "", "none", "nan":
		return true
	}
	return false
}

// Annotate writes Major/Activities/ProgramList onto a catalog row:
// from the matching respondent when there is one, from the spec
// classifier otherwise. A matched but empty program list also falls
// back to the classifier, keeping the respondent's major and
// activities. Run after ImputeHardware so the classifier sees the
// filled graphics text.
func Annotate(row map[string]string, entries []SurveyEntry) {
	key := Normalize(row[colModel])
	if e, ok := matchSurvey(entries, key); ok {
		row[ColMajor] = e.Major
		row[ColActivities] = e.Activities
		row[ColProgramList] = e.ProgramList
		if emptyProgramList(row[ColProgramList]) {
			row[ColProgramList] = Inferred(row).ProgramList
		}
		return
	}
	b := Inferred(row)
	row[ColMajor] = b.Major
	row[ColActivities] = b.Activities
	row[ColProgramList] = b.ProgramList
}
