package recommend

import "sort"

// RankedHobby is one entry of a ranked hobby list.
type RankedHobby struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Reasons  []string `json:"reasons"`
}

// RankHobbies scores every hobby in metas for p and orders them by score,
// highest first. Equal scores keep their order from metas.
func RankHobbies(p Profile, metas []HobbyMeta) []RankedHobby {
	ranked := make([]RankedHobby, 0, len(metas))
	for _, m := range metas {
		s := ScoreHobby(p, m)
		ranked = append(ranked, RankedHobby{
			Slug:     m.Slug,
			Name:     m.Name,
			Icon:     m.Icon,
			Score:    s.Score,
			MaxScore: MaxHobbyScore,
			Reasons:  s.Reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopHobbies returns at most n entries from the head of ranked.
func TopHobbies(ranked []RankedHobby, n int) []RankedHobby {
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
