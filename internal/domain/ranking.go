package domain

import "sort"

// TriviaScore is one participation's contribution to a leaderboard entry.
type TriviaScore struct {
	TriviaName string `json:"trivia_name"`
	Score      int    `json:"score"`
}

// LeaderboardEntry aggregates every participation of one user.
type LeaderboardEntry struct {
	UserID     string        `json:"user_id"`
	User       string        `json:"user"`
	TotalScore int           `json:"total_score"`
	Trivias    []TriviaScore `json:"trivias"`
}

// Rank groups participations by user, sums their scores and orders the
// result by total score descending. Ties are broken by username, then user id.
// Repeated participations in the same trivia are summed and each is listed.
func Rank(participations []Participation) []LeaderboardEntry {
	index := make(map[string]int)
	entries := make([]LeaderboardEntry, 0)

	for _, p := range participations {
		i, ok := index[p.UserID]
		if !ok {
			i = len(entries)
			index[p.UserID] = i
			entries = append(entries, LeaderboardEntry{
				UserID:  p.UserID,
				User:    p.Username,
				Trivias: []TriviaScore{},
			})
		}
		entries[i].TotalScore += p.Score
		entries[i].Trivias = append(entries[i].Trivias, TriviaScore{TriviaName: p.TriviaName, Score: p.Score})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].TotalScore != entries[b].TotalScore {
			return entries[a].TotalScore > entries[b].TotalScore
		}
		if entries[a].User != entries[b].User {
			return entries[a].User < entries[b].User
		}
		return entries[a].UserID < entries[b].UserID
	})
	return entries
}
