package common

type UserStatsResult struct {
	TotalProblems     int                 `json:"total_problems"`
	SolvedProblems    int                 `json:"solved_problems"`
	EasySolved        int                 `json:"easy_solved"`
	MediumSolved      int                 `json:"medium_solved"`
	HardSolved        int                 `json:"hard_solved"`
	AcceptanceRate    float64             `json:"acceptance_rate"`
	Ranking           int                 `json:"ranking"`
	Streak            int                 `json:"streak"`
	RecentSubmissions []*SubmissionResult `json:"recent_submissions"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	TotalSolved int    `json:"total_solved"`
}
