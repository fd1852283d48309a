package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "ranking",
			objectType:  "3",
			identifier:  "all",
			paramsKey:   nil,
			expectedKey: "talatrivia:ranking:3:all",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "ranking",
			objectType:  "3",
			identifier:  "all",
			paramsKey:   []string{},
			expectedKey: "talatrivia:ranking:3:all",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "trivia",
			objectType:  "detail",
			identifier:  "5",
			paramsKey:   []string{"a", "b"},
			expectedKey: "talatrivia:trivia:detail:5:a_b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestRankingKeys(t *testing.T) {
	tests := []struct {
		version  int64
		triviaID int64
		userID   string
		want     string
	}{
		{0, 0, "", "talatrivia:ranking:0:all:all"},
		{4, 5, "", "talatrivia:ranking:4:5:all"},
		{4, 0, "01HZ", "talatrivia:ranking:4:all:01HZ"},
		{7, 5, "01HZ", "talatrivia:ranking:7:5:01HZ"},
	}
	for _, tt := range tests {
		if got := RankingKey(tt.version, tt.triviaID, tt.userID); got != tt.want {
			t.Errorf("RankingKey(%d, %d, %q) = %v, want %v", tt.version, tt.triviaID, tt.userID, got, tt.want)
		}
	}
	if got := RankingVersionKey(); got != "talatrivia:ranking:version" {
		t.Errorf("RankingVersionKey() = %v", got)
	}
}
