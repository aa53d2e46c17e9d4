package model

import (
	"time"

	"github.com/google/uuid"
)

// ScoreEntry is one append-only score log row, written on every sync
// that added XP and aggregated for the daily/weekly leaderboards.
type ScoreEntry struct {
	ID     uuid.UUID
	UserID string
	Name   string
	Score  int
	TS     time.Time
}

type LeaderboardRow struct {
	Rank   int    `json:"rank"`
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

type LeaderboardPeriod = string

const (
	PeriodAll    LeaderboardPeriod = "all"
	PeriodDaily  LeaderboardPeriod = "daily"
	PeriodWeekly LeaderboardPeriod = "weekly"
)
