package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/domain/statline"
	"github.com/matchdayhq/roster-api/internal/platform/logging"
)

const importWorkerCount = 4

// MatchReportInput is one free-text match report for one player.
type MatchReportInput struct {
	PlayerID string
	Text     string
}

// ImportReportResult is the per-report outcome of a bulk import.
type ImportReportResult struct {
	PlayerID string
	Status   string
	Message  string
}

// ImportResult summarizes a bulk match-report import.
type ImportResult struct {
	SuccessCount int
	FailedCount  int
	Reports      []ImportReportResult
}

const (
	importStatusSuccess = "success"
	importStatusFailed  = "failed"
)

// StatsService folds parsed match reports into player career counters and
// position history.
type StatsService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewStatsService(playerRepo player.Repository, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// RecordMatchReport parses one free-text report and applies it: counters are
// incremented, matches played bumps by one, and the player's current
// position is appended to the history log.
func (s *StatsService) RecordMatchReport(ctx context.Context, playerID, text string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.RecordMatchReport")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	line, err := statline.Parse(text)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	item = applyStatLine(item, line)
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player stats: %w", err)
	}

	s.logger.InfoContext(ctx, "match report recorded",
		"player_id", item.ID,
		"goals", line.Goals,
		"assists", line.Assists,
		"yellow_cards", line.YellowCards,
		"red_cards", line.RedCards,
	)

	return item, nil
}

// ImportMatchReports applies a batch of reports over a worker pool. Reports
// are grouped by player so one player's reports apply in order without
// racing the read-modify-write cycle.
func (s *StatsService) ImportMatchReports(ctx context.Context, reports []MatchReportInput) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ImportMatchReports")
	defer span.End()

	if len(reports) == 0 {
		return ImportResult{}, fmt.Errorf("%w: at least one report is required", ErrInvalidInput)
	}

	byPlayer := make(map[string][]MatchReportInput)
	order := make([]string, 0, len(reports))
	for _, report := range reports {
		playerID := strings.TrimSpace(report.PlayerID)
		if _, seen := byPlayer[playerID]; !seen {
			order = append(order, playerID)
		}
		byPlayer[playerID] = append(byPlayer[playerID], report)
	}

	workerPool, err := ants.NewPool(importWorkerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var resultMu sync.Mutex
	rows := make([]ImportReportResult, 0, len(reports))

	var workers sync.WaitGroup
	for _, playerID := range order {
		playerID := playerID
		playerReports := byPlayer[playerID]
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			for _, report := range playerReports {
				row := ImportReportResult{PlayerID: playerID, Status: importStatusSuccess}
				if _, applyErr := s.RecordMatchReport(ctx, playerID, report.Text); applyErr != nil {
					row.Status = importStatusFailed
					row.Message = applyErr.Error()
					failedCount.Add(1)
				} else {
					successCount.Add(1)
				}

				resultMu.Lock()
				rows = append(rows, row)
				resultMu.Unlock()
			}
		}); err != nil {
			workers.Done()
			return ImportResult{}, fmt.Errorf("submit reports to worker pool: %w", err)
		}
	}
	workers.Wait()

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PlayerID < rows[j].PlayerID
	})

	return ImportResult{
		SuccessCount: int(successCount.Load()),
		FailedCount:  int(failedCount.Load()),
		Reports:      rows,
	}, nil
}

func applyStatLine(item player.Player, line statline.StatLine) player.Player {
	item.Stats.Goals += line.Goals
	item.Stats.Assists += line.Assists
	item.Stats.YellowCards += line.YellowCards
	item.Stats.RedCards += line.RedCards
	item.Stats.MatchesPlayed++
	item.PositionHistory = append(append([]player.Position(nil), item.PositionHistory...), item.Position)
	return item
}
