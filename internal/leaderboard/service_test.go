package leaderboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"

	"github.com/krishanu7/battleship-console/internal/leaderboard"
	"github.com/krishanu7/battleship-console/internal/session"
)

const selectStats = `SELECT player_id, wins, losses, elo FROM stats WHERE player_id = \$1 FOR UPDATE`

func TestUpdateElo(t *testing.T) {
	tests := []struct {
		winner, loser         int
		wantWinner, wantLoser int
	}{
		{1500, 1500, 1516, 1484},
		{1900, 1500, 1902, 1498},
		{1500, 1900, 1529, 1871},
	}
	for _, tt := range tests {
		w, l := leaderboard.UpdateElo(tt.winner, tt.loser)
		if w != tt.wantWinner || l != tt.wantLoser {
			t.Errorf("UpdateElo(%d, %d): want=(%d, %d), have=(%d, %d)",
				tt.winner, tt.loser, tt.wantWinner, tt.wantLoser, w, l)
		}
	}
}

func TestRecordResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	cols := []string{"player_id", "wins", "losses", "elo"}
	mock.ExpectBegin()
	mock.ExpectQuery(selectStats).WithArgs("p1").WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery(selectStats).WithArgs(session.BotID).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(session.BotID, 2, 1, 1500))
	mock.ExpectExec("INSERT INTO stats").WithArgs("p1", 1, 0, 1516).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO stats").WithArgs(session.BotID, 2, 2, 1484).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := leaderboard.NewService(db, zap.NewNop())
	err = s.RecordResult(context.Background(), session.Result{GameID: "g1", WinnerID: "p1", LoserID: session.BotID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordResult_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	cols := []string{"player_id", "wins", "losses", "elo"}
	mock.ExpectBegin()
	mock.ExpectQuery(selectStats).WithArgs(session.BotID).WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery(selectStats).WithArgs("p1").WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectExec("INSERT INTO stats").WithArgs(session.BotID, 1, 0, 1516).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO stats").WithArgs("p1", 0, 1, 1484).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	s := leaderboard.NewService(db, zap.NewNop())
	err = s.RecordResult(context.Background(), session.Result{WinnerID: session.BotID, LoserID: "p1"})
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordResult_ReadFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(selectStats).WithArgs("p1").WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	s := leaderboard.NewService(db, zap.NewNop())
	err = s.RecordResult(context.Background(), session.Result{WinnerID: "p1", LoserID: session.BotID})
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetLeaderboard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"player_id", "username", "wins", "losses", "elo", "updated_at"}).
		AddRow("u1", "alice", 5, 1, 1580, "2026-10-01T10:00:00Z").
		AddRow(session.BotID, session.BotID, 1, 5, 1420, "2026-10-01T10:00:00Z")
	mock.ExpectQuery("SELECT s.player_id").WithArgs(10).WillReturnRows(rows)

	entries, err := leaderboard.NewService(db, zap.NewNop()).GetLeaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, have := 2, len(entries); want != have {
		t.Fatalf("want %d entries, have %d", want, have)
	}
	if want, have := "alice", entries[0].Username; want != have {
		t.Errorf("want=%q, have=%q", want, have)
	}
	if want, have := 1580, entries[0].Elo; want != have {
		t.Errorf("want=%d, have=%d", want, have)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
