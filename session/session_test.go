package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetGameReflectsStartingPosition(t *testing.T) {
	s := New()
	view := s.GetGame()
	if view.Player != "white" {
		t.Errorf("Player = %q, want white", view.Player)
	}
	cell := view.Board.Ranks[0][4]
	if cell == nil || cell.Piece != "king" || cell.Player != "white" {
		t.Errorf("e1 = %+v, want white king", cell)
	}
	if view.Board.Ranks[3][4] != nil {
		t.Errorf("e4 should be empty at the start")
	}
}

func TestGetPossibleMovesFromKnight(t *testing.T) {
	s := New()
	// White knight starts on b1 (rank 0, file 1).
	targets := s.GetPossibleMoves(0, 1)
	if len(targets) != 2 {
		t.Fatalf("got %d targets from b1, want 2", len(targets))
	}
}

func TestGetPossibleMovesOutOfRange(t *testing.T) {
	s := New()
	if got := s.GetPossibleMoves(-1, 0); got != nil {
		t.Errorf("out-of-range rank should return nil, got %v", got)
	}
}

func TestDoMoveAppliesHumanAndEngineReply(t *testing.T) {
	s := New()
	s.SetSearchDepth(1)
	// e2-e4
	ok := s.DoMove(MoveRequest{SourceRank: 1, SourceFile: 4, TargetRank: 3, TargetFile: 4})
	if !ok {
		t.Fatal("e2-e4 should be legal")
	}
	history := s.GetHistory()
	if len(history) != 1 {
		t.Fatalf("expected 1 turn after do_move, got %d", len(history))
	}
	if history[0].White.SAN != "e4" {
		t.Errorf("White SAN = %q, want e4", history[0].White.SAN)
	}
	if history[0].Black == nil {
		t.Error("expected an automatic Black reply")
	}
}

func TestDoMoveRejectsIllegalMove(t *testing.T) {
	s := New()
	ok := s.DoMove(MoveRequest{SourceRank: 1, SourceFile: 4, TargetRank: 4, TargetFile: 4})
	if ok {
		t.Error("e2-e5 is not a legal pawn move and should be rejected")
	}
	if len(s.GetHistory()) != 0 {
		t.Error("rejected move must not mutate history")
	}
}

func TestDoMoveRejectsOutOfRangeRequest(t *testing.T) {
	s := New()
	if s.DoMove(MoveRequest{SourceRank: 9, SourceFile: 4, TargetRank: 3, TargetFile: 4}) {
		t.Error("out-of-range source rank should be rejected")
	}
}

func TestGetPossibleCapturesExcludesQuietReach(t *testing.T) {
	s := New()
	matrix := s.GetPossibleCaptures()
	// Nb1 can reach a3 quietly but cannot capture there; a3 is empty.
	if attackers := matrix[2][0]; len(attackers) != 0 {
		t.Errorf("a3 attackers = %v, want none at the starting position", attackers)
	}
}

func TestRestartResetsState(t *testing.T) {
	s := New()
	s.SetSearchDepth(1)
	fresh := New().GetGame()

	s.DoMove(MoveRequest{SourceRank: 1, SourceFile: 4, TargetRank: 3, TargetFile: 4})
	s.Restart()

	if len(s.GetHistory()) != 0 {
		t.Error("Restart should clear history")
	}
	if diff := cmp.Diff(fresh, s.GetGame()); diff != "" {
		t.Errorf("Restart should reproduce a fresh GameView (-want +got):\n%s", diff)
	}
}
