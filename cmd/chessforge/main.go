// Command chessforge is a line-oriented driver over the session facade —
// not a UCI engine; it exists to exercise get_game/do_move/get_history/
// restart interactively from a terminal.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chessforge/session"
)

func main() {
	s := session.New()
	printBoard(s)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("commands: move <sf> <sr> <tf> <tr> [promo], history, restart, quit")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		switch strings.ToLower(tokens[0]) {
		case "move":
			handleMove(s, tokens[1:])
		case "history":
			printHistory(s)
		case "restart":
			s.Restart()
			fmt.Println("restarted")
			printBoard(s)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", tokens[0])
		}
	}
}

func handleMove(s *session.Session, args []string) {
	if len(args) != 4 && len(args) != 5 {
		fmt.Println("usage: move <source-file> <source-rank> <target-file> <target-rank> [promotion]")
		return
	}
	sf, err1 := strconv.Atoi(args[0])
	sr, err2 := strconv.Atoi(args[1])
	tf, err3 := strconv.Atoi(args[2])
	tr, err4 := strconv.Atoi(args[3])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		fmt.Println("ranks and files must be integers in [0,7]")
		return
	}
	req := session.MoveRequest{SourceRank: sr, SourceFile: sf, TargetRank: tr, TargetFile: tf}
	if len(args) == 5 {
		req.Promotion = strings.ToLower(args[4])
	}
	if !s.DoMove(req) {
		fmt.Println("illegal move")
		return
	}
	printBoard(s)
}

func printBoard(s *session.Session) {
	view := s.GetGame()
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			cell := view.Board.Ranks[rank][file]
			if cell == nil {
				fmt.Print(". ")
				continue
			}
			fmt.Print(string(pieceLetter(cell.Piece, cell.Player)), " ")
		}
		fmt.Println()
	}
	fmt.Println("side to move:", view.Player)
}

func pieceLetter(piece, player string) byte {
	var ch byte
	switch piece {
	case "pawn":
		ch = 'p'
	case "knight":
		ch = 'n'
	case "bishop":
		ch = 'b'
	case "rook":
		ch = 'r'
	case "queen":
		ch = 'q'
	case "king":
		ch = 'k'
	default:
		return '?'
	}
	if player == "white" {
		ch -= 'a' - 'A'
	}
	return ch
}

func printHistory(s *session.Session) {
	for _, turn := range s.GetHistory() {
		if turn.Black != nil {
			fmt.Printf("%d. %s %s\n", turn.Number, turn.White.SAN, turn.Black.SAN)
		} else {
			fmt.Printf("%d. %s\n", turn.Number, turn.White.SAN)
		}
	}
}
