// Command pawnstorm plays chess against the built-in engine in the
// terminal, and exposes the engine's search, evaluation, and perft as
// one-shot subcommands for scripting.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mhoff/pawnstorm/internal/board"
	"github.com/mhoff/pawnstorm/internal/engine"
	"github.com/mhoff/pawnstorm/internal/storage"
)

func main() {
	var (
		mode        = flag.String("mode", "play", "play, bestmove, eval, or perft")
		depth       = flag.Int("depth", 0, "search depth (0 = saved preference)")
		fen         = flag.String("fen", "", "starting position in FEN (default: initial position)")
		dbDir       = flag.String("db", "", "database directory (default: platform data dir)")
		resumeID    = flag.String("resume", "", "resume the saved game with this ID")
		saveID      = flag.String("save", "", "save the game under this ID when quitting")
		engineColor = flag.String("engine-color", "", "color the engine plays: white or black")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *dbDir == "" {
		*dbDir = os.Getenv("PAWNSTORM_DB")
	}

	if err := run(*mode, *depth, *fen, *dbDir, *resumeID, *saveID, *engineColor); err != nil {
		log.Fatal().Err(err).Msg("pawnstorm")
	}
}

func run(mode string, depth int, fen, dbDir, resumeID, saveID, engineColor string) error {
	switch mode {
	case "play":
		return play(depth, fen, dbDir, resumeID, saveID, engineColor)
	case "bestmove":
		pos, err := startPosition(fen)
		if err != nil {
			return err
		}
		if depth == 0 {
			depth = storage.DefaultPreferences().SearchDepth
		}
		m, ok, err := engine.BestMove(pos, pos.SideToMove, depth)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(pos.Outcome())
			return nil
		}
		fmt.Println(m)
		return nil
	case "eval":
		pos, err := startPosition(fen)
		if err != nil {
			return err
		}
		fmt.Printf("%+.2f\n", engine.EvaluatePawns(pos, pos.SideToMove))
		return nil
	case "perft":
		pos, err := startPosition(fen)
		if err != nil {
			return err
		}
		if depth == 0 {
			depth = 4
		}
		fmt.Println(engine.Perft(pos, depth))
		return nil
	default:
		return fmt.Errorf("unknown mode: %s", mode)
	}
}

func startPosition(fen string) (*board.Position, error) {
	if fen == "" {
		return board.NewPosition(), nil
	}
	return board.ParseFEN(fen)
}

func openStorage(dbDir string) (*storage.Storage, error) {
	if dbDir == "" {
		return storage.OpenDefault()
	}
	return storage.Open(dbDir)
}

func play(depth int, fen, dbDir, resumeID, saveID, engineColor string) error {
	store, err := openStorage(dbDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}
	if depth == 0 {
		depth = prefs.SearchDepth
	}

	aiColor := prefs.EngineColor
	switch strings.ToLower(engineColor) {
	case "":
	case "white":
		aiColor = board.White
	case "black":
		aiColor = board.Black
	default:
		return fmt.Errorf("invalid engine color: %s", engineColor)
	}

	var pos *board.Position
	if resumeID != "" {
		game, err := store.LoadGame(resumeID)
		if err != nil {
			return fmt.Errorf("resuming game %q: %w", resumeID, err)
		}
		pos, err = board.FromSnapshot(game.Snapshot)
		if err != nil {
			return fmt.Errorf("resuming game %q: %w", resumeID, err)
		}
		aiColor = game.EngineColor
		depth = game.SearchDepth
		if saveID == "" {
			saveID = game.ID
		}
		log.Info().Str("id", resumeID).Msg("resumed saved game")
	} else {
		pos, err = startPosition(fen)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Engine plays %s at depth %d. Enter moves as e2e4 (e7e8q to promote).\n", aiColor, depth)
	fmt.Println("Commands: moves, fen, save, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		fmt.Println(pos)

		if outcome := pos.Outcome(); outcome.Over() {
			fmt.Println(outcome)
			return nil
		}

		if pos.SideToMove == aiColor {
			m, ok, err := engine.BestMove(pos, aiColor, depth)
			if err != nil {
				return fmt.Errorf("engine search: %w", err)
			}
			if !ok {
				fmt.Println(pos.Outcome())
				return nil
			}
			pos.Make(m)
			fmt.Printf("Engine plays %s\n", m)
			continue
		}

		fmt.Printf("%s to move> ", pos.SideToMove)
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "":
			continue
		case "quit":
			if saveID != "" {
				if err := saveGame(store, saveID, pos, aiColor, depth); err != nil {
					return err
				}
				fmt.Printf("Game saved as %q.\n", saveID)
			}
			return nil
		case "save":
			id := saveID
			if id == "" {
				id = "autosave"
			}
			if err := saveGame(store, id, pos, aiColor, depth); err != nil {
				return err
			}
			fmt.Printf("Game saved as %q.\n", id)
			continue
		case "moves":
			legal := pos.LegalMoves(pos.SideToMove)
			names := make([]string, legal.Len())
			for i := range names {
				names[i] = legal.Get(i).String()
			}
			fmt.Println(strings.Join(names, " "))
			continue
		case "fen":
			fmt.Println(pos.ToFEN())
			continue
		}

		m, err := board.ParseMove(input, pos)
		if err != nil {
			fmt.Println(err)
			continue
		}
		pos.Make(m)
	}
}

func saveGame(store *storage.Storage, id string, pos *board.Position, aiColor board.Color, depth int) error {
	return store.SaveGame(&storage.SavedGame{
		ID:          id,
		Snapshot:    pos.Snapshot(),
		EngineColor: aiColor,
		SearchDepth: depth,
	})
}
