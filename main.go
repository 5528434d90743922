package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"secondbest/engine"
	"secondbest/experiments"
	"secondbest/game"
	"secondbest/gamemaster"
	"secondbest/meta"
	"secondbest/player"
	"secondbest/searcher"
)

type config struct {
	mode       string
	depth      int
	goroutines int
	seed       uint64
	cache      bool
	games      int
	out        string
	position   string
	colour     string
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "w", "w or b to play that colour against the bot, p for two humans, selfplay, analyze or experiment")
	flag.IntVar(&cfg.depth, "depth", meta.SEARCH_DEPTH, "Plies searched beyond each candidate turn")
	flag.IntVar(&cfg.goroutines, "goroutines", 1, "Number of goroutines scoring candidate turns")
	flag.Uint64Var(&cfg.seed, "seed", 0, "Seed for tie breaks, 0 for a time based seed")
	flag.BoolVar(&cfg.cache, "cache", false, "Memoize searched positions")
	flag.IntVar(&cfg.games, "games", experiments.NumGames, "Games per matchup in experiment mode")
	flag.StringVar(&cfg.out, "out", "", "Output directory in experiment mode")
	flag.StringVar(&cfg.position, "position", "", `Board for analyze mode or the start of a game, e.g. "wb b . w"`)
	flag.StringVar(&cfg.colour, "colour", "w", "Colour to analyze, w or b")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("stopped")
		os.Exit(1)
	}
}

func run(cfg config) error {
	board, err := game.ParseBoard(cfg.position)
	if err != nil {
		return fmt.Errorf("parsing -position: %w", err)
	}

	switch cfg.mode {
	case "w":
		return play(board, human(game.White), bot(cfg, game.Black))
	case "b":
		return play(board, bot(cfg, game.White), human(game.Black))
	case "p":
		return play(board, human(game.White), human(game.Black))
	case "selfplay":
		return play(board, bot(cfg, game.White), bot(cfg, game.Black))
	case "analyze":
		return analyze(cfg, board)
	case "experiment":
		out := cfg.out
		if out == "" {
			out = filepath.Join("experiments", "depth", time.Now().UTC().Format("20060102T150405Z"))
		}
		return experiments.RunDepthExperiment(out, experiments.DepthConfigs, cfg.games)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func newSearcher(cfg config) *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithDepth(cfg.depth),
		searcher.WithGoroutines(cfg.goroutines),
	}
	if cfg.seed != 0 {
		options = append(options, searcher.WithSeed(cfg.seed))
	}
	if cfg.cache {
		options = append(options, searcher.WithCache())
	}
	return searcher.NewSearcher(options...)
}

func bot(cfg config, colour game.Colour) player.Player {
	return player.NewBot(colour, newSearcher(cfg))
}

func human(colour game.Colour) player.Player {
	return player.NewHuman(colour, os.Stdin, os.Stdout)
}

func play(board game.Board, white, black player.Player) error {
	announce := func(u gamemaster.Update) {
		fmt.Printf("%d. %v.\n", u.Ply, u.Turn)
	}
	e := engine.Local([]player.Player{white, black}, engine.WithBoard(board), engine.WithObserver(announce))

	result, err := e.Run()
	if err != nil {
		return err
	}

	player.RenderBoard(os.Stdout, result.Board)
	if winner, ok := result.Outcome.Winner(); ok {
		fmt.Printf("%s wins!\n", winner)
	} else {
		fmt.Println("Draw.")
	}
	return nil
}

func analyze(cfg config, board game.Board) error {
	var colour game.Colour
	switch cfg.colour {
	case "w":
		colour = game.White
	case "b":
		colour = game.Black
	default:
		return fmt.Errorf("unknown colour %q", cfg.colour)
	}

	ranking, err := newSearcher(cfg).Rank(colour, board)
	if err != nil {
		return err
	}

	player.RenderBoard(os.Stdout, board)
	for _, st := range ranking.Scored {
		fmt.Printf("%-28v %8.3f\n", st.Turn, st.Score)
	}
	fmt.Printf("best (%.3f): %v\n", ranking.BestScore, ranking.Best)
	fmt.Printf("second best (%.3f): %v\n", ranking.SecondBestScore, ranking.SecondBest)
	return nil
}
