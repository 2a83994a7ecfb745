package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/dquillman/Q-Poker/internal/config"
	"github.com/dquillman/Q-Poker/internal/game"
	"github.com/dquillman/Q-Poker/internal/randutil"
	"github.com/dquillman/Q-Poker/internal/session"
)

// PlayCmd runs a headless session of the controlled seat against the
// configured scripted opponents. Without an interactive frontend the
// controlled seat plays itself through the same policy as everyone else.
type PlayCmd struct {
	Config       string `kong:"default='qpoker.hcl',help='HCL configuration file'"`
	Hands        int    `kong:"help='Override the configured hand cap'"`
	Seed         *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug        bool   `kong:"help='Enable debug logging'"`
	BankrollFile string `kong:"help='Persist the controlled stack to this file between runs'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting session", "seed", seed, "config", c.Config)

	sessCfg := session.Config{
		SmallBlind:  cfg.Table.SmallBlind,
		BigBlind:    cfg.Table.BigBlind,
		MaxHands:    cfg.Table.MaxHands,
		ActionDelay: time.Duration(cfg.Table.ActionDelayMs) * time.Millisecond,
		Logger:      logger,
	}
	if c.Hands > 0 {
		sessCfg.MaxHands = c.Hands
	}
	if c.BankrollFile != "" {
		sessCfg.Store = session.NewFileStore(c.BankrollFile)
	}

	sess, err := session.New(randutil.New(seed), cfg.BuildPlayers(), sessCfg)
	if err != nil {
		return err
	}

	tbl := sess.Table()
	tbl.SetListener(func(seat int, action game.Action, amount int) {
		logger.Info("action",
			"player", tbl.Players[seat].Name,
			"street", tbl.Street,
			"action", action,
			"amount", amount,
			"pot", tbl.Pot())
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := sess.Run(ctx); err != nil {
		return err
	}

	printStandings(tbl, sess.HandsPlayed())
	return nil
}

var (
	standingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	bustedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func printStandings(tbl *game.Table, hands int) {
	fmt.Printf("%s\n", standingsHeaderStyle.Render(fmt.Sprintf("standings after %d hands", hands)))
	for _, p := range tbl.Players {
		chips := chipStyle.Render(fmt.Sprintf("%d", p.Chips))
		if p.Chips == 0 {
			chips = bustedStyle.Render("busted")
		}
		fmt.Printf("%s\t%s\n", nameStyle.Render(p.Name), chips)
	}
}
