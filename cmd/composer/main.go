package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"

	"github.com/iw2rmb/composer"
	"github.com/iw2rmb/composer/studio"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	text := flag.String("text", "", "initial post text (\\n separates paragraphs)")
	flag.Parse()

	if *showVersion {
		fmt.Println(composer.UserAgent())
		return
	}

	level := os.Getenv("COMPOSER_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger.SetLogLevel(level)
	logger.Info("composer starting", "version", composer.Version())

	cfg := studio.Config{
		Text:      strings.ReplaceAll(*text, `\n`, "\n"),
		Clipboard: systemClipboard{},
	}

	p := tea.NewProgram(studio.New(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if m, ok := final.(studio.Model); ok {
		m.Close()
	}
	if err != nil {
		logger.LogErr(err, "composer exited")
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
