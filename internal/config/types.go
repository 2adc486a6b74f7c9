package config

import "time"

type Config struct {
	APIURL          string
	Timeout         time.Duration
	LenientDecoding bool
	ClientRPS       float64
	Port            string
	HintRateLimit   string // ulule limiter format, e.g. "30-M"
	Environment     string
}

// flags for the non-interactive hint subcommand
type HintFlags struct {
	File         string
	Level        string
	Problem      string
	ErrorMessage string
	HTMLPath     string
	Dump         bool
}

// flags for the interactive host
type TUIFlags struct {
	File    string
	LogFile string
}
