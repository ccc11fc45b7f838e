package main

import "time"

// CLI defines the command-line interface structure for Kong.
// Every flag is optional, so a bare invocation generates the default site.
type CLI struct {
	Config    string        `short:"c" type:"path" help:"Catalog YAML file (default: embedded catalog)"`
	Out       string        `short:"o" type:"path" default:"dist" help:"Output directory"`
	Markdown  bool          `short:"m" help:"Also write a Markdown companion for every page"`
	Timeout   time.Duration `short:"t" default:"30s" help:"Fetch timeout per file"`
	UserAgent string        `name:"user-agent" default:"flowsheet" help:"User-Agent sent with each request"`
	Verbose   bool          `short:"v" help:"Log per-file parse statistics"`
}
