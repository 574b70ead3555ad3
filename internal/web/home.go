package web

import (
	"net/http"

	"github.com/proxpl/proxsite/internal/playground"
)

type feature struct {
	Title, Description string
}

type release struct {
	Version, Date, Kind, Description string
	Changes                          []string
}

var features = []feature{
	{"Built from Scratch", "No legacy bloat. ProXPL is architected from the ground up to solve modern programming challenges with a fresh perspective."},
	{"Simple & Expressive", "Clean syntax that gets out of your way. Write less boilerplate and focus on solving the actual problem."},
	{"High Performance", "Designed for speed. ProXPL aims to provide performance comparable to C and C++ while maintaining safety."},
	{"Memory Safety", "Robust memory management features ensuring your applications are stable and free from common memory leaks."},
	{"Cross Platform", "Write once, run anywhere. ProXPL supports major operating systems including Windows, Linux, and macOS."},
	{"Open Source", "Driven by the community. Join the development on GitHub and contribute to the future of ProXPL."},
}

var releases = []release{
	{
		Version:     "v0.1.0-alpha",
		Date:        "Dec 27, 2025",
		Kind:        "Major Release",
		Description: "First public alpha release of ProXPL.",
		Changes: []string{
			"Initial compiler implementation (Lexer, Parser, Codegen).",
			"Stack-based Virtual Machine.",
			"Basic standard library (io, math, fs).",
			"VS Code syntax highlighting support.",
		},
	},
	{
		Version:     "v0.0.9",
		Date:        "Nov 15, 2025",
		Kind:        "Internal Beta",
		Description: "Internal testing release focused on stability.",
		Changes: []string{
			"Fixed memory leaks in the garbage collector.",
			"Improved error messages for syntax errors.",
			"Added support for Windows build targets.",
		},
	},
}

type homePage struct {
	Layout
	Features []feature
	Releases []release
	Sample   string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "home", homePage{
		Layout:   s.layout(s.opts.Name, "home"),
		Features: features,
		Releases: releases,
		Sample:   playground.DefaultCode(),
	})
}
