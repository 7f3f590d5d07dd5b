// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"solparse/internal/config"
	"solparse/internal/lsp"
)

const lsName = "solparse" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	configFile := pflag.String("config", "", "config file (default: ./"+config.DefaultFile+")")
	debug := pflag.Bool("debug", false, "log protocol messages")
	pflag.Parse()

	dir, _ := os.Getwd()
	cfg, cfgErr := config.Discover(*configFile, dir)
	if cfgErr != nil {
		cfg = config.Default()
	}

	// stdout carries the protocol, so logs go to stderr or the configured file
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogFile())
	log := commonlog.GetLogger("solparse.lsp")
	if cfgErr != nil {
		log.Warningf("ignoring config: %s", cfgErr)
	}

	h := lsp.NewHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDocumentSymbol:     h.TextDocumentDocumentSymbol,
		TextDocumentHover:              h.TextDocumentHover,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Infof("starting %s language server %s", lsName, version)

	// Start the server over standard input/output (used by most editors for LSP)
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
