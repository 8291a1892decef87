// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"mnlang/internal/config"
	"mnlang/internal/lsp"
)

const lsName = "mnlang" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	cfgFile := flag.String("config", "", "config file (.toml, .yaml or .yml)")
	debug := flag.Bool("debug", false, "enable GLSP debug logging")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgFile)
	if err != nil {
		log.Println("Error loading config:", err)
		os.Exit(1)
	}

	// The protocol runs over stdout, so logs must go to stderr or a file
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogFile())

	mnHandler := lsp.NewHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     mnHandler.Initialize,
		Initialized:                    mnHandler.Initialized,
		Shutdown:                       mnHandler.Shutdown,
		SetTrace:                       mnHandler.SetTrace,
		TextDocumentDidOpen:            mnHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           mnHandler.TextDocumentDidClose,
		TextDocumentDidChange:          mnHandler.TextDocumentDidChange,
		TextDocumentCompletion:         mnHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: mnHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Printf("Starting mnlang LSP server v%s...", version)

	err = s.RunStdio()
	if err != nil {
		log.Println("Error starting mnlang LSP server:", err)
		os.Exit(1)
	}
}
