// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"lpp/internal/lsp"
)

const lsName = "lpp"

var version = "0.1.0"

func main() {
	var (
		verbosity int
		logFile   string
	)

	cmd := &cobra.Command{
		Use:          "lpp-lsp",
		Short:        "Language server for lpp over stdio",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol, so logs go to stderr or a file.
			var logPath *string
			if logFile != "" {
				logPath = &logFile
			}
			commonlog.Configure(verbosity, logPath)
			return run()
		},
	}
	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 1, "log verbosity (0-5)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	log := commonlog.GetLogger("lpp.lsp.server")
	lppHandler := lsp.NewHandler(lsName, version)

	handler := protocol.Handler{
		Initialize:                     lppHandler.Initialize,
		Initialized:                    lppHandler.Initialized,
		Shutdown:                       lppHandler.Shutdown,
		SetTrace:                       lppHandler.SetTrace,
		TextDocumentDidOpen:            lppHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           lppHandler.TextDocumentDidClose,
		TextDocumentDidChange:          lppHandler.TextDocumentDidChange,
		TextDocumentCompletion:         lppHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: lppHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		return err
	}
	return nil
}
