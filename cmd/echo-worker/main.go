package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/guseggert/stdioipc/ipc"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// echoRequest is the message the parent sends to the worker.
type echoRequest struct {
	Op   string `json:"op"`
	Seq  int    `json:"seq"`
	Text string `json:"text,omitempty"`
}

// echoResponse is the message the worker sends back.
type echoResponse struct {
	Seq  int    `json:"seq"`
	Text string `json:"text"`
}

func main() {
	app := &cli.App{
		Name:  "echo-worker",
		Usage: "a demo worker that echoes every control message from its parent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level for the worker's stderr logging. One of [debug,info,warn,error].",
				Value: "info",
			},
		},
		Action: func(ctx *cli.Context) error {
			level, err := zapcore.ParseLevel(ctx.String("log-level"))
			if err != nil {
				return fmt.Errorf("parsing log level: %w", err)
			}

			// everything we log goes to stderr, where the parent's relay
			// picks it up; stdout carries the message stream
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(level)
			cfg.OutputPaths = []string{"stderr"}
			cfg.ErrorOutputPaths = []string{"stderr"}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer logger.Sync()
			slog := logger.Sugar()

			send, recv := ipc.NewWorker[echoResponse, echoRequest](os.Stdin, os.Stdout, ipc.WithLogger(logger))
			defer send.Close()

			slog.Info("echo worker started")
			for {
				req, err := recv.Recv()
				if err == io.EOF {
					slog.Info("parent closed the stream, exiting")
					return nil
				}
				if err != nil {
					// malformed line, already logged by the receiver
					continue
				}
				slog.Debugf("echoing seq %d", req.Seq)
				send.Send(echoResponse{Seq: req.Seq, Text: req.Text})
			}
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
