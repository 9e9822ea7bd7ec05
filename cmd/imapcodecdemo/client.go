package main

import (
	"bufio"
	"io"
	"net"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"spilled.ink/imapcodec/imapframer"
	"spilled.ink/imapcodec/imapwire"
)

var clientAddr string

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Connect, log the greeting, send NOOP and LOGOUT, log the responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })).
			With().Timestamp().Logger()

		conn, err := net.Dial("tcp", clientAddr)
		if err != nil {
			return err
		}
		defer conn.Close()

		f := imapframer.New(imapframer.Config{
			Role:           imapframer.RoleClient,
			MaxLiteralSize: maxLiteralSize,
			CRLFRelaxed:    crlfRelaxed,
		})

		script := []imapwire.Command{
			{Tag: mustTag("a1"), Body: imapwire.Noop{}},
			{Tag: mustTag("a2"), Body: imapwire.Logout{}},
		}
		for _, cmd := range script {
			if _, err := conn.Write(imapwire.EncodeCommand(cmd)); err != nil {
				return err
			}
		}

		r := bufio.NewReaderSize(conn, 4096)
		buf := make([]byte, 4096)
		for {
			for {
				ev, ok := f.NextEvent()
				if !ok {
					break
				}
				logClientEvent(logger, ev)
			}
			n, err := r.Read(buf)
			if n > 0 {
				f.Feed(buf[:n])
			}
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}
	},
}

func init() {
	clientCmd.Flags().StringVar(&clientAddr, "addr", "localhost:14300", "address to connect to")
}

func logClientEvent(logger zerolog.Logger, ev imapframer.Event) {
	switch e := ev.(type) {
	case imapframer.EventGreeting:
		logger.Info().Int("kind", int(e.Greeting.Kind)).Msg("greeting")
	case imapframer.EventResponse:
		logger.Info().Msg("response")
	case imapframer.EventFraming:
		logger.Warn().Str("kind", e.Kind.String()).Msg("framing error")
	}
}

func mustTag(s string) imapwire.Tag {
	t, err := imapwire.NewTag([]byte(s))
	if err != nil {
		panic(err)
	}
	return t
}
