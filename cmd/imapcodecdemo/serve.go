package main

import (
	"bufio"
	"io"
	"net"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"crawshaw.io/iox"
	"golang.org/x/text/encoding/ianaindex"

	"spilled.ink/imapcodec/imapframer"
	"spilled.ink/imapcodec/imapwire"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Accept connections and echo back a tagged OK for every command",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })).
			With().Timestamp().Logger()

		ln, err := net.Listen("tcp", serveAddr)
		if err != nil {
			return err
		}
		logger.Info().Str("addr", ln.Addr().String()).Msg("listening")

		filer := iox.NewFiler(0)
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			go serveConn(logger, filer, conn)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:14300", "address to listen on")
}

// serveConn runs one client's session: decode commands with a
// RoleServer imapframer, answer literal continuations, spool APPEND
// message bytes through filer the way imap/imapserver/imapserver.go
// spools them before handing a message off to storage, and reply with a
// canned tagged status for everything else. There is no session state
// machine here (login, selected mailbox, ...) — that is explicitly out
// of this codec's scope.
func serveConn(logger zerolog.Logger, filer *iox.Filer, conn net.Conn) {
	log := logger.With().Str("remote", conn.RemoteAddr().String()).Logger()
	defer conn.Close()

	if _, err := io.WriteString(conn, "* OK imapcodecdemo ready\r\n"); err != nil {
		log.Warn().Err(err).Msg("write greeting")
		return
	}

	f := imapframer.New(imapframer.Config{
		Role:           imapframer.RoleServer,
		MaxLiteralSize: maxLiteralSize,
		CRLFRelaxed:    crlfRelaxed,
	})

	r := bufio.NewReaderSize(conn, 4096)
	buf := make([]byte, 4096)
	for {
		for {
			ev, ok := f.NextEvent()
			if !ok {
				break
			}
			if !handleServerEvent(log, filer, conn, ev) {
				return
			}
		}
		n, err := r.Read(buf)
		if n > 0 {
			f.Feed(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				log.Warn().Err(err).Msg("read")
			}
			return
		}
	}
}

// handleServerEvent reacts to one framer Event, writing whatever the
// wire protocol requires next. It returns false when the connection
// should close.
func handleServerEvent(log zerolog.Logger, filer *iox.Filer, conn net.Conn, ev imapframer.Event) bool {
	switch e := ev.(type) {
	case imapframer.EventCommand:
		tag := string(e.Command.Tag.Bytes())
		log.Info().Str("tag", tag).Msg("command")
		if a, ok := e.Command.Body.(imapwire.Append); ok {
			if err := spoolAppend(filer, a.Message); err != nil {
				log.Warn().Err(err).Msg("spool append")
				writeStatus(conn, tag, "NO", "append failed")
				return true
			}
		}
		if s, ok := e.Command.Body.(imapwire.Search); ok && s.Charset != nil {
			if err := checkSearchCharset(*s.Charset); err != nil {
				log.Info().Str("charset", s.Charset.String()).Err(err).Msg("unsupported search charset")
				writeStatus(conn, tag, "NO", "[BADCHARSET] unsupported charset")
				return true
			}
		}
		if _, ok := e.Command.Body.(imapwire.Logout); ok {
			io.WriteString(conn, "* BYE closing\r\n")
			writeStatus(conn, tag, "OK", "logout complete")
			return false
		}
		writeStatus(conn, tag, "OK", "done")

	case imapframer.EventActionRequired:
		switch a := e.Action.(type) {
		case imapframer.SendLiteralAck:
			io.WriteString(conn, "+ OK\r\n")
		case imapframer.SendLiteralReject:
			log.Info().Uint32("length", a.Length).Msg("rejecting oversized literal")
			io.WriteString(conn, "+ NO literal too large\r\n")
		}

	case imapframer.EventParseFailed:
		log.Info().Str("kind", e.Err.FailKind.String()).Msg("parse failed")
		io.WriteString(conn, "* BAD "+e.Err.Error()+"\r\n")

	case imapframer.EventFraming:
		log.Warn().Str("kind", e.Kind.String()).Msg("framing error")
		io.WriteString(conn, "* BAD framing error\r\n")
	}
	return true
}

// checkSearchCharset resolves a SEARCH command's CHARSET argument to a
// text encoding, the way a real server would before transcoding the
// search string arguments. ianaindex carries the server's
// SEARCH-charset support independently of the command's own framing;
// imapwire only hands back the Charset token itself.
func checkSearchCharset(c imapwire.Charset) error {
	_, err := ianaindex.IANA.Encoding(c.String())
	return err
}

func writeStatus(w io.Writer, tag, kind, text string) {
	io.WriteString(w, tag+" "+kind+" "+text+"\r\n")
}

// spoolAppend copies a decoded literal's bytes into a BufferFile,
// exactly as imapserver.go's serve loop does before handing a message
// off to storage (c.server.Filer.BufferFile(0) + io.CopyN). imapframer
// itself never does this: it hands back the literal's bytes already
// decoded into memory, and spooling them back out to a spillable buffer
// is an integration-layer concern, not the framer's.
func spoolAppend(filer *iox.Filer, msg imapwire.Literal) error {
	bf := filer.BufferFile(0)
	defer bf.Close()
	if _, err := bf.Write(msg.Bytes()); err != nil {
		return err
	}
	_, err := bf.Seek(0, io.SeekStart)
	return err
}
