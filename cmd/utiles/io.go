package main

import (
	"bufio"
	"bytes"
	"flag"
	"io"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/subcommands"
)

const recordSeparator = 0x1e

// ioFlags holds the options shared by all commands reading records from stdin.
type ioFlags struct {
	seq bool
	obj bool

	in  io.Reader
	out io.Writer
}

func (o *ioFlags) setIOFlags(f *flag.FlagSet) {
	f.BoolVar(&o.seq, "seq", false, "Prefix every output record with the RS (0x1e) character")
	f.BoolVar(&o.obj, "obj", false, "Write tiles as JSON objects instead of arrays")
}

func (o *ioFlags) input() io.Reader {
	if o.in == nil {
		return os.Stdin
	}
	return o.in
}

func (o *ioFlags) newWriter() *recordWriter {
	out := o.out
	if out == nil {
		out = os.Stdout
	}
	return &recordWriter{w: bufio.NewWriter(out), seq: o.seq, obj: o.obj}
}

// inputRecords returns the records of args, or of the input when there are no args.
func (o *ioFlags) inputRecords(args []string) iter.Seq2[string, error] {
	if len(args) > 0 {
		return func(yield func(string, error) bool) {
			for _, arg := range args {
				if !yield(arg, nil) {
					return
				}
			}
		}
	}
	return records(o.input())
}

// records splits r on newlines and record separators, skipping blank records.
func records(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
		scanner.Split(splitRecords)
		for scanner.Scan() {
			record := strings.TrimSpace(scanner.Text())
			if record == "" {
				continue
			}
			if !yield(record, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexAny(data, "\n\x1e"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func readTiles(records iter.Seq2[string, error]) ([]tile.ID, error) {
	var tiles []tile.ID
	for record, err := range records {
		if err != nil {
			return nil, err
		}
		t, err := tile.ParseJSON(record)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

type recordWriter struct {
	w   *bufio.Writer
	seq bool
	obj bool
}

func (w *recordWriter) line(s string) error {
	if w.seq {
		if err := w.w.WriteByte(recordSeparator); err != nil {
			return err
		}
	}
	if _, err := w.w.WriteString(s); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

func (w *recordWriter) tile(t tile.ID) error {
	if w.obj {
		return w.line(t.JSONObject())
	}
	return w.line(t.JSONArray())
}

func (w *recordWriter) Flush() error {
	return w.w.Flush()
}

// exitStatus logs err the way every command reports failures.
func exitStatus(err error) subcommands.ExitStatus {
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
