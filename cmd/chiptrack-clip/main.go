package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/vsariola/chiptrack"
	"github.com/vsariola/chiptrack/tracker"
	"github.com/vsariola/chiptrack/version"
)

func main() {
	encode := flag.BoolP("encode", "e", false, "Encode the yml rows read from the input into clipboard text, instead of decoding.")
	dump := flag.BoolP("dump", "d", false, "Dump the decoded rows as Go values instead of yml.")
	sample := flag.BoolP("sample", "s", false, "The clip is a sound effect instead of rows.")
	help := flag.BoolP("help", "h", false, "Show help.")
	versionFlag := flag.BoolP("version", "v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help || flag.NArg() > 1 {
		flag.Usage()
		os.Exit(0)
	}
	input, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read input: %v\n", err)
		os.Exit(1)
	}
	var out string
	switch {
	case *encode && *sample:
		out, err = encodeSample(input)
	case *encode:
		out, err = encodeRows(input)
	case *sample:
		out, err = decodeSample(strings.TrimSpace(string(input)), *dump)
	default:
		out, err = decodeRows(strings.TrimSpace(string(input)), *dump)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// readInput reads the file, or the standard input when the name is empty or
// "-".
func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func decodeRows(text string, dump bool) (string, error) {
	count, data, err := tracker.DecodeClip(text)
	if err != nil {
		return "", err
	}
	rows := make([]chiptrack.Row, count)
	for i := range rows {
		if rows[i], err = chiptrack.UnmarshalRow(data[i*chiptrack.RowSize:]); err != nil {
			return "", err
		}
	}
	if dump {
		return spew.Sdump(rows), nil
	}
	var doc yaml.Node
	if err := doc.Encode(rows); err != nil {
		return "", fmt.Errorf("could not encode rows: %w", err)
	}
	// the rows are written one per line, with the note and command as a
	// comment
	for i, n := range doc.Content {
		n.Style = yaml.FlowStyle
		n.LineComment = fmt.Sprintf("%02d %s %c", i, rows[i].NoteString(), rows[i].Command.Symbol())
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return "", fmt.Errorf("could not encode rows: %w", err)
	}
	return buf.String(), nil
}

func encodeRows(input []byte) (string, error) {
	var rows []chiptrack.Row
	dec := yaml.NewDecoder(bytes.NewReader(input))
	dec.KnownFields(true)
	if err := dec.Decode(&rows); err != nil {
		return "", fmt.Errorf("could not decode rows: %w", err)
	}
	var data []byte
	for _, r := range rows {
		b, err := r.MarshalBinary()
		if err != nil {
			return "", err
		}
		data = append(data, b...)
	}
	text, err := tracker.EncodeClip(data)
	if err != nil {
		return "", err
	}
	return text + "\n", nil
}

func decodeSample(text string, dump bool) (string, error) {
	data, err := tracker.DecodeSampleClip(text)
	if err != nil {
		return "", err
	}
	var s chiptrack.Sample
	if err := s.UnmarshalBinary(data); err != nil {
		return "", err
	}
	if dump {
		return spew.Sdump(s), nil
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("could not encode sample: %w", err)
	}
	return string(b), nil
}

func encodeSample(input []byte) (string, error) {
	var s chiptrack.Sample
	dec := yaml.NewDecoder(bytes.NewReader(input))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return "", fmt.Errorf("could not decode sample: %w", err)
	}
	data, err := s.MarshalBinary()
	if err != nil {
		return "", err
	}
	return tracker.EncodeSampleClip(data) + "\n", nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "chiptrack-clip converts the clipboard text of the chiptrack editor to and from yml.\nUsage: %s [flags] [file]\n", os.Args[0])
	flag.PrintDefaults()
}
