package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"trustedform/internal/trustedform/lead"
)

// readLeads reads lead variables from the named file, or from stdin when no
// file or "-" is given. Input is a JSON array or a stream of JSON objects.
func (a *App) readLeads(args []string) ([]*lead.Vars, error) {
	in := a.In
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open leads: %w", err)
		}
		defer f.Close()
		in = f
	}
	return decodeLeads(in)
}

func decodeLeads(r io.Reader) ([]*lead.Vars, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var leads []*lead.Vars
		if err := dec.Decode(&leads); err != nil {
			return nil, fmt.Errorf("decode leads: %w", err)
		}
		return leads, nil
	}

	var leads []*lead.Vars
	for {
		var vars lead.Vars
		err := dec.Decode(&vars)
		if errors.Is(err, io.EOF) {
			return leads, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode lead %d: %w", len(leads), err)
		}
		leads = append(leads, &vars)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, errors.New("no leads on input")
		}
		if err != nil {
			return 0, fmt.Errorf("read leads: %w", err)
		}
		if !bytes.ContainsRune([]byte(" \t\r\n"), rune(b)) {
			return b, br.UnreadByte()
		}
	}
}

// print writes v in the selected output format.
func (a *App) print(v any) error {
	if a.format == formatYAML {
		enc := yaml.NewEncoder(a.Out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
