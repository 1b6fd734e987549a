package cmd

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := cli.NewApp()
	app.Name = "rvdecode"
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Commands = []*cli.Command{NewDecodeCommand(), NewDisasmCommand()}
	err := app.RunContext(context.Background(), append([]string{"rvdecode"}, args...))
	return out.String(), errOut.String(), err
}

// runToFile runs the command with --output pointed at a temp file, and returns the file contents.
func runToFile(t *testing.T, command string, args ...string) (string, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	_, logs, err := runApp(t, append([]string{command, "--output", path}, args...)...)
	if err != nil {
		return "", logs, err
	}
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	return string(data), logs, nil
}

func writeImage(t *testing.T, ws ...uint32) string {
	t.Helper()
	var data []byte
	for _, w := range ws {
		data = binary.LittleEndian.AppendUint32(data, w)
	}
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecodeText(t *testing.T) {
	out, _, err := runToFile(t, "decode", "0x00002517", "00100073", "0xFFF00093")
	require.NoError(t, err)
	require.Equal(t, "00002517\tauipc x10, 0x2\n00100073\tebreak\nfff00093\taddi x1, x0, -1\n", out)
}

func TestDecodeErrors(t *testing.T) {
	out, logs, err := runToFile(t, "decode", "00000001", "0000007f")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "compressed")
	require.Contains(t, lines[1], "unknown instruction encoding")
	require.Contains(t, logs, "some words did not decode")

	_, _, err = runApp(t, "decode", "xyz")
	require.ErrorContains(t, err, "invalid instruction word")

	_, _, err = runApp(t, "decode")
	require.ErrorContains(t, err, "no instruction words")

	_, _, err = runApp(t, "decode", "--json", "--dump", "00000013")
	require.ErrorContains(t, err, "--json and --dump are mutually exclusive")
}

func TestDecodeLogFlags(t *testing.T) {
	_, _, err := runApp(t, "decode", "--log.level", "loud", "00000013")
	require.ErrorContains(t, err, "log.level")

	_, logs, err := runToFile(t, "decode", "0000007f")
	require.NoError(t, err)
	require.NotContains(t, logs, "failed to decode word")

	_, logs, err = runToFile(t, "decode", "--log.level", "debug", "0000007f")
	require.NoError(t, err)
	require.Contains(t, logs, "failed to decode word")

	_, logs, err = runToFile(t, "decode", "--log.level", "error", "0000007f")
	require.NoError(t, err)
	require.NotContains(t, logs, "some words did not decode")

	_, logs, err = runToFile(t, "decode", "--log.format", "json", "0000007f")
	require.NoError(t, err)
	line := strings.TrimSpace(logs)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
	require.Equal(t, "some words did not decode", rec["msg"])
}

func TestDecodeJSON(t *testing.T) {
	out, _, err := runToFile(t, "decode", "--json", "00002517", "0000007f")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)

	ok := records[0]
	require.Equal(t, "0x00002517", ok["raw"])
	require.Equal(t, "auipc", ok["op"])
	require.Equal(t, "U", ok["format"])
	require.Equal(t, "I", ok["ext"])
	require.Equal(t, "auipc x10, 0x2", ok["asm"])
	args := ok["args"].(map[string]any)
	require.EqualValues(t, 10, args["Rd"])
	require.EqualValues(t, 2, args["Imm20"])
	require.EqualValues(t, 0x2000, args["Imm"])

	bad := records[1]
	require.Equal(t, "0x0000007f", bad["raw"])
	require.Contains(t, bad["error"], "unknown instruction encoding")
	require.NotContains(t, bad, "op")
}

func TestDecodeNoOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out, logs, err := runApp(t, "decode", "--output", "", "0000007f")
	require.NoError(t, err)
	require.Empty(t, out)
	require.Contains(t, logs, "some words did not decode")
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestDecodeDump(t *testing.T) {
	out, _, err := runToFile(t, "decode", "--dump", "00002517")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "00002517: auipc x10, 0x2\n"))
	require.Contains(t, out, "(decode.UType)")
	require.Contains(t, out, "Imm20: (uint32) 2")
}

func TestDisasmBin(t *testing.T) {
	path := writeImage(t, 0x00002517, 0x00000001, 0xFFDFF06F, 0x0000100F, 0x02C58533)
	out, logs, err := runToFile(t, "disasm", "--bin", path, "--base", "0x1000", "--workers", "2", "--stats")
	require.NoError(t, err)
	require.Contains(t, out, "Disassembly of section "+path+":")
	require.Contains(t, out, "0000000000001000:\t00002517\tauipc x10, 0x2\n")
	require.Contains(t, out, "0000000000001004:\t00000001\t(compressed)\n")
	require.Contains(t, out, "0000000000001008:\tffdff06f\tjal x0, -4\n")
	require.Contains(t, out, "000000000000100c:\t0000100f\tfence.i\n")
	require.Contains(t, out, "words: 5 decoded: 4 unknown: 0 compressed: 1 truncated: 0\n")
	require.Contains(t, out, "extensions: I=2 Zifencei=1 M=1\n")
	require.Contains(t, logs, "decoded section")
}

func TestDisasmJSONToFile(t *testing.T) {
	path := writeImage(t, 0x00100073, 0x0000007F)
	out, _, err := runToFile(t, "disasm", "--bin", path, "--base", "4096", "--format", "json", "--stats")
	require.NoError(t, err)

	var listing struct {
		Sections []struct {
			Name    string           `json:"name"`
			Addr    string           `json:"addr"`
			Entries []map[string]any `json:"entries"`
		} `json:"sections"`
		Stats struct {
			Words      int            `json:"words"`
			Unknown    int            `json:"unknown"`
			Ops        map[string]int `json:"ops"`
			Extensions map[string]int `json:"extensions"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Len(t, listing.Sections, 1)
	sec := listing.Sections[0]
	require.Equal(t, path, sec.Name)
	require.Equal(t, "0x1000", sec.Addr)
	require.Len(t, sec.Entries, 2)
	require.Equal(t, "0x1000", sec.Entries[0]["addr"])
	require.Equal(t, "0x00100073", sec.Entries[0]["raw"])
	require.Equal(t, "ebreak", sec.Entries[0]["asm"])
	require.Equal(t, "0x0000007f", sec.Entries[1]["raw"])
	require.Contains(t, sec.Entries[1]["error"], "unknown instruction encoding")

	require.Equal(t, 2, listing.Stats.Words)
	require.Equal(t, 1, listing.Stats.Unknown)
	require.Equal(t, map[string]int{"ebreak": 1}, listing.Stats.Ops)
	require.Equal(t, map[string]int{"I": 1}, listing.Stats.Extensions)
}

func TestDisasmJSONWithoutStats(t *testing.T) {
	path := writeImage(t, 0x00000013)
	out, _, err := runToFile(t, "disasm", "--bin", path, "--format", "json")
	require.NoError(t, err)
	var listing map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Contains(t, listing, "sections")
	require.NotContains(t, listing, "stats")
}

func TestDisasmInputErrors(t *testing.T) {
	_, _, err := runApp(t, "disasm")
	require.ErrorContains(t, err, "one of --elf or --bin is required")

	path := writeImage(t, 0x00000013)
	_, _, err = runApp(t, "disasm", "--bin", path, "--elf", path)
	require.ErrorContains(t, err, "mutually exclusive")

	_, _, err = runApp(t, "disasm", "--elf", path)
	require.ErrorContains(t, err, "failed to open ELF file")

	_, _, err = runApp(t, "disasm", "--bin", path, "--base", "nope")
	require.ErrorContains(t, err, "base")

	_, _, err = runApp(t, "disasm", "--bin", path, "--format", "yaml")
	require.ErrorContains(t, err, "invalid listing format")
}

func TestParseWord(t *testing.T) {
	for in, want := range map[string]uint32{
		"0x00002517": 0x00002517,
		"0XFFF00093": 0xFFF00093,
		"13":         0x13,
		"0010_0073":  0x00100073,
	} {
		got, err := parseWord(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := parseWord("0x100000000")
	require.Error(t, err)
}
