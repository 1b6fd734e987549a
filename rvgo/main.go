package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "rvdecode"
	app.Usage = "RISC-V instruction decoder"
	app.Description = "Decode RV64 instruction words and disassemble RISC-V code images"
	app.Commands = []*cli.Command{
		cmd.DecodeCommand,
		cmd.DisasmCommand,
	}
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for {
			<-c
			cancel()
			fmt.Fprintln(os.Stderr, "\r\nExiting...")
		}
	}()

	err := app.RunContext(ctx, os.Args)
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			_, _ = fmt.Fprintln(os.Stderr, "command interrupted")
			os.Exit(130)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}
