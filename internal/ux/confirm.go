package ux

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts for a y/N answer on in. Anything other than "y" or
// "yes" counts as a refusal, as does a canceled context.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	type readResult struct {
		input string
		err   error
	}
	ch := make(chan readResult, 1)
	go func() {
		reader := bufio.NewReader(in)
		line, err := reader.ReadString('\n')
		ch <- readResult{input: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(out)
		return false, ctx.Err()
	case r := <-ch:
		if r.err != nil && r.input == "" {
			return false, r.err
		}
		switch strings.ToLower(r.input) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
